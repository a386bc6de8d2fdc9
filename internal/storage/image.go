package storage

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

type ImageOptions struct {
	MaxWidth  int
	MaxHeight int
	Quality   int
}

// ImageProcessor decodes uploads, applies EXIF orientation, shrinks them to
// fit the configured box and re-encodes them.
type ImageProcessor struct {
	opts ImageOptions
}

func NewImageProcessor(opts ImageOptions) *ImageProcessor {
	return &ImageProcessor{opts: opts}
}

// Process returns the encoded image with the file extension and content type
// matching the output format. Formats imaging cannot write become JPEG.
func (p *ImageProcessor) Process(data []byte, filename string) ([]byte, string, string, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, "", "", fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}

	if p.opts.MaxWidth > 0 && p.opts.MaxHeight > 0 {
		img = imaging.Fit(img, p.opts.MaxWidth, p.opts.MaxHeight, imaging.Lanczos)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		format, ext = imaging.JPEG, ".jpg"
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, format, imaging.JPEGQuality(p.opts.Quality)); err != nil {
		return nil, "", "", fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), ext, contentType(format), nil
}

func contentType(f imaging.Format) string {
	switch f {
	case imaging.PNG:
		return "image/png"
	case imaging.GIF:
		return "image/gif"
	case imaging.TIFF:
		return "image/tiff"
	case imaging.BMP:
		return "image/bmp"
	default:
		return "image/jpeg"
	}
}

package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"ecotours/internal/storage"
)

// PNG returns a small encoded image.
func PNG(t *testing.T, w, h int) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

// Upload is one file part of a multipart body.
type Upload struct {
	Field    string
	Filename string
	Data     []byte
}

// MultipartBody encodes fields and files and returns the body with its
// content type.
func MultipartBody(t *testing.T, fields map[string]string, files ...Upload) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	for _, f := range files {
		part, err := mw.CreateFormFile(f.Field, f.Filename)
		require.NoError(t, err)
		_, err = part.Write(f.Data)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

// FileHeader builds a parsed upload as the HTTP layer would hand it over.
func FileHeader(t *testing.T, field, filename string, data []byte) *multipart.FileHeader {
	t.Helper()

	body, contentType := MultipartBody(t, nil, Upload{Field: field, Filename: filename, Data: data})
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)
	require.NoError(t, req.ParseMultipartForm(32<<20))

	files := req.MultipartForm.File[field]
	require.Len(t, files, 1)
	return files[0]
}

// NewMedia returns media storage backed by a temporary local directory.
func NewMedia(t *testing.T) (storage.Media, *storage.LocalStore) {
	t.Helper()

	store, err := storage.NewLocalStore(t.TempDir(), "/media/")
	require.NoError(t, err)
	processor := storage.NewImageProcessor(storage.ImageOptions{MaxWidth: 1920, MaxHeight: 1080, Quality: 90})
	return storage.NewMedia(store, processor, NopLogger()), store
}

package storage_test

import (
	"bytes"
	"image"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecotours/internal/storage"
	"ecotours/internal/testutil"
)

func TestImageProcessor_FitsIntoBox(t *testing.T) {
	p := storage.NewImageProcessor(storage.ImageOptions{MaxWidth: 200, MaxHeight: 100, Quality: 90})

	out, ext, contentType, err := p.Process(testutil.PNG(t, 400, 100), "photo.PNG")
	require.NoError(t, err)
	assert.Equal(t, ".png", ext)
	assert.Equal(t, "image/png", contentType)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 50), img.Bounds().Size())
}

func TestImageProcessor_SmallImagesKeepTheirSize(t *testing.T) {
	p := storage.NewImageProcessor(storage.ImageOptions{MaxWidth: 1920, MaxHeight: 1080, Quality: 90})

	out, _, _, err := p.Process(testutil.PNG(t, 30, 20), "small.png")
	require.NoError(t, err)

	img, err := imaging.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(30, 20), img.Bounds().Size())
}

func TestImageProcessor_UnknownExtensionBecomesJPEG(t *testing.T) {
	p := storage.NewImageProcessor(storage.ImageOptions{Quality: 80})

	_, ext, contentType, err := p.Process(testutil.PNG(t, 10, 10), "upload.webp")
	require.NoError(t, err)
	assert.Equal(t, ".jpg", ext)
	assert.Equal(t, "image/jpeg", contentType)
}

func TestImageProcessor_RejectsNonImages(t *testing.T) {
	p := storage.NewImageProcessor(storage.ImageOptions{Quality: 80})

	_, _, _, err := p.Process([]byte("definitely not an image"), "notes.jpg")
	assert.ErrorIs(t, err, storage.ErrInvalidImage)
}

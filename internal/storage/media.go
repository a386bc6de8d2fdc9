package storage

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Media is what services use to keep and drop image uploads.
type Media interface {
	// SaveImage normalises an uploaded image and stores it under dir,
	// returning the stored reference.
	SaveImage(ctx context.Context, dir string, file *multipart.FileHeader) (string, error)
	// Discard removes stored files. Failures are logged, never returned.
	Discard(ctx context.Context, refs ...string)
}

type mediaService struct {
	store     FileStore
	processor *ImageProcessor
	log       *zap.Logger
}

func NewMedia(store FileStore, processor *ImageProcessor, log *zap.Logger) Media {
	return &mediaService{store: store, processor: processor, log: log}
}

func (m *mediaService) SaveImage(ctx context.Context, dir string, file *multipart.FileHeader) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	out, ext, contentType, err := m.processor.Process(data, file.Filename)
	if err != nil {
		return "", err
	}

	key := path.Join(dir, uuid.New().String()+ext)
	ref, err := m.store.Put(ctx, key, out, contentType)
	if err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return ref, nil
}

func (m *mediaService) Discard(ctx context.Context, refs ...string) {
	for _, ref := range refs {
		if ref == "" {
			continue
		}
		if err := m.store.Remove(ctx, ref); err != nil {
			m.log.Warn("failed to remove stored file", zap.String("ref", ref), zap.Error(err))
		}
	}
}

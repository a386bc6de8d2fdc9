package storage

import (
	"context"
	"errors"
	"fmt"

	"ecotours/internal/config"
)

var ErrInvalidImage = errors.New("upload a valid image. The file you uploaded was either not an image or a corrupted image")

// FileStore keeps uploaded files. Put returns the reference persisted in the
// database: a path below the media URL or an absolute URL.
type FileStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Remove(ctx context.Context, ref string) error
}

func NewFileStore(ctx context.Context, cfg config.MediaConfig) (FileStore, error) {
	switch cfg.Backend {
	case "local":
		return NewLocalStore(cfg.Root, cfg.URL)
	case "s3":
		return NewS3Store(ctx, cfg.S3)
	default:
		return nil, fmt.Errorf("unknown media backend %q", cfg.Backend)
	}
}

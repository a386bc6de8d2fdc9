package storage_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"ecotours/internal/config"
	"ecotours/internal/storage"
)

var Module = fx.Provide(provideFileStore, provideImageProcessor, storage.NewMedia)

func provideFileStore(cfg *config.Config, log *zap.Logger) (storage.FileStore, error) {
	store, err := storage.NewFileStore(context.Background(), cfg.Media)
	if err != nil {
		return nil, err
	}
	log.Info("media storage ready", zap.String("backend", cfg.Media.Backend))
	return store, nil
}

func provideImageProcessor(cfg *config.Config) *storage.ImageProcessor {
	return storage.NewImageProcessor(storage.ImageOptions{
		MaxWidth:  cfg.Media.MaxWidth,
		MaxHeight: cfg.Media.MaxHeight,
		Quality:   cfg.Media.ImageQuality,
	})
}

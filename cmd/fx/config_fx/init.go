package config_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"ecotours/internal/config"
	"ecotours/pkg/logger"
	"ecotours/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(config.Load, provideLogger, provideJWTManager),
	fx.Invoke(utils.RegisterValidation),
)

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg.Logging.Level, cfg.Server.Debug)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(log)
	return log, nil
}

func provideJWTManager(cfg *config.Config) *utils.JWTManager {
	return utils.NewJWTManager(cfg.Security.SecretKey, cfg.Security.TokenTTL())
}

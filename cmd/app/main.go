package main

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"ecotours/cmd/fx/account_fx"
	"ecotours/cmd/fx/booking_fx"
	"ecotours/cmd/fx/config_fx"
	"ecotours/cmd/fx/contact_fx"
	"ecotours/cmd/fx/content_fx"
	"ecotours/cmd/fx/controllers_fx"
	"ecotours/cmd/fx/dashboard"
	"ecotours/cmd/fx/db_fx"
	"ecotours/cmd/fx/mail_fx"
	"ecotours/cmd/fx/memcache_fx"
	"ecotours/cmd/fx/place_fx"
	"ecotours/cmd/fx/storage_fx"
	"ecotours/internal/api"
	"ecotours/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log.Named("fx")}
		}),
		db_fx.Module,
		storage_fx.Module,
		mail_fx.Module,
		memcache_fx.Module,
		account_fx.Module,
		place_fx.Module,
		booking_fx.Module,
		content_fx.Module,
		contact_fx.Module,
		dashboard.Module,
		controllers_fx.Module,

		fx.Provide(api.NewRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadTimeout:       cfg.Server.ReadTimeout(),
		ReadHeaderTimeout: cfg.Server.ReadTimeout(),
		WriteTimeout:      cfg.Server.WriteTimeout(),
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("HTTP server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

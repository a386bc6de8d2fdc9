package mail_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"ecotours/internal/config"
	"ecotours/internal/services"
)

var Module = fx.Provide(provideMailService, provideNotificationService)

func provideMailService(cfg *config.Config, log *zap.Logger) services.IMailService {
	if !cfg.Email.Enabled() {
		log.Warn("EMAIL_HOST_USER not set, outgoing mail is disabled")
		return services.NewNoopMailService()
	}

	from := cfg.Email.From
	if from == "" {
		from = cfg.Email.User
	}

	return services.NewSMTPMailService(services.SMTPConfig{
		Host:       cfg.Email.Host,
		Port:       cfg.Email.Port,
		Username:   cfg.Email.User,
		Password:   cfg.Email.Password,
		From:       from,
		FromName:   cfg.Email.FromName,
		UseSSL:     cfg.Email.UseSSL,
		RequireTLS: cfg.Email.UseTLS,

		AppName:  cfg.Email.FromName,
		ResetURL: cfg.Email.ResetURL,
	})
}

func provideNotificationService(cfg *config.Config, mail services.IMailService, log *zap.Logger) services.NotificationServiceInterface {
	return services.NewNotificationService(mail, cfg.Admin.Email, log)
}

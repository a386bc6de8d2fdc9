package account_fx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"ecotours/internal/api/controllers"
	"ecotours/internal/config"
	"ecotours/internal/repositories"
	"ecotours/internal/services"
	mem "ecotours/pkg/memcache"
	"ecotours/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideAccountService, provideAccountRepo, controllers.NewAccountController),
	fx.Invoke(seedAdmin),
)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideAccountService(
	cfg *config.Config,
	accountRepo repositories.AccountRepository,
	jwtManager *utils.JWTManager,
	mailService services.IMailService,
	resetTokens mem.ResetTokenStore,
	log *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, jwtManager, cfg.Security.TokenTTL(), mailService, resetTokens, log)
}

// seedAdmin makes sure the configured administrator can sign in.
func seedAdmin(lc fx.Lifecycle, cfg *config.Config, accounts services.AccountServiceInterface) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return accounts.EnsureAdmin(ctx, cfg.Admin.Email, cfg.Admin.Password)
		},
	})
}

package account_fx

import (
	"context"
	"log/slog"

	"go.uber.org/fx"
	"tripplanner/internal/config"
	"tripplanner/internal/repositories"
	"tripplanner/internal/services"
	"tripplanner/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(provideHasher, provideAccountService),
	fx.Invoke(seedDemoUser))

func provideHasher(cfg *config.Config) (utils.PasswordHasher, error) {
	return utils.NewPasswordHasher(cfg.PasswordHasher)
}

func provideAccountService(accountRepo repositories.AccountRepository, hasher utils.PasswordHasher, log *slog.Logger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, hasher, log)
}

func seedDemoUser(lc fx.Lifecycle, cfg *config.Config, accounts services.AccountServiceInterface, log *slog.Logger) {
	if !cfg.SeedDemoUser {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := accounts.SeedDemoUser(ctx); err != nil {
				return err
			}
			log.Info("demo account available", "email", services.DemoEmail)
			return nil
		},
	})
}

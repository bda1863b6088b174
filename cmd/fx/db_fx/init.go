package db_fx

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/fx"
	"tripplanner/internal/config"
	"tripplanner/internal/infra"
	"tripplanner/internal/repositories"
)

var Module = fx.Provide(provideStores)

type Stores struct {
	fx.Out

	Accounts repositories.AccountRepository
	Trips    repositories.TripRepository
}

// provideStores opens the backend selected by STORE_BACKEND. Both backends
// satisfy the same repository interfaces.
func provideStores(lc fx.Lifecycle, cfg *config.Config, log *slog.Logger) (Stores, error) {
	switch cfg.StoreBackend {
	case "gorm":
		db, err := infra.OpenGorm(cfg)
		if err != nil {
			return Stores{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				infra.CloseGorm(db, log)
				return nil
			},
		})
		log.Info("store ready", "backend", "gorm", "driver", cfg.DBDriver)
		return Stores{
			Accounts: repositories.NewAccountRepository(db),
			Trips:    repositories.NewTripRepository(db),
		}, nil

	case "sqlx":
		db, err := infra.OpenSqlx(context.Background(), cfg)
		if err != nil {
			return Stores{}, err
		}
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return db.Close()
			},
		})
		log.Info("store ready", "backend", "sqlx", "driver", cfg.DBDriver)
		return Stores{
			Accounts: repositories.NewSqlxAccountRepository(db),
			Trips:    repositories.NewSqlxTripRepository(db),
		}, nil

	default:
		return Stores{}, fmt.Errorf("unsupported store backend: %s", cfg.StoreBackend)
	}
}

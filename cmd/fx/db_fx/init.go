package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"hostlane/internal/config"
	"hostlane/internal/infra"
)

var Module = fx.Provide(
	provideDB)

func provideDB(lc fx.Lifecycle, cfg *config.Config) *gorm.DB {
	db := infra.InitPostgresql(cfg.PostgresURL)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})

	return db
}

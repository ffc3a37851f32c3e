package redis_fx

import (
	"context"

	"go.uber.org/fx"

	"hostlane/internal/config"
	"hostlane/internal/infra"
)

var Module = fx.Provide(
	provideRedis)

func provideRedis(lc fx.Lifecycle, cfg *config.Config) *infra.RedisClient {
	client := infra.InitRedis(cfg.Redis)

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			client.Close()
			return nil
		},
	})

	return client
}

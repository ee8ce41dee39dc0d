package components

import (
	"context"
	"log/slog"

	"timer-gateway/internal/infra/contextcache"
	"timer-gateway/internal/pkg/config"
	"timer-gateway/internal/usecase"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewContextCache,
	),
)

// NewContextCache falls back to a cache that never hits when no Redis is configured.
// An unreachable Redis at startup is only logged; lookups then miss until it comes back.
func NewContextCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) usecase.ContextCache {
	if !cfg.Cache.Enabled() {
		logger.Info("reservation context cache disabled")
		return contextcache.Noop{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.RedisAddr,
		Password: cfg.Cache.RedisPassword,
		DB:       cfg.Cache.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				logger.Warn("redis not reachable, context cache will miss", "addr", cfg.Cache.RedisAddr, "error", err.Error())
				return nil
			}
			logger.Info("reservation context cache enabled", "addr", cfg.Cache.RedisAddr, "ttl", cfg.Cache.TTL)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return contextcache.New(client, cfg.Cache.TTL)
}

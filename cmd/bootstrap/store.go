package bootstrap

import (
	"context"
	"log/slog"

	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/db"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/infra/docstore"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/config"
	"github.com/Jacob-ai2ai/travelconnectai-sub001/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewStore,
	),
)

// NewStore opens the document backend named by STORE_BACKEND.
func NewStore(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (docstore.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Store.RedisAddr,
			Password: cfg.Store.RedisPassword,
			DB:       cfg.Store.RedisDB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errs.Wrap(err, "ping redis")
				}
				return nil
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})
		logger.Info("Using redis document store", "addr", cfg.Store.RedisAddr, "prefix", cfg.Store.KeyPrefix)
		return docstore.NewRedisStore(client, cfg.Store.KeyPrefix), nil

	case config.StoreBackendPostgres:
		pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
		if err != nil {
			return nil, err
		}
		store := docstore.NewPostgresStore(pool)
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return store.EnsureSchema(ctx)
			},
			OnStop: func(_ context.Context) error {
				if cleanup != nil {
					cleanup()
				}
				return nil
			},
		})
		logger.Info("Using postgres document store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
		return store, nil

	default:
		logger.Info("Using in-memory document store; state is lost on restart")
		return docstore.NewMemoryStore(), nil
	}
}

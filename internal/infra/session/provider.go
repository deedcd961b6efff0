// Package session provides the SessionRepository implementations.
package session

import (
	"context"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/constants"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/state"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultSweepInterval = time.Minute

// StoreParams holds dependencies for the session store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionRepository picks the session store named in config.
func NewSessionRepository(params StoreParams) (repository.SessionRepository, error) {
	cfg := params.Config.Session
	store := constants.SessionStoreMemory
	if cfg != nil && cfg.Store != "" {
		store = cfg.Store
	}

	switch store {
	case constants.SessionStoreMemory:
		params.Logger.Info("Using in-memory session store")

		interval := defaultSweepInterval
		if cfg != nil && cfg.SweepInterval > 0 {
			interval = cfg.SweepInterval
		}
		store := newMemoryStore(time.Now)
		sweeper := state.NewSweeper("sessions", interval, store.Sweep, params.Logger)
		params.Lc.Append(fx.Hook{
			OnStart: sweeper.Start,
			OnStop:  sweeper.Stop,
		})

		return store, nil

	case constants.SessionStoreRedis:
		if cfg.Redis.Addr == "" {
			return nil, errors.New("redis address is required for redis session store")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "ping redis session store")
				}
				params.Logger.Info("Redis session store connected", slog.String("addr", cfg.Redis.Addr))

				return nil
			},
			OnStop: func(_ context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return NewRedisStore(client), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", store)
	}
}

// Module provides the session store FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewSessionRepository),
)

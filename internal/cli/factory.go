package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/aretw0/rapport/internal/config"
	"github.com/aretw0/rapport/pkg/adapters/file"
	"github.com/aretw0/rapport/pkg/adapters/memory"
	"github.com/aretw0/rapport/pkg/adapters/redis"
	"github.com/aretw0/rapport/pkg/domain"
	"github.com/aretw0/rapport/pkg/ports"
	"github.com/aretw0/rapport/pkg/session"
)

// Backend bundles the store chosen by configuration with its optional locker.
type Backend struct {
	Store  ports.PersonStore
	Locker ports.DistributedLocker
	closer io.Closer
}

// Close releases any connection held by the backend.
func (b *Backend) Close() error {
	if b.closer == nil {
		return nil
	}
	return b.closer.Close()
}

// NewBackend builds the PersonStore named by cfg.Store.Driver.
func NewBackend(cfg config.StoreConfig) (*Backend, error) {
	switch cfg.Driver {
	case config.DriverMemory:
		return &Backend{Store: memory.NewStore()}, nil
	case config.DriverFile:
		return &Backend{Store: file.New(cfg.Path)}, nil
	case config.DriverRedis:
		opts := []redis.Option{redis.WithTTL(cfg.Redis.TTL)}
		if cfg.Redis.Prefix != "" {
			opts = append(opts, redis.WithPrefix(cfg.Redis.Prefix))
		}
		store := redis.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, opts...)
		b := &Backend{Store: store, closer: store}
		if cfg.Redis.Lock {
			b.Locker = redis.NewLocker(store.Client(), store.Prefix())
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
	}
}

// NewManager wires a session.Manager from configuration, backend and observers.
func NewManager(cfg config.Config, b *Backend, logger *slog.Logger, hooks ...domain.Hooks) *session.Manager {
	opts := []session.Option{
		session.WithLogger(logger),
		session.WithDefaultName(cfg.Name),
		session.WithHooks(domain.ChainHooks(append([]domain.Hooks{LoggingHooks(logger)}, hooks...)...)),
	}
	if b.Locker != nil {
		opts = append(opts, session.WithLocker(b.Locker, cfg.Store.Redis.LockTTL))
	}
	return session.NewManager(b.Store, opts...)
}

// LoggingHooks logs every transition and reset at debug level.
func LoggingHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnAct: func(e domain.TransitionEvent) {
			logger.Debug("Transition",
				"name", e.Name,
				"action", e.Action.String(),
				"from", e.From.String(),
				"to", e.To.String(),
			)
		},
		OnReset: func(e domain.ResetEvent) {
			logger.Debug("Reset", "name", e.Name, "from", e.From.String())
		},
	}
}

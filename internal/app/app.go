// Package app assembles the client: credential store, gateway, backend API and
// the session controller that ties them together.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/avatar-commerce/avatarcommerce/internal/api"
	"github.com/avatar-commerce/avatarcommerce/internal/config"
	"github.com/avatar-commerce/avatarcommerce/internal/credential"
	"github.com/avatar-commerce/avatarcommerce/internal/gateway"
	"github.com/avatar-commerce/avatarcommerce/internal/infra"
	"github.com/avatar-commerce/avatarcommerce/internal/session"
)

// App is the wired client. Build it once per process with New and release it
// with Close.
type App struct {
	Store   credential.Store
	API     *api.Client
	Session *session.Controller

	logger *slog.Logger
	cache  *redis.Client
}

// New builds the client and restores any persisted session.
func New(ctx context.Context, cfg config.ClientConfig, logger *slog.Logger) (*App, error) {
	a := &App{logger: logger}

	store, err := a.openStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	a.Store = store

	gw, err := gateway.New(cfg.APIURL, gateway.WithTimeout(cfg.HTTPTimeout), gateway.WithLogger(logger))
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("build gateway: %w", err)
	}
	a.API = api.New(gw)
	a.Session = session.NewController(a.API, store, logger)

	gw.SetTokenSource(a.Session)
	gw.OnUnauthorized(a.Session.HandleUnauthorized)

	a.Session.Restore(ctx)
	return a, nil
}

// Close releases the Redis connection when one was opened.
func (a *App) Close() {
	if a.cache == nil {
		return
	}
	if err := a.cache.Close(); err != nil {
		a.logger.Warn("close redis", "error", err)
	}
	a.cache = nil
}

// InfluencerID resolves the signed-in influencer, preferring the stored
// convenience entry the way the avatar screen does.
func (a *App) InfluencerID(ctx context.Context) (string, error) {
	id, err := credential.InfluencerID(ctx, a.Store)
	if err == nil {
		return id, nil
	}
	if user, ok := a.Session.State().User(); ok && user.IsInfluencer() {
		return user.ID, nil
	}
	return "", fmt.Errorf("no influencer signed in: %w", err)
}

func (a *App) openStore(ctx context.Context, cfg config.ClientConfig) (credential.Store, error) {
	switch cfg.CredentialBackend {
	case config.BackendMemory:
		return credential.NewMemoryStore(), nil
	case config.BackendRedis:
		cache, err := infra.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		a.cache = cache
		store, err := credential.NewRedisStore(cache, cfg.DeviceID)
		if err != nil {
			a.Close()
			return nil, err
		}
		return store, nil
	default:
		store, err := credential.NewFileStore(cfg.StateFile)
		if err != nil && store != nil {
			// Unreadable or corrupt local state means no session. Later writes
			// either repair the file or fail and are logged.
			a.logger.Warn("credential file unreadable, starting signed out", "path", cfg.StateFile, "corrupt", errors.Is(err, credential.ErrCorrupt), "error", err)
			return store, nil
		}
		if err != nil {
			return nil, err
		}
		return store, nil
	}
}

// Package app wires the core together: configuration, the key-value
// backend, the state store and the credential directory.
package app

import (
	"context"
	"fmt"
	"time"

	"github.com/setly/teamdesk/internal/config"
	"github.com/setly/teamdesk/internal/credentials"
	"github.com/setly/teamdesk/internal/domain/roster"
	"github.com/setly/teamdesk/internal/infrastructure/kvstore"
	"github.com/setly/teamdesk/internal/infrastructure/kvstore/badgerkv"
	"github.com/setly/teamdesk/internal/infrastructure/kvstore/memory"
	"github.com/setly/teamdesk/internal/platform/id"
	"github.com/setly/teamdesk/internal/platform/logging"
	"github.com/setly/teamdesk/internal/store"
)

// App is a fully wired teamdesk core.
type App struct {
	Store       *store.Store
	Credentials *credentials.Directory

	kv     kvstore.Store
	logger *logging.Logger
}

// New opens the backend, hydrates the store (running the legacy
// migration when needed) and registers the credential directory as the
// roster observer so derived identities stay in sync from the start.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}

	kv, err := openBackend(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("open storage backend: %w", err)
	}

	reducer := store.NewReducer(id.NewPrefixedGenerator(), time.Now, cfg.SeedDemo)
	st := store.New(reducer, kv, logger)
	directory := credentials.New(kv, logger)

	st.OnRosterChange(func(ctx context.Context, r roster.Roster) {
		directory.Resync(ctx, r)
	})
	st.Hydrate(ctx)

	return &App{
		Store:       st,
		Credentials: directory,
		kv:          kv,
		logger:      logger,
	}, nil
}

func (a *App) Close() error {
	return a.kv.Close()
}

func openBackend(cfg config.Config, logger *logging.Logger) (kvstore.Store, error) {
	if cfg.InMemory {
		logger.Info("using in-memory storage, state will not persist")
		return memory.NewStore(), nil
	}

	logger.Info("opening database", "dir", cfg.DataDir)
	backendCfg := badgerkv.DefaultConfig(cfg.DataDir)
	backendCfg.Logger = logger
	return badgerkv.Open(backendCfg)
}

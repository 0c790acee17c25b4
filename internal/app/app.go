package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/marta/studiobook/internal/catalog"
	"github.com/marta/studiobook/internal/config"
	"github.com/marta/studiobook/internal/logger"
	"github.com/marta/studiobook/internal/service"
	"github.com/marta/studiobook/internal/store"
)

// App is the dependency injection container for all application components
type App struct {
	Config *config.Config
	Log    *zap.Logger

	Catalog *catalog.Catalog
	Store   *store.Gateway

	// Services
	Sessions service.SessionService
}

// New creates a new App instance, initializing all dependencies:
// config, logger, catalog, snapshot gateway and services. The startup
// snapshot is loaded from the configured path; a missing or unreadable
// file simply means an empty catalog.
func New() (*App, error) {
	cfg, err := config.LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(cfg)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config) (*App, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to create directories: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		log = logger.NewWithDefaults()
	}

	cat := catalog.New()
	gateway := store.NewGateway(log)
	cat.Restore(gateway.LoadAll(cfg.Storage.Path))

	return &App{
		Config:   cfg,
		Log:      log,
		Catalog:  cat,
		Store:    gateway,
		Sessions: service.NewSessionService(cat),
	}, nil
}

// SnapshotPath resolves an operator-supplied path, falling back to the
// configured default when it is blank.
func (a *App) SnapshotPath(path string) string {
	if path == "" {
		return a.Config.Storage.Path
	}
	return path
}

// Save persists the current catalog to path (blank means the default).
// The gateway absorbs failures; the return value only drives the
// operator message.
func (a *App) Save(path string) (string, bool) {
	p := a.SnapshotPath(path)
	return p, a.Store.SaveAll(p, a.Catalog.Snapshot())
}

// Load replaces the whole catalog with the snapshot at path (blank
// means the default). Loading never fails; at worst the catalog becomes
// empty.
func (a *App) Load(path string) string {
	p := a.SnapshotPath(path)
	a.Catalog.Restore(a.Store.LoadAll(p))
	return p
}

// Close flushes the logger.
func (a *App) Close() error {
	if a.Log != nil {
		_ = a.Log.Sync()
	}
	return nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	return a.Config.Save(config.DefaultConfigPath())
}

// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/paysurface/internal/cli/styles"
	"github.com/bnema/paysurface/internal/domain/build"
	"github.com/bnema/paysurface/internal/infrastructure/config"
	"github.com/bnema/paysurface/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Logger    zerolog.Logger

	// Context with logger
	ctx context.Context
}

// NewApp loads the configuration and builds the logger from it.
func NewApp() (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	return newApp(mgr)
}

// NewAppAt is NewApp with the config directory fixed to dir.
func NewAppAt(dir string) (*App, error) {
	mgr, err := config.NewManagerAt(dir)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	return newApp(mgr)
}

func newApp(mgr *config.Manager) (*App, error) {
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Logger:  logger,
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the app context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Close releases app resources.
func (a *App) Close() error {
	return nil
}

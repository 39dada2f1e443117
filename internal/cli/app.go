// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/cli/styles"
	"github.com/bnema/paneshell/internal/domain/build"
	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/paneshell/internal/logging"
)

// Options selects how the App is initialized.
type Options struct {
	// Verbose logs to stderr at the configured level. CLI commands stay quiet
	// so their output is not interleaved with log records.
	Verbose bool
	// ConfigDir overrides the XDG config directory.
	ConfigDir string
}

// App holds CLI dependencies.
type App struct {
	Config        *config.Config
	ConfigManager *config.Manager
	Theme         *styles.Theme
	BuildInfo     build.Info

	// Layouts opens the database on first use.
	Layouts *usecase.ManageLayoutsUseCase

	db        *sqlite.LazyDB
	ctx       context.Context
	logCloser io.Closer
}

// NewApp loads the configuration and wires the layout storage.
func NewApp(opts Options) (*App, error) {
	var mgrOpts []config.ManagerOption
	if opts.ConfigDir != "" {
		mgrOpts = append(mgrOpts, config.WithConfigDir(opts.ConfigDir))
	}
	mgr, err := config.NewManager(mgrOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	logger, logCloser, err := newLogger(cfg, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	db := sqlite.NewLazyDB(cfg.Database.Path)
	logger.Debug().Str("db_path", db.Path()).Msg("layout storage configured")

	return &App{
		Config:        cfg,
		ConfigManager: mgr,
		Theme:         styles.NewTheme(),
		Layouts:       usecase.NewManageLayoutsUseCase(sqlite.NewLayoutRepository(db)),
		db:            db,
		ctx:           ctx,
		logCloser:     logCloser,
	}, nil
}

func newLogger(cfg *config.Config, verbose bool) (zerolog.Logger, io.Closer, error) {
	logCfg := logging.DefaultConfig()
	logCfg.TimeFormat = "15:04:05"
	logCfg.Format = cfg.Logging.Format
	logCfg.FilePath = cfg.Logging.File
	if verbose {
		logCfg.Level = logging.ParseLevel(cfg.Logging.Level)
	} else {
		logCfg.Level = zerolog.ErrorLevel
	}
	return logging.New(logging.ApplyEnv(logCfg))
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	if a.db != nil {
		errs = append(errs, a.db.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

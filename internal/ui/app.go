package ui

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gio/v2"
	"github.com/diamondburned/gotk4/pkg/glib/v2"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/adapter"
	"github.com/bnema/paneshell/internal/ui/component"
	"github.com/bnema/paneshell/internal/ui/content"
	"github.com/bnema/paneshell/internal/ui/coordinator"
	"github.com/bnema/paneshell/internal/ui/input"
	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
	"github.com/bnema/paneshell/internal/ui/window"
)

// AppID is the application identifier for GTK.
const AppID = "com.github.bnema.paneshell"

// errShutdown is the cancel cause once GTK shuts the application down.
var errShutdown = errors.New("application shut down")

// App wraps the GTK application and owns the tabs of the main window.
type App struct {
	deps       *Dependencies
	gtkApp     *gtk.Application
	mainWindow *window.MainWindow

	scheduler port.Scheduler
	tabs      *coordinator.TabCoordinator
	keyboard  *input.KeyboardHandler
	detachKbd func()

	cancel context.CancelCauseFunc
}

// New creates an App with the given dependencies.
func New(deps *Dependencies) (*App, error) {
	if err := deps.Validate(); err != nil {
		return nil, err
	}
	return &App{deps: deps}, nil
}

// Run starts the GTK application and blocks until it exits. It returns the
// process exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	log := logging.FromContext(ctx)

	ctx, a.cancel = context.WithCancelCause(ctx)
	defer a.cancel(errShutdown)

	a.gtkApp = gtk.NewApplication(AppID, gio.ApplicationNonUnique)
	a.gtkApp.ConnectActivate(func() { a.onActivate(ctx) })
	a.gtkApp.ConnectShutdown(func() { a.onShutdown(ctx) })

	// Cancelling the caller's context (SIGINT, SIGTERM) quits the main loop.
	stop := context.AfterFunc(ctx, func() {
		glib.IdleAdd(func() { a.gtkApp.Quit() })
	})
	defer stop()

	log.Info().Msg("starting GTK main loop")
	return a.gtkApp.Run(args)
}

func (a *App) onActivate(ctx context.Context) {
	log := logging.FromContext(ctx)

	// A second activation (the user relaunching) only raises the window.
	if a.mainWindow != nil {
		a.mainWindow.Show()
		return
	}

	mainWindow, err := window.New(ctx, a.gtkApp)
	if err != nil {
		log.Error().Err(err).Msg("failed to create main window")
		a.gtkApp.Quit()
		return
	}
	a.mainWindow = mainWindow
	a.deps.Theme.ApplyToDisplay(ctx, mainWindow.Display())

	a.scheduler = adapter.NewGLibScheduler()
	tabs, view, err := a.buildTabs(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to build workspace")
		a.gtkApp.Quit()
		return
	}
	a.tabs = tabs
	mainWindow.SetContent(adapter.Unwrap(view.Widget()))

	if err := tabs.Start(ctx); err != nil {
		log.Error().Err(err).Msg("failed to start workspace")
	}

	a.initKeyboard(ctx)
	a.watchConfig(ctx)

	mainWindow.Show()
	log.Info().Int("panes", tabs.PaneCount()).Msg("application activated")
}

// buildTabs wires the content registry and the workspace settings into a tab
// coordinator. Every tab gets its own pane tree and workspace view.
func (a *App) buildTabs(ctx context.Context) (*coordinator.TabCoordinator, *component.TabView, error) {
	cfg := a.deps.Config
	factory := adapter.NewGtkWidgetFactory()

	registry := content.NewRegistry(factory, a.scheduler)
	if err := content.RegisterBuiltins(registry, content.BuiltinOptions{Shell: cfg.Terminal.Shell}); err != nil {
		return nil, nil, err
	}

	defaultType := entity.ContentType(cfg.Workspace.DefaultContentType)
	view := component.NewTabView(factory)

	workspace := coordinator.WorkspaceCoordinatorConfig{
		Pool:               layout.NewContainerPool(ctx, factory, cfg.Render.PoolCapacity),
		Registry:           registry,
		Scheduler:          a.scheduler,
		Layouts:            a.deps.Layouts,
		LayoutName:         cfg.Workspace.LayoutName,
		RestoreOnStart:     cfg.Workspace.RestoreOnStart,
		PersistDelay:       cfg.Workspace.PersistDelay,
		DefaultContentType: defaultType,
		RetryPolicy: lifecycle.RetryPolicy{
			MaxRetries:    cfg.Lifecycle.MaxRetries,
			BaseDelay:     cfg.Lifecycle.BaseDelay,
			BackoffFactor: cfg.Lifecycle.BackoffFactor,
		},
		FocusHistorySize:  cfg.Focus.HistorySize,
		MaxFocusCount:     cfg.Focus.MaxFocusCount,
		ResizeStepPercent: cfg.Workspace.ResizeStepPercent,
	}

	tabs := coordinator.NewTabCoordinator(ctx, coordinator.TabCoordinatorConfig{
		View:                 view,
		Factory:              factory,
		Workspace:            workspace,
		TreeOptions:          []entity.TreeOption{entity.WithDefaultRatio(cfg.Workspace.DefaultSplitRatio)},
		HideBarWhenSingleTab: cfg.Workspace.HideTabBarWhenSingleTab,
	})
	tabs.SetOnQuit(func() { a.gtkApp.Quit() })
	return tabs, view, nil
}

func (a *App) initKeyboard(ctx context.Context) {
	a.keyboard = input.NewKeyboardHandler(ctx, &a.deps.Config.Keybindings, a.scheduler)
	a.keyboard.SetOnAction(a.tabs.HandleAction)
	a.keyboard.SetOnModeChange(a.tabs.OnModeChange)
	a.detachKbd = adapter.AttachKeyboard(a.mainWindow.Window(), a.keyboard)
}

// watchConfig follows edits of the config file. Callbacks arrive on the
// watcher goroutine and are moved onto the main loop.
func (a *App) watchConfig(ctx context.Context) {
	mgr := a.deps.ConfigManager
	if mgr == nil {
		return
	}
	log := logging.FromContext(ctx)

	mgr.OnConfigChange(func(cfg *config.Config) {
		a.scheduler.Post(func() { a.applyConfig(ctx, cfg) })
	})
	if err := mgr.Watch(); err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
}

func (a *App) applyConfig(ctx context.Context, cfg *config.Config) {
	if ctx.Err() != nil {
		return
	}
	a.deps.Config = cfg
	a.keyboard.Reload(&cfg.Keybindings)
	a.deps.Theme.UpdateFromConfig(ctx, &cfg.Render, a.mainWindow.Display())
	logging.FromContext(ctx).Info().Msg("config reloaded")
}

func (a *App) onShutdown(ctx context.Context) {
	log := logging.FromContext(ctx)

	if a.detachKbd != nil {
		a.detachKbd()
		a.detachKbd = nil
	}
	if a.keyboard != nil {
		a.keyboard.ExitMode()
	}
	if a.tabs != nil {
		a.tabs.Shutdown(ctx)
	}
	a.cancel(errShutdown)
	log.Info().Msg("application shut down")
}

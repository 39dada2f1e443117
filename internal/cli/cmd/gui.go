package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui"
	"github.com/bnema/paneshell/internal/ui/theme"
)

var (
	guiLayout    string
	guiNoRestore bool
)

func init() {
	rootCmd.Flags().StringVarP(&guiLayout, "layout", "l", "", "layout name to restore and save to (overrides workspace.layout_name)")
	rootCmd.Flags().BoolVar(&guiNoRestore, "no-restore", false, "start from a single pane even if a saved layout exists")
}

func runGUI(cmd *cobra.Command, _ []string) error {
	// GTK must stay on the thread that initialized it.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	cfg := app.Config
	if cmd.Flags().Changed("layout") {
		cfg.Workspace.LayoutName = guiLayout
	}
	if guiNoRestore {
		cfg.Workspace.RestoreOnStart = false
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := logging.FromContext(ctx)
	log.Info().
		Str("version", app.BuildInfo.Version).
		Str("config", app.ConfigManager.ConfigFile()).
		Str("layout", cfg.Workspace.LayoutName).
		Msg("starting paneshell")

	gui, err := ui.New(&ui.Dependencies{
		Ctx:           ctx,
		Config:        cfg,
		ConfigManager: app.ConfigManager,
		Theme:         theme.NewManager(ctx, &cfg.Render),
		Layouts:       app.Layouts,
	})
	if err != nil {
		return fmt.Errorf("initialize ui: %w", err)
	}

	// GTK parses its own options; cobra already consumed ours.
	if code := gui.Run(ctx, os.Args[:1]); code != 0 {
		return fmt.Errorf("paneshell exited with status %d", code)
	}
	if ctx.Err() != nil {
		log.Info().Msg("stopped by signal")
	}
	return nil
}

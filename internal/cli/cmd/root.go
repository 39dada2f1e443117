// Package cmd provides Cobra CLI commands for paneshell.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/paneshell/internal/cli"
	"github.com/bnema/paneshell/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "paneshell",
		Short: "A keyboard-driven tiling pane workbench",
		Long: `paneshell - a workbench that splits one window into a tree of panes.

Each pane hosts a piece of content (welcome page, notes, terminal). Panes
are split, closed and focused from the keyboard, zellij style: press the
pane mode shortcut (ctrl+p by default) then a single key.

Run without a subcommand to open the workbench. The subcommands manage
saved layouts and the configuration without starting the GUI.`,
		SilenceUsage:      true,
		PersistentPreRunE: initApp,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
		RunE: runGUI,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "read config.toml from this directory instead of the XDG config home")
}

func initApp(cmd *cobra.Command, _ []string) error {
	// Skip initialization for commands that don't need app context
	switch cmd.Name() {
	case "help", "completion", "gen-docs", "version":
		return nil
	}

	var err error
	app, err = cli.NewApp(cli.Options{
		Verbose:   cmd == rootCmd,
		ConfigDir: configDir,
	})
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}
	app.BuildInfo = buildInfo
	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.Version
}

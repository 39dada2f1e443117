package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/cli/model"
	"github.com/bnema/paneshell/internal/cli/styles"
	"github.com/bnema/paneshell/internal/domain/entity"
)

var (
	layoutsJSON      bool
	layoutsShowFmt   string
	layoutsDeleteYes bool
)

var layoutsCmd = &cobra.Command{
	Use:   "layouts",
	Short: "Manage saved layouts",
	Long: `View and delete the pane layouts saved by the workbench.

A layout is saved under workspace.layout_name whenever the pane tree
changes, and with ctrl+s. Run without arguments to open the interactive
layout browser.`,
	RunE: runLayouts,
}

func init() {
	rootCmd.AddCommand(layoutsCmd)
}

func runLayouts(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	m := model.NewLayoutsModel(app.Ctx(), app.Theme, app.Layouts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// layouts list
var layoutsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List saved layouts",
	Long:    `List saved layouts, most recently saved first.`,
	RunE:    runLayoutsList,
}

func init() {
	layoutsCmd.AddCommand(layoutsListCmd)
	layoutsListCmd.Flags().BoolVar(&layoutsJSON, "json", false, "output as JSON")
}

func runLayoutsList(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	layouts, err := app.Layouts.List(app.Ctx())
	if err != nil {
		return fmt.Errorf("list layouts: %w", err)
	}

	out := cmd.OutOrStdout()
	if layoutsJSON {
		return writeJSON(out, layoutSummaries(layouts))
	}

	renderer := styles.NewLayoutsCLIRenderer(app.Theme)
	if len(layouts) == 0 {
		_, err = fmt.Fprintln(out, renderer.RenderEmptyList())
		return err
	}
	_, err = fmt.Fprintln(out, renderer.RenderList(layouts))
	return err
}

type layoutSummary struct {
	Name      string `json:"name"`
	LeafCount int    `json:"leaf_count"`
	SavedAt   string `json:"saved_at"`
}

func layoutSummaries(layouts []*entity.Layout) []layoutSummary {
	out := make([]layoutSummary, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, layoutSummary{
			Name:      l.Name,
			LeafCount: l.LeafCount,
			SavedAt:   l.SavedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}
	return out
}

// layouts show <name>
var layoutsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the pane tree of a saved layout",
	Long: `Print a saved layout.

Formats:
  tree  indented pane tree, the active pane marked with *
  json  the persisted layout state
  yaml  the persisted layout state as YAML`,
	Args: cobra.ExactArgs(1),
	RunE: runLayoutsShow,
}

func init() {
	layoutsCmd.AddCommand(layoutsShowCmd)
	layoutsShowCmd.Flags().StringVarP(&layoutsShowFmt, "format", "f", "tree", "output format: tree, json, yaml")
}

func runLayoutsShow(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	layout, err := app.Layouts.Load(app.Ctx(), args[0])
	if err != nil {
		if errors.Is(err, usecase.ErrLayoutNotFound) {
			return fmt.Errorf("no layout named %q", args[0])
		}
		return fmt.Errorf("load layout: %w", err)
	}

	out := cmd.OutOrStdout()
	switch layoutsShowFmt {
	case "tree":
		_, err = fmt.Fprintln(out, styles.NewLayoutsCLIRenderer(app.Theme).RenderTree(layout))
		return err
	case "json":
		return writeJSON(out, layout.State)
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(layout.State); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported format %q (use: tree, json, yaml)", layoutsShowFmt)
	}
}

// layouts delete <name>
var layoutsDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a saved layout",
	Args:    cobra.ExactArgs(1),
	RunE:    runLayoutsDelete,
}

func init() {
	layoutsCmd.AddCommand(layoutsDeleteCmd)
	layoutsDeleteCmd.Flags().BoolVarP(&layoutsDeleteYes, "yes", "y", false, "skip confirmation prompt")
}

func runLayoutsDelete(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	name := args[0]
	renderer := styles.NewLayoutsCLIRenderer(app.Theme)

	if !layoutsDeleteYes {
		if !term.IsTerminal(os.Stdin.Fd()) {
			return fmt.Errorf("refusing to delete %q without --yes on a non-interactive terminal", name)
		}
		ok, err := confirm(app.Theme, fmt.Sprintf("Delete layout %q?", name))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := app.Layouts.Delete(app.Ctx(), name); err != nil {
		if errors.Is(err, usecase.ErrLayoutNotFound) {
			return fmt.Errorf("no layout named %q", name)
		}
		return fmt.Errorf("delete layout: %w", err)
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderDeleted(name))
	return err
}

// confirmProgram runs a ConfirmModel as a standalone program.
type confirmProgram struct {
	styles.ConfirmModel
}

func (p confirmProgram) Init() tea.Cmd { return nil }

func (p confirmProgram) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		p.Canceled = true
		return p, tea.Quit
	}
	var cmd tea.Cmd
	p.ConfirmModel, cmd = p.ConfirmModel.Update(msg)
	if p.Done() {
		return p, tea.Quit
	}
	return p, cmd
}

func confirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(confirmProgram{styles.NewConfirm(theme, message)}).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation prompt: %w", err)
	}
	return final.(confirmProgram).Result(), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

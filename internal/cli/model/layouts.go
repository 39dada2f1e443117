// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/paneshell/internal/cli/styles"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// LayoutStore is the part of the layout use case the browser needs.
type LayoutStore interface {
	List(ctx context.Context) ([]*entity.Layout, error)
	Delete(ctx context.Context, name string) error
}

// LayoutsModel is the interactive browser of saved layouts.
type LayoutsModel struct {
	help     help.Model
	keys     layoutsKeyMap
	confirm  *styles.ConfirmModel
	renderer *styles.LayoutsCLIRenderer

	layouts       []*entity.Layout
	selectedIdx   int
	expandedIdx   int // -1 means none expanded
	width         int
	height        int
	err           error
	statusMessage string

	ctx   context.Context
	store LayoutStore
	theme *styles.Theme
}

type layoutsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func (k layoutsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Delete, k.Quit}
}

func (k layoutsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultLayoutsKeyMap() layoutsKeyMap {
	return layoutsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "show tree"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewLayoutsModel creates the browser. Layouts are loaded by Init.
func NewLayoutsModel(ctx context.Context, theme *styles.Theme, store LayoutStore) LayoutsModel {
	return LayoutsModel{
		help:        help.New(),
		keys:        defaultLayoutsKeyMap(),
		renderer:    styles.NewLayoutsCLIRenderer(theme),
		expandedIdx: -1,
		width:       80,
		height:      24,
		ctx:         ctx,
		store:       store,
		theme:       theme,
	}
}

type layoutsLoadedMsg struct {
	layouts []*entity.Layout
	err     error
}

type layoutDeletedMsg struct {
	name string
	err  error
}

// Init implements tea.Model.
func (m LayoutsModel) Init() tea.Cmd {
	return m.loadLayouts
}

func (m LayoutsModel) loadLayouts() tea.Msg {
	if m.store == nil {
		return layoutsLoadedMsg{err: fmt.Errorf("layout storage not available")}
	}
	layouts, err := m.store.List(m.ctx)
	if err != nil {
		logging.FromContext(m.ctx).Error().Err(err).Msg("failed to load layouts")
	}
	return layoutsLoadedMsg{layouts: layouts, err: err}
}

func (m LayoutsModel) deleteLayout(name string) tea.Cmd {
	return func() tea.Msg {
		return layoutDeletedMsg{name: name, err: m.store.Delete(m.ctx, name)}
	}
}

// Update implements tea.Model.
func (m LayoutsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		return m.handleConfirmModal(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case layoutsLoadedMsg:
		m.err = msg.err
		if msg.err == nil {
			m.layouts = msg.layouts
			m.clampSelection()
		}
		return m, nil

	case layoutDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.statusMessage = fmt.Sprintf("Layout %s deleted", msg.name)
		}
		m.expandedIdx = -1
		return m, m.loadLayouts
	}

	return m, nil
}

func (m LayoutsModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !confirm.Done() {
		return m, cmd
	}
	if confirm.Result() && m.selectedIdx < len(m.layouts) {
		cmd = m.deleteLayout(m.layouts[m.selectedIdx].Name)
	}
	m.confirm = nil
	return m, cmd
}

func (m LayoutsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.layouts)-1 {
			m.selectedIdx++
		}

	case key.Matches(msg, m.keys.Expand):
		if m.expandedIdx == m.selectedIdx {
			m.expandedIdx = -1
		} else {
			m.expandedIdx = m.selectedIdx
		}

	case key.Matches(msg, m.keys.Delete):
		if m.selectedIdx < len(m.layouts) {
			c := styles.NewConfirm(m.theme, fmt.Sprintf("Delete layout %q?", m.layouts[m.selectedIdx].Name))
			m.confirm = &c
		}

	case key.Matches(msg, m.keys.Refresh):
		m.statusMessage = ""
		return m, m.loadLayouts

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m *LayoutsModel) clampSelection() {
	if m.selectedIdx >= len(m.layouts) {
		m.selectedIdx = max(len(m.layouts)-1, 0)
	}
	if m.expandedIdx >= len(m.layouts) {
		m.expandedIdx = -1
	}
}

// View implements tea.Model.
func (m LayoutsModel) View() string {
	if m.confirm != nil {
		return m.confirm.View()
	}

	t := m.theme
	var b strings.Builder

	b.WriteString(t.Highlight.Render(styles.IconLayout))
	b.WriteString(t.Title.MarginLeft(1).Render("Layouts"))
	b.WriteString(t.Subtle.Render(fmt.Sprintf("  %d saved", len(m.layouts))))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(m.renderer.RenderError(m.err))
		b.WriteString("\n\n")
	}
	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.layouts) == 0 {
		b.WriteString(t.Subtle.Render("  No saved layouts found."))
		b.WriteString("\n")
	}
	for i, l := range m.layouts {
		row := m.renderer.RenderRow(l)
		if i == m.selectedIdx {
			b.WriteString(t.ListItemSelected.Render(styles.IconCursor + " " + row))
		} else {
			b.WriteString(t.ListItem.Render("  " + row))
		}
		b.WriteString("\n")
		if i == m.expandedIdx {
			b.WriteString(indent(m.renderer.RenderTree(l), "      "))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

var _ tea.Model = LayoutsModel{}

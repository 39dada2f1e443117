package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no dialog. "No" is preselected.
type ConfirmModel struct {
	Message   string
	Yes       bool
	Confirmed bool
	Canceled  bool

	keys  confirmKeys
	help  help.Model
	theme *Theme
}

type confirmKeys struct {
	Yes     key.Binding
	No      key.Binding
	Toggle  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

func (k confirmKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Confirm, k.Cancel}
}

func (k confirmKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Toggle}}
}

// NewConfirm creates a confirmation dialog asking message.
func NewConfirm(theme *Theme, message string) ConfirmModel {
	h := help.New()
	h.Styles.ShortKey = theme.Highlight
	h.Styles.ShortDesc = theme.Subtle
	h.Styles.ShortSeparator = theme.Subtle

	return ConfirmModel{
		Message: message,
		keys: confirmKeys{
			Yes:     key.NewBinding(key.WithKeys("y", "right", "l"), key.WithHelp("y", "yes")),
			No:      key.NewBinding(key.WithKeys("n", "left", "h"), key.WithHelp("n", "no")),
			Toggle:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle")),
			Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
			Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		},
		help:  h,
		theme: theme,
	}
}

// Update handles one message. It returns the concrete type so parents can
// embed the dialog without a type assertion.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || m.Done() {
		return m, nil
	}
	switch {
	case key.Matches(k, m.keys.Yes):
		m.Yes = true
	case key.Matches(k, m.keys.No):
		m.Yes = false
	case key.Matches(k, m.keys.Toggle):
		m.Yes = !m.Yes
	case key.Matches(k, m.keys.Confirm):
		m.Confirmed = true
	case key.Matches(k, m.keys.Cancel):
		m.Canceled = true
	}
	return m, nil
}

// View renders the dialog.
func (m ConfirmModel) View() string {
	t := m.theme
	button := func(label string, selected bool) string {
		if selected {
			return t.ActiveButton.Render(label)
		}
		return t.InactiveButton.Render(label)
	}

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center,
		t.Title.Render(m.Message),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center, button("No", !m.Yes), "  ", button("Yes", m.Yes)),
		"",
		m.help.View(m.keys),
	))
}

// Done reports whether the user confirmed or canceled.
func (m ConfirmModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Result reports whether the user confirmed "Yes".
func (m ConfirmModel) Result() bool {
	return m.Confirmed && m.Yes
}

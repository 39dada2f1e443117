// Package styles provides reusable lipgloss-based TUI components.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors is the terminal palette. It mirrors the workbench's dark palette so
// the CLI and the window look alike.
type Colors struct {
	Background     lipgloss.Color
	Surface        lipgloss.Color
	SurfaceVariant lipgloss.Color
	Text           lipgloss.Color
	Muted          lipgloss.Color
	Accent         lipgloss.Color
	Border         lipgloss.Color
	Error          lipgloss.Color
}

// DefaultColors returns the dark palette.
func DefaultColors() Colors {
	return Colors{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Error:          "#ef4444",
	}
}

// Theme holds the styles every renderer and model draws with.
type Theme struct {
	Colors

	Title        lipgloss.Style
	Normal       lipgloss.Style
	Subtle       lipgloss.Style
	Highlight    lipgloss.Style
	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style

	ActiveButton   lipgloss.Style
	InactiveButton lipgloss.Style

	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style

	BadgeMuted lipgloss.Style
	Box        lipgloss.Style
}

// NewTheme returns the theme built from DefaultColors. The terminal theme
// has no user settings.
func NewTheme() *Theme {
	return NewThemeWithColors(DefaultColors())
}

// NewThemeWithColors builds every style from c.
func NewThemeWithColors(c Colors) *Theme {
	fg := func(color lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(color) }

	return &Theme{
		Colors: c,

		Title:        fg(c.Text).Bold(true),
		Normal:       fg(c.Text),
		Subtle:       fg(c.Muted),
		Highlight:    fg(c.Accent).Bold(true),
		ErrorStyle:   fg(c.Error),
		SuccessStyle: fg(c.Accent),

		ActiveButton:   fg(c.Background).Background(c.Accent).Padding(0, 2).Bold(true),
		InactiveButton: fg(c.Muted).Background(c.Surface).Padding(0, 2),

		ListItem:         fg(c.Text).PaddingLeft(2),
		ListItemSelected: fg(c.Accent).Background(c.SurfaceVariant).PaddingLeft(2).Bold(true),

		BadgeMuted: fg(c.Text).Background(c.SurfaceVariant).Padding(0, 1),
		Box:        lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(c.Border).Padding(1, 2),
	}
}

// Package theme generates the GTK CSS of the pane shell.
package theme

import (
	"fmt"
	"regexp"
	"strings"
)

// Palette holds semantic color tokens.
type Palette struct {
	Background     string
	Surface        string
	SurfaceVariant string
	Text           string
	Muted          string
	Accent         string // active pane border
	Border         string
	Warning        string // active pane while in pane mode
	Destructive    string // failed panes
}

// DefaultDarkPalette returns the dark palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Warning:        "#fbbf24",
		Destructive:    "#ef4444",
	}
}

// DefaultLightPalette returns the light palette.
func DefaultLightPalette() Palette {
	return Palette{
		Background:     "#fafafa",
		Surface:        "#ffffff",
		SurfaceVariant: "#f0f0f0",
		Text:           "#1a1a1a",
		Muted:          "#666666",
		Accent:         "#22c55e",
		Border:         "#dddddd",
		Warning:        "#f59e0b",
		Destructive:    "#dc2626",
	}
}

var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// Validate checks every color is a hex value.
func (p Palette) Validate() error {
	for _, t := range p.tokens() {
		if !hexColorRegex.MatchString(t.value) {
			return fmt.Errorf("%s: invalid hex color %q", t.name, t.value)
		}
	}
	return nil
}

type token struct{ name, value string }

func (p Palette) tokens() []token {
	return []token{
		{"bg", p.Background},
		{"surface", p.Surface},
		{"surface_variant", p.SurfaceVariant},
		{"text", p.Text},
		{"muted", p.Muted},
		{"accent", p.Accent},
		{"border", p.Border},
		{"warning", p.Warning},
		{"destructive", p.Destructive},
	}
}

// ToCSSVars renders the palette as GTK @define-color declarations.
func (p Palette) ToCSSVars() string {
	var sb strings.Builder
	for _, t := range p.tokens() {
		fmt.Fprintf(&sb, "@define-color %s %s;\n", t.name, t.value)
	}
	return sb.String()
}

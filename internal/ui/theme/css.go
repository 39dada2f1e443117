package theme

import (
	"fmt"
	"strings"
)

// GenerateCSS returns the stylesheet for p at the given UI scale.
func GenerateCSS(p Palette, scale float64) string {
	if scale <= 0 {
		scale = 1.0
	}

	var sb strings.Builder
	sb.WriteString("/* Theme colors */\n")
	sb.WriteString(p.ToCSSVars())
	sb.WriteString("\n")

	if scale != 1.0 {
		sb.WriteString(generateScalingCSS(scale))
		sb.WriteString("\n")
	}

	sb.WriteString(tabCSS)
	sb.WriteString("\n")
	sb.WriteString(paneCSS)
	sb.WriteString("\n")
	sb.WriteString(contentCSS)
	return sb.String()
}

// generateScalingCSS scales the base font size; paddings are in em and
// follow it.
func generateScalingCSS(scale float64) string {
	return fmt.Sprintf(`/* UI scaling (%.0f%%) */
window {
  font-size: %dpx;
}
`, scale*100, int(16*scale))
}

const tabCSS = `/* Tabs */
.tab-bar {
  background-color: @surface;
  border-bottom: 0.0625em solid @border;
}

.tab {
  color: @muted;
  padding: 0.25em 0.75em;
}

.tab.tab-active {
  color: @text;
  border-bottom: 0.125em solid @accent;
}
`

const paneCSS = `/* Panes */
.workspace {
  background-color: @bg;
}

.pane-border {
  border: 0.0625em solid @border;
  border-radius: 0.25em;
}

.pane-active {
  border-color: @accent;
}

.workspace.pane-mode .pane-active {
  border-width: 0.125em;
  border-color: @warning;
}

.pane-error .pane-border {
  border-color: @destructive;
}

.pane-placeholder {
  color: @muted;
}

.pane-error-label {
  color: @destructive;
  padding: 0.5em;
}

paned > separator {
  background-color: @border;
  min-width: 0.0625em;
  min-height: 0.0625em;
}
`

const contentCSS = `/* Content */
.welcome {
  padding: 2em;
}

.welcome-title {
  font-size: 1.5em;
  font-weight: bold;
  color: @text;
}

.welcome-hint {
  color: @muted;
}

.notes textview,
.notes text {
  background-color: @surface;
  color: @text;
  padding: 0.5em;
}

.terminal textview,
.terminal text {
  background-color: @bg;
  color: @text;
  font-family: monospace;
}

.terminal entry {
  font-family: monospace;
  background-color: @surface_variant;
}
`

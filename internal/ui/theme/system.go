package theme

import (
	"os"
	"strings"

	"github.com/diamondburned/gotk4/pkg/gtk/v4"
)

// DetectSystemDarkMode reports whether the desktop prefers a dark theme. It
// checks GTK_THEME first, then the GTK settings, and defaults to dark.
func DetectSystemDarkMode() bool {
	if gtkTheme := os.Getenv("GTK_THEME"); gtkTheme != "" {
		return strings.Contains(strings.ToLower(gtkTheme), "dark")
	}

	settings := gtk.SettingsGetDefault()
	if settings == nil {
		return true
	}
	if v, ok := settings.ObjectProperty("gtk-application-prefer-dark-theme").(bool); ok && v {
		return true
	}
	if name, ok := settings.ObjectProperty("gtk-theme-name").(string); ok {
		return strings.Contains(strings.ToLower(name), "dark")
	}
	return true
}

// ResolveColorScheme maps a configured scheme to a dark mode preference.
// "default" asks detect.
func ResolveColorScheme(scheme string, detect func() bool) bool {
	switch strings.ToLower(scheme) {
	case "prefer-dark", "dark":
		return true
	case "prefer-light", "light":
		return false
	default:
		if detect == nil {
			return true
		}
		return detect()
	}
}

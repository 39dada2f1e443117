package theme

import (
	"context"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/logging"
)

// Manager holds the theme state and the CSS provider installed on the
// display.
type Manager struct {
	scheme       string
	prefersDark  bool
	lightPalette Palette
	darkPalette  Palette
	uiScale      float64
	detect       func() bool
	cssProvider  *gtk.CSSProvider
}

// Option configures a Manager.
type Option func(*Manager)

// WithSystemDetector replaces DetectSystemDarkMode.
func WithSystemDetector(detect func() bool) Option {
	return func(m *Manager) { m.detect = detect }
}

// NewManager resolves the color scheme of cfg. A nil cfg follows the system.
func NewManager(ctx context.Context, cfg *config.RenderConfig, opts ...Option) *Manager {
	m := &Manager{
		scheme:       "default",
		lightPalette: DefaultLightPalette(),
		darkPalette:  DefaultDarkPalette(),
		uiScale:      1.0,
		detect:       DetectSystemDarkMode,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.apply(cfg)

	logging.FromContext(ctx).Debug().
		Str("scheme", m.scheme).
		Bool("prefers_dark", m.prefersDark).
		Float64("ui_scale", m.uiScale).
		Msg("theme manager initialized")
	return m
}

func (m *Manager) apply(cfg *config.RenderConfig) {
	if cfg != nil {
		if cfg.ColorScheme != "" {
			m.scheme = cfg.ColorScheme
		}
		if cfg.UIScale > 0 {
			m.uiScale = cfg.UIScale
		}
	}
	m.prefersDark = ResolveColorScheme(m.scheme, m.detect)
}

// PrefersDark reports whether the dark palette is active.
func (m *Manager) PrefersDark() bool {
	return m.prefersDark
}

// CurrentPalette returns the active palette.
func (m *Manager) CurrentPalette() Palette {
	if m.prefersDark {
		return m.darkPalette
	}
	return m.lightPalette
}

// CSS returns the stylesheet of the active palette.
func (m *Manager) CSS() string {
	return GenerateCSS(m.CurrentPalette(), m.uiScale)
}

// ApplyToDisplay installs or refreshes the stylesheet on display.
func (m *Manager) ApplyToDisplay(ctx context.Context, display *gdk.Display) {
	log := logging.FromContext(ctx)

	if display == nil {
		log.Warn().Msg("cannot apply theme: display is nil")
		return
	}

	if m.cssProvider == nil {
		m.cssProvider = gtk.NewCSSProvider()
		gtk.StyleContextAddProviderForDisplay(display, m.cssProvider, gtk.STYLE_PROVIDER_PRIORITY_APPLICATION)
	}
	m.cssProvider.LoadFromString(m.CSS())

	log.Debug().Bool("dark_mode", m.prefersDark).Msg("theme CSS applied to display")
}

// UpdateFromConfig re-resolves the theme after a config reload and
// re-applies it when display is set.
func (m *Manager) UpdateFromConfig(ctx context.Context, cfg *config.RenderConfig, display *gdk.Display) {
	if cfg == nil {
		return
	}
	m.apply(cfg)

	logging.FromContext(ctx).Info().
		Str("scheme", m.scheme).
		Bool("prefers_dark", m.prefersDark).
		Float64("ui_scale", m.uiScale).
		Msg("theme updated from config")

	if display != nil {
		m.ApplyToDisplay(ctx, display)
	}
}

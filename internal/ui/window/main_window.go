// Package window provides the GTK application window of the shell.
package window

import (
	"context"
	"errors"

	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"
	"github.com/rs/zerolog"

	"github.com/bnema/paneshell/internal/logging"
)

const (
	defaultWidth  = 1280
	defaultHeight = 800
	windowTitle   = "paneshell"
	maxTitleLen   = 255
)

// ErrWindowCreationFailed is returned when GTK refuses to create the window.
var ErrWindowCreationFailed = errors.New("failed to create application window")

// MainWindow is the top-level window hosting one workspace.
type MainWindow struct {
	window      *gtk.ApplicationWindow
	contentArea *gtk.Box
	content     gtk.Widgetter

	logger zerolog.Logger
}

// New creates the window for app. The window is not shown until Show.
func New(ctx context.Context, app *gtk.Application) (*MainWindow, error) {
	mw := &MainWindow{
		logger: logging.Component(ctx, "main-window"),
	}

	mw.window = gtk.NewApplicationWindow(app)
	if mw.window == nil {
		return nil, ErrWindowCreationFailed
	}
	mw.window.SetTitle(windowTitle)
	mw.window.SetDefaultSize(defaultWidth, defaultHeight)

	mw.contentArea = gtk.NewBox(gtk.OrientationVertical, 0)
	mw.contentArea.SetHExpand(true)
	mw.contentArea.SetVExpand(true)
	mw.contentArea.AddCSSClass("content-area")
	mw.window.SetChild(mw.contentArea)

	return mw, nil
}

// SetContent replaces the widget shown in the window.
func (mw *MainWindow) SetContent(widget gtk.Widgetter) {
	if mw.content != nil {
		mw.contentArea.Remove(mw.content)
		mw.content = nil
	}
	if widget != nil {
		gtk.BaseWidget(widget).SetVisible(true)
		mw.contentArea.Append(widget)
		mw.content = widget
	}
}

// SetTitle updates the window title, truncated to a displayable length.
func (mw *MainWindow) SetTitle(title string) {
	if len(title) > maxTitleLen {
		title = title[:maxTitleLen-3] + "..."
	}
	mw.window.SetTitle(title)
}

// OnCloseRequest runs fn before the window closes. Returning true from fn
// keeps the window open.
func (mw *MainWindow) OnCloseRequest(fn func() bool) {
	mw.window.ConnectCloseRequest(fn)
}

// Window returns the underlying GTK window.
func (mw *MainWindow) Window() *gtk.ApplicationWindow {
	return mw.window
}

// Display returns the display the window lives on.
func (mw *MainWindow) Display() *gdk.Display {
	return mw.window.Display()
}

// Show presents the window.
func (mw *MainWindow) Show() {
	mw.window.Present()
	mw.logger.Debug().Msg("main window presented")
}

// Close closes the window.
func (mw *MainWindow) Close() {
	mw.window.Close()
}

package content

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"

	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
)

const (
	defaultShell   = "/bin/sh"
	terminalRows   = 24
	terminalCols   = 80
	terminalMargin = 4
)

// ResolveShell picks the shell for terminal panes: the configured one, then
// $SHELL, then /bin/sh.
func ResolveShell(configured string) string {
	if configured != "" {
		return configured
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	return defaultShell
}

// Terminal is a line-mode shell: output is shown as plain text and input is
// sent one line at a time.
type Terminal struct {
	*Emitter

	argv      []string
	scheduler port.Scheduler
	logger    zerolog.Logger

	box    layout.BoxWidget
	output layout.TextWidget
	input  layout.EntryWidget

	session    *Session
	activateID uint32
	closed     bool
}

func terminalConstructor(shell string) Constructor {
	return func(ctx context.Context, p Params) (Widget, error) {
		return NewTerminal(ctx, p, []string{ResolveShell(shell)}), nil
	}
}

// NewTerminal builds a terminal pane running argv. The process starts in
// Start.
func NewTerminal(ctx context.Context, p Params, argv []string) *Terminal {
	box := p.Widgets.NewBox(layout.OrientationVertical, terminalMargin)
	box.SetHexpand(true)
	box.SetVexpand(true)
	box.AddCssClass("terminal")

	output := p.Widgets.NewTextView()
	output.SetEditable(false)
	output.SetMonospace(true)
	output.SetHexpand(true)
	output.SetVexpand(true)

	input := p.Widgets.NewEntry()
	input.SetPlaceholderText("command")

	box.Append(output)
	box.Append(input)

	t := &Terminal{
		Emitter:   NewEmitter(p.LeafID),
		argv:      argv,
		scheduler: p.Scheduler,
		logger:    logging.Component(ctx, "terminal").With().Str("pane_id", string(p.LeafID)).Logger(),
		box:       box,
		output:    output,
		input:     input,
	}
	t.activateID = input.ConnectActivate(t.submit)
	return t
}

func (t *Terminal) View() layout.Widget { return t.box }

// Start spawns the process. A failure to spawn is reported so the lifecycle
// machine can retry.
func (t *Terminal) Start(r lifecycle.Reporter) {
	if t.session != nil {
		_ = t.session.Close()
		t.session = nil
	}

	// started is read only by posted callbacks, which run after Start returns.
	var started *Session
	session, err := StartSession(t.argv, terminalRows, terminalCols, SessionCallbacks{
		Output: func(chunk []byte) {
			text := ansi.Strip(string(chunk))
			t.scheduler.Post(func() {
				if !t.closed {
					t.output.AppendText(text)
				}
			})
		},
		Exit: func(err error) {
			t.scheduler.Post(func() { t.exited(started, err) })
		},
	})
	if err != nil {
		r.Fail(err)
		return
	}
	started = session
	t.session = session
	t.logger.Debug().Int("pid", session.Pid()).Strs("argv", t.argv).Msg("terminal started")
	r.Ready()
}

func (t *Terminal) submit() {
	line := t.input.GetText()
	t.input.SetText("")
	if t.session == nil {
		return
	}
	if err := t.session.Write([]byte(line + "\n")); err != nil {
		t.logger.Debug().Err(err).Msg("terminal write failed")
	}
}

func (t *Terminal) exited(s *Session, err error) {
	if t.closed || s == nil || s != t.session {
		return
	}
	t.session = nil
	status := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		status = exitErr.ExitCode()
	}
	t.output.AppendText(fmt.Sprintf("\n[process exited with status %d]\n", status))
	t.logger.Debug().Int("status", status).Msg("terminal process exited")
	t.RequestAction(ActionClose, "")
}

func (t *Terminal) Focus() bool { return t.input.GrabFocus() }

// Suspend and Resume do nothing: the shell keeps running while its pane is
// hidden, and the type is registered as not suspendable.
func (t *Terminal) Suspend() {}
func (t *Terminal) Resume()  {}

func (t *Terminal) Cleanup() {
	t.closed = true
	if t.activateID != 0 {
		t.input.Disconnect(t.activateID)
		t.activateID = 0
	}
	if t.session != nil {
		_ = t.session.Close()
		t.session = nil
	}
}

// Running reports whether the process is alive.
func (t *Terminal) Running() bool { return t.session != nil }

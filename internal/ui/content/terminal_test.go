package content_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/ui/content"
	"github.com/bnema/paneshell/internal/ui/layout/layouttest"
	"github.com/bnema/paneshell/internal/ui/mainloop"
)

type terminalFixture struct {
	sched    *mainloop.ManualScheduler
	factory  *layouttest.Factory
	term     *content.Terminal
	requests []content.Request
}

func newTerminal(t *testing.T, argv ...string) *terminalFixture {
	t.Helper()
	f := &terminalFixture{sched: mainloop.NewManualScheduler(), factory: layouttest.NewFactory()}
	f.term = content.NewTerminal(context.Background(), content.Params{
		LeafID:    "term",
		Widgets:   f.factory,
		Scheduler: f.sched,
	}, argv)
	f.term.OnRequest(func(r content.Request) { f.requests = append(f.requests, r) })
	t.Cleanup(f.term.Cleanup)
	return f
}

func (f *terminalFixture) output() string { return f.factory.Texts[0].GetText() }

func TestResolveShell(t *testing.T) {
	t.Setenv("SHELL", "/usr/bin/fish")
	assert.Equal(t, "/bin/bash", content.ResolveShell("/bin/bash"))
	assert.Equal(t, "/usr/bin/fish", content.ResolveShell(""))

	t.Setenv("SHELL", "")
	assert.Equal(t, "/bin/sh", content.ResolveShell(""))
}

func TestTerminal_OutputAndExitRequestClose(t *testing.T) {
	f := newTerminal(t, "/bin/sh", "-c", `printf '\033[1mready\033[0m'`)
	rep := &recordingReporter{}

	f.term.Start(rep)

	require.Equal(t, 1, rep.ready)
	require.Eventually(t, func() bool {
		f.sched.Tick()
		return len(f.requests) > 0
	}, 5*time.Second, 10*time.Millisecond)
	assert.Contains(t, f.output(), "ready")
	assert.NotContains(t, f.output(), "\033[", "escape sequences are stripped")
	assert.Contains(t, f.output(), "[process exited with status 0]")
	assert.Equal(t, content.ActionClose, f.requests[0].Action)
	assert.False(t, f.term.Running())
}

func TestTerminal_SpawnFailureIsReported(t *testing.T) {
	f := newTerminal(t, "/nonexistent/shell")
	rep := &recordingReporter{}

	f.term.Start(rep)

	assert.Equal(t, 0, rep.ready)
	require.Len(t, rep.errs, 1)
	assert.False(t, f.term.Running())
}

func TestTerminal_InputIsSentLineByLine(t *testing.T) {
	f := newTerminal(t, "/bin/sh", "-c", "read line; echo got:$line")
	f.term.Start(&recordingReporter{})
	require.Len(t, f.factory.Entries, 1)

	f.factory.Entries[0].Submit("ping")

	assert.Empty(t, f.factory.Entries[0].GetText())
	require.Eventually(t, func() bool {
		f.sched.Tick()
		return strings.Contains(f.output(), "got:ping")
	}, 5*time.Second, 10*time.Millisecond)
}

func TestTerminal_CleanupStopsProcess(t *testing.T) {
	f := newTerminal(t, "/bin/sh", "-c", "sleep 30")
	f.term.Start(&recordingReporter{})
	require.True(t, f.term.Running())

	f.term.Cleanup()

	assert.False(t, f.term.Running())
	assert.Equal(t, 0, f.factory.Entries[0].HandlerCount())
	f.sched.Drain(10)
	assert.Empty(t, f.requests, "no close request after cleanup")
}

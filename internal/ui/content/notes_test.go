package content_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/ui/content"
	"github.com/bnema/paneshell/internal/ui/layout/layouttest"
)

func newNotes(t *testing.T, state map[string]any) (*content.Notes, *layouttest.Text) {
	t.Helper()
	factory := layouttest.NewFactory()
	w, err := content.NewNotes(context.Background(), content.Params{LeafID: "n1", State: state, Widgets: factory})
	require.NoError(t, err)
	require.Len(t, factory.Texts, 1)
	return w.(*content.Notes), factory.Texts[0]
}

func TestNotes_RestoresSavedText(t *testing.T) {
	notes, text := newNotes(t, map[string]any{"text": "todo: ship"})

	assert.Equal(t, map[string]any{"text": "todo: ship"}, notes.SaveState(), "state survives before start")

	rep := &recordingReporter{}
	notes.Start(rep)

	assert.Equal(t, 1, rep.ready)
	assert.Equal(t, "todo: ship", text.GetText())
	assert.True(t, text.Editable)
}

func TestNotes_EditsRequestStateSave(t *testing.T) {
	// Arrange
	notes, text := newNotes(t, nil)
	notes.Start(&recordingReporter{})
	var requests []content.Request
	notes.OnRequest(func(r content.Request) { requests = append(requests, r) })

	// Act
	text.Type("hello")

	// Assert
	require.Len(t, requests, 1)
	assert.Equal(t, content.ActionStateChanged, requests[0].Action)
	assert.Equal(t, map[string]any{"text": "hello"}, notes.SaveState())
}

func TestNotes_RetryDoesNotDuplicateHandlers(t *testing.T) {
	notes, text := newNotes(t, nil)

	notes.Start(&recordingReporter{})
	notes.Start(&recordingReporter{})

	assert.Equal(t, 1, text.HandlerCount())
	notes.Cleanup()
	assert.Equal(t, 0, text.HandlerCount())
}

func TestNotes_SuspendMakesReadOnly(t *testing.T) {
	notes, text := newNotes(t, nil)
	notes.Start(&recordingReporter{})

	notes.Suspend()
	assert.False(t, text.Editable)
	notes.Resume()
	assert.True(t, text.Editable)
}

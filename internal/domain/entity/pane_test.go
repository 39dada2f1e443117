package entity

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const editor ContentType = "editor"

func newTestTree(t *testing.T) *PaneTree {
	t.Helper()
	return NewPaneTreeWithRoot("root", editor, WithIDGenerator(NewSequentialIDGenerator("n")))
}

// threeLeafTree builds split(a, split(b, c)).
func threeLeafTree(t *testing.T) *PaneTree {
	t.Helper()
	tree := newTestTree(t)
	require.NoError(t, tree.SetState(&TreeState{
		ActiveLeafID: "a",
		Root: &NodeState{
			Type: NodeTypeSplit, ID: "s1", Orientation: "horizontal", Ratio: 0.5,
			First: &NodeState{Type: NodeTypeLeaf, ID: "a", ContentType: editor},
			Second: &NodeState{
				Type: NodeTypeSplit, ID: "s2", Orientation: "vertical", Ratio: 0.3,
				First:  &NodeState{Type: NodeTypeLeaf, ID: "b", ContentType: editor},
				Second: &NodeState{Type: NodeTypeLeaf, ID: "c", ContentType: "terminal"},
			},
		},
	}))
	return tree
}

func TestPaneTree_SplitKeepsActiveLeaf(t *testing.T) {
	tree := newTestTree(t)

	newID, err := tree.Split("root", OrientationVertical)

	require.NoError(t, err)
	assert.Equal(t, NodeID("n1"), newID)
	assert.Equal(t, []NodeID{"root", "n1"}, tree.LeafIDs())
	assert.Equal(t, NodeID("root"), tree.ActiveLeafID())

	newLeaf, ok := tree.Find(newID)
	require.True(t, ok)
	assert.Equal(t, editor, newLeaf.ContentType)

	split, ok := tree.Find(tree.Root())
	require.True(t, ok)
	assert.True(t, split.IsSplit())
	assert.Equal(t, OrientationVertical, split.Orientation)
	assert.Equal(t, DefaultSplitRatio, split.Ratio)
	assert.Equal(t, NodeID("root"), split.First)
	assert.Equal(t, newID, split.Second)
	require.NoError(t, tree.Validate())
}

func TestPaneTree_SplitNestedLeafReplacesParentSlot(t *testing.T) {
	tree := threeLeafTree(t)

	newID, err := tree.Split("b", OrientationHorizontal)
	require.NoError(t, err)

	assert.Equal(t, []NodeID{"a", "b", newID, "c"}, tree.LeafIDs())
	s2, _ := tree.Find("s2")
	inner, ok := tree.Find(s2.First)
	require.True(t, ok)
	assert.True(t, inner.IsSplit())
	assert.Equal(t, NodeID("s2"), inner.Parent)
	require.NoError(t, tree.Validate())
}

func TestPaneTree_SplitUnknownLeaf(t *testing.T) {
	tree := threeLeafTree(t)

	_, err := tree.Split("missing", OrientationHorizontal)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = tree.Split("s1", OrientationHorizontal)
	assert.ErrorIs(t, err, ErrNotFound, "splits cannot be split")
}

func TestPaneTree_CloseNestedLeaf(t *testing.T) {
	tree := threeLeafTree(t)

	require.NoError(t, tree.Close("b"))

	assert.Equal(t, []NodeID{"a", "c"}, tree.LeafIDs())
	c, _ := tree.Find("c")
	assert.Equal(t, NodeID("s1"), c.Parent, "sibling promoted into the grandparent slot")
	_, ok := tree.Find("s2")
	assert.False(t, ok)
	require.NoError(t, tree.Validate())
}

func TestPaneTree_CloseChildOfRootPromotesSiblingToRoot(t *testing.T) {
	tree := threeLeafTree(t)

	require.NoError(t, tree.Close("a"))

	assert.Equal(t, NodeID("s2"), tree.Root())
	root, _ := tree.Find("s2")
	assert.True(t, root.IsRoot())
	assert.Equal(t, []NodeID{"b", "c"}, tree.LeafIDs())
	assert.Equal(t, NodeID("b"), tree.ActiveLeafID(), "first leaf of promoted subtree becomes active")
	require.NoError(t, tree.Validate())
}

func TestPaneTree_CloseEveryLeafKeepsInvariants(t *testing.T) {
	for _, leaf := range []NodeID{"a", "b", "c"} {
		t.Run(string(leaf), func(t *testing.T) {
			tree := threeLeafTree(t)

			require.NoError(t, tree.Close(leaf))

			ids := tree.LeafIDs()
			assert.Len(t, ids, 2)
			assert.NotContains(t, ids, leaf)
			assert.True(t, tree.IsLeaf(tree.ActiveLeafID()))
			require.NoError(t, tree.Validate())
		})
	}
}

func TestPaneTree_CloseLastPaneIsIdempotent(t *testing.T) {
	tree := newTestTree(t)
	before := tree.GetState()

	for range 3 {
		err := tree.Close("root")
		assert.ErrorIs(t, err, ErrLastPane)
	}

	assert.Equal(t, before, tree.GetState())
}

func TestPaneTree_CloseUnknown(t *testing.T) {
	tree := threeLeafTree(t)

	assert.ErrorIs(t, tree.Close("nope"), ErrNotFound)
	assert.ErrorIs(t, tree.Close("s1"), ErrNotFound)
}

func TestPaneTree_SplitThenCloseRoundTrip(t *testing.T) {
	tree := threeLeafTree(t)
	before := tree.GetState()

	newID, err := tree.Split("b", OrientationHorizontal)
	require.NoError(t, err)
	require.NoError(t, tree.Close(newID))

	assert.Equal(t, before, tree.GetState())
	assert.Equal(t, NodeID("a"), tree.ActiveLeafID())
}

func TestPaneTree_TraverseIsRestartableAndLazy(t *testing.T) {
	tree := threeLeafTree(t)

	first := slices.Collect(tree.Traverse())
	second := slices.Collect(tree.Traverse())
	assert.Equal(t, first, second)
	for _, n := range first {
		assert.True(t, n.IsLeaf())
	}

	var visited []NodeID
	for leaf := range tree.Traverse() {
		visited = append(visited, leaf.ID)
		if leaf.ID == "b" {
			break
		}
	}
	assert.Equal(t, []NodeID{"a", "b"}, visited)
	assert.Equal(t, 3, tree.LeafCount())
}

func TestPaneTree_SetActive(t *testing.T) {
	tree := threeLeafTree(t)

	require.NoError(t, tree.SetActive("c"))
	assert.Equal(t, NodeID("c"), tree.ActiveLeafID())

	assert.ErrorIs(t, tree.SetActive("s2"), ErrNotFound)
	assert.ErrorIs(t, tree.SetActive("zzz"), ErrNotFound)
	assert.Equal(t, NodeID("c"), tree.ActiveLeafID())
}

func TestPaneTree_ChangeContentType(t *testing.T) {
	tree := threeLeafTree(t)
	require.NoError(t, tree.SetContentState("b", map[string]any{"text": "hi"}))

	require.NoError(t, tree.ChangeContentType("b", "terminal"))

	b, _ := tree.Find("b")
	assert.Equal(t, ContentType("terminal"), b.ContentType)
	assert.Nil(t, b.ContentState)
	assert.ErrorIs(t, tree.ChangeContentType("s1", "terminal"), ErrNotFound)
}

func TestPaneTree_SetRatioClamps(t *testing.T) {
	tree := threeLeafTree(t)

	require.NoError(t, tree.SetRatio("s1", 0.99))
	s1, _ := tree.Find("s1")
	assert.Equal(t, MaxSplitRatio, s1.Ratio)

	require.NoError(t, tree.SetRatio("s1", 0.01))
	s1, _ = tree.Find("s1")
	assert.Equal(t, MinSplitRatio, s1.Ratio)

	assert.ErrorIs(t, tree.SetRatio("a", 0.5), ErrNotFound)
}

func TestPaneTree_SubscribeReceivesEventsInOrder(t *testing.T) {
	tree := newTestTree(t)
	var events []Event
	unsubscribe := tree.Subscribe(func(ev Event) { events = append(events, ev) })

	newID, err := tree.Split("root", OrientationHorizontal)
	require.NoError(t, err)
	require.NoError(t, tree.SetActive(newID))
	require.NoError(t, tree.Close(newID))

	assert.Equal(t, []Event{
		{Kind: EventPaneAdded, ID: newID},
		{Kind: EventLayoutChanged},
		{Kind: EventActivePaneChanged, ID: newID},
		{Kind: EventPaneRemoved, ID: newID},
		{Kind: EventActivePaneChanged, ID: "root"},
		{Kind: EventLayoutChanged},
	}, events)

	unsubscribe()
	_, err = tree.Split("root", OrientationHorizontal)
	require.NoError(t, err)
	assert.Len(t, events, 6)
}

func TestPaneTree_SubscriberSeesCompletedMutation(t *testing.T) {
	tree := threeLeafTree(t)
	tree.Subscribe(func(ev Event) {
		if ev.Kind == EventPaneRemoved {
			assert.False(t, tree.Contains(ev.ID))
			assert.NoError(t, tree.Validate())
		}
	})

	require.NoError(t, tree.Close("a"))
}

func TestPaneTree_StateJSONRoundTrip(t *testing.T) {
	tree := threeLeafTree(t)
	require.NoError(t, tree.SetContentState("c", map[string]any{"cwd": "/tmp"}))
	require.NoError(t, tree.SetActive("c"))

	data, err := json.Marshal(tree.GetState())
	require.NoError(t, err)

	var state TreeState
	require.NoError(t, json.Unmarshal(data, &state))
	restored := newTestTree(t)
	require.NoError(t, restored.SetState(&state))

	assert.Equal(t, tree.LeafIDs(), restored.LeafIDs())
	assert.Equal(t, NodeID("c"), restored.ActiveLeafID())
	c, _ := restored.Find("c")
	assert.Equal(t, "/tmp", c.ContentState["cwd"])
	s2, _ := restored.Find("s2")
	assert.Equal(t, OrientationVertical, s2.Orientation)
	assert.InDelta(t, 0.3, s2.Ratio, 1e-9)
	require.NoError(t, restored.Validate())
}

func TestPaneTree_SetStateCopiesContentState(t *testing.T) {
	saved := map[string]any{"text": "draft"}
	tree := newTestTree(t)
	require.NoError(t, tree.SetState(&TreeState{
		ActiveLeafID: "a",
		Root:         &NodeState{Type: NodeTypeLeaf, ID: "a", ContentType: editor, ContentState: saved},
	}))

	saved["text"] = "changed"

	a, _ := tree.Find("a")
	assert.Equal(t, "draft", a.ContentState["text"])
}

func TestPaneTree_SetStateUnknownActiveFallsBackToLeaf(t *testing.T) {
	tree := newTestTree(t)

	err := tree.SetState(&TreeState{
		ActiveLeafID: "ghost",
		Root: &NodeState{
			Type: NodeTypeSplit, Orientation: "horizontal",
			First:  &NodeState{Type: NodeTypeLeaf, ID: "x", ContentType: editor},
			Second: &NodeState{Type: NodeTypeLeaf, ID: "y", ContentType: editor},
		},
	})

	require.NoError(t, err)
	assert.True(t, tree.IsLeaf(tree.ActiveLeafID()))
	assert.Equal(t, NodeID("x"), tree.ActiveLeafID())
	root, _ := tree.Find(tree.Root())
	assert.NotEmpty(t, root.ID, "missing split id is generated")
	assert.Equal(t, DefaultSplitRatio, root.Ratio, "zero ratio takes the default")
}

func TestPaneTree_SetStateRejectsMalformed(t *testing.T) {
	shared := &NodeState{Type: NodeTypeLeaf, ID: "x"}
	cyclic := &NodeState{Type: NodeTypeSplit, ID: "s", First: &NodeState{Type: NodeTypeLeaf, ID: "y"}}
	cyclic.Second = cyclic

	tests := []struct {
		name  string
		state *TreeState
	}{
		{name: "nil state", state: nil},
		{name: "nil root", state: &TreeState{}},
		{name: "unknown type", state: &TreeState{Root: &NodeState{Type: "tabs"}}},
		{name: "missing child", state: &TreeState{Root: &NodeState{
			Type: NodeTypeSplit, First: &NodeState{Type: NodeTypeLeaf},
		}}},
		{name: "shared node", state: &TreeState{Root: &NodeState{
			Type: NodeTypeSplit, First: shared, Second: shared,
		}}},
		{name: "cycle", state: &TreeState{Root: cyclic}},
		{name: "duplicate id", state: &TreeState{Root: &NodeState{
			Type:   NodeTypeSplit,
			First:  &NodeState{Type: NodeTypeLeaf, ID: "d"},
			Second: &NodeState{Type: NodeTypeLeaf, ID: "d"},
		}}},
		{name: "bad orientation", state: &TreeState{Root: &NodeState{
			Type: NodeTypeSplit, Orientation: "diagonal",
			First:  &NodeState{Type: NodeTypeLeaf},
			Second: &NodeState{Type: NodeTypeLeaf},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tree := threeLeafTree(t)
			before := tree.GetState()

			err := tree.SetState(tt.state)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedState))
			assert.Equal(t, before, tree.GetState(), "tree untouched on failure")
		})
	}
}

func TestTreeState_LeafCount(t *testing.T) {
	assert.Equal(t, 3, threeLeafTree(t).GetState().LeafCount())
	assert.Equal(t, 0, (*TreeState)(nil).LeafCount())
}

func TestPaneTree_EnclosingSplit(t *testing.T) {
	tree := threeLeafTree(t)
	horizontal := func(n Node) bool { return n.Orientation == OrientationHorizontal }

	split, inFirst, ok := tree.EnclosingSplit("c", nil)
	require.True(t, ok)
	assert.Equal(t, NodeID("s2"), split.ID)
	assert.False(t, inFirst)

	split, inFirst, ok = tree.EnclosingSplit("b", horizontal)
	require.True(t, ok)
	assert.Equal(t, NodeID("s1"), split.ID, "skips the vertical split")
	assert.False(t, inFirst)

	split, inFirst, ok = tree.EnclosingSplit("a", horizontal)
	require.True(t, ok)
	assert.Equal(t, NodeID("s1"), split.ID)
	assert.True(t, inFirst)

	_, _, ok = tree.EnclosingSplit("a", func(n Node) bool { return n.Orientation == OrientationVertical })
	assert.False(t, ok)
	_, _, ok = tree.EnclosingSplit("missing", nil)
	assert.False(t, ok)
	_, _, ok = newTestTree(t).EnclosingSplit("root", nil)
	assert.False(t, ok)
}

package entity

import (
	"errors"
	"fmt"
	"maps"
	"time"
)

// LayoutStateVersion is the current schema version for persisted layouts.
// Increment when making breaking changes to the serialization format.
const LayoutStateVersion = 1

// Persisted node types.
const (
	NodeTypeLeaf  = "leaf"
	NodeTypeSplit = "split"
)

// ErrMalformedState is returned by SetState when the persisted tree violates a
// structural invariant (shared or cyclic nodes, missing children, bad types).
var ErrMalformedState = errors.New("malformed layout state")

// TreeState is the serializable form of a PaneTree.
type TreeState struct {
	Version      int        `json:"version" yaml:"version"`
	ActiveLeafID NodeID     `json:"active_leaf_id" yaml:"active_leaf_id"`
	Root         *NodeState `json:"root" yaml:"root"`
}

// NodeState captures one node. Leaves fill the content fields, splits fill
// orientation, ratio and both children.
type NodeState struct {
	Type         string         `json:"type" yaml:"type"`
	ID           NodeID         `json:"id,omitempty" yaml:"id,omitempty"`
	ContentType  ContentType    `json:"content_type,omitempty" yaml:"content_type,omitempty"`
	ContentState map[string]any `json:"content_state,omitempty" yaml:"content_state,omitempty"`
	Orientation  string         `json:"orientation,omitempty" yaml:"orientation,omitempty"`
	Ratio        float64        `json:"ratio,omitempty" yaml:"ratio,omitempty"`
	First        *NodeState     `json:"first,omitempty" yaml:"first,omitempty"`
	Second       *NodeState     `json:"second,omitempty" yaml:"second,omitempty"`
}

// LeafCount returns the number of leaf records in the state.
func (s *TreeState) LeafCount() int {
	if s == nil {
		return 0
	}
	var count func(n *NodeState, depth int) int
	count = func(n *NodeState, depth int) int {
		// Depth guard keeps a cyclic state from looping forever.
		if n == nil || depth > maxStateDepth {
			return 0
		}
		if n.Type == NodeTypeLeaf {
			return 1
		}
		return count(n.First, depth+1) + count(n.Second, depth+1)
	}
	return count(s.Root, 0)
}

const maxStateDepth = 256

// Layout is a named, persisted layout.
type Layout struct {
	Name      string
	State     *TreeState
	LeafCount int
	SavedAt   time.Time
}

// GetState snapshots the tree into its serializable form.
func (t *PaneTree) GetState() *TreeState {
	return &TreeState{
		Version:      LayoutStateVersion,
		ActiveLeafID: t.active,
		Root:         t.nodeState(t.root),
	}
}

func (t *PaneTree) nodeState(id NodeID) *NodeState {
	n, ok := t.nodes[id]
	if !ok {
		return nil
	}
	if n.Kind == NodeLeaf {
		c := n.clone()
		return &NodeState{
			Type:         NodeTypeLeaf,
			ID:           n.ID,
			ContentType:  n.ContentType,
			ContentState: c.ContentState,
		}
	}
	return &NodeState{
		Type:        NodeTypeSplit,
		ID:          n.ID,
		Orientation: n.Orientation.String(),
		Ratio:       n.Ratio,
		First:       t.nodeState(n.First),
		Second:      t.nodeState(n.Second),
	}
}

// SetState replaces the whole tree with the persisted state. The tree is left
// untouched when the state is malformed. An active_leaf_id that does not name
// a leaf of the new tree is replaced by the first leaf.
func (t *PaneTree) SetState(state *TreeState) error {
	if state == nil || state.Root == nil {
		return fmt.Errorf("%w: missing root", ErrMalformedState)
	}

	b := stateBuilder{
		tree:    t,
		nodes:   make(map[NodeID]*Node),
		visited: make(map[*NodeState]bool),
	}
	rootID, err := b.build(state.Root, "", 0)
	if err != nil {
		return err
	}

	oldLeaves := t.LeafIDs()
	t.nodes = b.nodes
	t.root = rootID

	active := state.ActiveLeafID
	if !t.IsLeaf(active) {
		active, _ = t.FirstLeaf(rootID)
	}
	t.active = active

	events := make([]Event, 0, len(oldLeaves)+4)
	for _, id := range oldLeaves {
		if !t.IsLeaf(id) {
			events = append(events, Event{Kind: EventPaneRemoved, ID: id})
		}
	}
	kept := make(map[NodeID]bool, len(oldLeaves))
	for _, id := range oldLeaves {
		kept[id] = true
	}
	for leaf := range t.Traverse() {
		if !kept[leaf.ID] {
			events = append(events, Event{Kind: EventPaneAdded, ID: leaf.ID})
		}
	}
	events = append(events,
		Event{Kind: EventActivePaneChanged, ID: active},
		Event{Kind: EventLayoutChanged},
	)
	t.emit(events...)
	return nil
}

type stateBuilder struct {
	tree    *PaneTree
	nodes   map[NodeID]*Node
	visited map[*NodeState]bool
}

func (b *stateBuilder) newID() NodeID {
	for {
		id := b.tree.newID()
		if _, taken := b.nodes[id]; !taken && id != "" {
			return id
		}
	}
}

func (b *stateBuilder) build(s *NodeState, parent NodeID, depth int) (NodeID, error) {
	if s == nil {
		return "", fmt.Errorf("%w: split %s is missing a child", ErrMalformedState, parent)
	}
	if b.visited[s] {
		return "", fmt.Errorf("%w: node %q is shared or cyclic", ErrMalformedState, s.ID)
	}
	if depth > maxStateDepth {
		return "", fmt.Errorf("%w: tree deeper than %d", ErrMalformedState, maxStateDepth)
	}
	b.visited[s] = true

	id := s.ID
	if id == "" {
		id = b.newID()
	} else if _, dup := b.nodes[id]; dup {
		return "", fmt.Errorf("%w: duplicate node id %q", ErrMalformedState, id)
	}

	switch s.Type {
	case NodeTypeLeaf:
		b.nodes[id] = &Node{
			ID:           id,
			Kind:         NodeLeaf,
			Parent:       parent,
			ContentType:  s.ContentType,
			ContentState: maps.Clone(s.ContentState),
		}
		return id, nil

	case NodeTypeSplit:
		orientation, err := ParseOrientation(s.Orientation)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedState, err)
		}
		ratio := s.Ratio
		if ratio == 0 {
			ratio = b.tree.defaultRatio
		}
		n := &Node{
			ID:          id,
			Kind:        NodeSplit,
			Parent:      parent,
			Orientation: orientation,
			Ratio:       ClampRatio(ratio),
		}
		b.nodes[id] = n
		if n.First, err = b.build(s.First, id, depth+1); err != nil {
			return "", err
		}
		if n.Second, err = b.build(s.Second, id, depth+1); err != nil {
			return "", err
		}
		return id, nil

	default:
		return "", fmt.Errorf("%w: unknown node type %q", ErrMalformedState, s.Type)
	}
}

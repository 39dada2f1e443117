// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import (
	"errors"
	"fmt"
	"iter"
	"maps"
)

// ErrNotFound is returned when an operation references an unknown node id.
var ErrNotFound = errors.New("pane node not found")

// ErrLastPane is returned when closing the only remaining leaf.
var ErrLastPane = errors.New("cannot close the last pane")

// Split ratio bounds. Ratios outside the range are clamped.
const (
	MinSplitRatio     = 0.1
	MaxSplitRatio     = 0.9
	DefaultSplitRatio = 0.5
)

// NodeID uniquely identifies a node (leaf or split) within a pane tree.
type NodeID string

// ContentType names the kind of content a leaf hosts (editor, terminal, ...).
type ContentType string

// NodeKind tells leaves and splits apart.
type NodeKind int

const (
	NodeLeaf  NodeKind = iota + 1 // Holds one content widget
	NodeSplit                     // Holds exactly two children
)

func (k NodeKind) String() string {
	switch k {
	case NodeLeaf:
		return NodeTypeLeaf
	case NodeSplit:
		return NodeTypeSplit
	default:
		return "unknown"
	}
}

// Orientation indicates how a split arranges its two children.
type Orientation int

const (
	OrientationHorizontal Orientation = iota // Left/right
	OrientationVertical                      // Top/bottom
)

func (o Orientation) String() string {
	if o == OrientationVertical {
		return "vertical"
	}
	return "horizontal"
}

// ParseOrientation converts the persisted name back to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch s {
	case "horizontal", "":
		return OrientationHorizontal, nil
	case "vertical":
		return OrientationVertical, nil
	default:
		return OrientationHorizontal, fmt.Errorf("unknown orientation %q", s)
	}
}

// Node is a snapshot of a single tree node. Relations are expressed as ids into
// the tree's arena, never as pointers.
type Node struct {
	ID     NodeID
	Kind   NodeKind
	Parent NodeID // empty for root

	// Leaf
	ContentType  ContentType
	ContentState map[string]any

	// Split
	Orientation Orientation
	Ratio       float64
	First       NodeID
	Second      NodeID
}

// IsLeaf returns true if the node holds content.
func (n Node) IsLeaf() bool { return n.Kind == NodeLeaf }

// IsSplit returns true if the node has two children.
func (n Node) IsSplit() bool { return n.Kind == NodeSplit }

// IsRoot returns true if the node has no parent.
func (n Node) IsRoot() bool { return n.Parent == "" }

func (n *Node) replaceChild(old, replacement NodeID) bool {
	switch old {
	case n.First:
		n.First = replacement
		return true
	case n.Second:
		n.Second = replacement
		return true
	}
	return false
}

func (n *Node) otherChild(id NodeID) NodeID {
	if n.First == id {
		return n.Second
	}
	return n.First
}

func (n *Node) clone() Node {
	c := *n
	if n.ContentState != nil {
		c.ContentState = maps.Clone(n.ContentState)
	}
	return c
}

// ClampRatio keeps a split ratio within [MinSplitRatio, MaxSplitRatio].
func ClampRatio(ratio float64) float64 {
	if ratio < MinSplitRatio {
		return MinSplitRatio
	}
	if ratio > MaxSplitRatio {
		return MaxSplitRatio
	}
	return ratio
}

// PaneTree is a binary tree of leaves and splits stored as an arena keyed by id.
// It owns the topology and the active-leaf pointer and holds no reference to any
// visual container. It is not safe for concurrent use; all calls happen on the UI
// thread.
type PaneTree struct {
	nodes        map[NodeID]*Node
	root         NodeID
	active       NodeID
	newID        IDGenerator
	defaultRatio float64

	listeners    []treeListener
	nextListener int
}

type treeListener struct {
	id int
	fn func(Event)
}

// TreeOption configures a PaneTree at construction.
type TreeOption func(*PaneTree)

// WithIDGenerator sets the generator used for new leaf and split ids.
func WithIDGenerator(gen IDGenerator) TreeOption {
	return func(t *PaneTree) {
		if gen != nil {
			t.newID = gen
		}
	}
}

// WithDefaultRatio sets the ratio given to splits created by Split.
func WithDefaultRatio(ratio float64) TreeOption {
	return func(t *PaneTree) {
		t.defaultRatio = ClampRatio(ratio)
	}
}

// NewPaneTree creates a tree holding a single leaf of the given content type.
func NewPaneTree(contentType ContentType, opts ...TreeOption) *PaneTree {
	return NewPaneTreeWithRoot("", contentType, opts...)
}

// NewPaneTreeWithRoot creates a single-leaf tree whose leaf has the given id.
// An empty rootID draws one from the id generator.
func NewPaneTreeWithRoot(rootID NodeID, contentType ContentType, opts ...TreeOption) *PaneTree {
	t := &PaneTree{
		nodes:        make(map[NodeID]*Node),
		newID:        NewUUIDGenerator(),
		defaultRatio: DefaultSplitRatio,
	}
	for _, opt := range opts {
		opt(t)
	}

	if rootID == "" {
		rootID = t.allocID()
	}
	t.nodes[rootID] = &Node{ID: rootID, Kind: NodeLeaf, ContentType: contentType}
	t.root = rootID
	t.active = rootID
	return t
}

// allocID returns a fresh id that is not used by any node in the arena.
func (t *PaneTree) allocID() NodeID {
	for {
		id := t.newID()
		if _, taken := t.nodes[id]; !taken && id != "" {
			return id
		}
	}
}

// Root returns the id of the root node.
func (t *PaneTree) Root() NodeID { return t.root }

// ActiveLeafID returns the leaf currently designated as the focus target.
func (t *PaneTree) ActiveLeafID() NodeID { return t.active }

// Find returns a copy of the node with the given id.
func (t *PaneTree) Find(id NodeID) (Node, bool) {
	n, ok := t.nodes[id]
	if !ok {
		return Node{}, false
	}
	return n.clone(), true
}

// Contains reports whether id names a node of the tree.
func (t *PaneTree) Contains(id NodeID) bool {
	_, ok := t.nodes[id]
	return ok
}

// IsLeaf reports whether id names a leaf of the tree.
func (t *PaneTree) IsLeaf(id NodeID) bool {
	n, ok := t.nodes[id]
	return ok && n.Kind == NodeLeaf
}

// Sibling returns the other child of id's parent.
func (t *PaneTree) Sibling(id NodeID) (NodeID, bool) {
	n, ok := t.nodes[id]
	if !ok || n.Parent == "" {
		return "", false
	}
	return t.nodes[n.Parent].otherChild(id), true
}

// EnclosingSplit walks up from id and returns the nearest split accepted by
// match, plus whether id sits under its first child. A nil match accepts any
// split.
func (t *PaneTree) EnclosingSplit(id NodeID, match func(Node) bool) (split Node, inFirst bool, ok bool) {
	child, ok := t.nodes[id]
	if !ok {
		return Node{}, false, false
	}
	for depth := 0; child.Parent != "" && depth <= len(t.nodes); depth++ {
		parent := t.nodes[child.Parent]
		if parent == nil {
			break
		}
		if match == nil || match(*parent) {
			return parent.clone(), parent.First == child.ID, true
		}
		child = parent
	}
	return Node{}, false, false
}

// Traverse yields every leaf reachable from the root in pre-order (first child
// before second). The sequence is lazy and can be ranged over any number of
// times. The tree must not be mutated while a traversal is in progress.
func (t *PaneTree) Traverse() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		t.walk(t.root, func(n *Node) bool {
			if n.Kind != NodeLeaf {
				return true
			}
			return yield(n.clone())
		})
	}
}

// Walk visits every node (splits and leaves) in pre-order. Returns early if fn
// returns false.
func (t *PaneTree) Walk(fn func(Node) bool) {
	t.walk(t.root, func(n *Node) bool { return fn(n.clone()) })
}

func (t *PaneTree) walk(id NodeID, fn func(*Node) bool) bool {
	n, ok := t.nodes[id]
	if !ok {
		return true
	}
	if !fn(n) {
		return false
	}
	if n.Kind == NodeSplit {
		if !t.walk(n.First, fn) {
			return false
		}
		return t.walk(n.Second, fn)
	}
	return true
}

// LeafIDs returns the ids yielded by Traverse.
func (t *PaneTree) LeafIDs() []NodeID {
	ids := make([]NodeID, 0, len(t.nodes)/2+1)
	for leaf := range t.Traverse() {
		ids = append(ids, leaf.ID)
	}
	return ids
}

// LeafCount returns the number of leaves in the tree.
func (t *PaneTree) LeafCount() int {
	count := 0
	for _, n := range t.nodes {
		if n.Kind == NodeLeaf {
			count++
		}
	}
	return count
}

// NodeCount returns the number of nodes, splits included.
func (t *PaneTree) NodeCount() int { return len(t.nodes) }

// FirstLeaf returns the first leaf (pre-order) of the subtree rooted at id.
func (t *PaneTree) FirstLeaf(id NodeID) (NodeID, bool) {
	n, ok := t.nodes[id]
	for ok && n.Kind == NodeSplit {
		n, ok = t.nodes[n.First]
	}
	if !ok {
		return "", false
	}
	return n.ID, true
}

// Split replaces the leaf with a split node. The existing leaf stays first and a
// new leaf with the same content type becomes second. The active leaf does not
// change. Returns the id of the new leaf.
func (t *PaneTree) Split(leafID NodeID, orientation Orientation) (NodeID, error) {
	leaf, ok := t.nodes[leafID]
	if !ok || leaf.Kind != NodeLeaf {
		return "", fmt.Errorf("split %s: %w", leafID, ErrNotFound)
	}

	newLeafID := t.allocID()
	t.nodes[newLeafID] = &Node{ID: newLeafID, Kind: NodeLeaf}
	splitID := t.allocID()

	split := &Node{
		ID:          splitID,
		Kind:        NodeSplit,
		Parent:      leaf.Parent,
		Orientation: orientation,
		Ratio:       t.defaultRatio,
		First:       leafID,
		Second:      newLeafID,
	}
	t.nodes[splitID] = split
	t.nodes[newLeafID].Parent = splitID
	t.nodes[newLeafID].ContentType = leaf.ContentType

	if leaf.Parent == "" {
		t.root = splitID
	} else {
		t.nodes[leaf.Parent].replaceChild(leafID, splitID)
	}
	leaf.Parent = splitID

	t.emit(Event{Kind: EventPaneAdded, ID: newLeafID}, Event{Kind: EventLayoutChanged})
	return newLeafID, nil
}

// Close removes the leaf and promotes its sibling into the parent's slot. The
// tree loses one level at that point. When the closed leaf was active the first
// leaf of the promoted subtree becomes active.
func (t *PaneTree) Close(leafID NodeID) error {
	leaf, ok := t.nodes[leafID]
	if !ok || leaf.Kind != NodeLeaf {
		return fmt.Errorf("close %s: %w", leafID, ErrNotFound)
	}
	if leaf.Parent == "" {
		return ErrLastPane
	}

	parent := t.nodes[leaf.Parent]
	siblingID := parent.otherChild(leafID)
	sibling := t.nodes[siblingID]
	grandparentID := parent.Parent

	if grandparentID == "" {
		t.root = siblingID
	} else {
		t.nodes[grandparentID].replaceChild(parent.ID, siblingID)
	}
	sibling.Parent = grandparentID

	delete(t.nodes, leafID)
	delete(t.nodes, parent.ID)

	events := []Event{{Kind: EventPaneRemoved, ID: leafID}}
	if t.active == leafID {
		t.active, _ = t.FirstLeaf(siblingID)
		events = append(events, Event{Kind: EventActivePaneChanged, ID: t.active})
	}
	events = append(events, Event{Kind: EventLayoutChanged})
	t.emit(events...)
	return nil
}

// SetActive designates the leaf as the focus target of record.
func (t *PaneTree) SetActive(leafID NodeID) error {
	if !t.IsLeaf(leafID) {
		return fmt.Errorf("set active %s: %w", leafID, ErrNotFound)
	}
	if t.active == leafID {
		return nil
	}
	t.active = leafID
	t.emit(Event{Kind: EventActivePaneChanged, ID: leafID})
	return nil
}

// ChangeContentType swaps the content type hosted by a leaf. Any persisted
// content state belongs to the old content and is dropped.
func (t *PaneTree) ChangeContentType(leafID NodeID, contentType ContentType) error {
	leaf, ok := t.nodes[leafID]
	if !ok || leaf.Kind != NodeLeaf {
		return fmt.Errorf("change content type %s: %w", leafID, ErrNotFound)
	}
	if leaf.ContentType == contentType {
		return nil
	}
	leaf.ContentType = contentType
	leaf.ContentState = nil
	t.emit(Event{Kind: EventContentTypeChanged, ID: leafID})
	return nil
}

// SetContentState stores opaque content state for a leaf, persisted with the tree.
func (t *PaneTree) SetContentState(leafID NodeID, state map[string]any) error {
	leaf, ok := t.nodes[leafID]
	if !ok || leaf.Kind != NodeLeaf {
		return fmt.Errorf("set content state %s: %w", leafID, ErrNotFound)
	}
	leaf.ContentState = maps.Clone(state)
	return nil
}

// SetRatio updates a split's divider ratio, clamped to the allowed range.
func (t *PaneTree) SetRatio(splitID NodeID, ratio float64) error {
	split, ok := t.nodes[splitID]
	if !ok || split.Kind != NodeSplit {
		return fmt.Errorf("set ratio %s: %w", splitID, ErrNotFound)
	}
	clamped := ClampRatio(ratio)
	if split.Ratio == clamped {
		return nil
	}
	split.Ratio = clamped
	t.emit(Event{Kind: EventLayoutChanged})
	return nil
}

// Validate checks every structural invariant of the tree.
func (t *PaneTree) Validate() error {
	root, ok := t.nodes[t.root]
	if !ok {
		return fmt.Errorf("root %s missing from arena", t.root)
	}
	if root.Parent != "" {
		return fmt.Errorf("root %s has parent %s", root.ID, root.Parent)
	}

	seen := make(map[NodeID]bool, len(t.nodes))
	var check func(id, parent NodeID) error
	check = func(id, parent NodeID) error {
		n, ok := t.nodes[id]
		if !ok {
			return fmt.Errorf("child %s of %s missing from arena", id, parent)
		}
		if seen[id] {
			return fmt.Errorf("node %s reachable twice", id)
		}
		seen[id] = true
		if n.Parent != parent {
			return fmt.Errorf("node %s parent is %s, want %s", id, n.Parent, parent)
		}
		if n.Kind != NodeSplit {
			return nil
		}
		if n.First == "" || n.Second == "" || n.First == n.Second {
			return fmt.Errorf("split %s must have two distinct children", id)
		}
		if n.Ratio < MinSplitRatio || n.Ratio > MaxSplitRatio {
			return fmt.Errorf("split %s ratio %.2f out of range", id, n.Ratio)
		}
		if err := check(n.First, id); err != nil {
			return err
		}
		return check(n.Second, id)
	}
	if err := check(t.root, ""); err != nil {
		return err
	}
	if len(seen) != len(t.nodes) {
		return fmt.Errorf("%d nodes unreachable from root", len(t.nodes)-len(seen))
	}
	if !t.IsLeaf(t.active) {
		return fmt.Errorf("active leaf %s not in tree", t.active)
	}
	return nil
}

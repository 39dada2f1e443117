package layout

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

// ErrNilRoot is returned when rendering a tree without a root.
var ErrNilRoot = errors.New("root node is nil")

// ErrNodeNotFound is returned when a node lookup fails.
var ErrNodeNotFound = errors.New("node not found")

// LeafProvider supplies the wrapper widget of a leaf. The same leaf id must
// yield the same widget for as long as the leaf lives, so content survives
// re-layout.
type LeafProvider interface {
	LeafWidget(id entity.NodeID) (Widget, error)
}

// RootContainer hosts the top-level widget of the tree.
type RootContainer interface {
	// SetRootWidget replaces the hosted widget; nil clears the slot.
	SetRootWidget(w Widget)
	// SuspendUpdates and ResumeUpdates bracket a batch of widget changes.
	// Calls nest.
	SuspendUpdates()
	ResumeUpdates()
}

// viewNode mirrors one tree node and the container that displays it.
type viewNode struct {
	id     entity.NodeID
	parent entity.NodeID
	widget Widget

	// Split only
	split  *SplitView
	first  entity.NodeID
	second entity.NodeID
}

func (n *viewNode) isSplit() bool { return n.split != nil }

// SyncStats counts synchronizer activity.
type SyncStats struct {
	FullRenders int
	Patches     int
	Fallbacks   int
}

// Synchronizer keeps a container widget tree in step with a pane tree.
// Render rebuilds everything; PatchForSplit and PatchForClose replace only the
// container affected by a mutation and fall back to Render when the view does
// not match what the mutation implies.
type Synchronizer struct {
	pool   *ContainerPool
	leaves LeafProvider
	root   RootContainer
	logger zerolog.Logger

	nodes  map[entity.NodeID]*viewNode
	rootID entity.NodeID
	stats  SyncStats

	onSplitRatioChanged func(splitID entity.NodeID, ratio float64)
}

// NewSynchronizer creates a synchronizer. The pool is shared and owned by the
// caller.
func NewSynchronizer(ctx context.Context, pool *ContainerPool, leaves LeafProvider, root RootContainer) *Synchronizer {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating view synchronizer")

	return &Synchronizer{
		pool:   pool,
		leaves: leaves,
		root:   root,
		logger: log.With().Str("component", "view-synchronizer").Logger(),
		nodes:  make(map[entity.NodeID]*viewNode),
	}
}

// SetOnSplitRatioChanged registers the callback fired when a divider is
// dragged.
func (s *Synchronizer) SetOnSplitRatioChanged(fn func(splitID entity.NodeID, ratio float64)) {
	s.onSplitRatioChanged = fn
}

// Render builds fresh containers for every node of the tree. Containers of the
// previous render go back to the pool first.
func (s *Synchronizer) Render(tree *entity.PaneTree) error {
	if tree == nil || tree.Root() == "" {
		return ErrNilRoot
	}

	s.root.SuspendUpdates()
	defer s.root.ResumeUpdates()

	s.reset()

	nodes := make(map[entity.NodeID]*viewNode, tree.NodeCount())
	widget, err := s.renderNode(tree, tree.Root(), "", nodes)
	if err != nil {
		for _, n := range nodes {
			if n.isSplit() {
				s.pool.Release(n.split)
			}
		}
		return fmt.Errorf("render: %w", err)
	}

	s.nodes = nodes
	s.rootID = tree.Root()
	s.root.SetRootWidget(widget)
	s.stats.FullRenders++

	s.logger.Debug().
		Int("nodes", len(nodes)).
		Int("leaves", tree.LeafCount()).
		Msg("full render")
	return nil
}

// renderNode recursively renders a node and its children into nodes.
func (s *Synchronizer) renderNode(
	tree *entity.PaneTree,
	id, parent entity.NodeID,
	nodes map[entity.NodeID]*viewNode,
) (Widget, error) {
	node, ok := tree.Find(id)
	if !ok {
		return nil, fmt.Errorf("%s: %w", id, ErrNodeNotFound)
	}

	if node.IsLeaf() {
		w, err := s.leaves.LeafWidget(id)
		if err != nil {
			return nil, fmt.Errorf("leaf %s: %w", id, err)
		}
		if w == nil {
			return nil, fmt.Errorf("leaf %s: no widget", id)
		}
		nodes[id] = &viewNode{id: id, parent: parent, widget: w}
		return w, nil
	}

	sv := s.pool.Acquire(OrientationOf(node.Orientation))
	vn := &viewNode{id: id, parent: parent, widget: sv.Widget(), split: sv, first: node.First, second: node.Second}
	nodes[id] = vn

	first, err := s.renderNode(tree, node.First, id, nodes)
	if err != nil {
		return nil, err
	}
	second, err := s.renderNode(tree, node.Second, id, nodes)
	if err != nil {
		return nil, err
	}

	s.attachSplit(vn, first, second, node.Ratio)
	return sv.Widget(), nil
}

func (s *Synchronizer) attachSplit(vn *viewNode, first, second Widget, ratio float64) {
	vn.split.Attach(first, second, ratio)

	splitID := vn.id
	vn.split.SetOnRatioChanged(func(r float64) {
		if s.onSplitRatioChanged != nil {
			s.onSplitRatioChanged(splitID, r)
		}
	})
}

// reset clears the root slot and pools every split container.
func (s *Synchronizer) reset() {
	if len(s.nodes) == 0 {
		return
	}
	s.root.SetRootWidget(nil)
	for _, n := range s.nodes {
		if n.isSplit() {
			s.pool.Release(n.split)
		}
	}
	s.nodes = make(map[entity.NodeID]*viewNode)
	s.rootID = ""
}

// Clear releases every container and empties the root slot.
func (s *Synchronizer) Clear() {
	s.root.SuspendUpdates()
	defer s.root.ResumeUpdates()
	s.reset()
}

// Lookup returns the container displaying a node.
func (s *Synchronizer) Lookup(id entity.NodeID) (Widget, bool) {
	n, ok := s.nodes[id]
	if !ok {
		return nil, false
	}
	return n.widget, true
}

// SplitView returns the split container of a split node.
func (s *Synchronizer) SplitView(id entity.NodeID) (*SplitView, bool) {
	n, ok := s.nodes[id]
	if !ok || !n.isSplit() {
		return nil, false
	}
	return n.split, true
}

// NodeCount returns the number of mirrored nodes.
func (s *Synchronizer) NodeCount() int { return len(s.nodes) }

// RootID returns the id of the node shown in the root slot.
func (s *Synchronizer) RootID() entity.NodeID { return s.rootID }

// Stats returns synchronizer counters.
func (s *Synchronizer) Stats() SyncStats { return s.stats }

// UpdateSplitRatio pushes a model ratio into the divider of a split.
func (s *Synchronizer) UpdateSplitRatio(id entity.NodeID, ratio float64) error {
	sv, ok := s.SplitView(id)
	if !ok {
		return fmt.Errorf("split %s: %w", id, ErrNodeNotFound)
	}
	sv.SetRatio(ratio)
	return nil
}

// Verify checks that the mirrored view matches tree exactly.
func (s *Synchronizer) Verify(tree *entity.PaneTree) error {
	if tree.Root() != s.rootID {
		return fmt.Errorf("root: view %q, tree %q", s.rootID, tree.Root())
	}
	if tree.NodeCount() != len(s.nodes) {
		return fmt.Errorf("node count: view %d, tree %d", len(s.nodes), tree.NodeCount())
	}
	var err error
	tree.Walk(func(n entity.Node) bool {
		vn, ok := s.nodes[n.ID]
		switch {
		case !ok:
			err = fmt.Errorf("node %s missing from view", n.ID)
		case vn.parent != n.Parent:
			err = fmt.Errorf("node %s: view parent %q, tree parent %q", n.ID, vn.parent, n.Parent)
		case n.IsSplit() != vn.isSplit():
			err = fmt.Errorf("node %s: kind mismatch", n.ID)
		case n.IsSplit() && (vn.first != n.First || vn.second != n.Second):
			err = fmt.Errorf("split %s: children mismatch", n.ID)
		case n.IsSplit() && (vn.split.StartChild() != s.widgetOf(n.First) || vn.split.EndChild() != s.widgetOf(n.Second)):
			err = fmt.Errorf("split %s: container children mismatch", n.ID)
		}
		return err == nil
	})
	return err
}

func (s *Synchronizer) widgetOf(id entity.NodeID) Widget {
	if n, ok := s.nodes[id]; ok {
		return n.widget
	}
	return nil
}

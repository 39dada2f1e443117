package layout

import (
	"fmt"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// slot identifies where a container sits: in the root slot, or in the start or
// end slot of a parent split.
type slot struct {
	parent *viewNode // nil for the root slot
	start  bool
}

func (s *Synchronizer) slotOf(n *viewNode) (slot, bool) {
	if n.parent == "" {
		return slot{}, s.rootID == n.id
	}
	p, ok := s.nodes[n.parent]
	if !ok || !p.isSplit() {
		return slot{}, false
	}
	switch n.id {
	case p.first:
		return slot{parent: p, start: true}, true
	case p.second:
		return slot{parent: p, start: false}, true
	}
	return slot{}, false
}

// put places w in sl and records id as the slot's occupant.
func (s *Synchronizer) put(sl slot, id entity.NodeID, w Widget) {
	if sl.parent == nil {
		s.rootID = id
		s.root.SetRootWidget(w)
		return
	}
	if sl.start {
		sl.parent.first = id
	} else {
		sl.parent.second = id
	}
	sl.parent.split.SetChild(sl.start, w)
}

func (s *Synchronizer) clearSlot(sl slot) {
	if sl.parent == nil {
		s.root.SetRootWidget(nil)
		return
	}
	sl.parent.split.SetChild(sl.start, nil)
}

// PatchForSplit updates the view after tree.Split(originalID) created newID.
// The original leaf's container moves into a new split container that takes
// its old slot; every other container is left alone.
func (s *Synchronizer) PatchForSplit(tree *entity.PaneTree, originalID, newID entity.NodeID) error {
	orig, ok := s.nodes[originalID]
	if !ok || orig.isSplit() {
		return s.fallback(tree, "original leaf not in view", originalID)
	}
	if _, exists := s.nodes[newID]; exists {
		return s.fallback(tree, "new leaf already in view", newID)
	}
	origNode, ok := tree.Find(originalID)
	if !ok {
		return s.fallback(tree, "original leaf not in tree", originalID)
	}
	split, ok := tree.Find(origNode.Parent)
	if !ok || !split.IsSplit() || split.First != originalID || split.Second != newID {
		return s.fallback(tree, "split shape mismatch", originalID)
	}
	if _, exists := s.nodes[split.ID]; exists || split.Parent != orig.parent {
		return s.fallback(tree, "split parent mismatch", split.ID)
	}
	sl, ok := s.slotOf(orig)
	if !ok {
		return s.fallback(tree, "original slot not found", originalID)
	}

	newWidget, err := s.leaves.LeafWidget(newID)
	if err != nil || newWidget == nil {
		return s.fallback(tree, "new leaf widget unavailable", newID)
	}

	s.root.SuspendUpdates()
	defer s.root.ResumeUpdates()

	s.clearSlot(sl)

	sv := s.pool.Acquire(OrientationOf(split.Orientation))
	vn := &viewNode{
		id:     split.ID,
		parent: split.Parent,
		widget: sv.Widget(),
		split:  sv,
		first:  originalID,
		second: newID,
	}
	s.attachSplit(vn, orig.widget, newWidget, split.Ratio)

	s.nodes[split.ID] = vn
	s.nodes[newID] = &viewNode{id: newID, parent: split.ID, widget: newWidget}
	orig.parent = split.ID
	s.put(sl, split.ID, sv.Widget())

	s.stats.Patches++
	s.logger.Debug().
		Str("original", string(originalID)).
		Str("new", string(newID)).
		Str("split", string(split.ID)).
		Msg("incremental split")
	return nil
}

// PatchForClose updates the view after tree.Close(closedID). The closed leaf's
// parent container is released to the pool and the sibling's container takes
// the parent's slot.
func (s *Synchronizer) PatchForClose(tree *entity.PaneTree, closedID entity.NodeID) error {
	closed, ok := s.nodes[closedID]
	if !ok || closed.isSplit() {
		return s.fallback(tree, "closed leaf not in view", closedID)
	}
	if tree.Contains(closedID) {
		return s.fallback(tree, "closed leaf still in tree", closedID)
	}
	parent, ok := s.nodes[closed.parent]
	if !ok || !parent.isSplit() || tree.Contains(parent.id) {
		return s.fallback(tree, "closed leaf parent mismatch", closedID)
	}
	siblingID := parent.first
	if siblingID == closedID {
		siblingID = parent.second
	}
	sibling, ok := s.nodes[siblingID]
	if !ok {
		return s.fallback(tree, "sibling not in view", siblingID)
	}
	sibNode, ok := tree.Find(siblingID)
	if !ok || sibNode.Parent != parent.parent {
		return s.fallback(tree, "sibling not promoted", siblingID)
	}
	sl, ok := s.slotOf(parent)
	if !ok {
		return s.fallback(tree, "parent slot not found", parent.id)
	}

	s.root.SuspendUpdates()
	defer s.root.ResumeUpdates()

	s.clearSlot(sl)
	s.pool.Release(parent.split)

	delete(s.nodes, closedID)
	delete(s.nodes, parent.id)
	sibling.parent = parent.parent
	s.put(sl, siblingID, sibling.widget)

	s.stats.Patches++
	s.logger.Debug().
		Str("closed", string(closedID)).
		Str("promoted", string(siblingID)).
		Msg("incremental close")
	return nil
}

// fallback re-renders the whole tree when the incremental path cannot locate
// the relationship it expects.
func (s *Synchronizer) fallback(tree *entity.PaneTree, reason string, id entity.NodeID) error {
	s.stats.Fallbacks++
	s.logger.Warn().
		Str("reason", reason).
		Str("node", string(id)).
		Msg("incremental patch not applicable, rendering full tree")
	if err := s.Render(tree); err != nil {
		return fmt.Errorf("fallback render: %w", err)
	}
	return nil
}

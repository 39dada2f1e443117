package entity

import "time"

// WorkspaceID identifies a workspace.
type WorkspaceID string

// Workspace is a named pane tree. Each tab of the shell owns one.
type Workspace struct {
	ID   WorkspaceID
	Name string
	tree *PaneTree
}

// NewWorkspace wraps tree. A nil tree is replaced by a single empty leaf.
func NewWorkspace(id WorkspaceID, name string, tree *PaneTree) *Workspace {
	if tree == nil {
		tree = NewPaneTree("")
	}
	return &Workspace{ID: id, Name: name, tree: tree}
}

// Tree returns the pane tree of the workspace.
func (w *Workspace) Tree() *PaneTree { return w.tree }

// ActiveLeafID returns the active leaf of the tree.
func (w *Workspace) ActiveLeafID() NodeID { return w.tree.ActiveLeafID() }

// PaneCount returns the number of leaves.
func (w *Workspace) PaneCount() int { return w.tree.LeafCount() }

// Snapshot captures the workspace as a layout named after it.
func (w *Workspace) Snapshot() *Layout {
	return NewLayout(w.Name, w.tree, time.Now())
}

// NewLayout captures tree under name.
func NewLayout(name string, tree *PaneTree, savedAt time.Time) *Layout {
	return &Layout{
		Name:      name,
		State:     tree.GetState(),
		LeafCount: tree.LeafCount(),
		SavedAt:   savedAt,
	}
}

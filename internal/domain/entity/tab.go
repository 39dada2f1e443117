package entity

import (
	"fmt"
	"time"
)

// TabID uniquely identifies a tab.
type TabID string

// Tab is a top-level page of the shell window holding one workspace.
type Tab struct {
	ID        TabID
	Workspace *Workspace
	Position  int
	CreatedAt time.Time
}

// NewTab creates a tab around ws.
func NewTab(id TabID, ws *Workspace) *Tab {
	return &Tab{ID: id, Workspace: ws, CreatedAt: time.Now()}
}

// Title returns the workspace name, or "Tab N" after the tab's position.
func (t *Tab) Title() string {
	if t.Workspace != nil && t.Workspace.Name != "" {
		return t.Workspace.Name
	}
	return fmt.Sprintf("Tab %d", t.Position+1)
}

// PaneCount returns the number of panes in the tab's workspace.
func (t *Tab) PaneCount() int {
	if t.Workspace == nil {
		return 0
	}
	return t.Workspace.PaneCount()
}

// TabList is an ordered collection of tabs with one active tab.
type TabList struct {
	Tabs        []*Tab
	ActiveTabID TabID
}

// NewTabList creates an empty tab list.
func NewTabList() *TabList {
	return &TabList{Tabs: make([]*Tab, 0)}
}

// Add appends a tab. The first tab added becomes active.
func (tl *TabList) Add(tab *Tab) {
	tab.Position = len(tl.Tabs)
	tl.Tabs = append(tl.Tabs, tab)
	if tl.ActiveTabID == "" {
		tl.ActiveTabID = tab.ID
	}
}

// Remove drops a tab and reindexes positions. When the active tab goes, the
// tab that took its place becomes active, or the new last tab.
func (tl *TabList) Remove(id TabID) bool {
	i := tl.index(id)
	if i < 0 {
		return false
	}
	tl.Tabs = append(tl.Tabs[:i], tl.Tabs[i+1:]...)
	tl.reindex(i)

	if tl.ActiveTabID != id {
		return true
	}
	switch {
	case len(tl.Tabs) == 0:
		tl.ActiveTabID = ""
	case i < len(tl.Tabs):
		tl.ActiveTabID = tl.Tabs[i].ID
	default:
		tl.ActiveTabID = tl.Tabs[len(tl.Tabs)-1].ID
	}
	return true
}

// Find returns a tab by id.
func (tl *TabList) Find(id TabID) *Tab {
	if i := tl.index(id); i >= 0 {
		return tl.Tabs[i]
	}
	return nil
}

// ActiveTab returns the active tab, nil when the list is empty.
func (tl *TabList) ActiveTab() *Tab {
	return tl.Find(tl.ActiveTabID)
}

// SetActive makes id the active tab.
func (tl *TabList) SetActive(id TabID) bool {
	if tl.index(id) < 0 {
		return false
	}
	tl.ActiveTabID = id
	return true
}

// Next returns the tab after the active one, wrapping around. With
// forward false it returns the one before.
func (tl *TabList) Next(forward bool) *Tab {
	n := len(tl.Tabs)
	if n == 0 {
		return nil
	}
	i := tl.index(tl.ActiveTabID)
	if i < 0 {
		return tl.Tabs[0]
	}
	step := 1
	if !forward {
		step = n - 1
	}
	return tl.Tabs[(i+step)%n]
}

// Count returns the number of tabs.
func (tl *TabList) Count() int {
	return len(tl.Tabs)
}

// Move moves a tab to a new position.
func (tl *TabList) Move(id TabID, newPos int) bool {
	if newPos < 0 || newPos >= len(tl.Tabs) {
		return false
	}
	oldPos := tl.index(id)
	if oldPos < 0 {
		return false
	}
	tab := tl.Tabs[oldPos]
	tl.Tabs = append(tl.Tabs[:oldPos], tl.Tabs[oldPos+1:]...)
	tl.Tabs = append(tl.Tabs[:newPos], append([]*Tab{tab}, tl.Tabs[newPos:]...)...)
	tl.reindex(0)
	return true
}

func (tl *TabList) index(id TabID) int {
	for i, tab := range tl.Tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

func (tl *TabList) reindex(from int) {
	for i := from; i < len(tl.Tabs); i++ {
		tl.Tabs[i].Position = i
	}
}

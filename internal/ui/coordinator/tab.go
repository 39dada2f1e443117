package coordinator

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/component"
	"github.com/bnema/paneshell/internal/ui/input"
	"github.com/bnema/paneshell/internal/ui/layout"
)

// ErrLastTab is returned when closing the only tab and nobody handles quit.
var ErrLastTab = errors.New("cannot close the last tab")

// TabCoordinatorConfig holds configuration for TabCoordinator.
type TabCoordinatorConfig struct {
	View    *component.TabView
	Factory layout.WidgetFactory

	// Workspace is the template of every tab's coordinator. Tree and View
	// are created per tab. Only the first tab keeps LayoutName and
	// RestoreOnStart; later tabs are not persisted.
	Workspace   WorkspaceCoordinatorConfig
	TreeOptions []entity.TreeOption

	HideBarWhenSingleTab bool
}

// TabCoordinator owns the tabs of the window. Each tab has its own pane tree,
// workspace view and workspace coordinator; keyboard actions go to the
// active one.
type TabCoordinator struct {
	ctx      context.Context
	view     *component.TabView
	factory  layout.WidgetFactory
	template WorkspaceCoordinatorConfig
	treeOpts []entity.TreeOption
	hideBar  bool

	tabs    *entity.TabList
	entries map[entity.TabID]*tabEntry
	nextID  int
	mode    input.Mode

	onQuit   func()
	shutdown bool
}

type tabEntry struct {
	tab   *entity.Tab
	coord *WorkspaceCoordinator
	view  *component.WorkspaceView
}

// NewTabCoordinator creates a coordinator with no tabs. Start opens the first.
func NewTabCoordinator(ctx context.Context, cfg TabCoordinatorConfig) *TabCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating tab coordinator")

	return &TabCoordinator{
		ctx:      ctx,
		view:     cfg.View,
		factory:  cfg.Factory,
		template: cfg.Workspace,
		treeOpts: cfg.TreeOptions,
		hideBar:  cfg.HideBarWhenSingleTab,
		tabs:     entity.NewTabList(),
		entries:  make(map[entity.TabID]*tabEntry),
	}
}

// SetOnQuit sets the callback run when the last tab is closed.
func (c *TabCoordinator) SetOnQuit(fn func()) {
	c.onQuit = fn
}

// Start opens the first tab, restoring its saved layout when configured.
func (c *TabCoordinator) Start(ctx context.Context) error {
	if c.tabs.Count() > 0 {
		return nil
	}
	_, err := c.Create(ctx)
	return err
}

// Create opens a new tab after the existing ones and switches to it.
func (c *TabCoordinator) Create(ctx context.Context) (*entity.Tab, error) {
	log := logging.FromContext(ctx)
	if c.shutdown {
		return nil, errors.New("tab coordinator shut down")
	}

	c.nextID++
	id := entity.TabID(fmt.Sprintf("tab-%d", c.nextID))
	first := c.tabs.Count() == 0

	cfg := c.template
	cfg.Tree = entity.NewPaneTree(cfg.DefaultContentType, c.treeOpts...)
	cfg.View = component.NewWorkspaceView(ctx, c.factory)
	if !first {
		cfg.LayoutName = ""
		cfg.RestoreOnStart = false
	}

	coord := NewWorkspaceCoordinator(ctx, cfg)
	if err := coord.Start(ctx); err != nil {
		coord.Shutdown(ctx)
		log.Error().Err(err).Msg("failed to create tab")
		return nil, fmt.Errorf("create tab: %w", err)
	}
	coord.OnModeChange(input.ModeNormal, c.mode)

	tab := entity.NewTab(id, entity.NewWorkspace(entity.WorkspaceID(id), "", coord.Tree()))
	c.tabs.Add(tab)
	c.entries[id] = &tabEntry{tab: tab, coord: coord, view: cfg.View}
	c.view.AddTab(id, tab.Title(), cfg.View.Widget())

	c.activate(ctx, id)
	c.UpdateBarVisibility(ctx)

	log.Debug().Str("tab_id", string(id)).Int("tabs", c.tabs.Count()).Msg("tab created")
	return tab, nil
}

// Close closes the active tab.
func (c *TabCoordinator) Close(ctx context.Context) error {
	if c.tabs.ActiveTabID == "" {
		logging.FromContext(ctx).Debug().Msg("no active tab to close")
		return nil
	}
	return c.CloseTab(ctx, c.tabs.ActiveTabID)
}

// CloseTab shuts a tab's workspace down and removes it. Closing the last tab
// runs the quit callback instead; the workspace is left to Shutdown.
func (c *TabCoordinator) CloseTab(ctx context.Context, id entity.TabID) error {
	log := logging.FromContext(ctx)

	entry, ok := c.entries[id]
	if !ok {
		return fmt.Errorf("close tab %s: %w", id, entity.ErrNotFound)
	}
	if c.tabs.Count() == 1 {
		if c.onQuit == nil {
			return ErrLastTab
		}
		log.Debug().Str("tab_id", string(id)).Msg("last tab closed, quitting")
		c.onQuit()
		return nil
	}

	wasActive := c.tabs.ActiveTabID == id
	entry.coord.Shutdown(ctx)
	c.view.RemoveTab(id)
	c.tabs.Remove(id)
	delete(c.entries, id)
	c.refreshTitles()

	if wasActive {
		c.activate(ctx, c.tabs.ActiveTabID)
	}
	c.UpdateBarVisibility(ctx)

	log.Debug().Str("tab_id", string(id)).Int("remaining", c.tabs.Count()).Msg("tab closed")
	return nil
}

// SwitchTo makes id the visible tab.
func (c *TabCoordinator) SwitchTo(ctx context.Context, id entity.TabID) error {
	if _, ok := c.entries[id]; !ok {
		return fmt.Errorf("switch to tab %s: %w", id, entity.ErrNotFound)
	}
	c.activate(ctx, id)
	return nil
}

// SwitchNext switches to the next tab, wrapping around.
func (c *TabCoordinator) SwitchNext(ctx context.Context) error {
	return c.switchBy(ctx, true)
}

// SwitchPrev switches to the previous tab, wrapping around.
func (c *TabCoordinator) SwitchPrev(ctx context.Context) error {
	return c.switchBy(ctx, false)
}

func (c *TabCoordinator) switchBy(ctx context.Context, forward bool) error {
	next := c.tabs.Next(forward)
	if next == nil {
		return nil
	}
	c.activate(ctx, next.ID)
	return nil
}

// activate shows id. The workspace left behind suspends what it can; the
// one brought up resumes and refocuses its active leaf.
func (c *TabCoordinator) activate(ctx context.Context, id entity.TabID) {
	entry, ok := c.entries[id]
	if !ok {
		return
	}
	prevID := c.view.ActiveTab()
	if prevID == id {
		return
	}
	if prev, ok := c.entries[prevID]; ok {
		prev.coord.SuspendAll()
	}

	c.tabs.SetActive(id)
	c.view.SetActive(id)
	entry.coord.ResumeAll()

	logging.FromContext(ctx).Debug().
		Str("from", string(prevID)).
		Str("to", string(id)).
		Msg("switched tab")
}

func (c *TabCoordinator) refreshTitles() {
	for _, tab := range c.tabs.Tabs {
		c.view.SetTitle(tab.ID, tab.Title())
	}
}

// UpdateBarVisibility shows the tab bar unless there is a single tab and
// auto-hide is on.
func (c *TabCoordinator) UpdateBarVisibility(ctx context.Context) {
	visible := !c.hideBar || c.tabs.Count() > 1
	logging.FromContext(ctx).Trace().
		Int("tab_count", c.tabs.Count()).
		Bool("visible", visible).
		Msg("setting tab bar visibility")
	c.view.SetBarVisible(visible)
}

// HandleAction runs tab actions and forwards every other action to the
// active workspace. It matches input.ActionHandler.
func (c *TabCoordinator) HandleAction(ctx context.Context, action input.Action) error {
	if c.shutdown {
		return nil
	}
	switch action {
	case input.ActionNewTab:
		_, err := c.Create(ctx)
		return err
	case input.ActionCloseTab:
		return c.Close(ctx)
	case input.ActionNextTab:
		return c.SwitchNext(ctx)
	case input.ActionPrevTab:
		return c.SwitchPrev(ctx)
	}

	active := c.Active()
	if active == nil {
		return nil
	}
	return active.HandleAction(ctx, action)
}

// OnModeChange shows the input mode on every workspace.
func (c *TabCoordinator) OnModeChange(from, to input.Mode) {
	c.mode = to
	for _, entry := range c.entries {
		entry.coord.OnModeChange(from, to)
	}
}

// Shutdown shuts every workspace down. The first tab saves its layout.
func (c *TabCoordinator) Shutdown(ctx context.Context) {
	if c.shutdown {
		return
	}
	c.shutdown = true
	for _, tab := range c.tabs.Tabs {
		c.entries[tab.ID].coord.Shutdown(ctx)
	}
	logging.FromContext(ctx).Debug().Int("tabs", c.tabs.Count()).Msg("tabs shut down")
}

// Active returns the coordinator of the visible tab.
func (c *TabCoordinator) Active() *WorkspaceCoordinator {
	entry, ok := c.entries[c.tabs.ActiveTabID]
	if !ok {
		return nil
	}
	return entry.coord
}

// Workspace returns the coordinator of a tab.
func (c *TabCoordinator) Workspace(id entity.TabID) (*WorkspaceCoordinator, bool) {
	entry, ok := c.entries[id]
	if !ok {
		return nil, false
	}
	return entry.coord, true
}

// Tabs returns the tab list.
func (c *TabCoordinator) Tabs() *entity.TabList { return c.tabs }

// PaneCount returns the number of panes over all tabs.
func (c *TabCoordinator) PaneCount() int {
	n := 0
	for _, tab := range c.tabs.Tabs {
		n += tab.PaneCount()
	}
	return n
}

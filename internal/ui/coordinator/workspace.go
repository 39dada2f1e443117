// Package coordinator composes the pane tree, the content lifecycles, the
// focus manager and the view synchronizer into one workspace.
package coordinator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/paneshell/internal/application/port"
	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
	"github.com/bnema/paneshell/internal/ui/component"
	"github.com/bnema/paneshell/internal/ui/content"
	"github.com/bnema/paneshell/internal/ui/focus"
	"github.com/bnema/paneshell/internal/ui/layout"
	"github.com/bnema/paneshell/internal/ui/lifecycle"
	"github.com/bnema/paneshell/internal/ui/mainloop"
)

// DefaultPersistDelay is how long layout changes settle before being saved.
const DefaultPersistDelay = 500 * time.Millisecond

const persistKey = "layout-save"

// WorkspaceCoordinatorConfig holds configuration for WorkspaceCoordinator.
type WorkspaceCoordinatorConfig struct {
	Tree      *entity.PaneTree
	View      *component.WorkspaceView
	Pool      *layout.ContainerPool
	Registry  *content.Registry
	Scheduler port.Scheduler

	// Layouts is optional; without it nothing is persisted.
	Layouts        *usecase.ManageLayoutsUseCase
	LayoutName     string
	RestoreOnStart bool
	PersistDelay   time.Duration

	DefaultContentType entity.ContentType
	RetryPolicy        lifecycle.RetryPolicy
	FocusHistorySize   int
	// MaxFocusCount applies to every leaf; zero means unlimited.
	MaxFocusCount int
	// ResizeStepPercent is the divider move of one keyboard resize.
	ResizeStepPercent float64
}

// WorkspaceCoordinator is the command surface of a workspace. All methods run
// on the main loop.
type WorkspaceCoordinator struct {
	ctx       context.Context
	logger    zerolog.Logger
	tree      *entity.PaneTree
	view      *component.WorkspaceView
	sync      *layout.Synchronizer
	focus     *focus.Manager
	registry  *content.Registry
	scheduler port.Scheduler
	coalescer *mainloop.Coalescer
	layouts   *usecase.ManageLayoutsUseCase

	layoutName     string
	restoreOnStart bool
	persistDelay   time.Duration
	defaultType    entity.ContentType
	retryPolicy    lifecycle.RetryPolicy
	maxFocusCount  int
	resizeStep     float64

	panes    map[entity.NodeID]*pane
	unsubs   []func()
	started  bool
	shutdown bool
}

// NewWorkspaceCoordinator creates a coordinator. Nothing is rendered until
// Start.
func NewWorkspaceCoordinator(ctx context.Context, cfg WorkspaceCoordinatorConfig) *WorkspaceCoordinator {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating workspace coordinator")

	if cfg.Scheduler == nil {
		panic("coordinator.NewWorkspaceCoordinator: scheduler cannot be nil")
	}
	if cfg.PersistDelay <= 0 {
		cfg.PersistDelay = DefaultPersistDelay
	}
	if cfg.DefaultContentType == "" {
		cfg.DefaultContentType = content.TypeWelcome
	}
	if cfg.RetryPolicy == (lifecycle.RetryPolicy{}) {
		cfg.RetryPolicy = lifecycle.DefaultRetryPolicy()
	}
	if cfg.FocusHistorySize <= 0 {
		cfg.FocusHistorySize = focus.DefaultHistorySize
	}
	if cfg.ResizeStepPercent <= 0 {
		cfg.ResizeStepPercent = DefaultResizeStepPercent
	}
	if cfg.Tree == nil {
		cfg.Tree = entity.NewPaneTree(cfg.DefaultContentType)
	}

	c := &WorkspaceCoordinator{
		ctx:            ctx,
		logger:         log.With().Str("component", "workspace-coordinator").Logger(),
		tree:           cfg.Tree,
		view:           cfg.View,
		registry:       cfg.Registry,
		scheduler:      cfg.Scheduler,
		coalescer:      mainloop.NewCoalescer(cfg.Scheduler),
		layouts:        cfg.Layouts,
		layoutName:     cfg.LayoutName,
		restoreOnStart: cfg.RestoreOnStart,
		persistDelay:   cfg.PersistDelay,
		defaultType:    cfg.DefaultContentType,
		retryPolicy:    cfg.RetryPolicy,
		maxFocusCount:  cfg.MaxFocusCount,
		resizeStep:     cfg.ResizeStepPercent,
		panes:          make(map[entity.NodeID]*pane),
	}

	c.focus = focus.NewManager(
		focus.WithHistorySize(cfg.FocusHistorySize),
		focus.WithLogger(logging.Component(ctx, "focus-manager")),
		focus.WithOrder(c.tree.LeafIDs),
	)
	c.sync = layout.NewSynchronizer(ctx, cfg.Pool, c, cfg.View)
	c.sync.SetOnSplitRatioChanged(c.onDividerMoved)

	return c
}

// Start restores the saved layout when configured, creates the content of
// every leaf, renders the tree and focuses the active leaf.
func (c *WorkspaceCoordinator) Start(ctx context.Context) error {
	if c.started {
		return nil
	}
	c.started = true

	if c.restoreOnStart {
		c.restoreLayout(ctx)
	}

	for leaf := range c.tree.Traverse() {
		c.createPane(leaf)
	}

	if err := c.sync.Render(c.tree); err != nil {
		return fmt.Errorf("initial render: %w", err)
	}

	c.unsubs = append(c.unsubs,
		c.tree.Subscribe(c.onTreeEvent),
		c.focus.OnFocusChanged(c.onFocusChanged),
	)

	active := c.tree.ActiveLeafID()
	c.view.SetActiveLeaf(active)
	c.focus.RequestFocus(active, focus.PriorityHigh, focus.ReasonRestore)

	c.logger.Info().
		Int("panes", c.tree.LeafCount()).
		Str("active", string(active)).
		Msg("workspace started")
	return nil
}

// Shutdown saves the layout, tears down every pane and releases all
// containers. The coordinator cannot be restarted.
func (c *WorkspaceCoordinator) Shutdown(ctx context.Context) {
	if c.shutdown {
		return
	}
	c.shutdown = true

	c.collectContentState()
	if err := c.SaveLayout(ctx); err != nil {
		logging.FromContext(logging.WithLayout(ctx, c.layoutName)).Warn().Err(err).Msg("failed to save layout on shutdown")
	}
	c.coalescer.Destroy()

	for _, unsubscribe := range c.unsubs {
		unsubscribe()
	}
	c.unsubs = nil

	c.sync.Clear()
	for id := range c.panes {
		c.destroyPane(id)
	}
	c.logger.Info().Msg("workspace shut down")
}

// LeafWidget implements layout.LeafProvider with the pane view of the leaf.
func (c *WorkspaceCoordinator) LeafWidget(id entity.NodeID) (layout.Widget, error) {
	p, ok := c.panes[id]
	if !ok {
		return nil, fmt.Errorf("pane %s: %w", id, entity.ErrNotFound)
	}
	return p.view.Widget(), nil
}

// Split splits the active leaf.
func (c *WorkspaceCoordinator) Split(ctx context.Context, orientation entity.Orientation) (entity.NodeID, error) {
	return c.SplitLeaf(ctx, c.tree.ActiveLeafID(), orientation)
}

// SplitLeaf splits a leaf, gives the new leaf the same content type and
// patches the view. The active leaf and focus stay where they were; a focused
// split leaf gets keyboard focus back after being reparented.
func (c *WorkspaceCoordinator) SplitLeaf(ctx context.Context, leafID entity.NodeID, orientation entity.Orientation) (entity.NodeID, error) {
	log := logging.FromContext(ctx)

	newID, err := c.tree.Split(leafID, orientation)
	if err != nil {
		log.Warn().Err(err).Str("pane_id", string(leafID)).Msg("failed to split pane")
		return "", err
	}

	node, _ := c.tree.Find(newID)
	c.createPane(node)

	if err := c.sync.PatchForSplit(c.tree, leafID, newID); err != nil {
		return newID, fmt.Errorf("split %s: %w", leafID, err)
	}

	c.refocus(leafID)

	log.Info().
		Str("pane_id", string(leafID)).
		Str("new_pane_id", string(newID)).
		Str("orientation", orientation.String()).
		Msg("pane split completed")
	return newID, nil
}

// Close closes the active leaf.
func (c *WorkspaceCoordinator) Close(ctx context.Context) error {
	return c.CloseLeaf(ctx, c.tree.ActiveLeafID())
}

// CloseLeaf closes a leaf and tears its content down. Closing the last leaf
// resets it to the default content type instead; when it already shows that
// type entity.ErrLastPane is returned.
func (c *WorkspaceCoordinator) CloseLeaf(ctx context.Context, leafID entity.NodeID) error {
	log := logging.FromContext(ctx)

	p, ok := c.panes[leafID]
	if !ok {
		return fmt.Errorf("close %s: %w", leafID, entity.ErrNotFound)
	}

	err := c.tree.Close(leafID)
	if errors.Is(err, entity.ErrLastPane) {
		if p.contentType == c.defaultType {
			log.Debug().Str("pane_id", string(leafID)).Msg("refusing to close last pane")
			return err
		}
		log.Debug().Str("pane_id", string(leafID)).Msg("last pane closed, resetting content")
		return c.ChangeContentType(ctx, leafID, c.defaultType)
	}
	if err != nil {
		return err
	}

	// The closed pane's wrapper must leave its container before the
	// container goes back to the pool.
	patchErr := c.sync.PatchForClose(c.tree, leafID)
	c.destroyPane(leafID)

	if c.focus.Current() != c.tree.ActiveLeafID() {
		c.focus.RequestFocus(c.tree.ActiveLeafID(), focus.PriorityHigh, focus.ReasonClose)
	}

	log.Info().
		Str("pane_id", string(leafID)).
		Int("remaining", c.tree.LeafCount()).
		Msg("pane closed")
	if patchErr != nil {
		return fmt.Errorf("close %s: %w", leafID, patchErr)
	}
	return nil
}

// refocus hands keyboard focus back to the content of the focused leaf
// without going through the focus manager, so history and focus counts are
// left alone.
func (c *WorkspaceCoordinator) refocus(leafID entity.NodeID) {
	if c.focus.Current() != leafID {
		return
	}
	p, ok := c.panes[leafID]
	if !ok || p.machine == nil || p.machine.State() != lifecycle.StateReady {
		return
	}
	if p.widget != nil {
		p.widget.Focus()
		return
	}
	p.view.GrabFocus()
}

// SetSplitRatio moves a divider programmatically.
func (c *WorkspaceCoordinator) SetSplitRatio(ctx context.Context, splitID entity.NodeID, ratio float64) error {
	if err := c.tree.SetRatio(splitID, ratio); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Str("split_id", string(splitID)).Msg("failed to set split ratio")
		return err
	}
	node, _ := c.tree.Find(splitID)
	return c.sync.UpdateSplitRatio(splitID, node.Ratio)
}

// onDividerMoved records a ratio dragged by the user.
func (c *WorkspaceCoordinator) onDividerMoved(splitID entity.NodeID, ratio float64) {
	if err := c.tree.SetRatio(splitID, ratio); err != nil {
		c.logger.Debug().Err(err).Str("split_id", string(splitID)).Msg("ignoring ratio of unknown split")
	}
}

func (c *WorkspaceCoordinator) onTreeEvent(ev entity.Event) {
	if ev.Kind == entity.EventActivePaneChanged {
		c.view.SetActiveLeaf(ev.ID)
	}
	c.schedulePersist()
}

// onFocusChanged keeps the tree's active leaf on the focused leaf.
func (c *WorkspaceCoordinator) onFocusChanged(ch focus.Change) {
	if !c.tree.IsLeaf(ch.To) {
		return
	}
	if err := c.tree.SetActive(ch.To); err != nil {
		c.logger.Debug().Err(err).Str("pane_id", string(ch.To)).Msg("focused leaf not in tree")
	}
}

// Tree returns the pane tree.
func (c *WorkspaceCoordinator) Tree() *entity.PaneTree { return c.tree }

// Focus returns the focus manager.
func (c *WorkspaceCoordinator) Focus() *focus.Manager { return c.focus }

// Synchronizer returns the view synchronizer.
func (c *WorkspaceCoordinator) Synchronizer() *layout.Synchronizer { return c.sync }

// View returns the workspace view.
func (c *WorkspaceCoordinator) View() *component.WorkspaceView { return c.view }

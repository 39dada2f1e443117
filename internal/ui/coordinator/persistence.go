package coordinator

import (
	"context"
	"errors"

	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/logging"
)

// schedulePersist saves the layout once changes have settled for
// persistDelay.
func (c *WorkspaceCoordinator) schedulePersist() {
	if c.layouts == nil || c.layoutName == "" || c.shutdown {
		return
	}
	c.coalescer.Debounce(persistKey, c.persistDelay, func() {
		if err := c.SaveLayout(c.ctx); err != nil {
			logging.FromContext(logging.WithLayout(c.ctx, c.layoutName)).
				Warn().Err(err).Msg("failed to save layout")
		}
	})
}

// FlushPersist saves a pending layout change now.
func (c *WorkspaceCoordinator) FlushPersist() {
	c.coalescer.Flush(persistKey)
}

// PersistPending reports whether a layout save is waiting to run.
func (c *WorkspaceCoordinator) PersistPending() bool {
	return c.coalescer.Pending(persistKey)
}

// SaveLayout stores the current tree, including content state, under the
// configured layout name. Without a layout store it does nothing.
func (c *WorkspaceCoordinator) SaveLayout(ctx context.Context) error {
	if c.layouts == nil || c.layoutName == "" {
		return nil
	}
	c.collectContentState()
	_, err := c.layouts.Save(ctx, c.layoutName, c.tree)
	return err
}

// restoreLayout replaces the tree with the saved layout. A missing or
// unreadable layout leaves the tree as it is.
func (c *WorkspaceCoordinator) restoreLayout(ctx context.Context) {
	if c.layouts == nil || c.layoutName == "" {
		return
	}
	log := logging.FromContext(logging.WithLayout(ctx, c.layoutName))

	err := c.layouts.Restore(ctx, c.layoutName, c.tree)
	switch {
	case err == nil:
	case errors.Is(err, usecase.ErrLayoutNotFound):
		log.Info().Msg("no saved layout, starting fresh")
	default:
		log.Warn().Err(err).Msg("failed to restore layout, starting fresh")
	}
}

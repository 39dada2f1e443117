// Package usecase contains application use cases orchestrating domain entities.
package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/domain/repository"
	"github.com/bnema/paneshell/internal/logging"
)

// ErrLayoutNotFound is returned when no layout is stored under a name.
var ErrLayoutNotFound = errors.New("layout not found")

// ErrVersionMismatch is returned when a stored layout uses a newer format.
var ErrVersionMismatch = errors.New("layout state version mismatch")

// ErrInvalidLayoutName is returned for empty layout names.
var ErrInvalidLayoutName = errors.New("layout name cannot be empty")

// ManageLayoutsUseCase saves and restores named pane-tree layouts.
type ManageLayoutsUseCase struct {
	repo repository.LayoutRepository
	now  func() time.Time
}

// NewManageLayoutsUseCase creates a new layout management use case.
func NewManageLayoutsUseCase(repo repository.LayoutRepository) *ManageLayoutsUseCase {
	return &ManageLayoutsUseCase{repo: repo, now: time.Now}
}

// Save snapshots the tree under name.
func (uc *ManageLayoutsUseCase) Save(ctx context.Context, name string, tree *entity.PaneTree) (*entity.Layout, error) {
	log := logging.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidLayoutName
	}
	if tree == nil {
		return nil, fmt.Errorf("save layout %q: nil tree", name)
	}

	layout := entity.NewLayout(name, tree, uc.now())
	if err := uc.repo.Save(ctx, layout); err != nil {
		return nil, fmt.Errorf("failed to save layout %q: %w", name, err)
	}

	log.Debug().Str("layout", name).Int("leaves", layout.LeafCount).Msg("layout saved")
	return layout, nil
}

// Load returns the stored layout after checking its format version.
func (uc *ManageLayoutsUseCase) Load(ctx context.Context, name string) (*entity.Layout, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidLayoutName
	}

	layout, err := uc.repo.Get(ctx, name)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load layout %q: %w", name, err)
	}
	if layout == nil || layout.State == nil {
		return nil, fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	if layout.State.Version > entity.LayoutStateVersion {
		return nil, fmt.Errorf("%w: got %d, max %d",
			ErrVersionMismatch, layout.State.Version, entity.LayoutStateVersion)
	}
	return layout, nil
}

// Restore loads the layout stored under name into tree. The tree is left
// unchanged on any error.
func (uc *ManageLayoutsUseCase) Restore(ctx context.Context, name string, tree *entity.PaneTree) error {
	log := logging.FromContext(ctx)

	layout, err := uc.Load(ctx, name)
	if err != nil {
		return err
	}
	if err := tree.SetState(layout.State); err != nil {
		return fmt.Errorf("restore layout %q: %w", name, err)
	}

	log.Info().
		Str("layout", name).
		Int("leaves", tree.LeafCount()).
		Str("active", string(tree.ActiveLeafID())).
		Msg("layout restored")
	return nil
}

// List returns every stored layout, most recently saved first.
func (uc *ManageLayoutsUseCase) List(ctx context.Context) ([]*entity.Layout, error) {
	layouts, err := uc.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	return layouts, nil
}

// Delete removes the layout stored under name.
func (uc *ManageLayoutsUseCase) Delete(ctx context.Context, name string) error {
	log := logging.FromContext(ctx)

	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidLayoutName
	}
	err := uc.repo.Delete(ctx, name)
	if errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrLayoutNotFound, name)
	}
	if err != nil {
		return fmt.Errorf("failed to delete layout %q: %w", name, err)
	}

	log.Info().Str("layout", name).Msg("layout deleted")
	return nil
}

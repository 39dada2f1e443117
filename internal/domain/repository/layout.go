// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/paneshell/internal/domain/entity"
)

// LayoutRepository persists named pane-tree layouts.
type LayoutRepository interface {
	// Save inserts or replaces the layout stored under layout.Name.
	Save(ctx context.Context, layout *entity.Layout) error

	// Get returns the layout stored under name, or entity.ErrNotFound.
	Get(ctx context.Context, name string) (*entity.Layout, error)

	// List returns every stored layout, most recently saved first.
	List(ctx context.Context) ([]*entity.Layout, error)

	// Delete removes the layout stored under name, or returns entity.ErrNotFound.
	Delete(ctx context.Context, name string) error
}

// Package ui provides the GTK4 presentation layer of the pane shell.
package ui

import (
	"context"

	"github.com/bnema/paneshell/internal/application/usecase"
	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/ui/theme"
)

// Dependencies holds everything the UI layer needs from the outside. It is
// built once at startup.
type Dependencies struct {
	Ctx    context.Context
	Config *config.Config

	// ConfigManager is optional; with it the UI follows config file edits.
	ConfigManager *config.Manager

	Theme *theme.Manager

	// Layouts is optional; without it nothing is persisted.
	Layouts *usecase.ManageLayoutsUseCase
}

// Validate checks that all required dependencies are set.
func (d *Dependencies) Validate() error {
	if d.Ctx == nil {
		return ErrMissingDependency("Ctx")
	}
	if d.Config == nil {
		return ErrMissingDependency("Config")
	}
	if d.Theme == nil {
		return ErrMissingDependency("Theme")
	}
	return nil
}

// DependencyError indicates a missing required dependency.
type DependencyError struct {
	Name string
}

func (e DependencyError) Error() string {
	return "missing required dependency: " + e.Name
}

// ErrMissingDependency creates a new DependencyError.
func ErrMissingDependency(name string) error {
	return DependencyError{Name: name}
}

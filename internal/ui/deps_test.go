package ui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/paneshell/internal/infrastructure/config"
	"github.com/bnema/paneshell/internal/ui/theme"
)

func TestDependencies_Validate(t *testing.T) {
	ctx := context.Background()
	cfg := config.DefaultConfig()
	th := theme.NewManager(ctx, &cfg.Render, theme.WithSystemDetector(func() bool { return true }))

	assert.NoError(t, (&Dependencies{Ctx: ctx, Config: cfg, Theme: th}).Validate())

	err := (&Dependencies{Ctx: ctx, Theme: th}).Validate()
	assert.Equal(t, DependencyError{Name: "Config"}, err)
	assert.EqualError(t, (&Dependencies{Config: cfg}).Validate(), "missing required dependency: Ctx")
	assert.EqualError(t, (&Dependencies{Ctx: ctx, Config: cfg}).Validate(), "missing required dependency: Theme")
}

func TestNew_RejectsIncompleteDependencies(t *testing.T) {
	app, err := New(&Dependencies{})

	assert.Nil(t, app)
	assert.Error(t, err)
}

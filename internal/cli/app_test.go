package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/paneshell/internal/domain/entity"
	"github.com/bnema/paneshell/internal/logging"
)

func TestNewApp_CreatesConfigAndDefersDatabase(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	app, err := NewApp(Options{ConfigDir: filepath.Join(dir, "config")})
	require.NoError(t, err)
	defer func() { assert.NoError(t, app.Close()) }()

	assert.FileExists(t, app.ConfigManager.ConfigFile())
	assert.NotNil(t, logging.FromContext(app.Ctx()))
	assert.False(t, app.db.IsInitialized())

	_, statErr := os.Stat(app.Config.Database.Path)
	assert.True(t, os.IsNotExist(statErr), "database is opened lazily")
}

func TestNewApp_LayoutsRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))

	app, err := NewApp(Options{ConfigDir: filepath.Join(dir, "config")})
	require.NoError(t, err)
	defer func() { assert.NoError(t, app.Close()) }()

	tree := entity.NewPaneTreeWithRoot("root", "welcome")
	_, err = app.Layouts.Save(app.Ctx(), "work", tree)
	require.NoError(t, err)

	layouts, err := app.Layouts.List(app.Ctx())
	require.NoError(t, err)
	require.Len(t, layouts, 1)
	assert.Equal(t, "work", layouts[0].Name)
	assert.True(t, app.db.IsInitialized())
}

package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bnema/paneshell/internal/cli"
	"github.com/bnema/paneshell/internal/domain/build"
	"github.com/bnema/paneshell/internal/domain/entity"
)

type testEnv struct {
	configDir string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	return &testEnv{configDir: filepath.Join(dir, "config")}
}

// seed saves a two-pane layout under each name.
func (e *testEnv) seed(t *testing.T, names ...string) {
	t.Helper()
	a, err := cli.NewApp(cli.Options{ConfigDir: e.configDir})
	require.NoError(t, err)
	defer func() { require.NoError(t, a.Close()) }()

	for _, name := range names {
		tree := entity.NewPaneTreeWithRoot("root", "welcome",
			entity.WithIDGenerator(entity.NewSequentialIDGenerator("n")))
		_, err := tree.Split("root", entity.OrientationHorizontal)
		require.NoError(t, err)
		_, err = a.Layouts.Save(a.Ctx(), name, tree)
		require.NoError(t, err)
	}
}

func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	layoutsJSON, layoutsShowFmt, layoutsDeleteYes = false, "tree", false
	configShowFmt, configSchemaFile, versionJSON = "toml", "", false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config-dir", e.configDir}, args...))
	err := rootCmd.Execute()
	// PersistentPostRun is skipped when RunE fails.
	if app != nil {
		require.NoError(t, app.Close())
		app = nil
	}
	return out.String(), err
}

func TestLayoutsList_JSON(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "work", "home")

	out, err := env.run(t, "layouts", "list", "--json")
	require.NoError(t, err)

	var got []layoutSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.ElementsMatch(t, []string{"work", "home"}, []string{got[0].Name, got[1].Name})
	assert.Equal(t, 2, got[0].LeafCount)
}

func TestLayoutsList_Empty(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "layouts", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "No saved layouts")
}

func TestLayoutsShow_Formats(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "work")

	out, err := env.run(t, "layouts", "show", "work", "--format", "yaml")
	require.NoError(t, err)
	var state entity.TreeState
	require.NoError(t, yaml.Unmarshal([]byte(out), &state))
	assert.Equal(t, entity.NodeTypeSplit, state.Root.Type)
	assert.Equal(t, "horizontal", state.Root.Orientation)

	out, err = env.run(t, "layouts", "show", "work", "--format", "json")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(out), &state))
	assert.Equal(t, entity.NodeID("root"), state.ActiveLeafID)

	out, err = env.run(t, "layouts", "show", "work")
	require.NoError(t, err)
	assert.Contains(t, out, "root *")

	_, err = env.run(t, "layouts", "show", "work", "--format", "xml")
	assert.ErrorContains(t, err, "unsupported format")
}

func TestLayoutsShow_Missing(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "layouts", "show", "nope")
	assert.ErrorContains(t, err, `no layout named "nope"`)
}

func TestLayoutsDelete(t *testing.T) {
	env := newTestEnv(t)
	env.seed(t, "work", "home")

	out, err := env.run(t, "layouts", "delete", "work", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "work")

	out, err = env.run(t, "layouts", "list", "--json")
	require.NoError(t, err)
	var got []layoutSummary
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "home", got[0].Name)

	_, err = env.run(t, "layouts", "delete", "work", "--yes")
	assert.ErrorContains(t, err, `no layout named "work"`)
}

func TestConfigShow_Formats(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[workspace]")

	out, err = env.run(t, "config", "show", "--format", "json")
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.NotEmpty(t, decoded)
}

func TestConfigSchema(t *testing.T) {
	env := newTestEnv(t)

	out, err := env.run(t, "config", "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "paneshell configuration")

	file := filepath.Join(t.TempDir(), "schema.json")
	out, err = env.run(t, "config", "schema", "--output", file)
	require.NoError(t, err)
	assert.Contains(t, out, file)
	assert.FileExists(t, file)
}

func TestVersion_SkipsAppInit(t *testing.T) {
	env := newTestEnv(t)
	SetBuildInfo(build.Info{Version: "1.2.3", Commit: "abc"})
	defer SetBuildInfo(build.Info{})

	out, err := env.run(t, "version", "--json")
	require.NoError(t, err)

	var info build.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "1.2.3", info.Version)
	assert.NoFileExists(t, filepath.Join(env.configDir, "config.toml"))
}

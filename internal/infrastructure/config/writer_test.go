package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", configName)

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if match := sectionHeader.FindStringSubmatch(line); match != nil {
			sections = append(sections, match[1])
		}
	}
	require.NotEmpty(t, sections)
	assert.True(t, sort.StringsAreSorted(sections), "sections not sorted: %v", sections)

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(content, &decoded))
	assert.Contains(t, decoded, "workspace")
	assert.Contains(t, decoded, "keybindings")
}

func TestWriteConfigOrdered_NilConfig(t *testing.T) {
	err := WriteConfigOrdered(nil, filepath.Join(t.TempDir(), configName))

	assert.EqualError(t, err, "config is nil")
}

func TestSortTOMLSections(t *testing.T) {
	in := "top = 1\n[zeta]\nz = 1\n\n[alpha]\na = 1\n  [alpha.inner]\n  b = 2\n"

	got := sortTOMLSections(in)

	assert.Equal(t, "top = 1\n\n[alpha]\na = 1\n\n  [alpha.inner]\n  b = 2\n\n[zeta]\nz = 1\n", got)
}

func TestMarshalSchema(t *testing.T) {
	data, err := MarshalSchema()
	require.NoError(t, err)

	schema := string(data)
	assert.Contains(t, schema, schemaID)
	assert.Contains(t, schema, "default_split_ratio")
	assert.Contains(t, schema, "activation_shortcut")
}

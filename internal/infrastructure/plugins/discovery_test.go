package plugins

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0644))
}

func TestDiscovery_ListsConventionNamedLibraries(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "tilebar-plugin-weather.so")
	touch(t, dir, "tilebar-plugin-battery.so")
	touch(t, dir, "tilebar-plugin-.so")     // empty type name
	touch(t, dir, "libweather.so")          // wrong prefix
	touch(t, dir, "tilebar-plugin-cpu.txt") // wrong extension
	require.NoError(t, os.Mkdir(filepath.Join(dir, "tilebar-plugin-dir.so"), 0755))

	types, err := NewDiscovery(dir).Available()
	require.NoError(t, err)
	assert.Equal(t, []string{"battery", "weather"}, types)
}

func TestDiscovery_MissingDirectoryMeansNothingInstalled(t *testing.T) {
	types, err := NewDiscovery(filepath.Join(t.TempDir(), "absent")).Available()
	require.NoError(t, err)
	assert.Empty(t, types)
}

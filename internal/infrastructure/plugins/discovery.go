package plugins

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Discovery lists the plugin types installable from the plugin directory.
// It only inspects file names: a library is not opened until someone asks
// for its type.
type Discovery struct {
	dir string
}

// NewDiscovery creates a discovery over dir.
func NewDiscovery(dir string) *Discovery {
	if dir == "" {
		dir = DefaultPluginDir
	}
	return &Discovery{dir: dir}
}

// Available returns the type names of every convention-named library in
// the plugin directory, sorted. A missing directory means no plugins are
// installed.
func (d *Discovery) Available() ([]string, error) {
	entries, err := os.ReadDir(d.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var types []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, LibraryPrefix) || filepath.Ext(name) != LibraryExt {
			continue
		}
		typeName := strings.TrimSuffix(strings.TrimPrefix(name, LibraryPrefix), LibraryExt)
		if typeName == "" {
			continue
		}
		types = append(types, typeName)
	}
	sort.Strings(types)
	return types, nil
}

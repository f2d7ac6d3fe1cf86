// Package config loads the panel profile and hands each plugin occurrence
// a read-only view of its settings sub-tree.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultRefresh is the panel redraw interval when the profile does not
// set one.
const DefaultRefresh = time.Second

// PluginEntry is one configured plugin occurrence in the profile, in panel
// order.
type PluginEntry struct {
	Type     string         `yaml:"type"`
	Expand   bool           `yaml:"expand"`
	Padding  int            `yaml:"padding"`
	Border   int            `yaml:"border"`
	Settings map[string]any `yaml:"settings"`
}

// Profile is the panel configuration, produced by Store.Load. In YAML the
// refresh interval is spelled as a duration string ("500ms", "2s").
type Profile struct {
	Refresh time.Duration
	Plugins []PluginEntry
}

// DefaultProfile is used when no profile file exists.
func DefaultProfile() *Profile {
	return &Profile{
		Refresh: DefaultRefresh,
		Plugins: []PluginEntry{
			{Type: "clock", Padding: 1},
			{Type: "spacer", Expand: true},
		},
	}
}

// DefaultProfilePath returns the standard profile location,
// $HOME/.config/tilebar/panel.yaml.
func DefaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "panel.yaml"
	}
	return filepath.Join(home, ".config", "tilebar", "panel.yaml")
}

// Store loads panel profiles from disk with environment overrides.
type Store struct {
	path   string
	logger *log.Logger
}

// NewStore creates a store reading from path, or the standard location
// when path is empty. TILEBAR_CONFIG overrides both.
func NewStore(path string, logger *log.Logger) *Store {
	if env := os.Getenv("TILEBAR_CONFIG"); env != "" {
		path = env
	}
	if path == "" {
		path = DefaultProfilePath()
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{path: path, logger: logger}
}

// Path returns the resolved profile location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the profile. A missing file falls back to the default
// profile; a malformed file is an error.
func (s *Store) Load() (*Profile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Printf("no profile at %s, using defaults", s.path)
			return DefaultProfile(), nil
		}
		return nil, fmt.Errorf("reading profile %s: %w", s.path, err)
	}

	var raw struct {
		Refresh string        `yaml:"refresh"`
		Plugins []PluginEntry `yaml:"plugins"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", s.path, err)
	}

	profile := Profile{Refresh: DefaultRefresh, Plugins: raw.Plugins}
	if raw.Refresh != "" {
		d, err := time.ParseDuration(raw.Refresh)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("parsing profile %s: invalid refresh %q", s.path, raw.Refresh)
		}
		profile.Refresh = d
	}
	if env := os.Getenv("TILEBAR_REFRESH"); env != "" {
		if d, err := time.ParseDuration(env); err == nil && d > 0 {
			profile.Refresh = d
		} else {
			s.logger.Printf("ignoring invalid TILEBAR_REFRESH=%q", env)
		}
	}
	if err := profile.Validate(); err != nil {
		return nil, fmt.Errorf("profile %s: %w", s.path, err)
	}
	return &profile, nil
}

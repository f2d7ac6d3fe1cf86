package config

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"

	"tilebar.dev/panel/internal/core/ports"
)

// settingsView is a gjson-backed read-only view over one plugin
// occurrence's settings. Views are cheap to copy; Sub only extends the
// path prefix.
type settingsView struct {
	raw    []byte
	prefix string
}

// NewView builds a read-only config view over settings. A nil map yields
// an empty view.
func NewView(settings map[string]any) (ports.ConfigView, error) {
	if settings == nil {
		settings = map[string]any{}
	}
	raw, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("encoding plugin settings: %w", err)
	}
	return settingsView{raw: raw}, nil
}

// View returns the entry's settings as a read-only config view.
func (e PluginEntry) View() (ports.ConfigView, error) {
	return NewView(e.Settings)
}

func (v settingsView) get(path string) gjson.Result {
	if v.prefix != "" {
		path = v.prefix + "." + path
	}
	return gjson.GetBytes(v.raw, path)
}

func (v settingsView) GetString(path string) (string, bool) {
	res := v.get(path)
	if res.Type != gjson.String {
		return "", false
	}
	return res.Str, true
}

func (v settingsView) GetInt(path string) (int, bool) {
	res := v.get(path)
	if res.Type != gjson.Number {
		return 0, false
	}
	return int(res.Int()), true
}

func (v settingsView) GetBool(path string) (bool, bool) {
	res := v.get(path)
	if !res.IsBool() {
		return false, false
	}
	return res.Bool(), true
}

func (v settingsView) Sub(path string) ports.ConfigView {
	prefix := path
	if v.prefix != "" {
		prefix = v.prefix + "." + path
	}
	return settingsView{raw: v.raw, prefix: prefix}
}

package plugins

import (
	goplugin "plugin"

	"tilebar.dev/panel/internal/core/ports"
)

// GoPluginOpener opens shared objects with the standard library plugin
// package. Opening blocks on disk I/O and runs the library's load-time
// code; there is no timeout and no way to close an opened plugin.
type GoPluginOpener struct{}

// NewGoPluginOpener returns the production module opener.
func NewGoPluginOpener() *GoPluginOpener {
	return &GoPluginOpener{}
}

// Open loads the shared object at path.
func (o *GoPluginOpener) Open(path string) (ports.ModuleHandle, error) {
	p, err := goplugin.Open(path)
	if err != nil {
		return nil, err
	}
	return goPluginHandle{p: p}, nil
}

type goPluginHandle struct {
	p *goplugin.Plugin
}

func (h goPluginHandle) Lookup(symbol string) (any, error) {
	return h.p.Lookup(symbol)
}

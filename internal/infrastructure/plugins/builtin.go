package plugins

import (
	"fmt"

	"tilebar.dev/panel/internal/core/plugin"
	"tilebar.dev/panel/internal/core/registry"
)

// RegisterBuiltins registers the plugin classes compiled into the host.
// It must run before the registry is marked host-started so the classes
// come out static and are never unloaded.
func RegisterBuiltins(reg *registry.ClassRegistry) error {
	builtins := []*plugin.Class{
		ClockClass(),
		SpacerClass(),
	}
	for _, class := range builtins {
		if err := reg.Register(class); err != nil {
			return fmt.Errorf("registering builtin plugin: %w", err)
		}
	}
	return nil
}

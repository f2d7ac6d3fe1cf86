package plugins

import "tilebar.dev/panel/internal/core/plugin"

// SpacerModule is an invisible placeholder that holds a layout slot
// without drawing anything.
type SpacerModule struct{}

// NewSpacerModule creates the built-in spacer module.
func NewSpacerModule() *SpacerModule {
	return &SpacerModule{}
}

// SpacerClass returns the spacer's class descriptor.
func SpacerClass() *plugin.Class {
	return &plugin.Class{
		Type:        "spacer",
		Name:        "Spacer",
		Version:     "1.0",
		Description: "Invisible placeholder between tiles",
		Invisible:   true,
		Module:      NewSpacerModule(),
	}
}

// Construct has nothing to set up; the hidden placeholder is already
// attached by the host.
func (m *SpacerModule) Construct(inst *plugin.Instance) error {
	return nil
}

// Destroy has nothing to release.
func (m *SpacerModule) Destroy(inst *plugin.Instance) {}

package plugins

import (
	"time"

	"tilebar.dev/panel/internal/core/plugin"
)

const defaultClockFormat = "15:04:05"

// clockState is the clock module's per-instance private state.
type clockState struct {
	format string
}

// ClockModule renders wall-clock time into its tile. It is compiled into
// the host and registered before the panel surface exists.
type ClockModule struct{}

// NewClockModule creates the built-in clock module.
func NewClockModule() *ClockModule {
	return &ClockModule{}
}

// ClockClass returns the clock's class descriptor.
func ClockClass() *plugin.Class {
	return &plugin.Class{
		Type:        "clock",
		Name:        "Clock",
		Version:     "1.0",
		Description: "Shows the current wall-clock time",
		Module:      NewClockModule(),
	}
}

// Construct reads the display format from the instance config and draws
// the first reading.
func (m *ClockModule) Construct(inst *plugin.Instance) error {
	format := defaultClockFormat
	if inst.Config != nil {
		if f, ok := inst.Config.GetString("format"); ok {
			format = f
		}
	}
	inst.Private = &clockState{format: format}
	m.Refresh(inst)
	return nil
}

// Destroy drops the clock's private state.
func (m *ClockModule) Destroy(inst *plugin.Instance) {
	inst.Private = nil
}

// Refresh redraws the current time on each panel tick.
func (m *ClockModule) Refresh(inst *plugin.Instance) {
	state, ok := inst.Private.(*clockState)
	if !ok || inst.Container == nil {
		return
	}
	inst.Container.SetContent(time.Now().Format(state.format))
}

// EditConfig describes the clock's settings.
func (m *ClockModule) EditConfig(inst *plugin.Instance) plugin.ConfigSheet {
	format := defaultClockFormat
	if state, ok := inst.Private.(*clockState); ok {
		format = state.format
	}
	return plugin.ConfigSheet{
		Title: "Clock",
		Body:  "format: Go time layout used to render the clock (current: " + format + ")",
	}
}

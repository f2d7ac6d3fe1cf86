// Package services orchestrates plugin lifecycle on behalf of the host.
package services

import (
	"fmt"
	"io"
	"log"

	"tilebar.dev/panel/internal/core/plugin"
	"tilebar.dev/panel/internal/core/ports"
	"tilebar.dev/panel/internal/infrastructure/plugins"
)

// InstanceService allocates, starts, stops and releases plugin instances,
// orchestrating the dynamic loader, each module's constructor and
// destructor, and the host layout. It owns the active-instance counter
// outright; the host only queries it.
//
// All calls happen on the host's single control goroutine. The hard
// ordering contract: Stop runs the module destructor before the tile
// leaves the layout, always.
type InstanceService struct {
	loader *plugins.DynamicLoader
	layout ports.Layout
	menu   ports.MenuHandler
	active int
	logger *log.Logger
}

// NewInstanceService wires the service to the loader, the host layout and
// the host's generic context-menu handler.
func NewInstanceService(loader *plugins.DynamicLoader, layout ports.Layout, menu ports.MenuHandler, logger *log.Logger) *InstanceService {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &InstanceService{
		loader: loader,
		layout: layout,
		menu:   menu,
		logger: logger,
	}
}

// Load resolves typeName through the loader and allocates a fresh
// instance. No tile is created and the module constructor is not called
// yet; the host must populate pack options and the config view before
// Start.
func (s *InstanceService) Load(typeName string) (*plugin.Instance, error) {
	class, err := s.loader.Get(typeName)
	if err != nil {
		return nil, err
	}
	return plugin.NewInstance(class), nil
}

// Start attaches the instance to the panel and runs its constructor.
// Visible classes get a shown tile named by type; invisible classes get a
// hidden placeholder occupying the same positional slot, so a plugin-list
// index keeps corresponding to a layout-child index.
//
// On constructor failure the just-attached tile is removed and the error
// returned; the instance itself stays with the caller, who must still call
// Put.
func (s *InstanceService) Start(inst *plugin.Instance) error {
	class := inst.Class

	container, err := s.layout.Append(class.Type, ports.PackOptions{
		Expand:  inst.Expand,
		Padding: inst.Padding,
		Hidden:  class.Invisible,
	})
	if err != nil {
		return fmt.Errorf("attaching %q to panel: %w", class.Type, err)
	}
	if !class.Invisible {
		container.SetBorderWidth(inst.Border)
		container.OnMenu(s.menu)
		container.Show()
	}
	inst.Container = container

	if err := class.Module.Construct(inst); err != nil {
		if removeErr := s.layout.Remove(container); removeErr != nil {
			s.logger.Printf("detaching failed %q tile: %v", class.Type, removeErr)
		}
		inst.Container = nil
		return plugin.ErrConstruct(class.Type, err)
	}

	s.active++
	return nil
}

// Stop runs the instance's destructor, then detaches its tile. The
// destructor must only release plugin-owned resources; tile teardown
// (which cascades to anything the plugin rendered) is the host's job and
// always comes second.
func (s *InstanceService) Stop(inst *plugin.Instance) {
	inst.Class.Module.Destroy(inst)
	s.active--

	if inst.Container != nil {
		if err := s.layout.Remove(inst.Container); err != nil {
			s.logger.Printf("detaching %q tile: %v", inst.Class.Type, err)
		}
		inst.Container = nil
	}
}

// Put releases the instance and drops its reference on the class. The
// class type is captured first because releasing the last dynamic
// reference unregisters the class.
func (s *InstanceService) Put(inst *plugin.Instance) {
	typeName := inst.Class.Type
	inst.Class = nil
	inst.Config = nil
	inst.Private = nil
	s.loader.Put(typeName)
}

// Active returns the number of successfully started, not yet stopped
// instances.
func (s *InstanceService) Active() int {
	return s.active
}

// Refresh lets modules that implement plugin.Refresher redraw inst on a
// panel tick.
func (s *InstanceService) Refresh(inst *plugin.Instance) {
	if inst.Class == nil {
		return
	}
	if refresher, ok := inst.Class.Module.(plugin.Refresher); ok {
		refresher.Refresh(inst)
	}
}

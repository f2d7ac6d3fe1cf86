package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tilebar.dev/panel/internal/application/services"
	"tilebar.dev/panel/internal/core/plugin"
	"tilebar.dev/panel/internal/core/ports"
	"tilebar.dev/panel/internal/infrastructure/config"
)

// NewRunCommand creates the run command.
func NewRunCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the panel",
		Long: `Load the panel profile, start every configured plugin and run the
panel until quit. A plugin whose constructor fails is skipped; the rest of
the panel keeps running.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPanel(container)
		},
	}
}

// runPanel assembles the panel surface, starts the configured plugins and
// runs the Bubble Tea program until quit.
func runPanel(container *CLIContainer) error {
	profile, err := container.Store.Load()
	if err != nil {
		return fmt.Errorf("loading panel profile: %w", err)
	}

	surface := NewSurface()
	status := &panelStatus{}
	menu := func(ctx ports.MenuContext) {
		status.set(fmt.Sprintf("menu: %s (slot %d)", ctx.TileName, ctx.Slot))
	}
	service := services.NewInstanceService(container.Loader, surface, menu, container.Logger)

	// The panel surface exists now; anything registered from here on is
	// a dynamic class.
	container.Registry.MarkHostStarted()

	instances := startConfigured(container, service, profile.Plugins, status)
	defer func() {
		for i := len(instances) - 1; i >= 0; i-- {
			service.Stop(instances[i])
			service.Put(instances[i])
		}
	}()

	model := newPanelModel(surface, service, status, instances, profile.Refresh)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("panel failed: %w", err)
	}
	return nil
}

// startConfigured loads and starts each profile entry in panel order.
// Failures skip the one plugin and keep going.
func startConfigured(container *CLIContainer, service *services.InstanceService, entries []config.PluginEntry, status *panelStatus) []*plugin.Instance {
	var instances []*plugin.Instance
	for _, entry := range entries {
		inst, err := service.Load(entry.Type)
		if err != nil {
			container.Logger.Printf("skipping %q: %v", entry.Type, err)
			status.set(fmt.Sprintf("skipped %s: %v", entry.Type, err))
			continue
		}

		view, err := entry.View()
		if err != nil {
			container.Logger.Printf("skipping %q: %v", entry.Type, err)
			service.Put(inst)
			continue
		}
		inst.Config = view
		inst.Expand = entry.Expand
		inst.Padding = entry.Padding
		inst.Border = entry.Border

		if err := service.Start(inst); err != nil {
			container.Logger.Printf("skipping %q: %v", entry.Type, err)
			status.set(fmt.Sprintf("skipped %s: %v", entry.Type, err))
			service.Put(inst)
			continue
		}
		instances = append(instances, inst)
	}
	return instances
}

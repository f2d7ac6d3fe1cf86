package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"tilebar.dev/panel/internal/core/plugin"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand(container *CLIContainer) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect panel configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showProfile(container)
		},
	}

	configCmd.AddCommand(&cobra.Command{
		Use:   "edit <type>",
		Short: "Show a plugin type's configuration sheet",
		Long: `Resolve the plugin type (loading its library if needed) and render the
configuration sheet its module provides. Types without an editor get the
default sheet pointing at the documentation.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return showConfigSheet(container, args[0])
		},
	})

	return configCmd
}

func showProfile(container *CLIContainer) error {
	profile, err := container.Store.Load()
	if err != nil {
		return err
	}

	fmt.Printf("profile: %s\n", container.Store.Path())
	fmt.Printf("refresh: %s\n", profile.Refresh)
	fmt.Printf("plugins:\n")
	for i, entry := range profile.Plugins {
		fmt.Printf("  %d. %s (expand=%v padding=%d border=%d)\n",
			i+1, entry.Type, entry.Expand, entry.Padding, entry.Border)
	}
	return nil
}

func showConfigSheet(container *CLIContainer, typeName string) error {
	class, err := container.Loader.Get(typeName)
	if err != nil {
		return err
	}
	defer container.Loader.Put(typeName)

	inst := plugin.NewInstance(class)
	sheet := class.Editor()(inst)

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	frame := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)

	fmt.Println(frame.Render(titleStyle.Render(sheet.Title) + "\n" + sheet.Body))
	return nil
}

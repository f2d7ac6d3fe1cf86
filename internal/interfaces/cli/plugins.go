package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// NewPluginsCommand creates the plugins command.
func NewPluginsCommand(container *CLIContainer) *cobra.Command {
	var available bool

	cmd := &cobra.Command{
		Use:   "plugins",
		Short: "List known plugin types",
		Long: `List every plugin type currently registered with the host. Built-in
classes are always present; dynamic classes only appear while at least one
instance holds them. With --available, list the libraries installed in the
plugin directory instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if available {
				return listAvailable(container, cmd.OutOrStdout())
			}
			return listPlugins(container, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&available, "available", false, "List installable libraries in the plugin directory")
	return cmd
}

func listAvailable(container *CLIContainer, out io.Writer) error {
	types, err := container.Discovery.Available()
	if err != nil {
		return fmt.Errorf("scanning plugin directory: %w", err)
	}
	if len(types) == 0 {
		fmt.Fprintln(out, "no plugin libraries installed")
		return nil
	}
	for _, name := range types {
		fmt.Fprintln(out, name)
	}
	return nil
}

func listPlugins(container *CLIContainer, out io.Writer) error {
	if container.Registry.Empty() {
		fmt.Fprintln(out, "no plugin types registered")
		return nil
	}

	types := container.Registry.Types()
	sort.Strings(types)

	headerStyle := lipgloss.NewStyle().Bold(true)
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-12s %-8s %-8s %-10s %s",
		"TYPE", "VERSION", "ORIGIN", "INSTANCES", "DESCRIPTION")))
	b.WriteString("\n")

	for _, name := range types {
		class, ok := container.Registry.Find(name)
		if !ok {
			continue
		}
		origin := "static"
		if class.Dynamic {
			origin = "dynamic"
		}
		b.WriteString(fmt.Sprintf("%-12s %-8s %-8s %-10d %s\n",
			class.Type, class.Version, origin, class.Count, class.Description))
	}

	fmt.Fprint(out, b.String())
	return nil
}

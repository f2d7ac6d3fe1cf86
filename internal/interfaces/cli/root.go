package cli

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"tilebar.dev/panel/internal/core/registry"
	"tilebar.dev/panel/internal/infrastructure/config"
	"tilebar.dev/panel/internal/infrastructure/plugins"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds the dependencies CLI commands work with.
type CLIContainer struct {
	Registry  *registry.ClassRegistry
	Loader    *plugins.DynamicLoader
	Discovery *plugins.Discovery
	Store     *config.Store
	Logger    *log.Logger
}

// NewRootCommand builds the base command.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tilebar",
		Short: "tilebar - plugin-driven terminal status panel",
		Long: `tilebar renders an ordered row of plugin tiles in the terminal.

Plugin types are discovered by name: classes compiled into the host are
registered at startup, everything else is loaded on demand from shared
objects in the plugin directory.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if path, err := cmd.Flags().GetString("config"); err == nil && path != "" {
				container.Store = config.NewStore(path, container.Logger)
			}
			return nil
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().String("config", "", "Profile path (default is $HOME/.config/tilebar/panel.yaml)")

	rootCmd.AddCommand(NewRunCommand(container))
	rootCmd.AddCommand(NewPluginsCommand(container))
	rootCmd.AddCommand(NewConfigCommand(container))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(container *CLIContainer) {
	if err := NewRootCommand(container).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// goVersion returns the Go version used to build the binary
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

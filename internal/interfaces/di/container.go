// Package di wires the host's dependencies together.
package di

import (
	"fmt"
	"log"
	"os"

	"tilebar.dev/panel/internal/core/registry"
	"tilebar.dev/panel/internal/infrastructure/config"
	"tilebar.dev/panel/internal/infrastructure/plugins"
	"tilebar.dev/panel/internal/interfaces/cli"
)

// Container holds all application dependencies.
type Container struct {
	Registry  *registry.ClassRegistry
	Loader    *plugins.DynamicLoader
	Discovery *plugins.Discovery
	Store     *config.Store
	Logger    *log.Logger
}

// NewContainer creates and configures the dependency injection container.
// Built-in plugin classes register here, before any panel surface exists,
// which is what makes them static.
func NewContainer() (*Container, error) {
	c := &Container{
		Logger: log.New(os.Stderr, "[tilebar] ", log.LstdFlags),
	}

	c.Registry = registry.NewClassRegistry(c.Logger)
	if err := plugins.RegisterBuiltins(c.Registry); err != nil {
		return nil, fmt.Errorf("initializing builtin plugins: %w", err)
	}

	c.Loader = plugins.NewDynamicLoader(c.Registry, plugins.NewGoPluginOpener(), plugins.DefaultPluginDir, c.Logger)
	c.Discovery = plugins.NewDiscovery(plugins.DefaultPluginDir)
	c.Store = config.NewStore("", c.Logger)

	return c, nil
}

// CLIContainer exposes the dependencies CLI commands need.
func (c *Container) CLIContainer() *cli.CLIContainer {
	return &cli.CLIContainer{
		Registry:  c.Registry,
		Loader:    c.Loader,
		Discovery: c.Discovery,
		Store:     c.Store,
		Logger:    c.Logger,
	}
}

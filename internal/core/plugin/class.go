package plugin

import "fmt"

// DocsURL is the fixed documentation location referenced by the default
// configuration sheet.
const DocsURL = "https://tilebar.dev/docs/plugins"

// Module is the behavior a plugin type provides. Each plugin module ships
// exactly one implementation, selected by type name at load time.
type Module interface {
	// Construct initializes one instance. The host has already attached
	// the instance's container (if the class is visible) and populated
	// its pack options and config view. Construct must not destroy the
	// container and must not re-enter the host lifecycle for its own
	// type.
	Construct(inst *Instance) error

	// Destroy releases plugin-owned resources (tickers, subscriptions).
	// It runs before the host detaches the container and must not touch
	// the layout itself.
	Destroy(inst *Instance)
}

// ConfigEditor is the optional third module operation. Modules that expose
// a configuration editor implement it; everything else gets
// DefaultConfigSheet.
type ConfigEditor interface {
	EditConfig(inst *Instance) ConfigSheet
}

// ConfigSheet is a static configuration view rendered by the host.
type ConfigSheet struct {
	Title string
	Body  string
}

// Class describes one plugin type. A Class is created once by its module
// and lives until the module is unloaded (dynamic) or the process exits
// (static).
type Class struct {
	// Type is the unique registry key
	Type string

	// Name, Version and Description are presentation metadata
	Name        string
	Version     string
	Description string

	// Invisible marks classes that have no on-screen tile
	Invisible bool

	// Module implements the class's behavior
	Module Module

	// Dynamic is set by the registry: true when the class registered
	// after the panel surface already existed
	Dynamic bool

	// Count is the number of live instances referencing this class.
	// It is maintained by the loader's Get/Put; nothing else mutates it.
	Count int
}

// Validate reports whether the class is complete enough to register.
func (c *Class) Validate() error {
	if c.Type == "" {
		return fmt.Errorf("plugin class has no type name")
	}
	if c.Module == nil {
		return fmt.Errorf("plugin class %q has no module", c.Type)
	}
	return nil
}

// Editor returns the class's configuration editor, falling back to the
// default "not implemented" sheet when the module does not provide one.
func (c *Class) Editor() func(inst *Instance) ConfigSheet {
	if ed, ok := c.Module.(ConfigEditor); ok {
		return ed.EditConfig
	}
	return func(*Instance) ConfigSheet {
		return DefaultConfigSheet(c)
	}
}

// DefaultConfigSheet is returned for classes without a config editor.
func DefaultConfigSheet(c *Class) ConfigSheet {
	display := c.Name
	if display == "" {
		display = c.Type
	}
	return ConfigSheet{
		Title: display,
		Body: fmt.Sprintf("%s does not provide a configuration editor.\nSee %s for available settings.",
			display, DocsURL),
	}
}

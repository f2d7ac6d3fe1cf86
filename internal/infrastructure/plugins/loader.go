// Package plugins implements the dynamic side of the plugin host: finding
// a class descriptor by type name and loading its backing shared object on
// demand when the registry does not know the type yet.
package plugins

import (
	"fmt"
	"io"
	"log"
	"path/filepath"

	"tilebar.dev/panel/internal/core/plugin"
	"tilebar.dev/panel/internal/core/ports"
	"tilebar.dev/panel/internal/core/registry"
)

// Library Naming Convention: tilebar-plugin-<type>.so
const (
	LibraryPrefix = "tilebar-plugin-"
	LibraryExt    = ".so"
)

// Entry points every dynamic module must export. ClassSymbol yields the
// module's class descriptor; ShutdownSymbol is an optional hook invoked
// exactly once when the last instance of the class is released.
const (
	ClassSymbol    = "PanelClass"
	ShutdownSymbol = "PanelClassShutdown"
)

// DefaultPluginDir is the single directory searched for plugin libraries.
// Overridden by ldflags at build time; no directory scanning or versioned
// lookup occurs.
var DefaultPluginDir = "/usr/local/lib/tilebar/plugins"

// loadedModule tracks one shared object opened by this loader. The Go
// runtime keeps an opened plugin resident for the life of the process, so
// releasing a module only drops host bookkeeping; the code pages stay.
type loadedModule struct {
	handle   ports.ModuleHandle
	shutdown func()
}

// DynamicLoader resolves plugin type names to class descriptors, loading
// the backing library on demand. It tracks its own opened-by-us state per
// path instead of relying on the platform loader's internal open count.
type DynamicLoader struct {
	registry *registry.ClassRegistry
	opener   ports.ModuleOpener
	dir      string
	modules  map[string]*loadedModule // keyed by class type name
	logger   *log.Logger
}

// NewDynamicLoader creates a loader that searches dir for plugin libraries.
func NewDynamicLoader(reg *registry.ClassRegistry, opener ports.ModuleOpener, dir string, logger *log.Logger) *DynamicLoader {
	if dir == "" {
		dir = DefaultPluginDir
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &DynamicLoader{
		registry: reg,
		opener:   opener,
		dir:      dir,
		modules:  make(map[string]*loadedModule),
		logger:   logger,
	}
}

// LibraryPath returns the fixed convention path for typeName's library.
func (l *DynamicLoader) LibraryPath(typeName string) string {
	return filepath.Join(l.dir, LibraryPrefix+typeName+LibraryExt)
}

// Get resolves typeName to its class descriptor and takes a reference on
// it. Statically registered classes and already-loaded dynamic ones hit
// the registry directly with no library I/O; unknown types trigger a load
// of the convention-named library, whose exported PanelClass entry point
// supplies the descriptor.
func (l *DynamicLoader) Get(typeName string) (*plugin.Class, error) {
	if class, ok := l.registry.Find(typeName); ok {
		class.Count++
		return class, nil
	}

	path := l.LibraryPath(typeName)
	handle, err := l.opener.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q (%v)", plugin.ErrUnknownType, typeName, err)
	}

	class, err := l.resolveClass(handle, path)
	if err != nil {
		// The library is already resident and cannot be evicted; all
		// we can do is report the failure.
		return nil, fmt.Errorf("loading plugin type %q: %w", typeName, err)
	}
	if class.Type != typeName {
		return nil, fmt.Errorf("loading plugin type %q: library %s declares type %q",
			typeName, path, class.Type)
	}
	if err := l.registry.Register(class); err != nil {
		return nil, fmt.Errorf("loading plugin type %q: %w", typeName, err)
	}

	mod := &loadedModule{handle: handle}
	if shutdown, err := lookupFunc[func()](handle, ShutdownSymbol); err == nil {
		mod.shutdown = shutdown
	}
	l.modules[typeName] = mod

	class.Count++
	l.logger.Printf("loaded plugin type %q from %s", typeName, path)
	return class, nil
}

// Put releases one reference on typeName. Unknown types are ignored. When
// the last reference on a dynamic class goes, its module's shutdown hook
// runs exactly once and the class leaves the registry; static classes stay
// registered for the remainder of the process. The shared object itself
// remains resident either way.
func (l *DynamicLoader) Put(typeName string) {
	class, ok := l.registry.Find(typeName)
	if !ok {
		return
	}

	class.Count--
	if class.Count > 0 || !class.Dynamic {
		return
	}

	if mod, ok := l.modules[typeName]; ok {
		if mod.shutdown != nil {
			mod.shutdown()
		}
		delete(l.modules, typeName)
	}
	l.registry.Unregister(class)
	l.logger.Printf("released last instance of dynamic plugin type %q", typeName)
}

// Resident reports whether this loader currently holds a module handle for
// typeName.
func (l *DynamicLoader) Resident(typeName string) bool {
	_, ok := l.modules[typeName]
	return ok
}

// resolveClass calls the library's class entry point.
func (l *DynamicLoader) resolveClass(handle ports.ModuleHandle, path string) (*plugin.Class, error) {
	provider, err := lookupFunc[func() *plugin.Class](handle, ClassSymbol)
	if err != nil {
		return nil, plugin.ErrNoEntryPoint(path, ClassSymbol)
	}
	class := provider()
	if class == nil {
		return nil, fmt.Errorf("entry point %s in %s returned no class", ClassSymbol, path)
	}
	return class, nil
}

// lookupFunc resolves symbol from handle and asserts it to F.
func lookupFunc[F any](handle ports.ModuleHandle, symbol string) (F, error) {
	var zero F
	sym, err := handle.Lookup(symbol)
	if err != nil {
		return zero, err
	}
	fn, ok := sym.(F)
	if !ok {
		return zero, fmt.Errorf("symbol %s has type %T", symbol, sym)
	}
	return fn, nil
}

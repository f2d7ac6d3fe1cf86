// Package registry holds the process-scoped map of known plugin types.
//
// The registry is single-threaded by contract: every call happens on the
// host's one control goroutine, before the panel program starts or from
// inside its update loop. It carries no locking of its own.
package registry

import (
	"io"
	"log"

	"tilebar.dev/panel/internal/core/plugin"
)

// ClassRegistry maps plugin type names to their class descriptors. The
// backing map is allocated lazily on first registration and released when
// the last entry is removed, so Empty doubles as "no plugin type is
// currently known".
type ClassRegistry struct {
	classes     map[string]*plugin.Class
	hostStarted bool
	logger      *log.Logger
}

// NewClassRegistry creates an empty registry.
func NewClassRegistry(logger *log.Logger) *ClassRegistry {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &ClassRegistry{logger: logger}
}

// MarkHostStarted records that the host's panel surface now exists. Every
// class registered from here on is considered dynamic: it arrived at
// runtime rather than being compiled into the host.
func (r *ClassRegistry) MarkHostStarted() {
	r.hostStarted = true
}

// Register inserts class under its type name. Registering a type twice
// returns an error and leaves the first registration untouched; the caller
// decides whether that is fatal.
func (r *ClassRegistry) Register(class *plugin.Class) error {
	if err := class.Validate(); err != nil {
		return err
	}
	if _, exists := r.classes[class.Type]; exists {
		return plugin.ErrDuplicateType(class.Type)
	}
	if r.classes == nil {
		r.classes = make(map[string]*plugin.Class)
	}
	class.Dynamic = r.hostStarted
	r.classes[class.Type] = class
	return nil
}

// Unregister removes class from the registry. An unknown type indicates a
// lifecycle ordering bug and is logged, but does not corrupt state. When
// the last entry goes, the backing map is released so the next Register
// starts fresh.
func (r *ClassRegistry) Unregister(class *plugin.Class) {
	if _, exists := r.classes[class.Type]; !exists {
		r.logger.Printf("unregister: plugin type %q is not registered", class.Type)
		return
	}
	delete(r.classes, class.Type)
	if len(r.classes) == 0 {
		r.classes = nil
	}
}

// Find looks up a class by type name. It never mutates the registry.
func (r *ClassRegistry) Find(typeName string) (*plugin.Class, bool) {
	class, ok := r.classes[typeName]
	return class, ok
}

// Empty reports whether no plugin type is currently known.
func (r *ClassRegistry) Empty() bool {
	return len(r.classes) == 0
}

// Types returns the registered type names in no particular order.
func (r *ClassRegistry) Types() []string {
	names := make([]string, 0, len(r.classes))
	for name := range r.classes {
		names = append(names, name)
	}
	return names
}

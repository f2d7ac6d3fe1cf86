package ports

// ModuleHandle is an opened shared object. The platform loader keeps the
// object resident for the life of the process; a handle only provides
// symbol lookup.
type ModuleHandle interface {
	// Lookup resolves an exported symbol by name
	Lookup(symbol string) (any, error)
}

// ModuleOpener is the dynamic-library boundary. The production
// implementation wraps the standard library plugin package; tests use a
// fake.
type ModuleOpener interface {
	// Open loads the shared object at path, running its load-time code
	Open(path string) (ModuleHandle, error)
}

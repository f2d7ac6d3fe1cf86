package plugin

import "fmt"

// Registry and loader errors
var (
	ErrUnknownType = fmt.Errorf("plugin type is not registered")
)

// ErrDuplicateType creates an error for a second registration of a type
func ErrDuplicateType(typeName string) error {
	return fmt.Errorf("plugin type %q is already registered", typeName)
}

// ErrNoEntryPoint creates an error for a library missing its entry point
func ErrNoEntryPoint(path, symbol string) error {
	return fmt.Errorf("library %s does not export %s", path, symbol)
}

// ErrConstruct wraps a module constructor failure
func ErrConstruct(typeName string, err error) error {
	return fmt.Errorf("constructing %q failed: %w", typeName, err)
}

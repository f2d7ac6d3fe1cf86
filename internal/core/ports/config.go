package ports

// ConfigView is a read-only, path-addressed view into one plugin
// occurrence's settings sub-tree. Paths use dotted notation
// (e.g. "display.format"). No write-back path is exposed.
type ConfigView interface {
	// GetString returns the string at path and whether it exists
	GetString(path string) (string, bool)

	// GetInt returns the integer at path and whether it exists
	GetInt(path string) (int, bool)

	// GetBool returns the boolean at path and whether it exists
	GetBool(path string) (bool, bool)

	// Sub returns a view scoped to the sub-tree at path. A view over a
	// missing sub-tree is valid and simply reports no keys.
	Sub(path string) ConfigView
}

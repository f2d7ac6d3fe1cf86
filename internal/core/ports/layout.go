package ports

// PackOptions control how a tile is packed into the panel layout.
type PackOptions struct {
	// Expand lets the tile share whatever width is left after fixed tiles
	Expand bool

	// Padding is the number of blank cells on each side of the tile
	Padding int

	// Hidden packs the tile as an invisible placeholder that still
	// occupies its positional slot
	Hidden bool
}

// MenuContext is the shared host context handed to a tile's context-menu
// handler when the menu is invoked.
type MenuContext struct {
	// TileName is the name the tile was appended under
	TileName string

	// Slot is the tile's position in the layout, in append order
	Slot int
}

// MenuHandler is the generic context-menu callback supplied by the host.
type MenuHandler func(ctx MenuContext)

// Container is one visual slot owned by the host layout. A plugin instance
// remembers its container only to hand it back at stop time; the layout
// owns it once attached.
type Container interface {
	// Name returns the name the container was appended under
	Name() string

	// SetBorderWidth sets the border width drawn around the tile
	SetBorderWidth(width int)

	// SetContent replaces the tile's rendered content
	SetContent(content string)

	// OnMenu wires the host context-menu handler onto the tile
	OnMenu(handler MenuHandler)

	// Show makes the tile visible
	Show()

	// Hide makes the tile invisible while keeping its slot
	Hide()
}

// Layout is the host's ordered sequence of visual slots. Tiles are appended
// in call order; removal cascades to any content the plugin rendered into
// the tile.
type Layout interface {
	// Append adds a tile named name at the end of the layout
	Append(name string, opts PackOptions) (Container, error)

	// Remove detaches a previously appended tile from the layout
	Remove(c Container) error

	// Len returns the number of attached tiles
	Len() int
}

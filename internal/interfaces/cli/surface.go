package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"tilebar.dev/panel/internal/core/ports"
)

// tile is one visual slot in the panel. It satisfies ports.Container; the
// surface owns it once attached.
type tile struct {
	name    string
	content string
	hidden  bool
	border  int
	padding int
	expand  bool
	menu    ports.MenuHandler
}

func (t *tile) Name() string { return t.name }

func (t *tile) SetBorderWidth(width int) { t.border = width }

func (t *tile) SetContent(content string) { t.content = content }

func (t *tile) OnMenu(handler ports.MenuHandler) { t.menu = handler }

func (t *tile) Show() { t.hidden = false }

func (t *tile) Hide() { t.hidden = true }

// Surface is the panel's ordered sequence of visual slots. Tiles are
// appended in call order and rendered left to right; hidden placeholders
// keep their slot but produce no output.
type Surface struct {
	tiles []*tile
}

// NewSurface creates an empty panel surface.
func NewSurface() *Surface {
	return &Surface{}
}

// Append adds a tile at the end of the panel.
func (s *Surface) Append(name string, opts ports.PackOptions) (ports.Container, error) {
	t := &tile{
		name:    name,
		hidden:  opts.Hidden,
		padding: opts.Padding,
		expand:  opts.Expand,
	}
	s.tiles = append(s.tiles, t)
	return t, nil
}

// Remove detaches c from the panel, cascading to whatever the plugin
// rendered into it.
func (s *Surface) Remove(c ports.Container) error {
	for i, t := range s.tiles {
		if ports.Container(t) == c {
			s.tiles = append(s.tiles[:i], s.tiles[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("container %q is not attached to the panel", c.Name())
}

// Len returns the number of attached tiles, hidden placeholders included.
func (s *Surface) Len() int {
	return len(s.tiles)
}

// NameAt returns the name of the tile in slot i.
func (s *Surface) NameAt(i int) (string, bool) {
	if i < 0 || i >= len(s.tiles) {
		return "", false
	}
	return s.tiles[i].name, true
}

// MenuAt invokes the context-menu handler wired to the tile in slot i.
func (s *Surface) MenuAt(i int) {
	if i < 0 || i >= len(s.tiles) {
		return
	}
	t := s.tiles[i]
	if t.menu != nil {
		t.menu(ports.MenuContext{TileName: t.name, Slot: i})
	}
}

// Render draws the panel row at the given terminal width. Expanding tiles
// split whatever width is left after the fixed ones.
func (s *Surface) Render(width int) string {
	var fixed int
	var expanders int
	for _, t := range s.tiles {
		if t.hidden {
			continue
		}
		if t.expand {
			expanders++
			continue
		}
		fixed += lipgloss.Width(t.render(0))
	}

	share, extra := 0, 0
	if expanders > 0 && width > fixed {
		share = (width - fixed) / expanders
		extra = (width - fixed) % expanders
	}

	var cells []string
	for _, t := range s.tiles {
		if t.hidden {
			continue
		}
		w := 0
		if t.expand {
			w = share
			if extra > 0 {
				w++
				extra--
			}
		}
		cells = append(cells, t.render(w))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, cells...)
}

// render draws one tile; w > 0 forces a total width for expanding tiles.
func (t *tile) render(w int) string {
	style := lipgloss.NewStyle().Padding(0, t.padding)
	if t.border > 0 {
		style = style.Border(lipgloss.NormalBorder())
	}
	if w > 0 {
		style = style.Width(w)
	}
	return style.Render(t.content)
}

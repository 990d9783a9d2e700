// Package theme resolves the icons and style functions used to draw a board.
package theme

import "fmt"

// Display places the options legend relative to the grid.
type Display string

const (
	DisplayRight  Display = "right"
	DisplayTop    Display = "top"
	DisplayBottom Display = "bottom"
)

// Displays lists every legend placement.
var Displays = []Display{DisplayRight, DisplayTop, DisplayBottom}

// Valid reports whether d is a known placement.
func (d Display) Valid() bool {
	for _, known := range Displays {
		if d == known {
			return true
		}
	}
	return false
}

// Icons are the glyphs drawn inside cells and in the legend.
type Icons struct {
	// Unselected is drawn in empty cells.
	Unselected string
	// Options holds one glyph per option, by index.
	Options []string
}

// Style holds the rendering functions. Every field is set on a resolved theme.
type Style struct {
	Prefix     func(string) string
	DonePrefix func(string) string
	Message    func(string) string
	Help       func(string) string

	SelectedCell   func(string) string
	UnselectedCell func(string) string
	SelectedIcon   func(string) string
	UnselectedIcon func(string) string

	SelectedOption   func(icon, name string) string
	UnselectedOption func(icon, name string) string

	OptionsDisplay Display
}

// Theme is a fully resolved theme.
type Theme struct {
	Prefix     string
	DonePrefix string
	Icons      Icons
	Style      Style
}

// Styler is what the renderer needs from a theme.
type Styler interface {
	Icon(option int) string
	Cell(icon string, selected bool) string
	Option(option int, name string, selected bool) string
	Display() Display
}

var _ Styler = Theme{}

// Icon returns the glyph for an option index, or the unselected glyph when
// option is negative.
func (t Theme) Icon(option int) string {
	if option < 0 {
		return t.Icons.Unselected
	}
	if option >= len(t.Icons.Options) {
		return fmt.Sprintf("%d", option+1)
	}
	return t.Icons.Options[option]
}

// Cell styles an icon and wraps it in the cell decoration.
func (t Theme) Cell(icon string, selected bool) string {
	if selected {
		return t.Style.SelectedCell(t.Style.SelectedIcon(icon))
	}
	return t.Style.UnselectedCell(t.Style.UnselectedIcon(icon))
}

// Option renders one legend entry.
func (t Theme) Option(option int, name string, selected bool) string {
	if selected {
		return t.Style.SelectedOption(t.Icon(option), name)
	}
	return t.Style.UnselectedOption(t.Icon(option), name)
}

// Display returns the legend placement.
func (t Theme) Display() Display {
	return t.Style.OptionsDisplay
}

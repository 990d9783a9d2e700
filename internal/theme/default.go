package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary = lipgloss.Color("4")   // Blue
	ColorSuccess = lipgloss.Color("2")   // Green
	ColorCursor  = lipgloss.Color("6")   // Cyan
	ColorMuted   = lipgloss.Color("245") // Light gray
)

// Styles
var (
	PrefixStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	DonePrefixStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	MessageStyle = lipgloss.NewStyle().
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	BracketStyle = lipgloss.NewStyle().
			Foreground(ColorCursor)

	SelectedIconStyle = lipgloss.NewStyle().
				Foreground(ColorCursor).
				Bold(true)

	SelectedOptionStyle = lipgloss.NewStyle().
				Foreground(ColorCursor).
				Bold(true)
)

// Symbols
const (
	SymbolPrefix     = "?"
	SymbolDone       = "✔"
	SymbolUnselected = "◯"
)

// DefaultOptionIcons returns the letters a through z.
func DefaultOptionIcons() []string {
	icons := make([]string, 0, 26)
	for r := 'a'; r <= 'z'; r++ {
		icons = append(icons, string(r))
	}
	return icons
}

// Default returns the built-in theme. Selected and unselected cells render
// at the same width so table columns stay aligned.
func Default() Theme {
	return Theme{
		Prefix:     SymbolPrefix,
		DonePrefix: SymbolDone,
		Icons: Icons{
			Unselected: SymbolUnselected,
			Options:    DefaultOptionIcons(),
		},
		Style: Style{
			Prefix:     render(PrefixStyle),
			DonePrefix: render(DonePrefixStyle),
			Message:    render(MessageStyle),
			Help:       render(HelpStyle),
			SelectedCell: func(s string) string {
				return BracketStyle.Render("[") + " " + s + " " + BracketStyle.Render("]")
			},
			UnselectedCell: func(s string) string {
				return "  " + s + "  "
			},
			SelectedIcon:   render(SelectedIconStyle),
			UnselectedIcon: identity,
			SelectedOption: func(icon, name string) string {
				return SelectedOptionStyle.Render(icon + " " + name)
			},
			UnselectedOption: func(icon, name string) string {
				return icon + " " + name
			},
			OptionsDisplay: DisplayRight,
		},
	}
}

func identity(s string) string { return s }

func render(style lipgloss.Style) func(string) string {
	return func(s string) string { return style.Render(s) }
}

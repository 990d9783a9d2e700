package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorMuted = lipgloss.Color("245") // Light gray
	ColorText  = lipgloss.Color("252") // Light text
)

// Styles used outside the prompt, when printing a confirmed board.
var (
	// Filled cell
	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Empty cell marker
	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// Row and column labels
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)
)

// Symbols
const (
	SymbolEmpty = "·"
)

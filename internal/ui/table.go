package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableOptions are passed through to the table formatter.
type TableOptions struct {
	Border       lipgloss.Border
	BorderRow    bool
	BorderColumn bool
	BorderHeader bool
	// Padding is the number of spaces on each side of a cell.
	Padding int
}

// DefaultTableOptions returns a plain box-drawn table.
func DefaultTableOptions() TableOptions {
	return TableOptions{
		Border:       lipgloss.NormalBorder(),
		BorderColumn: true,
		BorderHeader: true,
	}
}

// Borders maps config names to lipgloss borders.
var Borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}

// FormatTable lays out pre-styled cells as an aligned table. headers may be
// empty, in which case no header row is drawn.
func FormatTable(headers []string, rows [][]string, o TableOptions) string {
	padding := o.Padding
	if padding < 0 {
		padding = 0
	}
	cellStyle := lipgloss.NewStyle().Padding(0, padding)

	t := table.New().
		Border(o.Border).
		BorderRow(o.BorderRow).
		BorderColumn(o.BorderColumn).
		BorderHeader(o.BorderHeader).
		StyleFunc(func(row, col int) lipgloss.Style {
			return cellStyle
		})

	if len(headers) > 0 {
		t.Headers(headers...)
	}
	t.Rows(rows...)

	return strings.TrimRight(t.Render(), "\n")
}

package app

import (
	"fmt"

	"github.com/charmbracelet/x/ansi"

	"github.com/henri123lemoine/chessboard/internal/theme"
)

// Validate checks a prompt before it mounts. Problems only degrade the
// layout, so they are reported as warnings and never stop the prompt.
func Validate[V any](opts Options[V], th theme.Theme) []string {
	var warnings []string

	b := opts.Board
	if len(b.Options) == 0 {
		warnings = append(warnings, "no options to place")
	}
	if len(b.Options) > len(th.Icons.Options) {
		warnings = append(warnings, fmt.Sprintf(
			"%d options but only %d option icons; extra options are drawn by number",
			len(b.Options), len(th.Icons.Options)))
	}
	if len(b.RowLabels) > 0 && len(b.RowLabels) != b.Rows {
		warnings = append(warnings, fmt.Sprintf(
			"%d row labels for %d rows", len(b.RowLabels), b.Rows))
	}
	if len(b.ColumnLabels) > 0 && len(b.ColumnLabels) != b.Columns {
		warnings = append(warnings, fmt.Sprintf(
			"%d column labels for %d columns", len(b.ColumnLabels), b.Columns))
	}

	icon := th.Icon(-1)
	selected := ansi.StringWidth(th.Cell(icon, true))
	unselected := ansi.StringWidth(th.Cell(icon, false))
	if selected != unselected {
		warnings = append(warnings, fmt.Sprintf(
			"selected cell is %d columns wide but unselected cell is %d; the grid will shift as the cursor moves",
			selected, unselected))
	}

	return warnings
}

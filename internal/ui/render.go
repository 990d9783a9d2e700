package ui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/henri123lemoine/chessboard/internal/board"
	"github.com/henri123lemoine/chessboard/internal/theme"
)

// LegendGap separates the table from a legend drawn on its right.
const LegendGap = "    "

// RenderParams contains all parameters needed for rendering.
type RenderParams struct {
	Message      string
	Cells        [][]int
	Cursor       board.Cursor
	Options      []string
	RowLabels    []string
	ColumnLabels []string
	Theme        theme.Theme
	Table        TableOptions
	Help         string
	Done         bool
}

// Render renders one frame of the prompt.
func Render(p RenderParams) string {
	if p.Done {
		return renderDone(p)
	}

	var b strings.Builder

	b.WriteString(p.Theme.Style.Prefix(p.Theme.Prefix) + " " + p.Theme.Style.Message(p.Message) + "\n")
	if p.Help != "" {
		b.WriteString(p.Theme.Style.Help(p.Help) + "\n")
	}

	grid := FormatTable(p.ColumnLabels, BuildCells(p), p.Table)
	legend := BuildLegend(p)
	b.WriteString(Compose(p.Theme.Display(), grid, legend))

	b.WriteString(ansi.HideCursor)
	return b.String()
}

// renderDone renders the confirmed board without cursor or legend.
func renderDone(p RenderParams) string {
	var b strings.Builder

	b.WriteString(p.Theme.Style.DonePrefix(p.Theme.DonePrefix) + " " + p.Theme.Style.Message(p.Message) + "\n")

	unfocused := p
	unfocused.Cursor = board.Cursor{Row: -1, Column: -1}
	b.WriteString(FormatTable(p.ColumnLabels, BuildCells(unfocused), p.Table))

	return b.String()
}

// BuildCells produces the styled text grid, with the row label first when
// row labels are set.
func BuildCells(p RenderParams) [][]string {
	rows := make([][]string, 0, len(p.Cells))
	for r, cells := range p.Cells {
		row := make([]string, 0, len(cells)+1)
		if len(p.RowLabels) > 0 {
			label := ""
			if r < len(p.RowLabels) {
				label = p.RowLabels[r]
			}
			row = append(row, label)
		}
		for c, idx := range cells {
			focused := r == p.Cursor.Row && c == p.Cursor.Column
			row = append(row, p.Theme.Cell(p.Theme.Icon(idx), focused))
		}
		rows = append(rows, row)
	}
	return rows
}

// BuildLegend renders one line per option. The option held by the focused
// cell is drawn as selected.
func BuildLegend(p RenderParams) []string {
	selected := board.Empty
	if p.Cursor.Row >= 0 && p.Cursor.Row < len(p.Cells) &&
		p.Cursor.Column >= 0 && p.Cursor.Column < len(p.Cells[p.Cursor.Row]) {
		selected = p.Cells[p.Cursor.Row][p.Cursor.Column]
	}

	lines := make([]string, len(p.Options))
	for i, name := range p.Options {
		lines[i] = p.Theme.Option(i, name, i == selected)
	}
	return lines
}

// Compose places the legend relative to the table.
func Compose(display theme.Display, table string, legend []string) string {
	switch display {
	case theme.DisplayTop:
		return strings.Join(legend, "\n") + "\n\n" + table
	case theme.DisplayBottom:
		return table + "\n\n" + strings.Join(legend, "\n")
	default:
		return composeRight(table, legend)
	}
}

// composeRight appends legend lines to table lines by index. Table lines are
// padded to the widest one so every legend line starts in the same column.
func composeRight(table string, legend []string) string {
	lines := strings.Split(table, "\n")

	width := 0
	for _, l := range lines {
		width = max(width, ansi.StringWidth(l))
	}
	for len(lines) < len(legend) {
		lines = append(lines, strings.Repeat(" ", width))
	}

	out := make([]string, len(lines))
	for i, l := range lines {
		if i >= len(legend) {
			out[i] = l
			continue
		}
		pad := width - ansi.StringWidth(l)
		out[i] = l + strings.Repeat(" ", pad) + LegendGap + legend[i]
	}
	return strings.Join(out, "\n")
}

package board

// Empty marks a cell that holds no option.
const Empty = -1

// Option is a labelled choice. Value is handed back to the caller on confirm.
type Option[V any] struct {
	Name  string
	Value V
}

// Action is a single input event understood by the board.
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionRotate
	ActionClear
	ActionConfirm
)

// Cursor is the focused cell.
type Cursor struct {
	Row    int
	Column int
}

// Config describes the board at mount.
type Config[V any] struct {
	Rows         int
	Columns      int
	Options      []Option[V]
	RowLabels    []string
	ColumnLabels []string
	WrapRows     bool
	WrapColumns  bool
}

// Board owns the grid, the cursor and the column labels for one session.
// It is not safe for concurrent use; the host delivers actions one at a time.
type Board[V any] struct {
	options      []Option[V]
	rows         int
	columns      int
	wrapRows     bool
	wrapColumns  bool
	rowLabels    []string
	columnLabels []string

	grid   [][]int
	cursor Cursor
	done   bool
}

// New creates a board with every cell empty and the cursor at the origin.
func New[V any](cfg Config[V]) *Board[V] {
	b := &Board[V]{
		options:     cfg.Options,
		rows:        cfg.Rows,
		columns:     cfg.Columns,
		wrapRows:    cfg.WrapRows,
		wrapColumns: cfg.WrapColumns,
		rowLabels:   cfg.RowLabels,
		grid:        emptyGrid(cfg.Rows, cfg.Columns),
	}

	// Column labels sit above the row-label gutter, so they get one blank
	// entry in front when both label sets are present.
	if len(cfg.RowLabels) > 0 && len(cfg.ColumnLabels) > 0 {
		b.columnLabels = append([]string{""}, cfg.ColumnLabels...)
	} else if len(cfg.ColumnLabels) > 0 {
		b.columnLabels = append([]string(nil), cfg.ColumnLabels...)
	}

	return b
}

func emptyGrid(rows, columns int) [][]int {
	if rows < 0 {
		rows = 0
	}
	if columns < 0 {
		columns = 0
	}
	grid := make([][]int, rows)
	for r := range grid {
		row := make([]int, columns)
		for c := range row {
			row[c] = Empty
		}
		grid[r] = row
	}
	return grid
}

// Apply processes one action and reports whether the board is done.
// Actions after confirmation are ignored.
func (b *Board[V]) Apply(a Action) bool {
	if b.done {
		return true
	}

	switch a {
	case ActionConfirm:
		b.done = true
	case ActionDown:
		if b.rows > 0 && (b.cursor.Row < b.rows-1 || b.wrapRows) {
			b.cursor.Row = (b.cursor.Row + 1) % b.rows
		}
	case ActionUp:
		if b.rows > 0 && (b.cursor.Row > 0 || b.wrapRows) {
			b.cursor.Row = (b.cursor.Row - 1 + b.rows) % b.rows
		}
	case ActionLeft:
		if b.columns > 0 && (b.cursor.Column > 0 || b.wrapColumns) {
			b.cursor.Column = (b.cursor.Column - 1 + b.columns) % b.columns
		}
	case ActionRight:
		if b.columns > 0 && (b.cursor.Column < b.columns-1 || b.wrapColumns) {
			b.cursor.Column = (b.cursor.Column + 1) % b.columns
		}
	case ActionRotate:
		if len(b.options) > 0 && b.inBounds() {
			current := b.grid[b.cursor.Row][b.cursor.Column]
			b.setCell((current + 1) % len(b.options))
		}
	case ActionClear:
		if b.inBounds() {
			b.setCell(Empty)
		}
	}

	return b.done
}

func (b *Board[V]) inBounds() bool {
	return b.cursor.Row < len(b.grid) && b.cursor.Column < len(b.grid[b.cursor.Row])
}

// setCell replaces the focused row with a fresh copy holding idx, so
// snapshots taken before the change keep their old contents.
func (b *Board[V]) setCell(idx int) {
	row := make([]int, len(b.grid[b.cursor.Row]))
	copy(row, b.grid[b.cursor.Row])
	row[b.cursor.Column] = idx

	grid := make([][]int, len(b.grid))
	copy(grid, b.grid)
	grid[b.cursor.Row] = row
	b.grid = grid
}

// Cells returns the current grid of option indices. The result must not be
// modified; later transitions never write into it.
func (b *Board[V]) Cells() [][]int {
	return b.grid
}

// Cell returns the option index stored at (row, column).
func (b *Board[V]) Cell(row, column int) int {
	return b.grid[row][column]
}

// Cursor returns the focused cell.
func (b *Board[V]) Cursor() Cursor {
	return b.cursor
}

// Selected returns the option index under the cursor, or Empty.
func (b *Board[V]) Selected() int {
	if !b.inBounds() {
		return Empty
	}
	return b.grid[b.cursor.Row][b.cursor.Column]
}

// Done reports whether the board has been confirmed.
func (b *Board[V]) Done() bool {
	return b.done
}

// Rows returns the number of grid rows.
func (b *Board[V]) Rows() int {
	return b.rows
}

// Columns returns the number of grid columns.
func (b *Board[V]) Columns() int {
	return b.columns
}

// Options returns the options in display order.
func (b *Board[V]) Options() []Option[V] {
	return b.options
}

// OptionNames returns the option display names in order.
func (b *Board[V]) OptionNames() []string {
	names := make([]string, len(b.options))
	for i, o := range b.options {
		names[i] = o.Name
	}
	return names
}

// RowLabels returns the row labels as configured.
func (b *Board[V]) RowLabels() []string {
	return b.rowLabels
}

// ColumnLabels returns the column labels, aligned for the row-label gutter.
func (b *Board[V]) ColumnLabels() []string {
	return b.columnLabels
}

// Values maps every cell through the options list. Empty cells are nil.
func (b *Board[V]) Values() [][]*V {
	out := make([][]*V, len(b.grid))
	for r, row := range b.grid {
		values := make([]*V, len(row))
		for c, idx := range row {
			if idx < 0 || idx >= len(b.options) {
				continue
			}
			v := b.options[idx].Value
			values[c] = &v
		}
		out[r] = values
	}
	return out
}

package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/henri123lemoine/chessboard/internal/board"
	"github.com/henri123lemoine/chessboard/internal/debug"
	"github.com/henri123lemoine/chessboard/internal/theme"
	"github.com/henri123lemoine/chessboard/internal/ui"
)

// ErrAborted is returned when the user leaves the prompt without confirming.
var ErrAborted = errors.New("prompt aborted")

// Options configures one prompt session.
type Options[V any] struct {
	Message string
	Board   board.Config[V]
	Theme   theme.Override
	Table   ui.TableOptions
	Keys    KeyMap
}

// Model is the bubbletea model hosting a board.
type Model[V any] struct {
	message string
	board   *board.Board[V]
	theme   theme.Theme
	table   ui.TableOptions
	keys    KeyMap
	help    help.Model

	warnings []string
	aborted  bool
}

// New mounts a board: it resolves the theme, runs validation once and
// builds the initial empty grid.
func New[V any](opts Options[V]) Model[V] {
	th := theme.Resolve(theme.Default(), opts.Theme)

	warnings := Validate(opts, th)
	for _, w := range warnings {
		debug.Warn("%s", w)
	}

	keys := opts.Keys
	if len(keys.Confirm.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	h := help.New()
	h.ShortSeparator = ", "
	h.Styles = help.Styles{
		Ellipsis:       lipgloss.NewStyle(),
		ShortKey:       lipgloss.NewStyle(),
		ShortDesc:      lipgloss.NewStyle(),
		ShortSeparator: lipgloss.NewStyle(),
		FullKey:        lipgloss.NewStyle(),
		FullDesc:       lipgloss.NewStyle(),
		FullSeparator:  lipgloss.NewStyle(),
	}

	debug.Log("mounted %dx%d board with %d options", opts.Board.Rows, opts.Board.Columns, len(opts.Board.Options))

	return Model[V]{
		message:  opts.Message,
		board:    board.New(opts.Board),
		theme:    th,
		table:    opts.Table,
		keys:     keys,
		help:     h,
		warnings: warnings,
	}
}

// Init initializes the model.
func (m Model[V]) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model[V]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if m.board.Done() || m.aborted {
		return m, nil
	}

	if key.Matches(keyMsg, m.keys.Abort) {
		debug.Log("aborted")
		m.aborted = true
		return m, tea.Quit
	}

	action := m.keys.Action(keyMsg)
	if action == board.ActionNone {
		return m, nil
	}

	done := m.board.Apply(action)
	c := m.board.Cursor()
	debug.Log("key %q: cursor (%d,%d) cell %d", keyMsg.String(), c.Row, c.Column, m.board.Selected())

	if done {
		return m, tea.Quit
	}
	return m, nil
}

// View renders the UI.
func (m Model[V]) View() string {
	if m.aborted {
		return ""
	}
	return ui.Render(ui.RenderParams{
		Message:      m.message,
		Cells:        m.board.Cells(),
		Cursor:       m.board.Cursor(),
		Options:      m.board.OptionNames(),
		RowLabels:    m.board.RowLabels(),
		ColumnLabels: m.board.ColumnLabels(),
		Theme:        m.theme,
		Table:        m.table,
		Help:         m.help.View(m.keys),
		Done:         m.board.Done(),
	})
}

// Warnings returns the advisory warnings found at mount.
func (m Model[V]) Warnings() []string {
	return m.warnings
}

// Board exposes the underlying board.
func (m Model[V]) Board() *board.Board[V] {
	return m.board
}

// Result returns the confirmed value grid, with nil for empty cells.
func (m Model[V]) Result() ([][]*V, error) {
	if m.aborted || !m.board.Done() {
		return nil, ErrAborted
	}
	return m.board.Values(), nil
}

// Run drives a prompt until it is confirmed or aborted.
func Run[V any](ctx context.Context, opts Options[V], programOpts ...tea.ProgramOption) ([][]*V, error) {
	defer debug.Timed("prompt")()

	programOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, programOpts...)
	p := tea.NewProgram(New(opts), programOpts...)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("run prompt: %w", err)
	}

	m, ok := final.(Model[V])
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return m.Result()
}

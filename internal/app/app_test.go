package app

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/henri123lemoine/chessboard/internal/board"
	"github.com/henri123lemoine/chessboard/internal/config"
	"github.com/henri123lemoine/chessboard/internal/theme"
	"github.com/henri123lemoine/chessboard/internal/ui"
)

var (
	keySpace     = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEnter     = tea.KeyMsg{Type: tea.KeyEnter}
	keyUp        = tea.KeyMsg{Type: tea.KeyUp}
	keyDown      = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft      = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight     = tea.KeyMsg{Type: tea.KeyRight}
	keyBackspace = tea.KeyMsg{Type: tea.KeyBackspace}
	keyCtrlC     = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testOptions(wrap bool) Options[string] {
	return Options[string]{
		Message: "Place the pieces:",
		Board: board.Config[string]{
			Rows:    2,
			Columns: 2,
			Options: []board.Option[string]{
				{Name: "Foo", Value: "Foo"},
				{Name: "Bar", Value: "Bar"},
			},
			WrapRows:    wrap,
			WrapColumns: wrap,
		},
		Table: ui.DefaultTableOptions(),
	}
}

// press feeds keys through Update, returning the final model and the last command.
func press(m Model[string], keys ...tea.KeyMsg) (Model[string], tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(k)
		m = next.(Model[string])
	}
	return m, cmd
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestNewModel(t *testing.T) {
	m := New(testOptions(true))

	if len(m.Warnings()) != 0 {
		t.Errorf("Expected no warnings, got %v", m.Warnings())
	}
	if m.Board().Cursor() != (board.Cursor{}) {
		t.Errorf("Expected cursor at origin, got %+v", m.Board().Cursor())
	}
	if m.Init() != nil {
		t.Error("Expected no initial command")
	}
	if _, err := m.Result(); !errors.Is(err, ErrAborted) {
		t.Errorf("Expected ErrAborted before confirm, got %v", err)
	}
}

func TestConfirmScenario(t *testing.T) {
	m := New(testOptions(true))

	m, cmd := press(m, keySpace, keyRight, keySpace, keySpace, keyDown)
	if isQuit(cmd) {
		t.Fatal("Expected prompt to keep running before enter")
	}

	m, cmd = press(m, keyEnter)
	if !isQuit(cmd) {
		t.Fatal("Expected enter to quit")
	}

	got, err := m.Result()
	if err != nil {
		t.Fatalf("Result() error: %v", err)
	}
	want := [][]string{{"Foo", "Bar"}, {"", ""}}
	for r := range want {
		for c := range want[r] {
			v := got[r][c]
			switch {
			case want[r][c] == "" && v != nil:
				t.Errorf("cell (%d,%d) = %q, want empty", r, c, *v)
			case want[r][c] != "" && (v == nil || *v != want[r][c]):
				t.Errorf("cell (%d,%d) = %v, want %q", r, c, v, want[r][c])
			}
		}
	}
}

func TestCursorNavigation(t *testing.T) {
	m := New(testOptions(true))

	m, _ = press(m, keyDown)
	if c := m.Board().Cursor(); c.Row != 1 {
		t.Errorf("Expected row 1 after down, got %d", c.Row)
	}

	// Wraps back to the top
	m, _ = press(m, runes("j"))
	if c := m.Board().Cursor(); c.Row != 0 {
		t.Errorf("Expected row 0 after 'j' wraps, got %d", c.Row)
	}

	m, _ = press(m, runes("l"), runes("l"))
	if c := m.Board().Cursor(); c.Column != 0 {
		t.Errorf("Expected column 0 after wrapping right, got %d", c.Column)
	}

	m, _ = press(m, runes("k"), runes("h"))
	if c := m.Board().Cursor(); c != (board.Cursor{Row: 1, Column: 1}) {
		t.Errorf("Expected (1,1) after wrapping up/left, got %+v", c)
	}
}

func TestCursorClampsWithoutWrap(t *testing.T) {
	m := New(testOptions(false))

	m, _ = press(m, keyUp, keyLeft)
	if c := m.Board().Cursor(); c != (board.Cursor{}) {
		t.Errorf("Expected cursor to stay at origin, got %+v", c)
	}

	m, _ = press(m, keyDown, keyDown, keyDown, keyRight, keyRight, keyRight)
	if c := m.Board().Cursor(); c != (board.Cursor{Row: 1, Column: 1}) {
		t.Errorf("Expected cursor clamped at (1,1), got %+v", c)
	}
}

func TestBackspaceClears(t *testing.T) {
	m := New(testOptions(true))

	m, _ = press(m, keySpace, keySpace)
	if m.Board().Selected() != 1 {
		t.Fatalf("Expected option 1 after two rotations, got %d", m.Board().Selected())
	}

	m, _ = press(m, keyBackspace)
	if m.Board().Selected() != board.Empty {
		t.Errorf("Expected empty cell after backspace, got %d", m.Board().Selected())
	}
}

func TestUnknownKeyIsNoop(t *testing.T) {
	m := New(testOptions(true))
	before := m.View()

	m, cmd := press(m, runes("x"), tea.KeyMsg{Type: tea.KeyTab})
	if cmd != nil {
		t.Error("Expected no command for unbound keys")
	}
	if m.View() != before {
		t.Error("Expected unbound keys to leave the frame unchanged")
	}
}

func TestAbort(t *testing.T) {
	m := New(testOptions(true))

	m, cmd := press(m, keySpace, keyCtrlC)
	if !isQuit(cmd) {
		t.Fatal("Expected ctrl+c to quit")
	}
	if _, err := m.Result(); !errors.Is(err, ErrAborted) {
		t.Errorf("Expected ErrAborted, got %v", err)
	}
	if m.View() != "" {
		t.Error("Expected empty view after abort")
	}
}

func TestKeysIgnoredAfterConfirm(t *testing.T) {
	m := New(testOptions(true))

	m, _ = press(m, keyEnter, keySpace, keyDown)
	if m.Board().Selected() != board.Empty || m.Board().Cursor() != (board.Cursor{}) {
		t.Error("Expected no changes after confirm")
	}
}

func TestViewShowsHelpAndDoneFrame(t *testing.T) {
	m := New(testOptions(true))

	view := ansi.Strip(m.View())
	want := "up/down move rows, left/right move columns, space rotates, backspace clears, enter confirms"
	if !strings.Contains(view, want) {
		t.Errorf("Expected help line %q in view:\n%s", want, view)
	}
	if !strings.Contains(view, "? Place the pieces:") {
		t.Errorf("Expected prompt line in view:\n%s", view)
	}

	m, _ = press(m, keyEnter)
	done := ansi.Strip(m.View())
	if !strings.HasPrefix(done, "✔ Place the pieces:") {
		t.Errorf("Expected done frame, got:\n%s", done)
	}
	if strings.Contains(done, "confirms") {
		t.Error("Done frame should not show help")
	}
}

func TestNonKeyMessagesIgnored(t *testing.T) {
	m := New(testOptions(true))
	next, cmd := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if cmd != nil {
		t.Error("Expected no command")
	}
	if next.(Model[string]).Board().Done() {
		t.Error("Expected board to stay open")
	}
}

func TestKeyMapFromConfig(t *testing.T) {
	keys := config.DefaultConfig().Keys
	keys.Rotate = "r, space"
	keys.Confirm = "ctrl+s"

	opts := testOptions(true)
	opts.Keys = KeyMapFromConfig(&keys)
	m := New(opts)

	m, _ = press(m, runes("r"))
	if m.Board().Selected() != 0 {
		t.Errorf("Expected 'r' to rotate, got %d", m.Board().Selected())
	}
	m, _ = press(m, keySpace)
	if m.Board().Selected() != 1 {
		t.Errorf("Expected space to rotate, got %d", m.Board().Selected())
	}

	_, cmd := press(m, keyEnter)
	if isQuit(cmd) {
		t.Error("Expected enter to be unbound")
	}
	_, cmd = press(m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if !isQuit(cmd) {
		t.Error("Expected ctrl+s to confirm")
	}

	help := ansi.Strip(m.help.View(m.keys))
	if !strings.Contains(help, "r rotates") || !strings.Contains(help, "ctrl+s confirms") {
		t.Errorf("Expected help to follow config, got %q", help)
	}
}

func TestParseKeys(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"up,k", []string{"up", "k"}},
		{" left , h ", []string{"left", "h"}},
		{"space", []string{" "}},
		{",,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := parseKeys(tt.input)
			if strings.Join(got, "|") != strings.Join(tt.want, "|") {
				t.Errorf("parseKeys(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tooMany := make([]board.Option[string], 27)
	for i := range tooMany {
		tooMany[i] = board.Option[string]{Name: string(rune('A' + i)), Value: "v"}
	}

	tests := []struct {
		name     string
		mutate   func(*Options[string])
		contains string
	}{
		{
			name:     "more options than icons",
			mutate:   func(o *Options[string]) { o.Board.Options = tooMany },
			contains: "27 options but only 26 option icons",
		},
		{
			name:     "row label mismatch",
			mutate:   func(o *Options[string]) { o.Board.RowLabels = []string{"1"} },
			contains: "1 row labels for 2 rows",
		},
		{
			name:     "column label mismatch",
			mutate:   func(o *Options[string]) { o.Board.ColumnLabels = []string{"A", "B", "C"} },
			contains: "3 column labels for 2 columns",
		},
		{
			name: "uneven cell widths",
			mutate: func(o *Options[string]) {
				o.Theme.Style.SelectedCell = func(s string) string { return "[" + s + "]" }
			},
			contains: "selected cell is 3 columns wide but unselected cell is 5",
		},
		{
			name:     "no options",
			mutate:   func(o *Options[string]) { o.Board.Options = nil },
			contains: "no options",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := testOptions(true)
			tt.mutate(&opts)

			m := New(opts)
			joined := strings.Join(m.Warnings(), "\n")
			if !strings.Contains(joined, tt.contains) {
				t.Errorf("Expected warning containing %q, got %v", tt.contains, m.Warnings())
			}

			// Warnings never block the prompt
			m, cmd := press(m, keySpace, keyEnter)
			if !isQuit(cmd) {
				t.Error("Expected prompt to remain usable")
			}
			if _, err := m.Result(); err != nil {
				t.Errorf("Result() error: %v", err)
			}
		})
	}
}

func TestValidateIconOverride(t *testing.T) {
	opts := testOptions(true)
	opts.Theme.Icons.Options = []string{"X"}

	th := theme.Resolve(theme.Default(), opts.Theme)
	warnings := Validate(opts, th)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "2 options but only 1") {
		t.Errorf("unexpected warnings: %v", warnings)
	}
}

func TestRun(t *testing.T) {
	// space, right, space, space, down, enter
	input := strings.NewReader(" \x1b[C  \x1b[B\r")

	got, err := Run(context.Background(), testOptions(true),
		tea.WithInput(input),
		tea.WithOutput(io.Discard),
		tea.WithoutSignalHandler(),
	)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if got[0][0] == nil || *got[0][0] != "Foo" {
		t.Errorf("cell (0,0) = %v, want Foo", got[0][0])
	}
	if got[0][1] == nil || *got[0][1] != "Bar" {
		t.Errorf("cell (0,1) = %v, want Bar", got[0][1])
	}
	if got[1][0] != nil || got[1][1] != nil {
		t.Error("Expected second row to be empty")
	}
}

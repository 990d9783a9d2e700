package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/henri123lemoine/chessboard/internal/board"
	"github.com/henri123lemoine/chessboard/internal/config"
)

// KeyMap defines all keybindings.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Cell edits
	Rotate key.Binding
	Clear  key.Binding

	// General
	Confirm key.Binding
	Abort   key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("left", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("right", "right"),
		),
		Rotate: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "rotates"),
		),
		Clear: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "clears"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirms"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "aborts"),
		),
	}
}

// KeyMapFromConfig creates a KeyMap from config settings.
func KeyMapFromConfig(cfg *config.KeysConfig) KeyMap {
	km := DefaultKeyMap()

	if cfg.Up != "" {
		km.Up = binding(cfg.Up, "up")
	}
	if cfg.Down != "" {
		km.Down = binding(cfg.Down, "down")
	}
	if cfg.Left != "" {
		km.Left = binding(cfg.Left, "left")
	}
	if cfg.Right != "" {
		km.Right = binding(cfg.Right, "right")
	}
	if cfg.Rotate != "" {
		km.Rotate = binding(cfg.Rotate, "rotates")
	}
	if cfg.Clear != "" {
		km.Clear = binding(cfg.Clear, "clears")
	}
	if cfg.Confirm != "" {
		km.Confirm = binding(cfg.Confirm, "confirms")
	}
	if cfg.Abort != "" {
		km.Abort = binding(cfg.Abort, "aborts")
	}

	return km
}

// binding builds a key.Binding whose help label is the first configured key.
func binding(spec, desc string) key.Binding {
	keys := parseKeys(spec)
	label := spec
	if len(keys) > 0 {
		label = keyLabel(keys[0])
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(label, desc),
	)
}

// parseKeys parses a comma-separated list of keys. "space" stands for the
// space bar, which cannot be written literally in a comma list.
func parseKeys(s string) []string {
	parts := strings.Split(s, ",")
	var keys []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "space" {
			p = " "
		}
		if p != "" {
			keys = append(keys, p)
		}
	}
	return keys
}

func keyLabel(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

// ShortHelp implements help.KeyMap. Vertical and horizontal moves are
// folded into one entry each.
func (k KeyMap) ShortHelp() []key.Binding {
	rows := key.NewBinding(
		key.WithKeys(append(k.Up.Keys(), k.Down.Keys()...)...),
		key.WithHelp(k.Up.Help().Key+"/"+k.Down.Help().Key, "move rows"),
	)
	columns := key.NewBinding(
		key.WithKeys(append(k.Left.Keys(), k.Right.Keys()...)...),
		key.WithHelp(k.Left.Help().Key+"/"+k.Right.Help().Key, "move columns"),
	)
	return []key.Binding{rows, columns, k.Rotate, k.Clear, k.Confirm}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Rotate, k.Clear},
		{k.Confirm, k.Abort},
	}
}

// Action maps a key press onto a board action.
func (k KeyMap) Action(msg tea.KeyMsg) board.Action {
	switch {
	case key.Matches(msg, k.Confirm):
		return board.ActionConfirm
	case key.Matches(msg, k.Up):
		return board.ActionUp
	case key.Matches(msg, k.Down):
		return board.ActionDown
	case key.Matches(msg, k.Left):
		return board.ActionLeft
	case key.Matches(msg, k.Right):
		return board.ActionRight
	case key.Matches(msg, k.Rotate):
		return board.ActionRotate
	case key.Matches(msg, k.Clear):
		return board.ActionClear
	}
	return board.ActionNone
}

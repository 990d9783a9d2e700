// Package config handles chessboard configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/sahilm/fuzzy"

	"github.com/henri123lemoine/chessboard/internal/theme"
)

// Config represents chessboard configuration.
type Config struct {
	Prompt  PromptConfig   `toml:"prompt"`
	Options []OptionConfig `toml:"options"`
	Table   TableConfig    `toml:"table"`
	Theme   ThemeConfig    `toml:"theme"`
	Keys    KeysConfig     `toml:"keys"`
}

// PromptConfig describes the board.
type PromptConfig struct {
	// Question shown above the board
	Message string `toml:"message"`

	// Grid dimensions
	Rows    int `toml:"rows"`
	Columns int `toml:"columns"`

	// Optional labels; lengths should match rows and columns
	RowLabels    []string `toml:"row_labels"`
	ColumnLabels []string `toml:"column_labels"`

	// Whether the cursor wraps around grid edges
	WrapRows    bool `toml:"wrap_rows"`
	WrapColumns bool `toml:"wrap_columns"`
}

// OptionConfig is one option that can be placed on the board.
type OptionConfig struct {
	Name string `toml:"name"`

	// Value returned on confirm; defaults to Name
	Value string `toml:"value,omitempty"`
}

// ResolvedValue returns Value, or Name when Value is empty.
func (o OptionConfig) ResolvedValue() string {
	if o.Value == "" {
		return o.Name
	}
	return o.Value
}

// TableConfig is passed through to the table formatter.
type TableConfig struct {
	// Border style: normal, rounded, thick, double, hidden
	Border string `toml:"border"`

	// Draw separators between rows, between columns and under the header
	BorderRow    bool `toml:"border_row"`
	BorderColumn bool `toml:"border_column"`
	BorderHeader bool `toml:"border_header"`

	// Spaces on each side of a cell
	CellPadding int `toml:"cell_padding"`
}

// ThemeConfig overrides parts of the built-in theme. Empty values keep the
// default.
type ThemeConfig struct {
	Prefix         string   `toml:"prefix,omitempty"`
	DonePrefix     string   `toml:"done_prefix,omitempty"`
	UnselectedIcon string   `toml:"unselected_icon,omitempty"`
	OptionsIcons   []string `toml:"options_icons,omitempty"`

	// Legend placement: right, top, bottom
	OptionsDisplay string `toml:"options_display,omitempty"`
}

// KeysConfig contains keybinding settings.
type KeysConfig struct {
	Up      string `toml:"up"`
	Down    string `toml:"down"`
	Left    string `toml:"left"`
	Right   string `toml:"right"`
	Rotate  string `toml:"rotate"`
	Clear   string `toml:"clear"`
	Confirm string `toml:"confirm"`
	Abort   string `toml:"abort"`
}

// Borders lists the accepted table.border values.
var Borders = []string{"normal", "rounded", "thick", "double", "hidden"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Prompt: PromptConfig{
			Message:     "Choose where to place each option on the grid:",
			Rows:        3,
			Columns:     3,
			WrapRows:    true,
			WrapColumns: true,
		},
		Options: []OptionConfig{
			{Name: "Foo"},
			{Name: "Bar"},
			{Name: "Baz"},
		},
		Table: TableConfig{
			Border:       "normal",
			BorderRow:    false,
			BorderColumn: true,
			BorderHeader: true,
			CellPadding:  0,
		},
		Theme: ThemeConfig{},
		Keys: KeysConfig{
			Up:      "up,k",
			Down:    "down,j",
			Left:    "left,h",
			Right:   "right,l",
			Rotate:  "space",
			Clear:   "backspace",
			Confirm: "enter",
			Abort:   "ctrl+c",
		},
	}
}

// ThemeOverride converts the theme section into a partial theme.
func (c *Config) ThemeOverride() theme.Override {
	var o theme.Override
	if c.Theme.Prefix != "" {
		o.Prefix = &c.Theme.Prefix
	}
	if c.Theme.DonePrefix != "" {
		o.DonePrefix = &c.Theme.DonePrefix
	}
	if c.Theme.UnselectedIcon != "" {
		o.Icons.Unselected = &c.Theme.UnselectedIcon
	}
	o.Icons.Options = c.Theme.OptionsIcons
	o.Style.OptionsDisplay = theme.Display(c.Theme.OptionsDisplay)
	return o
}

// ConfigPath returns the path to the config file.
// Uses ~/.config/chessboard/config.toml (XDG style) on all Unix systems.
func ConfigPath() string {
	// Respect XDG_CONFIG_HOME if set
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "chessboard", "config.toml")
	}
	home := os.Getenv("HOME")
	if home != "" {
		return filepath.Join(home, ".config", "chessboard", "config.toml")
	}
	// Fallback to os.UserConfigDir() for Windows
	configDir, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "chessboard", "config.toml")
	}
	return filepath.Join(configDir, "chessboard", "config.toml")
}

// Load loads configuration from the config file.
func Load() (*Config, error) {
	return LoadFromPath(ConfigPath())
}

// LoadFromPath loads configuration from a specific path.
func LoadFromPath(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, use defaults
			return cfg, nil
		}
		return nil, err
	}

	// go-toml/v2 only overwrites fields present in the file, so defaults
	// survive for everything else (including booleans). Options are
	// cleared first so [[options]] tables replace the defaults instead of
	// being appended to them.
	defaultOptions := cfg.Options
	cfg.Options = nil
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(cfg.Options) == 0 {
		cfg.Options = defaultOptions
	}

	return cfg, nil
}

// CreateDefaultConfigFile writes a commented default config file to path.
// An existing file is only replaced when force is set.
func CreateDefaultConfigFile(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, []byte(generateDefaultConfigContent()), 0644)
}

// generateDefaultConfigContent generates a commented config file.
func generateDefaultConfigContent() string {
	var b strings.Builder
	cfg := DefaultConfig()

	b.WriteString("# Chessboard Configuration\n\n")

	b.WriteString("[prompt]\n")
	fmt.Fprintf(&b, "message = %q\n", cfg.Prompt.Message)
	b.WriteString("# Grid dimensions\n")
	fmt.Fprintf(&b, "rows = %d\n", cfg.Prompt.Rows)
	fmt.Fprintf(&b, "columns = %d\n", cfg.Prompt.Columns)
	b.WriteString("# Labels drawn beside rows and above columns\n")
	b.WriteString("# row_labels = [\"1\", \"2\", \"3\"]\n")
	b.WriteString("# column_labels = [\"A\", \"B\", \"C\"]\n")
	b.WriteString("# Whether the cursor wraps around at grid edges\n")
	fmt.Fprintf(&b, "wrap_rows = %v\n", cfg.Prompt.WrapRows)
	fmt.Fprintf(&b, "wrap_columns = %v\n\n", cfg.Prompt.WrapColumns)

	b.WriteString("# Options placed with space; value defaults to name\n")
	for _, o := range cfg.Options {
		b.WriteString("[[options]]\n")
		fmt.Fprintf(&b, "name = %q\n\n", o.Name)
	}

	b.WriteString("[table]\n")
	b.WriteString("# Border style: \"normal\", \"rounded\", \"thick\", \"double\", or \"hidden\"\n")
	fmt.Fprintf(&b, "border = %q\n", cfg.Table.Border)
	fmt.Fprintf(&b, "border_row = %v\n", cfg.Table.BorderRow)
	fmt.Fprintf(&b, "border_column = %v\n", cfg.Table.BorderColumn)
	fmt.Fprintf(&b, "border_header = %v\n", cfg.Table.BorderHeader)
	fmt.Fprintf(&b, "cell_padding = %d\n\n", cfg.Table.CellPadding)

	b.WriteString("[theme]\n")
	b.WriteString("# prefix = \"?\"\n")
	b.WriteString("# done_prefix = \"✔\"\n")
	b.WriteString("# unselected_icon = \"◯\"\n")
	b.WriteString("# options_icons = [\"a\", \"b\", \"c\"]\n")
	b.WriteString("# Legend placement: \"right\", \"top\", or \"bottom\"\n")
	b.WriteString("# options_display = \"right\"\n\n")

	b.WriteString("[keys]\n")
	b.WriteString("# Keybindings (comma-separated for multiple keys)\n")
	fmt.Fprintf(&b, "# up = %q\n", cfg.Keys.Up)
	fmt.Fprintf(&b, "# down = %q\n", cfg.Keys.Down)
	fmt.Fprintf(&b, "# left = %q\n", cfg.Keys.Left)
	fmt.Fprintf(&b, "# right = %q\n", cfg.Keys.Right)
	fmt.Fprintf(&b, "# rotate = %q\n", cfg.Keys.Rotate)
	fmt.Fprintf(&b, "# clear = %q\n", cfg.Keys.Clear)
	fmt.Fprintf(&b, "# confirm = %q\n", cfg.Keys.Confirm)
	fmt.Fprintf(&b, "# abort = %q\n", cfg.Keys.Abort)

	return b.String()
}

// Validate validates the configuration and returns warnings.
func (c *Config) Validate() []string {
	var warnings []string

	if c.Prompt.Rows <= 0 {
		warnings = append(warnings, fmt.Sprintf("prompt.rows must be positive, got %d", c.Prompt.Rows))
	}
	if c.Prompt.Columns <= 0 {
		warnings = append(warnings, fmt.Sprintf("prompt.columns must be positive, got %d", c.Prompt.Columns))
	}

	if len(c.Options) == 0 {
		warnings = append(warnings, "No options configured")
	}
	seen := make(map[string]bool)
	for i, o := range c.Options {
		if o.Name == "" {
			warnings = append(warnings, fmt.Sprintf("Option %d has empty name", i))
			continue
		}
		if seen[o.Name] {
			warnings = append(warnings, fmt.Sprintf("Duplicate option name: %s", o.Name))
		}
		seen[o.Name] = true
	}

	if c.Table.Border != "" && !contains(Borders, c.Table.Border) {
		warnings = append(warnings, invalidValue("table.border", c.Table.Border, Borders))
	}
	if c.Table.CellPadding < 0 {
		warnings = append(warnings, fmt.Sprintf("table.cell_padding must not be negative, got %d", c.Table.CellPadding))
	}

	if c.Theme.OptionsDisplay != "" && !theme.Display(c.Theme.OptionsDisplay).Valid() {
		displays := make([]string, len(theme.Displays))
		for i, d := range theme.Displays {
			displays[i] = string(d)
		}
		warnings = append(warnings, invalidValue("theme.options_display", c.Theme.OptionsDisplay, displays))
	}

	return warnings
}

// invalidValue formats an enum warning, suggesting the closest candidate.
func invalidValue(field, got string, candidates []string) string {
	msg := fmt.Sprintf("Invalid value for %s: %s (expected %s)", field, got, strings.Join(candidates, ", "))
	if s := suggest(got, candidates); s != "" {
		msg += fmt.Sprintf("; did you mean %q?", s)
	}
	return msg
}

// suggest returns the best fuzzy match for input among candidates.
func suggest(input string, candidates []string) string {
	matches := fuzzy.Find(strings.ToLower(input), candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Str
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/henri123lemoine/chessboard/internal/app"
	"github.com/henri123lemoine/chessboard/internal/board"
	"github.com/henri123lemoine/chessboard/internal/config"
	"github.com/henri123lemoine/chessboard/internal/debug"
	"github.com/henri123lemoine/chessboard/internal/theme"
	"github.com/henri123lemoine/chessboard/internal/ui"
)

type rootFlags struct {
	configPath    string
	message       string
	rows          int
	columns       int
	options       []string
	rowLabels     []string
	columnLabels  []string
	noWrapRows    bool
	noWrapColumns bool
	display       string
	format        string
	output        string
	debug         bool
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "chessboard",
		Short: "Place options on a grid from the terminal",
		Long: `chessboard shows a grid prompt. Move with the arrow keys, press space
to cycle the option in the current cell, backspace to clear it and enter
to confirm. The confirmed grid is printed as JSON, TOML or a table.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrompt(cmd, f)
		},
	}

	f.register(cmd.Flags())

	cmd.AddCommand(newInitCmd())

	return cmd
}

func (f *rootFlags) register(fl *pflag.FlagSet) {
	fl.StringVar(&f.configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	fl.StringVarP(&f.message, "message", "m", "", "question shown above the grid")
	fl.IntVar(&f.rows, "rows", 0, "number of grid rows")
	fl.IntVar(&f.columns, "columns", 0, "number of grid columns")
	fl.StringArrayVarP(&f.options, "option", "o", nil, "option to place, as name or name=value (repeatable)")
	fl.StringArrayVar(&f.rowLabels, "row-label", nil, "label drawn beside a row (repeatable)")
	fl.StringArrayVar(&f.columnLabels, "column-label", nil, "label drawn above a column (repeatable)")
	fl.BoolVar(&f.noWrapRows, "no-wrap-rows", false, "stop the cursor at the top and bottom edges")
	fl.BoolVar(&f.noWrapColumns, "no-wrap-columns", false, "stop the cursor at the left and right edges")
	fl.StringVar(&f.display, "display", "", "legend placement: right, top or bottom")
	fl.StringVarP(&f.format, "format", "f", "", "output format: json, toml or table (default table on a terminal, json otherwise)")
	fl.StringVar(&f.output, "output", "", "write the result to a file instead of stdout")
	fl.BoolVar(&f.debug, "debug", false, "write a debug log to "+debugLogPath())
}

func runPrompt(cmd *cobra.Command, f *rootFlags) error {
	if f.debug {
		if err := debug.Enable(debugLogPath()); err != nil {
			return fmt.Errorf("enable debug log: %w", err)
		}
		defer debug.Close()
	}

	path := f.configPath
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFromPath(path)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyFlags(cfg, f, cmd.Flags()); err != nil {
		return err
	}

	format, err := resolveFormat(f.format, f.output, os.Stdout)
	if err != nil {
		return err
	}

	stderr := cmd.ErrOrStderr()
	opts := buildOptions(cfg)
	warnings := append(cfg.Validate(), app.Validate(opts, theme.Resolve(theme.Default(), opts.Theme))...)
	printWarnings(stderr, warnings)

	if cfg.Prompt.Rows <= 0 || cfg.Prompt.Columns <= 0 {
		return fmt.Errorf("grid must have at least one row and one column, got %dx%d",
			cfg.Prompt.Rows, cfg.Prompt.Columns)
	}

	// The prompt draws on stderr so stdout carries only the result.
	programOpts := []tea.ProgramOption{tea.WithOutput(stderr)}
	if !isTerminal(os.Stdin.Fd()) {
		programOpts = append(programOpts, tea.WithInputTTY())
	}

	values, err := app.Run(cmd.Context(), opts, programOpts...)
	if err != nil {
		return err
	}

	data, err := encodeResult(format, values, cfg.Prompt.RowLabels, cfg.Prompt.ColumnLabels, opts.Table)
	if err != nil {
		return err
	}
	return writeOutput(f.output, data, cmd.OutOrStdout())
}

// applyFlags overrides config values with the flags that were set.
func applyFlags(cfg *config.Config, f *rootFlags, fl *pflag.FlagSet) error {
	if fl.Changed("message") {
		cfg.Prompt.Message = f.message
	}
	if fl.Changed("rows") {
		cfg.Prompt.Rows = f.rows
	}
	if fl.Changed("columns") {
		cfg.Prompt.Columns = f.columns
	}
	if fl.Changed("option") {
		cfg.Options = cfg.Options[:0:0]
		for _, spec := range f.options {
			o, err := parseOption(spec)
			if err != nil {
				return err
			}
			cfg.Options = append(cfg.Options, o)
		}
	}
	if fl.Changed("row-label") {
		cfg.Prompt.RowLabels = f.rowLabels
	}
	if fl.Changed("column-label") {
		cfg.Prompt.ColumnLabels = f.columnLabels
	}
	if f.noWrapRows {
		cfg.Prompt.WrapRows = false
	}
	if f.noWrapColumns {
		cfg.Prompt.WrapColumns = false
	}
	if fl.Changed("display") {
		cfg.Theme.OptionsDisplay = f.display
	}
	return nil
}

// parseOption reads "name" or "name=value".
func parseOption(spec string) (config.OptionConfig, error) {
	name, value, _ := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return config.OptionConfig{}, fmt.Errorf("invalid --option %q: name is empty", spec)
	}
	return config.OptionConfig{Name: name, Value: value}, nil
}

// buildOptions turns a loaded config into prompt options.
func buildOptions(cfg *config.Config) app.Options[string] {
	options := make([]board.Option[string], len(cfg.Options))
	for i, o := range cfg.Options {
		options[i] = board.Option[string]{Name: o.Name, Value: o.ResolvedValue()}
	}

	table := ui.DefaultTableOptions()
	if b, ok := ui.Borders[cfg.Table.Border]; ok {
		table.Border = b
	}
	table.BorderRow = cfg.Table.BorderRow
	table.BorderColumn = cfg.Table.BorderColumn
	table.BorderHeader = cfg.Table.BorderHeader
	table.Padding = cfg.Table.CellPadding

	return app.Options[string]{
		Message: cfg.Prompt.Message,
		Board: board.Config[string]{
			Rows:         cfg.Prompt.Rows,
			Columns:      cfg.Prompt.Columns,
			Options:      options,
			RowLabels:    cfg.Prompt.RowLabels,
			ColumnLabels: cfg.Prompt.ColumnLabels,
			WrapRows:     cfg.Prompt.WrapRows,
			WrapColumns:  cfg.Prompt.WrapColumns,
		},
		Theme: cfg.ThemeOverride(),
		Table: table,
		Keys:  app.KeyMapFromConfig(&cfg.Keys),
	}
}

func printWarnings(w io.Writer, warnings []string) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}

func debugLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "chessboard", "debug.log")
}

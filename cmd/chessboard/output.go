package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"
	"github.com/pelletier/go-toml/v2"

	"github.com/henri123lemoine/chessboard/internal/ui"
)

// Format is an encoding for the confirmed grid.
type Format string

const (
	FormatJSON  Format = "json"
	FormatTOML  Format = "toml"
	FormatTable Format = "table"
)

// tomlResult is the TOML document shape. TOML has no null, so empty cells
// are written as "".
type tomlResult struct {
	RowLabels    []string   `toml:"row_labels,omitempty"`
	ColumnLabels []string   `toml:"column_labels,omitempty"`
	Cells        [][]string `toml:"cells"`
}

// resolveFormat picks the output format. Without an explicit choice a
// terminal gets a table and anything else gets JSON.
func resolveFormat(name, output string, stdout *os.File) (Format, error) {
	switch Format(name) {
	case FormatJSON, FormatTOML, FormatTable:
		return Format(name), nil
	case "":
	default:
		return "", fmt.Errorf("unknown format %q (expected json, toml or table)", name)
	}

	if output == "" && stdout != nil && isTerminal(stdout.Fd()) {
		return FormatTable, nil
	}
	return FormatJSON, nil
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// encodeResult renders the confirmed grid. Encoded output always ends in a
// newline.
func encodeResult(format Format, values [][]*string, rowLabels, columnLabels []string, table ui.TableOptions) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(values, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(data, '\n'), nil

	case FormatTOML:
		doc := tomlResult{
			RowLabels:    rowLabels,
			ColumnLabels: columnLabels,
			Cells:        make([][]string, len(values)),
		}
		for r, row := range values {
			doc.Cells[r] = make([]string, len(row))
			for c, v := range row {
				if v != nil {
					doc.Cells[r][c] = *v
				}
			}
		}
		data, err := toml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return data, nil

	case FormatTable:
		return []byte(ui.FormatResult(values, rowLabels, columnLabels, table) + "\n"), nil
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	// Exclusive lock so concurrent runs never interleave their writes
	fileLock := flock.New(path + ".lock")
	if err := fileLock.Lock(); err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	defer fileLock.Unlock()

	// Write atomically: write to temp file then rename
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

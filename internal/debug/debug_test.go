package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDisabledIsNoop(t *testing.T) {
	Close()

	if IsEnabled() {
		t.Fatal("Expected debug to be disabled")
	}

	// Must not panic without a log file
	Log("nothing %d", 1)
	Warn("nothing")
	Timed("noop")()
}

func TestEnableWritesLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	if err := Enable(path); err != nil {
		t.Fatalf("Enable() error: %v", err)
	}
	defer Close()

	if !IsEnabled() {
		t.Fatal("Expected debug to be enabled")
	}

	Log("cursor moved to (%d,%d)", 1, 2)
	Warn("rows has %d labels", 5)
	Timed("render")()
	Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log: %v", err)
	}
	content := string(data)

	for _, want := range []string{
		"Debug logging enabled",
		"cursor moved to (1,2)",
		"WRN",
		"rows has 5 labels",
		"render started",
		"render completed in",
	} {
		if !strings.Contains(content, want) {
			t.Errorf("Expected %q in log:\n%s", want, content)
		}
	}
}

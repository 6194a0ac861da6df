package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected log.Level
		wantErr  bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"WARN", log.WarnLevel, false},
		{"error", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}
	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseLevel(%q) error = %v", tc.in, err)
		}
		if got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestNewFallbackWriter(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Fallback = &buf

	logger, closer, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()

	logger.Debug("hidden")
	logger.Info("pack loaded", "pack", "pong")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message written at info level")
	}
	if !strings.Contains(out, "pack loaded") || !strings.Contains(out, "pong") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNewRotatingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "arcade.log")
	opts := DefaultOptions()
	opts.File = path
	opts.Level = "debug"

	logger, closer, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	logger.Debug("state changed", "to", "InGame")
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "state changed") {
		t.Errorf("log file content %q", data)
	}
}

func TestNewRejectsBadLevel(t *testing.T) {
	opts := DefaultOptions()
	opts.Level = "verbose"
	if _, _, err := New(opts); err == nil {
		t.Error("expected error for unknown level")
	}
}

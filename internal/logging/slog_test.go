package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"", slog.LevelWarn, false},
		{" INFO ", slog.LevelInfo, false},
		{"verbose", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lvl, err := ParseLevel(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseLevel(%q) expected error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) error: %v", tt.input, err)
			}
			if lvl != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tt.input, lvl, tt.expected)
			}
		})
	}
}

func TestSetupWithWriterFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := SetupWithWriter("warn", &buf); err != nil {
		t.Fatalf("SetupWithWriter() error: %v", err)
	}

	slog.Info("hidden")
	slog.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn message should be logged")
	}
}

func TestSetupRejectsUnknownLevel(t *testing.T) {
	if err := Setup("chatty"); err == nil {
		t.Error("expected error for unknown level")
	}
}

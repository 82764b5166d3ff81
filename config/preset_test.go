package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writePreset(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wheel.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to write preset: %v", err)
	}
	return path
}

func TestLoadWheelPreset(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		path := writePreset(t, `
wheel:
  sectors: 4
  duration: 4200ms
  palette: ["#111111", "#222222"]
`)
		p, err := LoadWheelPreset(path)
		if err != nil {
			t.Fatalf("LoadWheelPreset failed: %v", err)
		}
		if p.Sectors != 4 || p.Duration != 4200*time.Millisecond || len(p.Palette) != 2 {
			t.Errorf("unexpected preset %+v", p)
		}
		if n := len(p.EngineOptions()); n != 3 {
			t.Errorf("Expected 3 engine options, got %d", n)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		p, err := LoadWheelPreset(filepath.Join(t.TempDir(), "nope.yaml"))
		if err != nil {
			t.Fatalf("Expected no error for missing file, got %v", err)
		}
		if len(p.EngineOptions()) != 0 {
			t.Error("Expected no options from zero preset")
		}
	})

	t.Run("Invalid", func(t *testing.T) {
		if _, err := LoadWheelPreset(writePreset(t, "wheel: [oops")); err == nil {
			t.Error("Expected parse error")
		}
		for _, d := range []string{"-2s", "50ms", "3999ms", "4201ms", "1h"} {
			if _, err := LoadWheelPreset(writePreset(t, "wheel:\n  duration: "+d+"\n")); err == nil {
				t.Errorf("Expected error for duration %s", d)
			}
		}
	})
}

package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().validate(); err != nil {
		t.Fatalf("defaults do not validate: %v", err)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WinScore != DefaultConfig().WinScore {
		t.Error("empty path should return the defaults")
	}
}

func TestLoadConfigOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"winScore": 3, "ballSpeed": 12}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.WinScore != 3 {
		t.Errorf("WinScore = %d, want 3", cfg.WinScore)
	}
	if cfg.BallSpeed != 12 {
		t.Errorf("BallSpeed = %v, want 12", cfg.BallSpeed)
	}
	// Untouched fields keep their defaults.
	if cfg.ScreenWidth != DefaultConfig().ScreenWidth {
		t.Errorf("ScreenWidth = %d, want default", cfg.ScreenWidth)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"Zero win score", `{"winScore": 0}`},
		{"Negative serve delay", `{"serveDelay": -1}`},
		{"Bad player count", `{"players": 3}`},
		{"Malformed JSON", `{"winScore": `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.json")
			if err := os.WriteFile(path, []byte(tt.body), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := LoadConfig(path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

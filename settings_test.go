package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pong", "settings.json")

	if err := saveSettingsFile(path, Settings{Muted: true}); err != nil {
		t.Fatal(err)
	}
	if got := loadSettingsFile(path); !got.Muted {
		t.Error("muted flag lost on round trip")
	}

	if err := saveSettingsFile(path, Settings{Muted: false}); err != nil {
		t.Fatal(err)
	}
	if got := loadSettingsFile(path); got.Muted {
		t.Error("unmute not persisted")
	}
}

func TestLoadSettingsMissingFile(t *testing.T) {
	got := loadSettingsFile(filepath.Join(t.TempDir(), "settings.json"))
	if got.Muted {
		t.Error("missing file should default to unmuted")
	}
}

func TestLoadSettingsCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if got := loadSettingsFile(path); got.Muted {
		t.Error("corrupt file should fall back to defaults")
	}
}

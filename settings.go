package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
)

// Settings is the small persisted state: just the mute flag, matching
// what the browser build kept in local storage.
type Settings struct {
	Muted bool `json:"muted"`
}

func settingsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "pong", "settings.json"), nil
}

// LoadSettings returns the persisted settings, or defaults when none
// were saved yet.
func LoadSettings() Settings {
	path, err := settingsPath()
	if err != nil {
		return Settings{}
	}
	return loadSettingsFile(path)
}

func loadSettingsFile(path string) Settings {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Settings{}
	}
	var s Settings
	if err := json.Unmarshal(raw, &s); err != nil {
		log.Printf("settings %s: %v", path, err)
		return Settings{}
	}
	return s
}

func SaveSettings(s Settings) error {
	path, err := settingsPath()
	if err != nil {
		return err
	}
	return saveSettingsFile(path, s)
}

func saveSettingsFile(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0o644)
}

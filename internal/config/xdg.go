// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(XDGConfigHome(), "keydrill", "config.toml")
}

// DefaultTextsPath returns the default path for the texts override file.
func DefaultTextsPath() string {
	return filepath.Join(XDGConfigHome(), "keydrill", "texts.json")
}

// DefaultProfilePath returns the default path for the user profile store.
func DefaultProfilePath() string {
	return filepath.Join(XDGDataHome(), "keydrill", "profiles.json")
}

// DefaultHistoryPath returns the default path for the session history database.
func DefaultHistoryPath() string {
	return filepath.Join(XDGDataHome(), "keydrill", "history.db")
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	if err != nil {
		t.Fatalf("expected missing file to be fine, got %v", err)
	}
	if cfg.Game.Theme != nil || cfg.Game.Duration != nil {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestLoadConfigParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[game]
theme = "Ocean"
duration = 60
words = 50
texts = "/tmp/texts.json"
line-words = 8
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Theme == nil || *cfg.Game.Theme != "Ocean" {
		t.Fatalf("unexpected theme: %+v", cfg.Game.Theme)
	}
	if cfg.Game.Duration == nil || *cfg.Game.Duration != 60 {
		t.Fatalf("unexpected duration: %+v", cfg.Game.Duration)
	}
	if cfg.Game.WordGoal == nil || *cfg.Game.WordGoal != 50 {
		t.Fatalf("unexpected word goal: %+v", cfg.Game.WordGoal)
	}
	if cfg.Game.TextsPath == nil || *cfg.Game.TextsPath != "/tmp/texts.json" {
		t.Fatalf("unexpected texts path: %+v", cfg.Game.TextsPath)
	}
	if cfg.Game.LineWords == nil || *cfg.Game.LineWords != 8 {
		t.Fatalf("unexpected line words: %+v", cfg.Game.LineWords)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `[game]
duration = 45
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Game.Theme != nil {
		t.Fatalf("expected unset theme, got %q", *cfg.Game.Theme)
	}
	if cfg.Game.Duration == nil || *cfg.Game.Duration != 45 {
		t.Fatalf("unexpected duration: %+v", cfg.Game.Duration)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not = [valid"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected decode error")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("GROCER_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load with missing file should not error, got %v", err)
	}
	if cfg.KeyMappings.AddItem != "a" {
		t.Errorf("Expected default add_item binding, got %q", cfg.KeyMappings.AddItem)
	}
	if cfg.Theme.Success != "42" {
		t.Errorf("Expected default success color, got %q", cfg.Theme.Success)
	}
	if cfg.Database.Path != "" {
		t.Errorf("Expected empty database path by default, got %q", cfg.Database.Path)
	}
}

func TestLoadPartialConfigAppliesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "database:\n  path: /tmp/custom.db\nkey_mappings:\n  quit: x\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("GROCER_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Database.Path != "/tmp/custom.db" {
		t.Errorf("Expected custom database path, got %q", cfg.Database.Path)
	}
	if cfg.KeyMappings.Quit != "x" {
		t.Errorf("Expected overridden quit binding, got %q", cfg.KeyMappings.Quit)
	}
	// Unset values fall back to defaults
	if cfg.KeyMappings.AddItem != "a" {
		t.Errorf("Expected default add_item binding, got %q", cfg.KeyMappings.AddItem)
	}
	if cfg.Theme.Accent != "12" {
		t.Errorf("Expected default accent color, got %q", cfg.Theme.Accent)
	}
}

func TestLoadMalformedConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("key_mappings: ["), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	t.Setenv("GROCER_CONFIG", path)

	if _, err := Load(); err == nil {
		t.Error("Expected error for malformed YAML")
	}
}

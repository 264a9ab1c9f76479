// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// sidekick.
package config

import (
	"os"
	"path/filepath"
	"testing"
)

// =============================================================================
// DEFAULT CONFIG TESTS
// =============================================================================

func TestDefault(t *testing.T) {
	cfg := Default()

	if !cfg.Preload.Enabled {
		t.Error("Preload should be enabled by default")
	}
	if cfg.Preload.CacheCapacity != 10 {
		t.Errorf("CacheCapacity = %d, want 10", cfg.Preload.CacheCapacity)
	}
	if cfg.Preload.DebounceMs != 150 {
		t.Errorf("DebounceMs = %d, want 150", cfg.Preload.DebounceMs)
	}
	if cfg.Preload.WarmupGapMs != 50 {
		t.Errorf("WarmupGapMs = %d, want 50", cfg.Preload.WarmupGapMs)
	}
	if cfg.Preload.BatteryThreshold != 0.2 {
		t.Errorf("BatteryThreshold = %g, want 0.2", cfg.Preload.BatteryThreshold)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate: %v", err)
	}
}

// =============================================================================
// LOAD TESTS
// =============================================================================

func TestLoadFromPath_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
version = "1"

[ui]
theme = "dark"
show_sidebar = true

[preload]
enabled = false
cache_capacity = 5
debounce_ms = 200
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.UI.Theme != "dark" {
		t.Errorf("Theme = %q, want %q", cfg.UI.Theme, "dark")
	}
	if cfg.Preload.Enabled {
		t.Error("Preload.Enabled should be false")
	}
	if cfg.Preload.CacheCapacity != 5 {
		t.Errorf("CacheCapacity = %d, want 5", cfg.Preload.CacheCapacity)
	}
	if cfg.Preload.DebounceMs != 200 {
		t.Errorf("DebounceMs = %d, want 200", cfg.Preload.DebounceMs)
	}
	// Omitted values fall back to defaults
	if cfg.Preload.WarmupGapMs != 50 {
		t.Errorf("WarmupGapMs = %d, want default 50", cfg.Preload.WarmupGapMs)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	content := `{"ui": {"theme": "light"}, "preload": {"cache_capacity": 3}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want %q", cfg.UI.Theme, "light")
	}
	if cfg.Preload.CacheCapacity != 3 {
		t.Errorf("CacheCapacity = %d, want 3", cfg.Preload.CacheCapacity)
	}
}

func TestLoadFromPath_InvalidTheme(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"neon\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFromPath(path); err == nil {
		t.Error("Expected validation error for invalid theme")
	}
}

// =============================================================================
// ENV OVERRIDE TESTS
// =============================================================================

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SIDEKICK_THEME", "light")
	t.Setenv("SIDEKICK_PRELOAD", "false")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.UI.Theme != "light" {
		t.Errorf("Theme = %q, want %q", cfg.UI.Theme, "light")
	}
	if cfg.Preload.Enabled {
		t.Error("Preload.Enabled should be overridden to false")
	}
}

func TestApplyEnvOverrides_BadBoolIgnored(t *testing.T) {
	t.Setenv("SIDEKICK_PRELOAD", "maybe")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if !cfg.Preload.Enabled {
		t.Error("Unparseable bool should leave Preload.Enabled untouched")
	}
}

// =============================================================================
// VALIDATION TESTS
// =============================================================================

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid default", func(c *Config) {}, false},
		{"zero capacity", func(c *Config) { c.Preload.CacheCapacity = 0 }, true},
		{"negative debounce", func(c *Config) { c.Preload.DebounceMs = -1 }, true},
		{"threshold above one", func(c *Config) { c.Preload.BatteryThreshold = 1.5 }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "sepia" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// sidekick.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/sidekick-tui/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete sidekick configuration.
type Config struct {
	// General settings
	Version string `toml:"version" json:"version"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Preload configuration for lazily-constructed panels
	Preload PreloadConfig `toml:"preload" json:"preload"`

	// Agent backend bridge configuration
	Agent AgentConfig `toml:"agent" json:"agent"`

	// Activity log configuration
	Activity ActivityConfig `toml:"activity" json:"activity"`
}

// UIConfig contains appearance and layout settings.
type UIConfig struct {
	// Theme is the color theme name: "dark", "light", "auto"
	Theme string `toml:"theme" json:"theme"`
	// ShowSidebar toggles the panel sidebar
	ShowSidebar bool `toml:"show_sidebar" json:"show_sidebar"`
	// CompactToolCards renders tool results collapsed by default
	CompactToolCards bool `toml:"compact_tool_cards" json:"compact_tool_cards"`
}

// PreloadConfig controls the panel preload scheduler.
type PreloadConfig struct {
	// Enabled toggles preloading entirely
	Enabled bool `toml:"enabled" json:"enabled"`
	// CacheCapacity bounds the preload cache; oldest entries evict first
	CacheCapacity int `toml:"cache_capacity" json:"cache_capacity"`
	// DebounceMs is how long sidebar focus must rest on a panel button
	// before a preload is scheduled
	DebounceMs int `toml:"debounce_ms" json:"debounce_ms"`
	// IdleFallbackMs is the fixed deferral used when idle detection is
	// unavailable
	IdleFallbackMs int `toml:"idle_fallback_ms" json:"idle_fallback_ms"`
	// WarmupGapMs is the pause between fetches during batch warmup
	WarmupGapMs int `toml:"warmup_gap_ms" json:"warmup_gap_ms"`
	// RespectSlowConnection skips preloading on slow effective link types
	RespectSlowConnection bool `toml:"respect_slow_connection" json:"respect_slow_connection"`
	// RespectLowBattery skips preloading when battery is low and discharging
	RespectLowBattery bool `toml:"respect_low_battery" json:"respect_low_battery"`
	// BatteryThreshold is the low-battery cutoff (0..1)
	BatteryThreshold float64 `toml:"battery_threshold" json:"battery_threshold"`
	// WarmPanels are preloaded in order once the app has been idle after startup
	WarmPanels []string `toml:"warm_panels" json:"warm_panels"`
}

// AgentConfig describes how to reach the external agent backend.
type AgentConfig struct {
	// Command is the backend bridge executable; spoken to over stdio
	Command string `toml:"command" json:"command"`
	// Args are passed to the bridge command
	Args []string `toml:"args" json:"args"`
	// TimeoutSecs bounds a single request to the backend (0 = no limit)
	TimeoutSecs int `toml:"timeout_secs" json:"timeout_secs"`
}

// ActivityConfig controls the activity log store.
type ActivityConfig struct {
	// Path to the SQLite database; defaults to ~/.sidekick/activity.db
	Path string `toml:"path" json:"path"`
	// MaxEvents caps retained events; older rows are pruned (0 = unlimited)
	MaxEvents int `toml:"max_events" json:"max_events"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: "1",
		UI: UIConfig{
			Theme:            "auto",
			ShowSidebar:      true,
			CompactToolCards: true,
		},
		Preload: PreloadConfig{
			Enabled:               true,
			CacheCapacity:         10,
			DebounceMs:            150,
			IdleFallbackMs:        100,
			WarmupGapMs:           50,
			RespectSlowConnection: true,
			RespectLowBattery:     true,
			BatteryThreshold:      0.2,
			WarmPanels:            []string{"settings", "activity"},
		},
		Agent: AgentConfig{
			Command:     "",
			TimeoutSecs: 120,
		},
		Activity: ActivityConfig{
			MaxEvents: 5000,
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the sidekick configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".sidekick"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	if path, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	if path, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Files ending in .json are decoded as JSON, everything else
// as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read JSON config: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode JSON config: %w", err)
		}
	} else {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to decode TOML config: %w", err)
		}
	}

	cfg.ApplyEnvOverrides()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies SIDEKICK_* environment variables on top of the
// loaded configuration. Unparseable values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("SIDEKICK_THEME"); v != "" {
		c.UI.Theme = v
	}
	if v := os.Getenv("SIDEKICK_AGENT_COMMAND"); v != "" {
		c.Agent.Command = v
	}
	if v := os.Getenv("SIDEKICK_PRELOAD"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Preload.Enabled = b
		}
	}
	if v := os.Getenv("SIDEKICK_ACTIVITY_PATH"); v != "" {
		c.Activity.Path = v
	}
}

// =============================================================================
// DEFAULTS & VALIDATION
// =============================================================================

// SetDefaults fills in zero values that have non-zero defaults. Decoded
// config files may omit whole sections; those sections get default values
// rather than zeroes that would disable the feature.
func (c *Config) SetDefaults() {
	d := Default()
	if c.Version == "" {
		c.Version = d.Version
	}
	if c.UI.Theme == "" {
		c.UI.Theme = d.UI.Theme
	}
	if c.Preload.CacheCapacity == 0 {
		c.Preload.CacheCapacity = d.Preload.CacheCapacity
	}
	if c.Preload.DebounceMs == 0 {
		c.Preload.DebounceMs = d.Preload.DebounceMs
	}
	if c.Preload.IdleFallbackMs == 0 {
		c.Preload.IdleFallbackMs = d.Preload.IdleFallbackMs
	}
	if c.Preload.WarmupGapMs == 0 {
		c.Preload.WarmupGapMs = d.Preload.WarmupGapMs
	}
	if c.Preload.BatteryThreshold == 0 {
		c.Preload.BatteryThreshold = d.Preload.BatteryThreshold
	}
	if c.Agent.TimeoutSecs == 0 {
		c.Agent.TimeoutSecs = d.Agent.TimeoutSecs
	}
	if c.Activity.MaxEvents == 0 {
		c.Activity.MaxEvents = d.Activity.MaxEvents
	}
}

// Validate checks configuration values for consistency.
func (c *Config) Validate() error {
	switch c.UI.Theme {
	case "dark", "light", "auto":
	default:
		return fmt.Errorf("ui.theme must be one of dark, light, auto (got %q)", c.UI.Theme)
	}

	if c.Preload.CacheCapacity < 1 {
		return fmt.Errorf("preload.cache_capacity must be >= 1 (got %d)", c.Preload.CacheCapacity)
	}
	if c.Preload.DebounceMs < 0 {
		return fmt.Errorf("preload.debounce_ms must be >= 0 (got %d)", c.Preload.DebounceMs)
	}
	if c.Preload.BatteryThreshold < 0 || c.Preload.BatteryThreshold > 1 {
		return fmt.Errorf("preload.battery_threshold must be in [0, 1] (got %g)", c.Preload.BatteryThreshold)
	}
	if c.Activity.MaxEvents < 0 {
		return fmt.Errorf("activity.max_events must be >= 0 (got %d)", c.Activity.MaxEvents)
	}

	return nil
}

// =============================================================================
// SAVE
// =============================================================================

// Save writes the configuration to the TOML config file atomically.
func (c *Config) Save() error {
	if err := EnsureConfigDir(); err != nil {
		return err
	}
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}

	var sb strings.Builder
	if err := toml.NewEncoder(&sb).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return util.AtomicWriteFile(path, []byte(sb.String()), 0600)
}

// ActivityPath resolves the activity database path, defaulting to
// ~/.sidekick/activity.db when unset.
func (c *Config) ActivityPath() (string, error) {
	if c.Activity.Path != "" {
		return c.Activity.Path, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "activity.db"), nil
}

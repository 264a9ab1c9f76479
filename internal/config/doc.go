// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides unified configuration loading and management for
// sidekick.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.sidekick/config.toml
//   - ~/.sidekick/config.json
//   - Built-in defaults
//
// # Key Types
//
//   - Config: complete sidekick configuration
//   - PreloadConfig: panel preload policy (debounce, gates, capacity)
//   - UIConfig: theme and sidebar settings
//   - AgentConfig: backend bridge command
//   - Watcher: fsnotify-based hot reload of the config file
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if cfg.Preload.Enabled {
//	    // wire the preload scheduler
//	}
package config

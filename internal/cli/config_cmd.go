// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - Configuration command handler for sidekick CLI.
//
// Subcommands:
//   sidekick config show            Print the active configuration
//   sidekick config set KEY VALUE   Set one value and save
//   sidekick config path            Print the config file location
//
// Settable keys use dotted paths matching the TOML layout, e.g.
// ui.theme, preload.enabled, agent.command.
package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/sidekick-tui/internal/config"
)

// HandleConfigCommand dispatches the config subcommands.
func HandleConfigCommand(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	switch args.Subcommand {
	case "", "show":
		return configShow(cfg)
	case "set":
		key := args.Parser.Positional(2)
		value := args.Parser.Positional(3)
		if key == "" || value == "" {
			return fmt.Errorf("usage: sidekick config set KEY VALUE")
		}
		return configSet(cfg, key, value)
	case "path":
		path, err := config.ConfigPathTOML()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	default:
		return fmt.Errorf("unknown config subcommand: %s (want show, set, or path)", args.Subcommand)
	}
}

// configShow prints the active configuration as TOML.
func configShow(cfg *config.Config) error {
	enc := toml.NewEncoder(os.Stdout)
	enc.Indent = "  "
	return enc.Encode(cfg)
}

// configSet updates one dotted key and saves the config.
func configSet(cfg *config.Config, key, value string) error {
	if err := applyConfigKey(cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("rejected: %w", err)
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}
	fmt.Printf("%s %s = %s\n", valueStyle.Render("[OK]"), key, value)
	return nil
}

// applyConfigKey maps a dotted key onto a Config field.
func applyConfigKey(cfg *config.Config, key, value string) error {
	switch strings.ToLower(key) {
	case "ui.theme":
		cfg.UI.Theme = value
	case "ui.show_sidebar":
		return setBool(&cfg.UI.ShowSidebar, key, value)
	case "ui.compact_tool_cards":
		return setBool(&cfg.UI.CompactToolCards, key, value)
	case "preload.enabled":
		return setBool(&cfg.Preload.Enabled, key, value)
	case "preload.cache_capacity":
		return setInt(&cfg.Preload.CacheCapacity, key, value)
	case "preload.debounce_ms":
		return setInt(&cfg.Preload.DebounceMs, key, value)
	case "preload.idle_fallback_ms":
		return setInt(&cfg.Preload.IdleFallbackMs, key, value)
	case "preload.warmup_gap_ms":
		return setInt(&cfg.Preload.WarmupGapMs, key, value)
	case "preload.respect_slow_connection":
		return setBool(&cfg.Preload.RespectSlowConnection, key, value)
	case "preload.respect_low_battery":
		return setBool(&cfg.Preload.RespectLowBattery, key, value)
	case "agent.command":
		cfg.Agent.Command = value
	case "agent.timeout_secs":
		return setInt(&cfg.Agent.TimeoutSecs, key, value)
	case "activity.max_events":
		return setInt(&cfg.Activity.MaxEvents, key, value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func setBool(dst *bool, key, value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%s wants true or false, got %q", key, value)
	}
	*dst = b
	return nil
}

func setInt(dst *int, key, value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%s wants a number, got %q", key, value)
	}
	*dst = n
	return nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// status.go - System status command handler for sidekick CLI.
//
// Shows the active configuration, whether the agent backend is
// reachable, device state as the preloader sees it, and activity log
// totals. First stop when something looks wrong.
package cli

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/jeranaias/sidekick-tui/internal/activity"
	"github.com/jeranaias/sidekick-tui/internal/config"
	"github.com/jeranaias/sidekick-tui/internal/devstate"
)

// HandleStatusCommand prints a status report.
func HandleStatusCommand(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("sidekick status"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	// Agent backend
	fmt.Println(headerStyle.Render("Agent"))
	fmt.Printf("  %s %s\n", labelStyle.Render("Command:"), valueStyle.Render(cfg.Agent.Command))
	if path, err := exec.LookPath(cfg.Agent.Command); err == nil {
		fmt.Printf("  %s %s\n", labelStyle.Render("Resolved:"), path)
	} else {
		fmt.Printf("  %s %s\n", labelStyle.Render("Resolved:"),
			errorStyle.Render("not found in PATH"))
	}
	fmt.Printf("  %s %ds\n", labelStyle.Render("Timeout:"), cfg.Agent.TimeoutSecs)
	fmt.Println()

	// Preloading
	fmt.Println(headerStyle.Render("Preload"))
	fmt.Printf("  %s %s\n", labelStyle.Render("Enabled:"), boolValue(cfg.Preload.Enabled))
	fmt.Printf("  %s %d panels\n", labelStyle.Render("Cache:"), cfg.Preload.CacheCapacity)
	fmt.Printf("  %s %dms debounce, %dms idle fallback\n",
		labelStyle.Render("Timing:"), cfg.Preload.DebounceMs, cfg.Preload.IdleFallbackMs)
	if len(cfg.Preload.WarmPanels) > 0 {
		fmt.Printf("  %s %s\n", labelStyle.Render("Warm:"),
			strings.Join(cfg.Preload.WarmPanels, ", "))
	}
	fmt.Println()

	// Device state as the advisory gates would see it
	fmt.Println(headerStyle.Render("Device"))
	provider := devstate.NewSystemProvider()
	if battery, ok := provider.Battery(); ok {
		state := fmt.Sprintf("%.0f%%", battery.Level*100)
		if battery.Charging {
			state += " (charging)"
		}
		fmt.Printf("  %s %s\n", labelStyle.Render("Battery:"), state)
	} else {
		fmt.Printf("  %s %s\n", labelStyle.Render("Battery:"), infoStyle.Render("not available"))
	}
	if conn, ok := provider.Connection(); ok {
		if devstate.IsSlowConnection(conn) {
			fmt.Printf("  %s %s\n", labelStyle.Render("Network:"), warningStyle.Render(conn))
		} else {
			fmt.Printf("  %s %s\n", labelStyle.Render("Network:"), valueStyle.Render(conn))
		}
	} else {
		fmt.Printf("  %s %s\n", labelStyle.Render("Network:"), infoStyle.Render("not available"))
	}
	fmt.Println()

	// Activity log
	fmt.Println(headerStyle.Render("Activity"))
	path, err := cfg.ActivityPath()
	if err != nil {
		fmt.Printf("  %s %v\n", labelStyle.Render("Log:"), err)
		return nil
	}
	store, err := activity.OpenWithLimit(path, cfg.Activity.MaxEvents)
	if err != nil {
		fmt.Printf("  %s %s\n", labelStyle.Render("Log:"), errorStyle.Render(err.Error()))
		return nil
	}
	defer store.Close()

	count, err := store.Count()
	if err != nil {
		fmt.Printf("  %s %v\n", labelStyle.Render("Events:"), err)
		return nil
	}
	fmt.Printf("  %s %s\n", labelStyle.Render("Log:"), path)
	fmt.Printf("  %s %d (limit %d)\n", labelStyle.Render("Events:"), count, cfg.Activity.MaxEvents)
	fmt.Println()

	return nil
}

// boolValue renders a bool as styled yes/no.
func boolValue(b bool) string {
	if b {
		return valueStyle.Render("yes")
	}
	return infoStyle.Render("no")
}

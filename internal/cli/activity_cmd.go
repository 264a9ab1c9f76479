// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// activity_cmd.go - Activity log command handler for sidekick CLI.
//
// Subcommands:
//   sidekick activity show            Recent events (default: 20)
//     --limit N                       Show last N events
//     --kind KIND                     Filter: preload, tool, chat, config
//   sidekick activity clear           Delete all recorded events
package cli

import (
	"fmt"
	"time"

	"github.com/jeranaias/sidekick-tui/internal/activity"
	"github.com/jeranaias/sidekick-tui/internal/config"
	"github.com/jeranaias/sidekick-tui/internal/util"
)

// defaultActivityLimit is how many events show prints without --limit.
const defaultActivityLimit = 20

// HandleActivityCommand dispatches the activity subcommands.
func HandleActivityCommand(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	path, err := cfg.ActivityPath()
	if err != nil {
		return err
	}
	store, err := activity.OpenWithLimit(path, cfg.Activity.MaxEvents)
	if err != nil {
		return fmt.Errorf("failed to open activity log: %w", err)
	}
	defer store.Close()

	switch args.Subcommand {
	case "", "show":
		return activityShow(store, args)
	case "clear":
		if err := store.Clear(); err != nil {
			return fmt.Errorf("failed to clear activity log: %w", err)
		}
		fmt.Println(valueStyle.Render("[OK]"), "activity log cleared")
		return nil
	default:
		return fmt.Errorf("unknown activity subcommand: %s (want show or clear)", args.Subcommand)
	}
}

// activityShow prints recent events, newest first.
func activityShow(store *activity.Store, args Args) error {
	limit := args.Parser.FlagIntOrDefault("limit", defaultActivityLimit)
	kind := args.Parser.Flag("kind")

	var events []activity.Event
	var err error
	if kind != "" {
		events, err = store.RecentByKind(kind, limit)
	} else {
		events, err = store.Recent(limit)
	}
	if err != nil {
		return fmt.Errorf("failed to read activity log: %w", err)
	}

	if len(events) == 0 {
		fmt.Println(infoStyle.Render("No activity recorded."))
		return nil
	}

	now := time.Now()
	for _, e := range events {
		fmt.Printf("%s %s  %s\n",
			labelStyle.Render(fmt.Sprintf("[%-7s]", e.Kind)),
			util.TruncateRunes(util.FirstLine(e.Detail), 60),
			infoStyle.Render(util.FormatRelative(e.CreatedAt, now)))
	}
	return nil
}

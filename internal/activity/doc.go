// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package activity records what sidekick did: panel warmups, tool
// invocations, chat exchanges, and config reloads. Events land in a
// local SQLite database so the activity panel and the `sidekick
// activity` command can show recent history across restarts.
//
// # Key Types
//
//   - Event: one recorded action with kind, detail, and timestamp
//   - Store: append-only event log backed by SQLite
//
// # Usage
//
//	store, err := activity.Open(cfg.ActivityPath())
//	if err != nil { ... }
//	defer store.Close()
//
//	store.Append(activity.Event{Kind: activity.KindTool, Detail: "shell: ls -la"})
//	recent, _ := store.Recent(20)
//
// The store prunes itself: Append trims the table beyond the configured
// maximum, oldest rows first.
package activity

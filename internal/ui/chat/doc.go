// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat provides the root bubbletea model for the sidekick TUI.
//
// The model composes three regions: the transcript (chat messages and
// tool cards), the panel sidebar, and the input line. The sidebar is
// wired to the preload scheduler: resting the cursor on a panel entry
// debounces into a background warmup, so opening the panel is instant.
// Every key press touches the idle detector, keeping preloads off
// interactive frames.
//
// # Message Flow
//
// Sending a prompt launches the agent turn on a goroutine that feeds
// events into a channel; waitForEvent re-arms after each delivery, the
// standard bubbletea streaming pattern. Tool lifecycle events resolve
// through the agent tracker and render as cards via the toolui
// registry.
package chat

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides UI components for the sidekick TUI.
//
// # Key Types
//
//   - ToolCard: one tool invocation rendered as a transcript card
//   - ToolCardList: the ordered cards of the current conversation
//   - Spinner: loading spinner built on bubbles with sidekick's frame sets
//
// Components hold presentation state only (expansion, width, animation
// frame). Domain state lives on toolcall.Invocation and is shared with
// the agent tracker that resolves it.
package components

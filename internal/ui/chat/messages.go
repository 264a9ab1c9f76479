// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"time"

	"github.com/jeranaias/sidekick-tui/internal/agent"
	"github.com/jeranaias/sidekick-tui/internal/config"
)

// =============================================================================
// TRANSCRIPT TYPES
// =============================================================================

// Message is one transcript entry.
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
	Time    time.Time
}

// =============================================================================
// BUBBLETEA MESSAGES
// =============================================================================

// frameTickMsg advances loading animations.
type frameTickMsg time.Time

// agentEventMsg delivers one backend event from the active turn.
type agentEventMsg struct {
	event agent.Event
}

// turnDoneMsg signals that the agent turn finished.
type turnDoneMsg struct {
	err error
}

// panelReadyMsg signals that a panel requested via Enter is loaded (or
// failed) and can be shown.
type panelReadyMsg struct {
	key string
	err error
}

// warmupDoneMsg reports the startup batch warmup outcome.
type warmupDoneMsg struct {
	loaded int
}

// ConfigReloadedMsg delivers a hot-reloaded configuration. Sent from
// outside the event loop by the config file watcher.
type ConfigReloadedMsg struct {
	Config *config.Config
}

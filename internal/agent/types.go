// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agent

import "encoding/json"

// =============================================================================
// REQUEST TYPES
// =============================================================================

// Message is one turn of the conversation sent to the backend.
type Message struct {
	Role    string `json:"role"` // "user", "assistant", "system", "tool"
	Content string `json:"content"`
}

// Request is the JSON object written to the backend's stdin.
type Request struct {
	ID       string    `json:"id"`
	Messages []Message `json:"messages"`
}

// =============================================================================
// EVENT TYPES
// =============================================================================

// Event types emitted by the backend.
const (
	EventText      = "text"
	EventToolStart = "tool_start"
	EventToolEnd   = "tool_end"
	EventDone      = "done"
	EventError     = "error"
)

// Event is one parsed line of the backend's stdout stream. Fields are
// populated according to Type; unused fields stay zero.
type Event struct {
	Type string `json:"type"`

	// EventText
	Content string `json:"content,omitempty"`

	// EventToolStart / EventToolEnd
	ToolID string          `json:"id,omitempty"`
	Name   string          `json:"name,omitempty"`
	Args   json.RawMessage `json:"args,omitempty"`

	// EventToolEnd
	Success    bool   `json:"success,omitempty"`
	Output     string `json:"output,omitempty"`
	DurationMs int64  `json:"duration_ms,omitempty"`

	// EventError
	Message string `json:"message,omitempty"`
}

// EventCallback receives each event as it arrives. Called from the
// stream-reading goroutine; keep it fast.
type EventCallback func(Event)

// ArgPairs decodes a tool_start's args object into display strings
// keyed by argument name. Non-string values are re-marshaled as
// compact JSON.
func (e Event) ArgPairs() map[string]string {
	if len(e.Args) == 0 {
		return nil
	}
	var raw map[string]any
	if err := json.Unmarshal(e.Args, &raw); err != nil {
		return nil
	}
	pairs := make(map[string]string, len(raw))
	for k, v := range raw {
		switch val := v.(type) {
		case string:
			pairs[k] = val
		default:
			b, _ := json.Marshal(v)
			pairs[k] = string(b)
		}
	}
	return pairs
}

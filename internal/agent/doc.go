// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package agent bridges sidekick to an AI backend process. The backend
// is any executable that accepts a JSON request on stdin and streams
// JSON-lines events on stdout: text deltas, tool lifecycle events, and
// a final done event. sidekick stays backend-agnostic; swap the
// configured command and the whole UI keeps working.
//
// # Key Types
//
//   - Client: the interface the UI talks to
//   - CommandClient: spawns the configured backend command per prompt
//   - Event: one parsed line of the backend's stdout stream
//   - EventReader: line-by-line JSON parsing of the event stream
//
// # Wire Protocol
//
// Request (single JSON object on stdin):
//
//	{"id":"...","messages":[{"role":"user","content":"..."}]}
//
// Events (one JSON object per stdout line):
//
//	{"type":"text","content":"Hel"}
//	{"type":"tool_start","id":"t1","name":"shell","args":{"command":"ls"}}
//	{"type":"tool_end","id":"t1","success":true,"output":"...","duration_ms":42}
//	{"type":"done"}
//
// Malformed lines are skipped rather than failing the stream.
package agent

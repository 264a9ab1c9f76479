// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agent

import (
	"sort"
	"sync"
	"time"

	"github.com/jeranaias/sidekick-tui/internal/toolcall"
)

// =============================================================================
// INVOCATION TRACKER
// =============================================================================

// Tracker turns the backend's tool lifecycle events into toolcall
// invocations the UI can render. tool_start creates a pending
// invocation; the matching tool_end resolves it. Invocations keep
// their arrival order.
type Tracker struct {
	mu    sync.Mutex
	byID  map[string]*toolcall.Invocation
	order []*toolcall.Invocation
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{byID: make(map[string]*toolcall.Invocation)}
}

// Apply folds one backend event into the tracker. Non-tool events are
// ignored, as are tool_end events with no matching start and duplicate
// resolutions.
func (t *Tracker) Apply(e Event) {
	switch e.Type {
	case EventToolStart:
		t.mu.Lock()
		defer t.mu.Unlock()

		if _, exists := t.byID[e.ToolID]; exists {
			return
		}
		inv := toolcall.New(e.Name, argList(e))
		if e.ToolID != "" {
			// Keep the backend's ID so tool_end can find it
			inv.ID = e.ToolID
		}
		t.byID[inv.ID] = inv
		t.order = append(t.order, inv)

	case EventToolEnd:
		t.mu.Lock()
		defer t.mu.Unlock()

		inv, ok := t.byID[e.ToolID]
		if !ok {
			return
		}
		inv.Resolve(toolcall.Result{
			Success:  e.Success,
			Output:   e.Output,
			Error:    e.Message,
			Duration: time.Duration(e.DurationMs) * time.Millisecond,
		})
	}
}

// Invocations returns all tracked invocations in arrival order. The
// returned slice is a snapshot; the invocations themselves are shared.
func (t *Tracker) Invocations() []*toolcall.Invocation {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]*toolcall.Invocation, len(t.order))
	copy(out, t.order)
	return out
}

// Pending returns how many invocations have no result yet.
func (t *Tracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := 0
	for _, inv := range t.order {
		if inv.Result == nil {
			n++
		}
	}
	return n
}

// argList converts a tool_start's args to an ordered argument list.
// JSON objects carry no order, so arguments are sorted by name for a
// stable display.
func argList(e Event) []toolcall.Arg {
	pairs := e.ArgPairs()
	if len(pairs) == 0 {
		return nil
	}
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	args := make([]toolcall.Arg, 0, len(names))
	for _, name := range names {
		args = append(args, toolcall.Arg{Name: name, Value: pairs[name]})
	}
	return args
}

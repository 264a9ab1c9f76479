// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package preload warms lazily-constructed panels before the user opens
// them.
package preload

import (
	"sync"
	"time"
)

// =============================================================================
// HOVER TRIGGER
// =============================================================================

// DefaultHoverDelay is how long focus must rest on a key before its
// preload is scheduled.
const DefaultHoverDelay = 150 * time.Millisecond

// HoverTrigger debounces enter/leave focus signals per key. Enter starts a
// timer; Leave before the timer fires cancels it, so skating across the
// sidebar issues no fetches. When the timer does fire the preload is
// handed to the Idler, keeping panel construction off interactive frames.
//
// Once the preload callback has been scheduled there is no cancellation:
// a fetch that starts runs to completion and records its outcome.
type HoverTrigger struct {
	mu      sync.Mutex
	delay   time.Duration
	idler   *Idler
	preload func(key string)
	timers  map[string]*time.Timer
}

// NewHoverTrigger creates a trigger that calls preload for keys whose
// focus survives the debounce delay. A non-positive delay uses
// DefaultHoverDelay. idler may be nil to run preloads immediately after
// the debounce.
func NewHoverTrigger(delay time.Duration, idler *Idler, preload func(key string)) *HoverTrigger {
	if delay <= 0 {
		delay = DefaultHoverDelay
	}
	return &HoverTrigger{
		delay:   delay,
		idler:   idler,
		preload: preload,
		timers:  make(map[string]*time.Timer),
	}
}

// Enter signals that focus arrived on key. Re-entering an already-focused
// key restarts its debounce timer.
func (h *HoverTrigger) Enter(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.timers[key]; ok {
		t.Stop()
	}
	h.timers[key] = time.AfterFunc(h.delay, func() {
		h.fire(key)
	})
}

// Leave signals that focus left key. A pending debounce timer is
// canceled; an already-fired preload is unaffected.
func (h *HoverTrigger) Leave(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if t, ok := h.timers[key]; ok {
		t.Stop()
		delete(h.timers, key)
	}
}

// CancelAll stops every pending debounce timer.
func (h *HoverTrigger) CancelAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for key, t := range h.timers {
		t.Stop()
		delete(h.timers, key)
	}
}

// fire runs when a debounce timer survives to expiry: the key is still
// focused, so schedule the preload.
func (h *HoverTrigger) fire(key string) {
	h.mu.Lock()
	// The timer fired, so it is spent; forget it.
	delete(h.timers, key)
	h.mu.Unlock()

	if h.idler != nil {
		h.idler.Schedule(func() { h.preload(key) })
		return
	}
	h.preload(key)
}

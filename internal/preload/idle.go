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
// IDLE SCHEDULING
// =============================================================================

const (
	// idlePollInterval bounds how often a scheduled callback re-checks
	// for quiescence.
	idlePollInterval = 20 * time.Millisecond

	// idleMaxWait caps how long a callback can be deferred before it runs
	// anyway. Preloading that never happens helps nobody.
	idleMaxWait = 2 * time.Second
)

// Idler defers callbacks until the UI event loop has been quiet for a
// threshold. The event loop reports interaction through Touch. With a zero
// threshold, idleness cannot be observed and Schedule falls back to a
// short fixed delay.
type Idler struct {
	mu           sync.Mutex
	threshold    time.Duration
	fallback     time.Duration
	lastActivity time.Time
}

// NewIdler creates an idler. threshold is how long the UI must be quiet
// before deferred work runs; fallback is the fixed delay used when
// threshold is zero.
func NewIdler(threshold, fallback time.Duration) *Idler {
	if fallback <= 0 {
		fallback = 100 * time.Millisecond
	}
	return &Idler{
		threshold:    threshold,
		fallback:     fallback,
		lastActivity: time.Now(),
	}
}

// FallbackDelay returns the fixed delay used when idleness cannot be
// observed.
func (i *Idler) FallbackDelay() time.Duration {
	return i.fallback
}

// Touch records a user interaction. Call from the UI event loop.
func (i *Idler) Touch() {
	i.mu.Lock()
	i.lastActivity = time.Now()
	i.mu.Unlock()
}

// IdleFor reports whether the UI has been quiet for at least d.
func (i *Idler) IdleFor(d time.Duration) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return time.Since(i.lastActivity) >= d
}

// Schedule runs fn once the UI is idle, or after the fixed fallback delay
// when idleness cannot be observed. fn runs on its own goroutine. The
// deferral is capped: after idleMaxWait, fn runs even under continuous
// interaction.
func (i *Idler) Schedule(fn func()) {
	if i.threshold <= 0 {
		time.AfterFunc(i.fallback, fn)
		return
	}

	go func() {
		start := time.Now()
		for {
			i.mu.Lock()
			remaining := i.threshold - time.Since(i.lastActivity)
			i.mu.Unlock()

			if remaining <= 0 || time.Since(start) >= idleMaxWait {
				fn()
				return
			}

			sleep := remaining
			if sleep > idlePollInterval {
				sleep = idlePollInterval
			}
			time.Sleep(sleep)
		}
	}()
}

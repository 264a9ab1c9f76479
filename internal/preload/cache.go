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
// ENTRY STATUS
// =============================================================================

// Status is the load state of one cache entry.
type Status int

const (
	// StatusNotLoaded - no preload attempted (or entry evicted)
	StatusNotLoaded Status = iota

	// StatusLoading - fetch in flight
	StatusLoading

	// StatusLoaded - value available
	StatusLoaded

	// StatusFailed - fetch failed; error retained, retry permitted
	StatusFailed
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusFailed:
		return "failed"
	default:
		return "not-loaded"
	}
}

// Entry tracks the preload state of one panel key. Entries are owned
// exclusively by the Cache; callers see copies.
type Entry struct {
	Key        string
	Status     Status
	Err        error
	Value      any
	InsertedAt time.Time
}

// =============================================================================
// BOUNDED CACHE
// =============================================================================

// BeginResult reports what Begin found for a key.
type BeginResult int

const (
	// BeginStarted - entry marked Loading, caller owns the fetch
	BeginStarted BeginResult = iota

	// BeginAlreadyLoading - another fetch is in flight, caller must not fetch
	BeginAlreadyLoading

	// BeginAlreadyLoaded - value already present, nothing to do
	BeginAlreadyLoaded
)

// Cache is a bounded key -> Entry map with oldest-inserted-first eviction.
// All operations are safe for concurrent use.
type Cache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string]*Entry
	order    []string // insertion order, oldest first
}

// NewCache creates a cache bounded to capacity entries.
func NewCache(capacity int) *Cache {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache{
		capacity: capacity,
		entries:  make(map[string]*Entry),
	}
}

// Begin atomically decides whether a fetch for key should start. Loading
// and Loaded entries coalesce (no duplicate fetch). Failed entries are
// re-admitted as fresh requests: they are removed and re-inserted at the
// back of the eviction order. When the cache is full, the oldest entry is
// evicted to make room.
func (c *Cache) Begin(key string) BeginResult {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		switch e.Status {
		case StatusLoaded:
			return BeginAlreadyLoaded
		case StatusLoading:
			return BeginAlreadyLoading
		default:
			// Failed entry: retry as a fresh request
			c.remove(key)
		}
	}

	if len(c.entries) >= c.capacity {
		c.evictOldest()
	}

	c.entries[key] = &Entry{
		Key:        key,
		Status:     StatusLoading,
		InsertedAt: time.Now(),
	}
	c.order = append(c.order, key)
	return BeginStarted
}

// Complete records the outcome of a fetch started with Begin. If the entry
// was evicted while the fetch was in flight the result is discarded; the
// key simply reads as a cache miss afterwards.
func (c *Cache) Complete(key string, value any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || e.Status != StatusLoading {
		return
	}

	if err != nil {
		e.Status = StatusFailed
		e.Err = err
		e.Value = nil
		return
	}
	e.Status = StatusLoaded
	e.Value = value
	e.Err = nil
}

// Status returns the load state for key; StatusNotLoaded for unknown keys.
func (c *Cache) Status(key string) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return e.Status
	}
	return StatusNotLoaded
}

// Get returns the loaded value for key, if present and loaded.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok && e.Status == StatusLoaded {
		return e.Value, true
	}
	return nil, false
}

// Err returns the recorded fetch error for a Failed entry.
func (c *Cache) Err(key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		return e.Err
	}
	return nil
}

// Len returns the number of entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Clear empties the cache. Subsequent preloads start fresh.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*Entry)
	c.order = nil
}

// remove deletes an entry and its slot in the eviction order.
// Caller must hold the lock.
func (c *Cache) remove(key string) {
	delete(c.entries, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// evictOldest drops the earliest-inserted entry still present.
// Caller must hold the lock.
func (c *Cache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]
	delete(c.entries, oldest)
}

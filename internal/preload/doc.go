// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package preload warms lazily-constructed panels before the user opens
// them.
//
// A Scheduler owns a bounded Cache and a table of panel loaders. Sidebar
// hover (focus) signals feed a debounced HoverTrigger; when focus rests on
// a panel button long enough, the trigger defers a preload to the Idler so
// construction work never competes with interactive work. Advisory device
// gates (battery, connection quality) can veto a preload; gate absence
// always allows.
//
// # Key Types
//
//   - Cache: bounded key -> Entry map, oldest-inserted-first eviction
//   - Scheduler: gates, coalescing, fetch, batch warmup
//   - HoverTrigger: per-key debounce of enter/leave signals
//   - Idler: defers callbacks to UI quiescence with a fixed-delay fallback
//
// # Usage
//
//	sched := preload.NewScheduler(loaders, provider, cfg)
//	trigger := preload.NewHoverTrigger(cfg.Debounce, idler, func(key string) {
//	    sched.Preload(context.Background(), key)
//	})
//	trigger.Enter("settings") // on sidebar focus
//	trigger.Leave("settings") // cancels if before the debounce fires
//
// Failure handling: a failed fetch is recorded on the cache entry and
// surfaced as a false return, never an error. A Failed entry permits
// retry: the next Preload for that key re-attempts the fetch.
package preload

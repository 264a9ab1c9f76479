// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package preload warms lazily-constructed panels before the user opens
// them.
package preload

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/time/rate"

	"github.com/jeranaias/sidekick-tui/internal/devstate"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// Loader is the async factory for one loadable unit. The concrete panel
// construction mechanism is injected, so tests swap in fakes freely.
type Loader func(ctx context.Context) (any, error)

// Policy are the advisory gate settings consulted before a fetch.
type Policy struct {
	// RespectSlowConnection skips preloading on slow effective link types
	RespectSlowConnection bool
	// RespectLowBattery skips preloading when discharging below threshold
	RespectLowBattery bool
	// BatteryThreshold is the low-battery cutoff (0..1)
	BatteryThreshold float64
}

// Config bundles scheduler settings.
type Config struct {
	// Capacity bounds the cache (default 10)
	Capacity int
	// WarmupGap is the pause between batch preload fetches (default 50ms)
	WarmupGap time.Duration
	// Policy are the default gate settings
	Policy Policy
}

// DefaultConfig returns scheduler defaults.
func DefaultConfig() Config {
	return Config{
		Capacity:  10,
		WarmupGap: 50 * time.Millisecond,
		Policy: Policy{
			RespectSlowConnection: true,
			RespectLowBattery:     true,
			BatteryThreshold:      0.2,
		},
	}
}

// =============================================================================
// SCHEDULER
// =============================================================================

// Scheduler decides whether and when to warm panels. It owns the cache;
// construct one per application (or per test) rather than sharing global
// state.
type Scheduler struct {
	cache    *Cache
	loaders  map[string]Loader
	provider devstate.Provider
	cfg      Config
}

// NewScheduler creates a scheduler over the given loader table. provider
// may be nil, which disables the device gates entirely.
func NewScheduler(loaders map[string]Loader, provider devstate.Provider, cfg Config) *Scheduler {
	if cfg.Capacity == 0 {
		cfg.Capacity = DefaultConfig().Capacity
	}
	if cfg.WarmupGap == 0 {
		cfg.WarmupGap = DefaultConfig().WarmupGap
	}
	return &Scheduler{
		cache:    NewCache(cfg.Capacity),
		loaders:  loaders,
		provider: provider,
		cfg:      cfg,
	}
}

// Preload warms a panel using the scheduler's default policy. Returns
// whether the panel ended up loaded. Never returns an error: failures are
// recorded on the cache entry and read as false.
func (s *Scheduler) Preload(ctx context.Context, key string) bool {
	return s.PreloadWithPolicy(ctx, key, s.cfg.Policy)
}

// PreloadWithPolicy warms a panel with explicit gate settings.
//
// Decision order: idempotent coalescing first (Loading/Loaded keys are
// never re-fetched), then the advisory gates, then the fetch itself. A
// concurrent call racing past the first check is caught by the atomic
// Begin; only one fetch per key is ever in flight.
func (s *Scheduler) PreloadWithPolicy(ctx context.Context, key string, policy Policy) bool {
	switch s.cache.Status(key) {
	case StatusLoaded:
		return true
	case StatusLoading:
		return false
	}

	loader, ok := s.loaders[key]
	if !ok {
		// Unknown key: recorded as an immediate failure, never a panic
		fmt.Fprintf(os.Stderr, "preload: no loader registered for %q\n", key)
		if s.cache.Begin(key) == BeginStarted {
			s.cache.Complete(key, nil, fmt.Errorf("no loader registered for %q", key))
		}
		return false
	}

	if s.provider != nil {
		gates := []devstate.Gate{
			devstate.ConnectionGate(policy.RespectSlowConnection),
			devstate.BatteryGate(policy.RespectLowBattery, policy.BatteryThreshold),
		}
		if allow, reason := devstate.Allow(s.provider, gates...); !allow {
			fmt.Fprintf(os.Stderr, "preload: skipping %q: %s\n", key, reason)
			return false
		}
	}

	switch s.cache.Begin(key) {
	case BeginAlreadyLoaded:
		return true
	case BeginAlreadyLoading:
		return false
	}

	value, err := loader(ctx)
	s.cache.Complete(key, value, err)
	return err == nil
}

// PreloadAll warms keys strictly in order with a fixed gap between
// fetches, so batch warmup never bursts. Returns how many keys ended up
// loaded. A canceled context stops the walk early.
func (s *Scheduler) PreloadAll(ctx context.Context, keys []string) int {
	limiter := rate.NewLimiter(rate.Every(s.cfg.WarmupGap), 1)

	loaded := 0
	for _, key := range keys {
		if err := limiter.Wait(ctx); err != nil {
			break
		}
		if s.Preload(ctx, key) {
			loaded++
		}
	}
	return loaded
}

// IsLoaded reports whether key is warm. Unknown keys read false.
func (s *Scheduler) IsLoaded(key string) bool {
	return s.cache.Status(key) == StatusLoaded
}

// Get returns the warmed value for key, if loaded.
func (s *Scheduler) Get(key string) (any, bool) {
	return s.cache.Get(key)
}

// ClearCache empties the cache; subsequent preloads start fresh.
func (s *Scheduler) ClearCache() {
	s.cache.Clear()
}

// Cache exposes the underlying cache for status displays.
func (s *Scheduler) Cache() *Cache {
	return s.cache
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package devstate provides best-effort device state probes used to gate
// background work.
//
// All probes are advisory: when a reading is unavailable (no battery on a
// desktop, no network probe allowed), the caller treats the state as
// unconstrained. Nothing in this package returns an error to its caller.
//
// # Key Types
//
//   - Provider: abstract capability exposing battery and connection state
//   - BatteryStatus: charge level and charging flag
//   - Gate: an allow/deny predicate over a Provider
//   - SystemProvider: sysfs battery reader plus RTT-based link classifier
//
// # Usage
//
//	prov := devstate.NewSystemProvider()
//	gates := []devstate.Gate{
//	    devstate.ConnectionGate(true),
//	    devstate.BatteryGate(true, 0.2),
//	}
//	if ok, reason := devstate.Allow(prov, gates...); !ok {
//	    log.Printf("skipping background work: %s", reason)
//	}
package devstate

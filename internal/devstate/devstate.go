// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package devstate provides best-effort device state probes used to gate
// background work.
package devstate

import "fmt"

// =============================================================================
// PROVIDER INTERFACE
// =============================================================================

// BatteryStatus is a point-in-time battery reading.
type BatteryStatus struct {
	// Level is the charge fraction in [0, 1]
	Level float64
	// Charging is true when on external power
	Charging bool
}

// Provider exposes device state readings. The boolean return reports
// whether the reading is available at all; an unavailable reading must be
// treated as unconstrained, never as a denial.
type Provider interface {
	// Battery returns the current battery status, or ok=false when the
	// device has no readable battery.
	Battery() (BatteryStatus, bool)

	// Connection returns the effective link type ("4g", "3g", "2g",
	// "slow-2g"), or ok=false when the link cannot be classified.
	Connection() (string, bool)
}

// IsSlowConnection reports whether an effective link type counts as slow
// for the purpose of deferring prefetch work.
func IsSlowConnection(effectiveType string) bool {
	switch effectiveType {
	case "2g", "slow-2g":
		return true
	default:
		return false
	}
}

// =============================================================================
// GATES
// =============================================================================

// Gate is an advisory predicate over device state. It returns whether the
// gated work is allowed and, on denial, a short reason for logging.
type Gate func(Provider) (allow bool, reason string)

// ConnectionGate denies when the effective link type is slow. When respect
// is false, or the link cannot be classified, the gate allows.
func ConnectionGate(respect bool) Gate {
	return func(p Provider) (bool, string) {
		if !respect {
			return true, ""
		}
		effective, ok := p.Connection()
		if !ok {
			return true, ""
		}
		if IsSlowConnection(effective) {
			return false, fmt.Sprintf("slow connection (%s)", effective)
		}
		return true, ""
	}
}

// BatteryGate denies when the battery level is below threshold and the
// device is discharging. When respect is false, or no battery reading is
// available, the gate allows.
func BatteryGate(respect bool, threshold float64) Gate {
	return func(p Provider) (bool, string) {
		if !respect {
			return true, ""
		}
		status, ok := p.Battery()
		if !ok {
			return true, ""
		}
		if status.Level < threshold && !status.Charging {
			return false, fmt.Sprintf("battery low (%.0f%%)", status.Level*100)
		}
		return true, ""
	}
}

// Allow combines gates with logical AND, returning the first denial.
// An empty gate list allows.
func Allow(p Provider, gates ...Gate) (bool, string) {
	for _, gate := range gates {
		if ok, reason := gate(p); !ok {
			return false, reason
		}
	}
	return true, ""
}

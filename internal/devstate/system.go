// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package devstate provides best-effort device state probes used to gate
// background work.
package devstate

import (
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

// =============================================================================
// SYSTEM PROVIDER
// =============================================================================

const (
	// powerSupplyDir is the Linux sysfs battery tree.
	powerSupplyDir = "/sys/class/power_supply"

	// probeAddr is the endpoint used to measure link round-trip time.
	probeAddr = "1.1.1.1:443"

	// probeTimeout bounds a single connection probe.
	probeTimeout = 2 * time.Second

	// probeTTL is how long a classification is reused before re-probing.
	// Probing on every gate check would itself burn the battery the gate
	// is trying to protect.
	probeTTL = 30 * time.Second
)

// SystemProvider reads battery state from sysfs and classifies the network
// link with a cached TCP round-trip probe. On platforms without sysfs
// batteries every reading reports unavailable, which gates treat as allow.
type SystemProvider struct {
	batteryDir string
	probeAddr  string

	mu            sync.Mutex
	lastEffective string
	lastProbe     time.Time
	probeOK       bool
}

// NewSystemProvider creates a provider with default probe endpoints.
func NewSystemProvider() *SystemProvider {
	return &SystemProvider{
		batteryDir: powerSupplyDir,
		probeAddr:  probeAddr,
	}
}

// Battery reads the first battery found under the power supply tree.
func (s *SystemProvider) Battery() (BatteryStatus, bool) {
	entries, err := os.ReadDir(s.batteryDir)
	if err != nil {
		return BatteryStatus{}, false
	}

	for _, entry := range entries {
		dir := filepath.Join(s.batteryDir, entry.Name())

		kind, err := readSysfsValue(filepath.Join(dir, "type"))
		if err != nil || kind != "Battery" {
			continue
		}

		capStr, err := readSysfsValue(filepath.Join(dir, "capacity"))
		if err != nil {
			continue
		}
		capacity, err := strconv.Atoi(capStr)
		if err != nil || capacity < 0 || capacity > 100 {
			continue
		}

		status, _ := readSysfsValue(filepath.Join(dir, "status"))
		charging := status == "Charging" || status == "Full"

		return BatteryStatus{
			Level:    float64(capacity) / 100,
			Charging: charging,
		}, true
	}

	return BatteryStatus{}, false
}

// Connection classifies the link by TCP connect round-trip time. Results
// are cached for probeTTL. A failed probe reports unavailable rather than
// slow: no connectivity means nothing to prefetch anyway, and the decision
// belongs to the fetch itself, not the gate.
func (s *SystemProvider) Connection() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if time.Since(s.lastProbe) < probeTTL {
		return s.lastEffective, s.probeOK
	}

	s.lastProbe = time.Now()

	start := time.Now()
	conn, err := net.DialTimeout("tcp", s.probeAddr, probeTimeout)
	if err != nil {
		s.probeOK = false
		s.lastEffective = ""
		return "", false
	}
	rtt := time.Since(start)
	conn.Close()

	s.lastEffective = classifyRTT(rtt)
	s.probeOK = true
	return s.lastEffective, true
}

// classifyRTT maps a round-trip time onto effective link buckets.
func classifyRTT(rtt time.Duration) string {
	switch {
	case rtt < 100*time.Millisecond:
		return "4g"
	case rtt < 300*time.Millisecond:
		return "3g"
	case rtt < 700*time.Millisecond:
		return "2g"
	default:
		return "slow-2g"
	}
}

// readSysfsValue reads a single-line sysfs attribute.
func readSysfsValue(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

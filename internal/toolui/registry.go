// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolui maps tool names to pluggable rendering behavior.
package toolui

import (
	"fmt"
	"os"
	"sort"
	"sync"
)

// =============================================================================
// REGISTRY
// =============================================================================

// Registry is the name -> Plugin lookup table. It is populated during
// startup and read-mostly afterwards; a mutex keeps late registration safe
// anyway. Each Registry owns its table, so tests get full isolation by
// constructing a fresh one.
type Registry struct {
	mu       sync.RWMutex
	plugins  map[string]*Plugin
	fallback *Plugin
}

// NewRegistry creates an empty registry with the generic fallback plugin
// installed.
func NewRegistry() *Registry {
	return &Registry{
		plugins:  make(map[string]*Plugin),
		fallback: genericPlugin(),
	}
}

// Register inserts a plugin keyed by its tool name. Registering a name
// twice is last-write-wins; the replacement is reported (and logged) so
// accidental collisions surface during development rather than silently
// swapping renderers.
func (r *Registry) Register(p *Plugin) (replaced bool) {
	if p == nil || p.ToolName == "" || p.Renderer == nil {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.plugins[p.ToolName]; exists {
		replaced = true
		fmt.Fprintf(os.Stderr, "toolui: plugin %q registered twice, replacing\n", p.ToolName)
	}
	r.plugins[p.ToolName] = p
	return replaced
}

// Resolve returns the plugin registered for name, or the generic fallback
// when no match exists. It never returns nil: absence is the documented
// fallback path, not an error.
func (r *Registry) Resolve(name string) *Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if p, ok := r.plugins[name]; ok {
		return p
	}
	return r.fallback
}

// Has reports whether a plugin is explicitly registered for name.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.plugins[name]
	return ok
}

// Len returns the number of registered plugins (excluding the fallback).
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.plugins)
}

// All returns registered plugins sorted by tool name.
func (r *Registry) All() []*Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*Plugin, 0, len(r.plugins))
	for _, p := range r.plugins {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ToolName < out[j].ToolName })
	return out
}

// ByCategory groups registered plugins for palette display. Categories
// appear in presentation order; plugins within a category sort by display
// name. Grouping affects presentation only, never renderer selection.
func (r *Registry) ByCategory() map[Category][]*Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[Category][]*Plugin)
	for _, p := range r.plugins {
		out[p.Category] = append(out[p.Category], p)
	}
	for _, group := range out {
		sort.Slice(group, func(i, j int) bool { return group[i].DisplayName < group[j].DisplayName })
	}
	return out
}

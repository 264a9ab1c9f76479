// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"context"

	"github.com/jeranaias/sidekick-tui/internal/preload"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

// =============================================================================
// PANEL INTERFACE
// =============================================================================

// Panel is one loadable sidebar unit.
type Panel interface {
	// Key is the stable identifier used for preloading and selection.
	Key() string

	// Title is the human-readable panel name.
	Title() string

	// Load builds the panel's content. This is the expensive part; it
	// runs off the interactive path via the preload scheduler.
	Load(ctx context.Context) (any, error)

	// Render draws previously loaded content at the given width.
	Render(content any, width int, theme *styles.Theme) string
}

// =============================================================================
// REGISTRY
// =============================================================================

// Registry is an ordered panel set. Order is sidebar display order.
type Registry struct {
	ordered []Panel
	byKey   map[string]Panel
}

// NewRegistry creates a registry over the given panels. Later panels
// with a duplicate key replace earlier ones in the lookup but keep the
// first slot in display order.
func NewRegistry(all ...Panel) *Registry {
	r := &Registry{byKey: make(map[string]Panel, len(all))}
	for _, p := range all {
		if _, exists := r.byKey[p.Key()]; !exists {
			r.ordered = append(r.ordered, p)
		}
		r.byKey[p.Key()] = p
	}
	return r
}

// Panels returns the panels in display order.
func (r *Registry) Panels() []Panel {
	return r.ordered
}

// Keys returns the panel keys in display order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.ordered))
	for i, p := range r.ordered {
		keys[i] = p.Key()
	}
	return keys
}

// ByKey returns the panel for key.
func (r *Registry) ByKey(key string) (Panel, bool) {
	p, ok := r.byKey[key]
	return p, ok
}

// Loaders builds the loader table the preload scheduler consumes.
func (r *Registry) Loaders() map[string]preload.Loader {
	loaders := make(map[string]preload.Loader, len(r.ordered))
	for _, p := range r.ordered {
		p := p
		loaders[p.Key()] = func(ctx context.Context) (any, error) {
			return p.Load(ctx)
		}
	}
	return loaders
}

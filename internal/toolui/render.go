// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolui maps tool names to pluggable rendering behavior.
package toolui

import (
	"fmt"

	"github.com/jeranaias/sidekick-tui/internal/toolcall"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

// =============================================================================
// LIFECYCLE RENDER SELECTION
// =============================================================================

// RenderFor selects and runs the rendering path for an invocation's current
// lifecycle state:
//
//   - pending: the plugin's LoadingRenderer, or the generic spinner line
//   - resolved: the plugin's Wrapper around its Renderer, or the Renderer
//     alone when no wrapper is declared
//
// frame advances with the UI tick and drives loading animations. The two
// paths are mutually exclusive over one invocation's lifetime: an
// invocation renders as pending until its result arrives and as resolved
// forever after.
func (r *Registry) RenderFor(inv *toolcall.Invocation, width int, theme *styles.Theme, frame int) string {
	plugin := r.Resolve(inv.Name)

	if inv.State() == toolcall.StatePending {
		if plugin.Loading != nil {
			return plugin.Loading.RenderLoading(inv, width, theme, frame)
		}
		return genericLoadingLine(plugin, inv, theme, frame)
	}

	body := plugin.Renderer.Render(inv, width, theme)
	if plugin.Wrapper != nil {
		return plugin.Wrapper.Wrap(body, inv, width, theme)
	}
	return body
}

// genericLoadingLine renders the default pending representation: the
// plugin's loading spinner followed by its display name.
func genericLoadingLine(plugin *Plugin, inv *toolcall.Invocation, theme *styles.Theme, frame int) string {
	spin := styles.SpinnerByName(plugin.AnimationSet().Loading)
	glyph := spin.Frames[frame%len(spin.Frames)]
	name := plugin.DisplayName
	if name == "" {
		name = inv.Name
	}
	return theme.ToolPending.Render(fmt.Sprintf("%s %s %s", glyph, plugin.Icon, name))
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolui maps tool names to pluggable rendering behavior.
package toolui

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jeranaias/sidekick-tui/internal/toolcall"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

// =============================================================================
// CATEGORIES
// =============================================================================

// Category groups tools for auxiliary UI (the command palette). It never
// affects which renderer is chosen.
type Category int

const (
	CategoryFile Category = iota
	CategoryShell
	CategoryWeb
	CategoryAgent
	CategoryOther
)

// String returns the lowercase category name.
func (c Category) String() string {
	switch c {
	case CategoryFile:
		return "file"
	case CategoryShell:
		return "shell"
	case CategoryWeb:
		return "web"
	case CategoryAgent:
		return "agent"
	default:
		return "other"
	}
}

var titleCaser = cases.Title(language.English)

// Title returns the category name cased for display headers.
func (c Category) Title() string {
	return titleCaser.String(c.String())
}

// Categories lists all categories in presentation order.
func Categories() []Category {
	return []Category{CategoryFile, CategoryShell, CategoryWeb, CategoryAgent, CategoryOther}
}

// =============================================================================
// LAYOUTS
// =============================================================================

// Layout names a rendering density a plugin supports.
type Layout string

const (
	LayoutCompact  Layout = "compact"
	LayoutExpanded Layout = "expanded"
)

// =============================================================================
// RENDERING SURFACES
// =============================================================================

// Renderer renders a resolved invocation's result into terminal output.
type Renderer interface {
	Render(inv *toolcall.Invocation, width int, theme *styles.Theme) string
}

// LoadingRenderer renders the pending phase. frame advances with the UI
// tick so implementations can animate.
type LoadingRenderer interface {
	RenderLoading(inv *toolcall.Invocation, width int, theme *styles.Theme, frame int) string
}

// Wrapper frames a rendered body into a full card. Plugins without a
// wrapper get the body as-is.
type Wrapper interface {
	Wrap(body string, inv *toolcall.Invocation, width int, theme *styles.Theme) string
}

// RendererFunc adapts a function to the Renderer interface.
type RendererFunc func(inv *toolcall.Invocation, width int, theme *styles.Theme) string

func (f RendererFunc) Render(inv *toolcall.Invocation, width int, theme *styles.Theme) string {
	return f(inv, width, theme)
}

// =============================================================================
// PLUGIN
// =============================================================================

// Styling carries per-plugin presentation overrides.
type Styling struct {
	// AccentColor overrides the card accent (hex string)
	AccentColor string
	// BorderLess drops the card border in expanded layout
	BorderLess bool
}

// Plugin is the static rendering descriptor registered for one tool name.
// Plugins are registered during startup and immutable afterwards.
type Plugin struct {
	// ToolName is the unique registry key
	ToolName string
	// DisplayName is shown on the card title
	DisplayName string
	// Category groups the tool in auxiliary UI
	Category Category
	// Icon is a short ASCII glyph shown before the display name
	Icon string
	// Renderer renders the resolved result (required)
	Renderer Renderer
	// Loading renders the pending phase; nil means the generic spinner
	Loading LoadingRenderer
	// Wrapper frames the rendered body; nil means no framing
	Wrapper Wrapper
	// Animations are the enter/exit/loading tokens; nil means defaults
	Animations *styles.AnimationSet
	// Styling overrides presentation details; nil means theme defaults
	Styling *Styling
	// Layouts are the supported rendering densities
	Layouts []Layout
	// Description is shown in the command palette
	Description string
}

// SupportsLayout reports whether the plugin declares the given layout.
func (p *Plugin) SupportsLayout(l Layout) bool {
	for _, have := range p.Layouts {
		if have == l {
			return true
		}
	}
	return false
}

// AnimationSet returns the plugin's animation tokens or the defaults.
func (p *Plugin) AnimationSet() styles.AnimationSet {
	if p.Animations != nil {
		return *p.Animations
	}
	return styles.DefaultAnimations
}

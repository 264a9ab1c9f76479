// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolui maps tool names to pluggable rendering behavior.
package toolui

import (
	"strings"
	"testing"

	"github.com/jeranaias/sidekick-tui/internal/toolcall"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

// markerLoading records that the loading path ran.
type markerLoading struct{}

func (markerLoading) RenderLoading(inv *toolcall.Invocation, width int, theme *styles.Theme, frame int) string {
	return "LOADING-MARKER"
}

// markerWrapper frames the body with sentinels.
type markerWrapper struct{}

func (markerWrapper) Wrap(body string, inv *toolcall.Invocation, width int, theme *styles.Theme) string {
	return "<wrap>" + body + "</wrap>"
}

func newTestRegistry() *Registry {
	reg := NewRegistry()
	reg.Register(&Plugin{
		ToolName:    "fancy",
		DisplayName: "Fancy",
		Category:    CategoryOther,
		Icon:        "!",
		Renderer: RendererFunc(func(inv *toolcall.Invocation, width int, theme *styles.Theme) string {
			return "BODY"
		}),
		Loading: markerLoading{},
		Wrapper: markerWrapper{},
		Layouts: []Layout{LayoutCompact, LayoutExpanded},
	})
	reg.Register(&Plugin{
		ToolName:    "plain",
		DisplayName: "Plain",
		Category:    CategoryOther,
		Icon:        ".",
		Renderer: RendererFunc(func(inv *toolcall.Invocation, width int, theme *styles.Theme) string {
			return "PLAIN-BODY"
		}),
		Layouts: []Layout{LayoutCompact},
	})
	return reg
}

// =============================================================================
// RENDER SELECTION TESTS
// =============================================================================

func TestRenderFor_PendingUsesLoadingRenderer(t *testing.T) {
	reg := newTestRegistry()
	theme := styles.NewThemeForMode(true)

	inv := toolcall.New("fancy", nil)
	got := reg.RenderFor(inv, 80, theme, 0)

	if got != "LOADING-MARKER" {
		t.Errorf("Pending render = %q, want loading marker", got)
	}
}

func TestRenderFor_PendingWithoutLoadingRendererUsesSpinner(t *testing.T) {
	reg := newTestRegistry()
	theme := styles.NewThemeForMode(true)

	inv := toolcall.New("plain", nil)
	got := reg.RenderFor(inv, 80, theme, 0)

	if got == "" {
		t.Fatal("Pending render should not be empty")
	}
	if strings.Contains(got, "PLAIN-BODY") {
		t.Error("Pending render must not run the result renderer")
	}
}

func TestRenderFor_ResolvedUsesWrapper(t *testing.T) {
	reg := newTestRegistry()
	theme := styles.NewThemeForMode(true)

	inv := toolcall.New("fancy", nil)
	inv.Resolve(toolcall.Result{Success: true, Output: "x"})

	got := reg.RenderFor(inv, 80, theme, 0)
	if got != "<wrap>BODY</wrap>" {
		t.Errorf("Resolved render = %q, want wrapped body", got)
	}
}

func TestRenderFor_ResolvedWithoutWrapper(t *testing.T) {
	reg := newTestRegistry()
	theme := styles.NewThemeForMode(true)

	inv := toolcall.New("plain", nil)
	inv.Resolve(toolcall.Result{Success: false, Error: "boom"})

	got := reg.RenderFor(inv, 80, theme, 0)
	if got != "PLAIN-BODY" {
		t.Errorf("Resolved render = %q, want bare body", got)
	}
}

func TestRenderFor_StatesMutuallyExclusive(t *testing.T) {
	reg := newTestRegistry()
	theme := styles.NewThemeForMode(true)

	inv := toolcall.New("fancy", nil)

	pending := reg.RenderFor(inv, 80, theme, 0)
	inv.Resolve(toolcall.Result{Success: true, Output: "done"})
	resolved := reg.RenderFor(inv, 80, theme, 0)

	if pending == resolved {
		t.Error("Pending and resolved renders must differ")
	}
	if strings.Contains(resolved, "LOADING-MARKER") {
		t.Error("Resolved render must not include the loading representation")
	}
}

func TestRenderFor_UnknownToolPendingDoesNotPanic(t *testing.T) {
	reg := NewRegistry()
	theme := styles.NewThemeForMode(true)

	inv := toolcall.New("never_registered", nil)
	if got := reg.RenderFor(inv, 80, theme, 3); got == "" {
		t.Error("Fallback pending render should not be empty")
	}
}

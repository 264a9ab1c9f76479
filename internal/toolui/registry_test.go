// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolui maps tool names to pluggable rendering behavior.
package toolui

import (
	"testing"

	"github.com/jeranaias/sidekick-tui/internal/toolcall"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

func testPlugin(name string, cat Category) *Plugin {
	return &Plugin{
		ToolName:    name,
		DisplayName: name,
		Category:    cat,
		Icon:        "?",
		Renderer:    RendererFunc(renderGeneric),
		Layouts:     []Layout{LayoutCompact},
	}
}

// =============================================================================
// RESOLVE TESTS
// =============================================================================

func TestResolve_Registered(t *testing.T) {
	reg := NewRegistry()
	RegisterBuiltins(reg)

	p := reg.Resolve("shell")
	if p.ToolName != "shell" {
		t.Errorf("Resolve(shell).ToolName = %q, want %q", p.ToolName, "shell")
	}
}

func TestResolve_UnknownFallsBack(t *testing.T) {
	reg := NewRegistry()
	RegisterBuiltins(reg)

	p := reg.Resolve("nonexistent_tool")
	if p == nil {
		t.Fatal("Resolve must never return nil")
	}
	if p.Category != CategoryOther {
		t.Errorf("Fallback category = %v, want other", p.Category)
	}
	if p.Renderer == nil {
		t.Error("Fallback plugin must carry a renderer")
	}
}

func TestResolve_EmptyRegistry(t *testing.T) {
	reg := NewRegistry()
	if p := reg.Resolve("anything"); p == nil {
		t.Fatal("Resolve on empty registry must return the fallback")
	}
}

// =============================================================================
// REGISTER TESTS
// =============================================================================

func TestRegister_DoubleRegistrationLastWriteWins(t *testing.T) {
	reg := NewRegistry()

	first := testPlugin("dup", CategoryFile)
	second := testPlugin("dup", CategoryShell)

	if replaced := reg.Register(first); replaced {
		t.Error("First registration should not report replacement")
	}
	if replaced := reg.Register(second); !replaced {
		t.Error("Second registration should report replacement")
	}

	if got := reg.Resolve("dup"); got.Category != CategoryShell {
		t.Error("Last-registered plugin should win")
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

func TestRegister_RejectsInvalid(t *testing.T) {
	reg := NewRegistry()

	reg.Register(nil)
	reg.Register(&Plugin{ToolName: "no_renderer"})
	reg.Register(&Plugin{Renderer: RendererFunc(renderGeneric)}) // no name

	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0 after invalid registrations", reg.Len())
	}
}

// =============================================================================
// GROUPING TESTS
// =============================================================================

func TestByCategory(t *testing.T) {
	reg := NewRegistry()
	RegisterBuiltins(reg)

	groups := reg.ByCategory()

	files := groups[CategoryFile]
	if len(files) != 3 {
		t.Fatalf("File category has %d plugins, want 3", len(files))
	}
	// Sorted by display name within the category
	for i := 1; i < len(files); i++ {
		if files[i-1].DisplayName > files[i].DisplayName {
			t.Error("Plugins within a category should sort by display name")
		}
	}

	if len(groups[CategoryShell]) != 1 {
		t.Errorf("Shell category has %d plugins, want 1", len(groups[CategoryShell]))
	}
}

func TestCategory_Title(t *testing.T) {
	if CategoryFile.Title() != "File" {
		t.Errorf("Title = %q, want %q", CategoryFile.Title(), "File")
	}
	if CategoryOther.Title() != "Other" {
		t.Errorf("Title = %q, want %q", CategoryOther.Title(), "Other")
	}
}

func TestPlugin_SupportsLayout(t *testing.T) {
	p := testPlugin("x", CategoryOther)
	if !p.SupportsLayout(LayoutCompact) {
		t.Error("Should support compact")
	}
	if p.SupportsLayout(LayoutExpanded) {
		t.Error("Should not support expanded")
	}
}

// =============================================================================
// RENDERER SANITY
// =============================================================================

func TestGenericRenderer_DumpsOutput(t *testing.T) {
	theme := styles.NewThemeForMode(true)
	inv := toolcall.New("mystery", nil)
	inv.Resolve(toolcall.Result{Success: true, Output: "raw output text"})

	reg := NewRegistry()
	got := reg.RenderFor(inv, 80, theme, 0)
	if got == "" {
		t.Fatal("Generic renderer produced empty output")
	}
}

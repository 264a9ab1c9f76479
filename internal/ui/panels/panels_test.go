// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"context"
	"strings"
	"testing"

	"github.com/jeranaias/sidekick-tui/internal/config"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

func TestRegistry_OrderAndLookup(t *testing.T) {
	r := NewRegistry(
		NewSettingsPanel(config.Default()),
		NewHelpPanel(true),
	)

	keys := r.Keys()
	if len(keys) != 2 || keys[0] != "settings" || keys[1] != "help" {
		t.Errorf("Keys = %v", keys)
	}

	if _, ok := r.ByKey("settings"); !ok {
		t.Error("ByKey(settings) missed")
	}
	if _, ok := r.ByKey("nope"); ok {
		t.Error("ByKey(nope) should miss")
	}
}

func TestRegistry_LoadersCoverAllPanels(t *testing.T) {
	r := NewRegistry(
		NewSettingsPanel(config.Default()),
		NewActivityPanel(nil, 10),
		NewHelpPanel(false),
	)

	loaders := r.Loaders()
	for _, key := range r.Keys() {
		loader, ok := loaders[key]
		if !ok {
			t.Fatalf("no loader for %q", key)
		}
		if _, err := loader(context.Background()); err != nil {
			t.Errorf("loader %q: %v", key, err)
		}
	}
}

func TestSettingsPanel_LoadAndRender(t *testing.T) {
	p := NewSettingsPanel(config.Default())

	content, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	body, ok := content.(string)
	if !ok || body == "" {
		t.Fatal("Load returned empty content")
	}
	if !strings.Contains(body, "cache_capacity") {
		t.Error("settings content missing preload section")
	}

	out := p.Render(content, 80, styles.NewThemeForMode(true))
	if out == "" {
		t.Error("Render returned empty string")
	}
}

func TestActivityPanel_NilStoreRendersEmpty(t *testing.T) {
	p := NewActivityPanel(nil, 10)

	content, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	out := p.Render(content, 60, styles.NewThemeForMode(true))
	if !strings.Contains(out, "No activity yet.") {
		t.Error("empty store should render placeholder")
	}
}

func TestHelpPanel_Load(t *testing.T) {
	p := NewHelpPanel(true)

	content, err := p.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	body, _ := content.(string)
	if !strings.Contains(body, "sidekick") {
		t.Error("help content missing title")
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"context"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/alecthomas/chroma/v2/quick"

	"github.com/jeranaias/sidekick-tui/internal/config"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

// =============================================================================
// SETTINGS PANEL
// =============================================================================

// SettingsPanel shows the effective configuration as highlighted TOML.
type SettingsPanel struct {
	cfg *config.Config
}

// NewSettingsPanel creates the settings panel over the live config.
func NewSettingsPanel(cfg *config.Config) *SettingsPanel {
	return &SettingsPanel{cfg: cfg}
}

// Key implements Panel.
func (p *SettingsPanel) Key() string { return "settings" }

// Title implements Panel.
func (p *SettingsPanel) Title() string { return "Settings" }

// Load encodes and highlights the effective config. Highlighting is the
// expensive part, which is exactly why this panel preloads well.
func (p *SettingsPanel) Load(ctx context.Context) (any, error) {
	var raw strings.Builder
	if err := toml.NewEncoder(&raw).Encode(p.cfg); err != nil {
		return nil, err
	}

	var highlighted strings.Builder
	if err := quick.Highlight(&highlighted, raw.String(), "toml", "terminal256", "monokai"); err != nil {
		// Fall back to plain TOML rather than failing the panel
		return raw.String(), nil
	}
	return highlighted.String(), nil
}

// Render implements Panel.
func (p *SettingsPanel) Render(content any, width int, theme *styles.Theme) string {
	body, _ := content.(string)
	title := theme.PanelTitle.Render("Settings")
	return theme.PanelFrame.Width(width).Render(title + "\n\n" + strings.TrimRight(body, "\n"))
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package panels

import (
	"context"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

// =============================================================================
// HELP PANEL
// =============================================================================

const helpMarkdown = `# sidekick

Chat with your configured agent backend. Tool calls the agent makes
show up as cards in the transcript.

## Keys

| Key | Action |
|-----|--------|
| tab | Focus the sidebar |
| up / down | Move between sidebar panels |
| enter | Open the focused panel |
| esc | Close panel / back to chat |
| ctrl+t | Toggle tool card detail |
| ctrl+c | Quit |

## Panels

Panels are built lazily. Resting the sidebar cursor on a panel for a
moment warms it in the background, so opening it is instant.
`

// HelpPanel renders the built-in help text. Markdown rendering is slow
// enough to be worth preloading.
type HelpPanel struct {
	dark bool
}

// NewHelpPanel creates the help panel. dark selects the glamour style.
func NewHelpPanel(dark bool) *HelpPanel {
	return &HelpPanel{dark: dark}
}

// Key implements Panel.
func (p *HelpPanel) Key() string { return "help" }

// Title implements Panel.
func (p *HelpPanel) Title() string { return "Help" }

// Load renders the help markdown through glamour.
func (p *HelpPanel) Load(ctx context.Context) (any, error) {
	style := "light"
	if p.dark {
		style = "dark"
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(76),
	)
	if err != nil {
		return nil, err
	}

	out, err := renderer.Render(helpMarkdown)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Render implements Panel.
func (p *HelpPanel) Render(content any, width int, theme *styles.Theme) string {
	body, _ := content.(string)
	return theme.PanelFrame.Width(width).Render(strings.TrimRight(body, "\n"))
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the sidekick TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds all the styled components for the application.
// It detects the terminal's color capability and adjusts accordingly.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Layout dimensions
	Width  int
	Height int

	// ==========================================================================
	// APPLICATION CONTAINER STYLES
	// ==========================================================================

	App    lipgloss.Style
	Header lipgloss.Style

	// ==========================================================================
	// SIDEBAR STYLES
	// ==========================================================================

	Sidebar            lipgloss.Style
	SidebarItem        lipgloss.Style
	SidebarItemFocused lipgloss.Style
	SidebarItemWarm    lipgloss.Style

	// ==========================================================================
	// MESSAGE BUBBLE STYLES
	// ==========================================================================

	UserBubble      lipgloss.Style
	AssistantBubble lipgloss.Style
	SystemBubble    lipgloss.Style

	// ==========================================================================
	// TOOL CARD STYLES
	// ==========================================================================

	ToolCard      lipgloss.Style
	ToolCardTitle lipgloss.Style
	ToolSuccess   lipgloss.Style
	ToolError     lipgloss.Style
	ToolPending   lipgloss.Style

	// ==========================================================================
	// PANEL STYLES
	// ==========================================================================

	PanelFrame lipgloss.Style
	PanelTitle lipgloss.Style

	// ==========================================================================
	// STATUS BAR STYLES
	// ==========================================================================

	StatusBar    lipgloss.Style
	ShortcutKey  lipgloss.Style
	ShortcutDesc lipgloss.Style

	// ==========================================================================
	// TEXT STYLES
	// ==========================================================================

	Muted   lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
}

// NewTheme creates a theme from detected terminal capabilities.
func NewTheme() *Theme {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		IsDark:       termenv.HasDarkBackground(),
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
	}

	t.initStyles()
	return t
}

// NewThemeForMode creates a theme with an explicit dark/light mode,
// bypassing background detection. Used when ui.theme is "dark" or "light".
func NewThemeForMode(dark bool) *Theme {
	t := &Theme{
		IsDark:       dark,
		ColorProfile: termenv.ColorProfile(),
	}
	t.initStyles()
	return t
}

// initStyles builds every style from the adaptive palette.
func (t *Theme) initStyles() {
	t.App = lipgloss.NewStyle().
		Background(Surface).
		Foreground(TextPrimary)

	t.Header = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true).
		Padding(0, 1)

	t.Sidebar = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	t.SidebarItem = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.SidebarItemFocused = lipgloss.NewStyle().
		Foreground(Cyan).
		Background(SurfaceBright).
		Bold(true).
		Padding(0, 1)

	t.SidebarItemWarm = lipgloss.NewStyle().
		Foreground(Emerald).
		Padding(0, 1)

	t.UserBubble = lipgloss.NewStyle().
		Foreground(Cyan).
		PaddingLeft(2)

	t.AssistantBubble = lipgloss.NewStyle().
		Foreground(TextPrimary).
		PaddingLeft(2)

	t.SystemBubble = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Italic(true).
		PaddingLeft(2)

	t.ToolCard = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)

	t.ToolCardTitle = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ToolSuccess = lipgloss.NewStyle().
		Foreground(Emerald).
		Bold(true)

	t.ToolError = lipgloss.NewStyle().
		Foreground(Rose).
		Bold(true)

	t.ToolPending = lipgloss.NewStyle().
		Foreground(Amber)

	t.PanelFrame = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	t.PanelTitle = lipgloss.NewStyle().
		Foreground(Purple).
		Bold(true)

	t.StatusBar = lipgloss.NewStyle().
		Foreground(TextSecondary).
		Padding(0, 1)

	t.ShortcutKey = lipgloss.NewStyle().
		Foreground(Cyan).
		Bold(true)

	t.ShortcutDesc = lipgloss.NewStyle().
		Foreground(TextSecondary)

	t.Muted = lipgloss.NewStyle().Foreground(TextSecondary)
	t.Error = lipgloss.NewStyle().Foreground(Rose)
	t.Success = lipgloss.NewStyle().Foreground(Emerald)
}

// SetSize records the terminal dimensions for layout decisions.
func (t *Theme) SetSize(width, height int) {
	t.Width = width
	t.Height = height
}

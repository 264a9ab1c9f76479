// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared lipgloss styles for CLI output.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

var (
	// Prompt style for the chat REPL
	promptStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)

	// Welcome banner style
	welcomeStyle = lipgloss.NewStyle().
			Foreground(styles.Purple).
			Bold(true)

	// Info style for secondary text
	infoStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Label style for key/value listings
	labelStyle = lipgloss.NewStyle().
			Foreground(styles.TextSecondary)

	// Value style for key/value listings
	valueStyle = lipgloss.NewStyle().
			Foreground(styles.Emerald)

	// Tool call marker style
	toolStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Warning style
	warningStyle = lipgloss.NewStyle().
			Foreground(styles.Amber)

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.Rose)

	// Separator style
	separatorStyle = lipgloss.NewStyle().
			Foreground(styles.Border)

	// Section header style
	headerStyle = lipgloss.NewStyle().
			Foreground(styles.Cyan).
			Bold(true)
)

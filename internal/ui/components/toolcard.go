// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sidekick-tui/internal/toolcall"
	"github.com/jeranaias/sidekick-tui/internal/toolui"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
	"github.com/jeranaias/sidekick-tui/internal/util"
)

// =============================================================================
// TOOL CARD
// =============================================================================

// ToolCard renders one tool invocation in the transcript. Pending
// invocations always show the plugin's loading line; resolved ones show
// either a collapsed one-line summary with a short preview or the
// plugin's full expanded rendering.
type ToolCard struct {
	inv      *toolcall.Invocation
	registry *toolui.Registry
	theme    *styles.Theme

	expanded     bool
	maxCollapsed int
	width        int
}

// NewToolCard creates a card for an invocation. compact starts the card
// collapsed.
func NewToolCard(registry *toolui.Registry, theme *styles.Theme, inv *toolcall.Invocation, compact bool) *ToolCard {
	return &ToolCard{
		inv:          inv,
		registry:     registry,
		theme:        theme,
		expanded:     !compact,
		maxCollapsed: 3,
	}
}

// SetWidth sets the display width.
func (c *ToolCard) SetWidth(width int) {
	c.width = width
}

// Toggle expands or collapses the card.
func (c *ToolCard) Toggle() {
	c.expanded = !c.expanded
}

// IsExpanded returns whether the card is expanded.
func (c *ToolCard) IsExpanded() bool {
	return c.expanded
}

// SetExpanded sets the expanded state.
func (c *ToolCard) SetExpanded(expanded bool) {
	c.expanded = expanded
}

// Invocation returns the underlying invocation.
func (c *ToolCard) Invocation() *toolcall.Invocation {
	return c.inv
}

// View renders the card. frame drives loading animations.
func (c *ToolCard) View(frame int) string {
	if c.inv == nil {
		return ""
	}

	if c.inv.State() == toolcall.StatePending || c.expanded {
		return c.registry.RenderFor(c.inv, c.width, c.theme, frame)
	}
	return c.renderCollapsed()
}

// renderCollapsed renders the one-line summary with a short preview.
func (c *ToolCard) renderCollapsed() string {
	plugin := c.registry.Resolve(c.inv.Name)

	var builder strings.Builder

	icon := styles.StatusIndicators.Success
	iconStyle := c.theme.ToolSuccess
	if c.inv.State() == toolcall.StateFailed {
		icon = styles.StatusIndicators.Error
		iconStyle = c.theme.ToolError
	}

	builder.WriteString(iconStyle.Render(icon))
	builder.WriteString(" ")

	name := plugin.DisplayName
	if name == "" {
		name = c.inv.Name
	}
	builder.WriteString(c.theme.ToolCardTitle.Render(plugin.Icon + " " + name))

	if summary := c.summary(); summary != "" {
		builder.WriteString(c.theme.Muted.Render(" (" + summary + ")"))
	}
	if c.hasContent() {
		builder.WriteString(c.theme.Muted.Render(" [+]"))
	}

	if preview := c.preview(); preview != "" {
		builder.WriteString("\n")
		builder.WriteString(lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			PaddingLeft(2).
			Render(preview))
	}

	borderColor := styles.Emerald
	if c.inv.State() == toolcall.StateFailed {
		borderColor = styles.Rose
	}

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		BorderLeft(true).
		PaddingLeft(1).
		Render(builder.String())
}

// summary builds the parenthesized info on the collapsed line.
func (c *ToolCard) summary() string {
	res := c.inv.Result
	if res == nil {
		return ""
	}

	var parts []string
	if res.Output != "" {
		if lines := strings.Count(res.Output, "\n") + 1; lines > 1 {
			parts = append(parts, itoa(lines)+" lines")
		}
	}
	if res.Duration > 0 {
		parts = append(parts, util.FormatDuration(res.Duration))
	}
	return strings.Join(parts, ", ")
}

// hasContent returns true if expansion would reveal anything.
func (c *ToolCard) hasContent() bool {
	res := c.inv.Result
	return res != nil && (res.Output != "" || res.Error != "")
}

// preview returns the first lines of output, or the error on failure.
func (c *ToolCard) preview() string {
	res := c.inv.Result
	if res == nil {
		return ""
	}

	content := res.Output
	if c.inv.State() == toolcall.StateFailed && res.Error != "" {
		content = res.Error
	}
	if content == "" {
		return ""
	}

	lines := strings.Split(content, "\n")
	if len(lines) > c.maxCollapsed {
		remaining := len(lines) - c.maxCollapsed
		lines = lines[:c.maxCollapsed]
		lines = append(lines, "... ("+itoa(remaining)+" more lines)")
	}
	return strings.Join(lines, "\n")
}

// itoa converts a small positive int to string without fmt.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

// =============================================================================
// TOOL CARD LIST
// =============================================================================

// ToolCardList manages the ordered cards of the current conversation.
type ToolCardList struct {
	cards    []*ToolCard
	registry *toolui.Registry
	theme    *styles.Theme
	width    int
	compact  bool
}

// NewToolCardList creates an empty list. compact applies to new cards.
func NewToolCardList(registry *toolui.Registry, theme *styles.Theme, compact bool) *ToolCardList {
	return &ToolCardList{
		registry: registry,
		theme:    theme,
		compact:  compact,
	}
}

// Add appends a card for an invocation and returns it.
func (l *ToolCardList) Add(inv *toolcall.Invocation) *ToolCard {
	card := NewToolCard(l.registry, l.theme, inv, l.compact)
	card.SetWidth(l.width)
	l.cards = append(l.cards, card)
	return card
}

// Sync ensures the list has a card for every invocation, in order.
// Already-known invocations keep their card (and its expansion state).
func (l *ToolCardList) Sync(invs []*toolcall.Invocation) {
	known := make(map[string]bool, len(l.cards))
	for _, card := range l.cards {
		known[card.inv.ID] = true
	}
	for _, inv := range invs {
		if !known[inv.ID] {
			l.Add(inv)
		}
	}
}

// SetWidth sets the width for all cards.
func (l *ToolCardList) SetWidth(width int) {
	l.width = width
	for _, card := range l.cards {
		card.SetWidth(width)
	}
}

// SetTheme swaps the theme on the list and all existing cards. Used by
// config hot-reload.
func (l *ToolCardList) SetTheme(theme *styles.Theme) {
	l.theme = theme
	for _, card := range l.cards {
		card.theme = theme
	}
}

// Count returns the number of cards.
func (l *ToolCardList) Count() int {
	return len(l.cards)
}

// ToggleAt toggles the card at the given index.
func (l *ToolCardList) ToggleAt(index int) {
	if index >= 0 && index < len(l.cards) {
		l.cards[index].Toggle()
	}
}

// ToggleLast toggles the most recent card.
func (l *ToolCardList) ToggleLast() {
	l.ToggleAt(len(l.cards) - 1)
}

// Clear removes all cards.
func (l *ToolCardList) Clear() {
	l.cards = nil
}

// View renders all cards separated by blank lines.
func (l *ToolCardList) View(frame int) string {
	if len(l.cards) == 0 {
		return ""
	}

	views := make([]string, 0, len(l.cards))
	for _, card := range l.cards {
		views = append(views, card.View(frame))
	}
	return strings.Join(views, "\n")
}

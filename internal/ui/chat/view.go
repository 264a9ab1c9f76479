// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sidekick-tui/internal/preload"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
	"github.com/jeranaias/sidekick-tui/internal/util"
)

// =============================================================================
// LAYOUT
// =============================================================================

const (
	sidebarWidth = 22
	chromeHeight = 5 // header + input + status bar + borders
)

// transcriptWidth returns the width available to the transcript.
func (m *Model) transcriptWidth() int {
	w := m.width
	if m.cfg.UI.ShowSidebar {
		w -= sidebarWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}

// transcriptHeight returns the height available to the transcript.
func (m *Model) transcriptHeight() int {
	h := m.height - chromeHeight
	if h < 3 {
		h = 3
	}
	return h
}

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m *Model) View() string {
	if !m.ready {
		return "starting..."
	}

	header := m.theme.Header.Render("sidekick")

	var main string
	if m.openPanel != "" {
		main = m.renderOpenPanel()
	} else {
		main = m.viewport.View()
	}

	if m.cfg.UI.ShowSidebar {
		main = lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
	}

	return strings.Join([]string{
		header,
		main,
		m.input.View(),
		m.renderStatusBar(),
	}, "\n")
}

// refreshTranscript rebuilds the viewport content from the transcript
// and tool cards.
func (m *Model) refreshTranscript() {
	if !m.ready {
		return
	}

	width := m.transcriptWidth()
	var sb strings.Builder

	for i, msg := range m.messages {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(m.renderMessage(msg, width))
	}

	if cards := m.cards.View(m.frame); cards != "" {
		sb.WriteString("\n\n")
		sb.WriteString(cards)
	}

	if m.streaming && m.reply.Len() > 0 {
		sb.WriteString("\n\n")
		sb.WriteString(m.theme.AssistantBubble.Width(width).Render(m.reply.String()))
	}

	atBottom := m.viewport.AtBottom()
	m.viewport.SetContent(sb.String())
	if atBottom {
		m.viewport.GotoBottom()
	}
}

// renderMessage renders one transcript entry.
func (m *Model) renderMessage(msg Message, width int) string {
	switch msg.Role {
	case "user":
		return m.theme.UserBubble.Width(width).Render("you: " + msg.Content)
	case "assistant":
		return m.theme.AssistantBubble.Width(width).Render(msg.Content)
	default:
		return m.theme.SystemBubble.Width(width).Render(msg.Content)
	}
}

// =============================================================================
// SIDEBAR
// =============================================================================

// renderSidebar draws the panel list. Warm panels get the warm accent;
// the focused entry gets the cursor highlight.
func (m *Model) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString(m.theme.PanelTitle.Render("Panels"))
	sb.WriteString("\n")

	for i, p := range m.panels.Panels() {
		sb.WriteString("\n")

		label := util.TruncateWidth(p.Title(), sidebarWidth-6)
		marker := " "
		switch m.scheduler.Cache().Status(p.Key()) {
		case preload.StatusLoaded:
			marker = "*"
		case preload.StatusLoading:
			spin := styles.LineSpinner
			marker = spin.Frames[m.frame%len(spin.Frames)]
		case preload.StatusFailed:
			marker = "!"
		}

		style := m.theme.SidebarItem
		if m.sidebarFocused && i == m.cursor {
			style = m.theme.SidebarItemFocused
		} else if m.scheduler.IsLoaded(p.Key()) {
			style = m.theme.SidebarItemWarm
		}

		sb.WriteString(style.Render(marker + " " + label))
	}

	return m.theme.Sidebar.
		Width(sidebarWidth - 2).
		Height(m.transcriptHeight()).
		Render(sb.String())
}

// =============================================================================
// PANEL VIEW
// =============================================================================

// renderOpenPanel draws the currently open panel from the warm cache.
func (m *Model) renderOpenPanel() string {
	panel, ok := m.panels.ByKey(m.openPanel)
	if !ok {
		return m.theme.Error.Render("unknown panel: " + m.openPanel)
	}

	content, loaded := m.scheduler.Get(m.openPanel)
	if !loaded {
		return m.theme.Muted.Render("loading " + panel.Title() + "...")
	}
	return panel.Render(content, m.transcriptWidth()-4, m.theme)
}

// =============================================================================
// STATUS BAR
// =============================================================================

// renderStatusBar draws the bottom shortcut line.
func (m *Model) renderStatusBar() string {
	shortcuts := []struct{ key, desc string }{
		{"tab", "sidebar"},
		{"enter", "send"},
		{"ctrl+t", "toggle card"},
		{"ctrl+c", "quit"},
	}

	var parts []string
	for _, s := range shortcuts {
		parts = append(parts, m.theme.ShortcutKey.Render(s.key)+" "+m.theme.ShortcutDesc.Render(s.desc))
	}
	bar := strings.Join(parts, "  ")

	if m.status != "" {
		bar += "  " + m.theme.Muted.Render(m.status)
	}
	return m.theme.StatusBar.Render(bar)
}

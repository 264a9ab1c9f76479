// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sidekick-tui/internal/activity"
	"github.com/jeranaias/sidekick-tui/internal/agent"
	"github.com/jeranaias/sidekick-tui/internal/util"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case tea.KeyMsg:
		// Every key press counts as interaction for idle scheduling
		m.idler.Touch()
		return m.handleKey(msg)

	case frameTickMsg:
		m.frame++
		if m.streaming || m.tracker.Pending() > 0 {
			m.refreshTranscript()
		}
		return m, frameTickCmd()

	case agentEventMsg:
		return m.handleAgentEvent(msg)

	case turnDoneMsg:
		return m.handleTurnDone(msg)

	case panelReadyMsg:
		if msg.err == nil {
			m.openPanel = msg.key
		} else {
			m.status = "panel failed: " + util.TruncateRunes(msg.err.Error(), 40)
		}
		return m, nil

	case warmupDoneMsg:
		if msg.loaded > 0 {
			m.status = "warmed " + itoa(msg.loaded) + " panels"
		}
		return m, nil

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)
	}

	return m.updateChildren(msg)
}

// updateChildren forwards a message to the focused child components.
func (m *Model) updateChildren(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	if !m.sidebarFocused {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleResize recomputes the layout.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)

	contentWidth := m.transcriptWidth()
	m.viewport.Width = contentWidth
	m.viewport.Height = m.transcriptHeight()
	m.input.SetWidth(contentWidth)
	m.cards.SetWidth(contentWidth)

	m.ready = true
	m.refreshTranscript()
	return m, nil
}

// handleConfigReload applies a hot-reloaded config. Theme and card
// layout take effect immediately; scheduler topology does not change
// mid-session.
func (m *Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Config == nil {
		return m, nil
	}

	m.cfg = msg.Config
	m.theme = themeFor(m.cfg.UI.Theme)
	m.theme.SetSize(m.width, m.height)
	m.cards.SetTheme(m.theme)
	m.status = "config reloaded"
	m.refreshTranscript()
	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		if m.hover != nil {
			m.hover.CancelAll()
		}
		return m, tea.Quit

	case "tab":
		m.toggleSidebarFocus()
		return m, nil

	case "esc":
		if m.openPanel != "" {
			m.openPanel = ""
			return m, nil
		}
		if m.sidebarFocused {
			m.toggleSidebarFocus()
		}
		return m, nil

	case "ctrl+t":
		m.cards.ToggleLast()
		m.refreshTranscript()
		return m, nil
	}

	if m.sidebarFocused {
		return m.handleSidebarKey(msg)
	}

	if msg.String() == "enter" && !m.streaming {
		return m.submitPrompt()
	}

	return m.updateChildren(msg)
}

// toggleSidebarFocus moves focus between the input and the sidebar,
// keeping the hover trigger in sync with where the cursor rests.
func (m *Model) toggleSidebarFocus() {
	if !m.cfg.UI.ShowSidebar {
		return
	}

	m.sidebarFocused = !m.sidebarFocused
	keys := m.panels.Keys()

	if m.sidebarFocused {
		m.input.Blur()
		if m.hover != nil && m.cursor < len(keys) {
			m.hover.Enter(keys[m.cursor])
		}
	} else {
		m.input.Focus()
		if m.hover != nil && m.cursor < len(keys) {
			m.hover.Leave(keys[m.cursor])
		}
	}
}

// handleSidebarKey moves the sidebar cursor and opens panels. Cursor
// movement is the TUI's hover: leaving an entry cancels its pending
// debounce, arriving at one starts it.
func (m *Model) handleSidebarKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.panels.Keys()
	if len(keys) == 0 {
		return m, nil
	}

	switch msg.String() {
	case "up", "k":
		m.moveCursor(-1, keys)
	case "down", "j":
		m.moveCursor(1, keys)
	case "enter":
		return m, m.openPanelCmd(keys[m.cursor])
	}
	return m, nil
}

// moveCursor shifts the sidebar cursor, updating hover enter/leave.
func (m *Model) moveCursor(delta int, keys []string) {
	next := m.cursor + delta
	if next < 0 || next >= len(keys) {
		return
	}

	if m.hover != nil {
		m.hover.Leave(keys[m.cursor])
		m.hover.Enter(keys[next])
	}
	m.cursor = next
}

// openPanelCmd shows a panel. Warm panels open synchronously from the
// cache; cold ones load in the background first.
func (m *Model) openPanelCmd(key string) tea.Cmd {
	if m.scheduler.IsLoaded(key) {
		m.openPanel = key
		return nil
	}

	m.status = "loading " + key + "..."
	return func() tea.Msg {
		// Direct open bypasses the advisory gates: the user asked for it
		ok := m.scheduler.PreloadWithPolicy(context.Background(), key, preloadPolicyNone)
		if !ok {
			if err := m.scheduler.Cache().Err(key); err != nil {
				return panelReadyMsg{key: key, err: err}
			}
			// Loading elsewhere; treat as ready and let Render cope
		}
		return panelReadyMsg{key: key}
	}
}

// =============================================================================
// PROMPT SUBMISSION AND AGENT TURN
// =============================================================================

// submitPrompt sends the input line to the agent.
func (m *Model) submitPrompt() (tea.Model, tea.Cmd) {
	prompt := strings.TrimSpace(m.input.Value())
	if prompt == "" {
		return m, nil
	}

	m.input.Reset()
	m.messages = append(m.messages, Message{Role: "user", Content: prompt, Time: time.Now()})
	m.logActivity(activity.KindChat, prompt)

	m.streaming = true
	m.reply.Reset()
	m.status = "thinking..."
	m.events = make(chan agentEventMsg, 32)
	m.refreshTranscript()

	return m, tea.Batch(m.startTurnCmd(), m.waitForEventCmd())
}

// startTurnCmd runs the agent turn on its own goroutine, feeding events
// into the model's channel.
func (m *Model) startTurnCmd() tea.Cmd {
	history := make([]agent.Message, 0, len(m.messages))
	for _, msg := range m.messages {
		if msg.Role == "user" || msg.Role == "assistant" {
			history = append(history, agent.Message{Role: msg.Role, Content: msg.Content})
		}
	}
	events := m.events

	return func() tea.Msg {
		err := m.client.Send(context.Background(), history, func(e agent.Event) {
			events <- agentEventMsg{event: e}
		})
		close(events)
		return turnDoneMsg{err: err}
	}
}

// waitForEventCmd delivers the next backend event, re-arming itself
// after each delivery.
func (m *Model) waitForEventCmd() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		if e, ok := <-events; ok {
			return e
		}
		return nil
	}
}

// handleAgentEvent folds one backend event into the transcript.
func (m *Model) handleAgentEvent(msg agentEventMsg) (tea.Model, tea.Cmd) {
	e := msg.event

	switch e.Type {
	case agent.EventText:
		m.reply.WriteString(e.Content)

	case agent.EventToolStart, agent.EventToolEnd:
		m.tracker.Apply(e)
		m.cards.Sync(m.tracker.Invocations())
		if e.Type == agent.EventToolEnd {
			m.logActivity(activity.KindTool, e.Name)
		}

	case agent.EventError:
		m.messages = append(m.messages, Message{Role: "system", Content: "error: " + e.Message, Time: time.Now()})
	}

	m.refreshTranscript()
	return m, m.waitForEventCmd()
}

// handleTurnDone finalizes the assistant reply.
func (m *Model) handleTurnDone(msg turnDoneMsg) (tea.Model, tea.Cmd) {
	m.streaming = false
	m.status = ""

	if reply := strings.TrimSpace(m.reply.String()); reply != "" {
		m.messages = append(m.messages, Message{Role: "assistant", Content: reply, Time: time.Now()})
	}
	m.reply.Reset()

	if msg.err != nil {
		m.messages = append(m.messages, Message{
			Role:    "system",
			Content: "agent error: " + msg.err.Error(),
			Time:    time.Now(),
		})
	}

	m.refreshTranscript()
	return m, nil
}

// itoa converts a small non-negative int to string without fmt.
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

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sidekick-tui/internal/agent"
	"github.com/jeranaias/sidekick-tui/internal/config"
	"github.com/jeranaias/sidekick-tui/internal/toolcall"
)

// scriptedClient replays a fixed event sequence synchronously.
type scriptedClient struct {
	events []agent.Event
	err    error
	sent   [][]agent.Message
}

func (c *scriptedClient) Send(ctx context.Context, messages []agent.Message, callback agent.EventCallback) error {
	c.sent = append(c.sent, messages)
	for _, e := range c.events {
		callback(e)
	}
	return c.err
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.UI.Theme = "dark"
	// Gates off keeps tests independent of the host's battery and link
	cfg.Preload.RespectSlowConnection = false
	cfg.Preload.RespectLowBattery = false
	return cfg
}

func newTestModel(client agent.Client) *Model {
	m := New(testConfig(), client, nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m
}

// runTurn drives one agent turn to completion synchronously.
func runTurn(t *testing.T, m *Model) {
	t.Helper()

	done := m.startTurnCmd()()
	for {
		msg := m.waitForEventCmd()()
		if msg == nil {
			break
		}
		m.Update(msg)
	}
	m.Update(done)
}

// =============================================================================
// SIDEBAR FOCUS TESTS
// =============================================================================

func TestSidebarFocusToggle(t *testing.T) {
	m := newTestModel(&scriptedClient{})

	if m.sidebarFocused {
		t.Fatal("sidebar should start unfocused")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !m.sidebarFocused {
		t.Error("tab should focus the sidebar")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if m.sidebarFocused {
		t.Error("esc should return focus to the input")
	}
}

func TestSidebarCursorBounds(t *testing.T) {
	m := newTestModel(&scriptedClient{})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})

	keys := m.panels.Keys()

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Errorf("cursor = %d, want clamped at 0", m.cursor)
	}

	for range keys {
		m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != len(keys)-1 {
		t.Errorf("cursor = %d, want clamped at %d", m.cursor, len(keys)-1)
	}
}

// =============================================================================
// PANEL OPEN TESTS
// =============================================================================

func TestOpenPanel_WarmOpensImmediately(t *testing.T) {
	m := newTestModel(&scriptedClient{})

	if !m.scheduler.Preload(context.Background(), "help") {
		t.Fatal("warmup preload failed")
	}

	cmd := m.openPanelCmd("help")
	if cmd != nil {
		t.Error("warm panel should open without a load command")
	}
	if m.openPanel != "help" {
		t.Errorf("openPanel = %q, want help", m.openPanel)
	}
}

func TestOpenPanel_ColdLoadsFirst(t *testing.T) {
	m := newTestModel(&scriptedClient{})

	cmd := m.openPanelCmd("help")
	if cmd == nil {
		t.Fatal("cold panel should return a load command")
	}
	if m.openPanel != "" {
		t.Error("panel should not show before loading")
	}

	msg := cmd()
	ready, ok := msg.(panelReadyMsg)
	if !ok || ready.err != nil {
		t.Fatalf("load command returned %v", msg)
	}

	m.Update(msg)
	if m.openPanel != "help" {
		t.Errorf("openPanel = %q after load, want help", m.openPanel)
	}
	if !m.scheduler.IsLoaded("help") {
		t.Error("direct open should leave the panel warm")
	}
}

// =============================================================================
// AGENT TURN TESTS
// =============================================================================

func TestTurn_TextReply(t *testing.T) {
	client := &scriptedClient{events: []agent.Event{
		{Type: agent.EventText, Content: "Hello "},
		{Type: agent.EventText, Content: "there"},
		{Type: agent.EventDone},
	}}
	m := newTestModel(client)

	m.input.SetValue("hi")
	m.submitPrompt()
	if !m.streaming {
		t.Fatal("submit should enter streaming state")
	}

	runTurn(t, m)

	if m.streaming {
		t.Error("turn completion should leave streaming state")
	}
	last := m.messages[len(m.messages)-1]
	if last.Role != "assistant" || last.Content != "Hello there" {
		t.Errorf("last message = %+v", last)
	}

	// Conversation history included the user turn
	if len(client.sent) != 1 || client.sent[0][len(client.sent[0])-1].Content != "hi" {
		t.Errorf("sent history = %+v", client.sent)
	}
}

func TestTurn_ToolLifecycle(t *testing.T) {
	client := &scriptedClient{events: []agent.Event{
		{Type: agent.EventToolStart, ToolID: "t1", Name: "shell", Args: []byte(`{"command":"ls"}`)},
		{Type: agent.EventToolEnd, ToolID: "t1", Success: true, Output: "a.txt", DurationMs: 10},
		{Type: agent.EventText, Content: "done"},
		{Type: agent.EventDone},
	}}
	m := newTestModel(client)

	m.input.SetValue("list files")
	m.submitPrompt()
	runTurn(t, m)

	invs := m.tracker.Invocations()
	if len(invs) != 1 {
		t.Fatalf("got %d invocations, want 1", len(invs))
	}
	if invs[0].State() != toolcall.StateSucceeded {
		t.Errorf("state = %v, want succeeded", invs[0].State())
	}
	if m.cards.Count() != 1 {
		t.Errorf("cards = %d, want 1", m.cards.Count())
	}
}

func TestTurn_AgentErrorSurfaces(t *testing.T) {
	client := &scriptedClient{
		events: []agent.Event{{Type: agent.EventDone}},
		err:    context.DeadlineExceeded,
	}
	m := newTestModel(client)

	m.input.SetValue("hi")
	m.submitPrompt()
	runTurn(t, m)

	last := m.messages[len(m.messages)-1]
	if last.Role != "system" {
		t.Errorf("agent failure should append a system message, got %+v", last)
	}
}

func TestSubmitPrompt_EmptyIgnored(t *testing.T) {
	m := newTestModel(&scriptedClient{})

	before := len(m.messages)
	m.input.SetValue("   ")
	m.submitPrompt()

	if len(m.messages) != before {
		t.Error("blank prompt should not append a message")
	}
	if m.streaming {
		t.Error("blank prompt should not start a turn")
	}
}

// =============================================================================
// VIEW SMOKE TESTS
// =============================================================================

func TestView_RendersAfterResize(t *testing.T) {
	m := newTestModel(&scriptedClient{})
	out := m.View()
	if out == "" || out == "starting..." {
		t.Errorf("View after resize = %q", out)
	}
}

func TestThemeFor(t *testing.T) {
	if !themeFor("dark").IsDark {
		t.Error("dark theme not dark")
	}
	if themeFor("light").IsDark {
		t.Error("light theme dark")
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sidekick-tui/internal/activity"
	"github.com/jeranaias/sidekick-tui/internal/agent"
	"github.com/jeranaias/sidekick-tui/internal/config"
	"github.com/jeranaias/sidekick-tui/internal/devstate"
	"github.com/jeranaias/sidekick-tui/internal/preload"
	"github.com/jeranaias/sidekick-tui/internal/toolui"
	"github.com/jeranaias/sidekick-tui/internal/ui/components"
	"github.com/jeranaias/sidekick-tui/internal/ui/panels"
	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// idleThreshold is how long the event loop must be quiet before
// deferred preloads run.
const idleThreshold = 250 * time.Millisecond

// preloadPolicyNone disables the advisory gates for user-initiated
// panel opens.
var preloadPolicyNone = preload.Policy{}

// Model is the root bubbletea model.
type Model struct {
	cfg   *config.Config
	theme *styles.Theme

	// Transcript
	messages []Message
	viewport viewport.Model
	input    textarea.Model

	// Tool rendering
	toolRegistry *toolui.Registry
	cards        *components.ToolCardList
	tracker      *agent.Tracker

	// Panels and preloading
	panels    *panels.Registry
	scheduler *preload.Scheduler
	hover     *preload.HoverTrigger
	idler     *preload.Idler

	// Agent
	client    agent.Client
	events    chan agentEventMsg
	streaming bool
	// PERFORMANCE: strings.Builder avoids quadratic allocations
	reply strings.Builder

	// Activity log (may be nil)
	store *activity.Store

	// UI state
	sidebarFocused bool
	cursor         int
	openPanel      string // "" means the chat transcript
	frame          int
	width          int
	height         int
	status         string
	ready          bool
}

// New creates the root model. store may be nil to disable activity
// logging.
func New(cfg *config.Config, client agent.Client, store *activity.Store) *Model {
	theme := themeFor(cfg.UI.Theme)

	toolRegistry := toolui.NewRegistry()
	toolui.RegisterBuiltins(toolRegistry)

	panelSet := panels.NewRegistry(
		panels.NewSettingsPanel(cfg),
		panels.NewActivityPanel(store, 20),
		panels.NewHelpPanel(theme.IsDark),
	)

	var provider devstate.Provider
	if cfg.Preload.RespectSlowConnection || cfg.Preload.RespectLowBattery {
		provider = devstate.NewSystemProvider()
	}

	scheduler := preload.NewScheduler(panelSet.Loaders(), provider, preload.Config{
		Capacity:  cfg.Preload.CacheCapacity,
		WarmupGap: time.Duration(cfg.Preload.WarmupGapMs) * time.Millisecond,
		Policy: preload.Policy{
			RespectSlowConnection: cfg.Preload.RespectSlowConnection,
			RespectLowBattery:     cfg.Preload.RespectLowBattery,
			BatteryThreshold:      cfg.Preload.BatteryThreshold,
		},
	})

	idler := preload.NewIdler(idleThreshold, time.Duration(cfg.Preload.IdleFallbackMs)*time.Millisecond)

	m := &Model{
		cfg:          cfg,
		theme:        theme,
		toolRegistry: toolRegistry,
		cards:        components.NewToolCardList(toolRegistry, theme, cfg.UI.CompactToolCards),
		tracker:      agent.NewTracker(),
		panels:       panelSet,
		scheduler:    scheduler,
		idler:        idler,
		client:       client,
		store:        store,
	}

	if cfg.Preload.Enabled {
		m.hover = preload.NewHoverTrigger(
			time.Duration(cfg.Preload.DebounceMs)*time.Millisecond,
			idler,
			m.preloadPanel,
		)
	}

	m.input = newInput()
	m.viewport = viewport.New(0, 0)

	m.messages = append(m.messages, Message{
		Role:    "system",
		Content: "Connected. Type a message, or tab to the sidebar.",
		Time:    time.Now(),
	})

	return m
}

// themeFor maps the configured theme name to a Theme.
func themeFor(name string) *styles.Theme {
	switch name {
	case "dark":
		return styles.NewThemeForMode(true)
	case "light":
		return styles.NewThemeForMode(false)
	default:
		return styles.NewTheme()
	}
}

// newInput builds the prompt textarea.
func newInput() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Ask sidekick..."
	ta.Prompt = "> "
	ta.CharLimit = 0
	ta.SetHeight(1)
	ta.ShowLineNumbers = false
	ta.Focus()
	return ta
}

// preloadPanel is the hover trigger's callback. It runs off the UI
// goroutine once the debounce and idle deferral have both passed.
func (m *Model) preloadPanel(key string) {
	if m.scheduler.Preload(context.Background(), key) {
		m.logActivity(activity.KindPreload, key)
	}
}

// logActivity appends to the activity store, if one is attached.
func (m *Model) logActivity(kind, detail string) {
	if m.store != nil {
		m.store.Append(activity.Event{Kind: kind, Detail: detail})
	}
}

// =============================================================================
// INIT
// =============================================================================

// Init starts the animation ticker and the background warmup.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textarea.Blink, frameTickCmd()}
	if m.cfg.Preload.Enabled && len(m.cfg.Preload.WarmPanels) > 0 {
		cmds = append(cmds, m.warmupCmd())
	}
	return tea.Batch(cmds...)
}

// frameTickCmd drives loading animations.
func frameTickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

// warmupCmd batch-preloads the configured warm panels once the app has
// settled after startup.
func (m *Model) warmupCmd() tea.Cmd {
	return func() tea.Msg {
		// Let startup rendering finish before touching the loaders
		time.Sleep(m.idler.FallbackDelay())
		loaded := m.scheduler.PreloadAll(context.Background(), m.cfg.Preload.WarmPanels)
		return warmupDoneMsg{loaded: loaded}
	}
}

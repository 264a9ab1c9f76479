// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/sidekick-tui/internal/ui/styles"
	"github.com/jeranaias/sidekick-tui/internal/util"
)

// =============================================================================
// SPINNER MODEL
// =============================================================================

// Spinner is a loading spinner driven by sidekick's named frame sets.
type Spinner struct {
	spinner   spinner.Model
	message   string
	startTime time.Time

	isActive  bool
	showTimer bool
}

// NewSpinner creates a spinner using the named frame set ("line",
// "dots", "pulse", "block"). Unknown names fall back to line.
func NewSpinner(name string) Spinner {
	cfg := styles.SpinnerByName(name)

	s := spinner.New()
	s.Spinner = spinner.Spinner{
		Frames: cfg.Frames,
		FPS:    cfg.Duration(),
	}

	return Spinner{
		spinner:   s,
		message:   "Working",
		showTimer: true,
	}
}

// SetMessage sets the text displayed next to the spinner.
func (s *Spinner) SetMessage(msg string) {
	s.message = msg
}

// SetShowTimer enables or disables the elapsed time display.
func (s *Spinner) SetShowTimer(show bool) {
	s.showTimer = show
}

// Start activates the spinner and records the start time.
func (s *Spinner) Start() tea.Cmd {
	s.isActive = true
	s.startTime = time.Now()
	return s.spinner.Tick
}

// Stop deactivates the spinner.
func (s *Spinner) Stop() {
	s.isActive = false
}

// IsActive returns whether the spinner is currently running.
func (s *Spinner) IsActive() bool {
	return s.isActive
}

// Elapsed returns the duration since the spinner started.
func (s *Spinner) Elapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	return time.Since(s.startTime)
}

// Update handles bubbletea messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if !s.isActive {
		return s, nil
	}

	var cmd tea.Cmd
	s.spinner, cmd = s.spinner.Update(msg)
	return s, cmd
}

// View renders the spinner line.
func (s Spinner) View() string {
	if !s.isActive {
		return ""
	}

	glyph := lipgloss.NewStyle().
		Foreground(styles.Purple).
		Render(s.spinner.View())

	message := lipgloss.NewStyle().
		Foreground(styles.TextSecondary).
		Render(s.message + "...")

	out := glyph + " " + message

	if s.showTimer && !s.startTime.IsZero() {
		timer := lipgloss.NewStyle().
			Foreground(styles.TextSecondary).
			Render(" (" + util.FormatDuration(time.Since(s.startTime)) + ")")
		out += timer
	}

	return out
}

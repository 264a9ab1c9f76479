// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the sidekick TUI.
package styles

import "time"

// =============================================================================
// SPINNER ANIMATIONS
// =============================================================================

// SpinnerConfig holds the configuration for a spinner animation.
type SpinnerConfig struct {
	Frames []string
	FPS    int
}

// Duration returns the duration for each frame.
func (s SpinnerConfig) Duration() time.Duration {
	return time.Second / time.Duration(s.FPS)
}

// LineSpinner - Simple line rotation
var LineSpinner = SpinnerConfig{
	Frames: []string{"|", "/", "-", "\\"},
	FPS:    10,
}

// DotsSpinner - Classic three-dot animation
var DotsSpinner = SpinnerConfig{
	Frames: []string{".  ", ".. ", "...", " ..", "  .", "   "},
	FPS:    6,
}

// PulseSpinner - Pulsing indicator
var PulseSpinner = SpinnerConfig{
	Frames: []string{"( )", "(.)", "(o)", "(O)", "(o)", "(.)", "( )", "   "},
	FPS:    8,
}

// BlockSpinner - Growing/shrinking progress
var BlockSpinner = SpinnerConfig{
	Frames: []string{"[", "[=", "[==", "[===", "[====", "[=====", "[====", "[===", "[==", "[="},
	FPS:    15,
}

// spinnersByName maps animation tokens to frame sets.
var spinnersByName = map[string]SpinnerConfig{
	"line":  LineSpinner,
	"dots":  DotsSpinner,
	"pulse": PulseSpinner,
	"block": BlockSpinner,
}

// SpinnerByName resolves an animation token to its frame set, falling back
// to the line spinner for unknown tokens.
func SpinnerByName(name string) SpinnerConfig {
	if cfg, ok := spinnersByName[name]; ok {
		return cfg
	}
	return LineSpinner
}

// =============================================================================
// ANIMATION TOKEN SETS
// =============================================================================

// AnimationSet names the animation tokens a tool plugin uses for its
// lifecycle phases. Tokens resolve through SpinnerByName (loading) and
// TransitionByName (enter/exit).
type AnimationSet struct {
	Enter   string
	Exit    string
	Loading string
}

// DefaultAnimations is applied to plugins that do not declare their own.
var DefaultAnimations = AnimationSet{
	Enter:   "fade",
	Exit:    "fade",
	Loading: "line",
}

// =============================================================================
// TRANSITION EFFECTS
// =============================================================================

// TransitionConfig defines a transition animation.
type TransitionConfig struct {
	Duration time.Duration
	Frames   []string
}

// FadeTransition reveals content through progressively denser shading.
var FadeTransition = TransitionConfig{
	Duration: 150 * time.Millisecond,
	Frames:   []string{".", ":", "+", "#"},
}

// SlideTransition nudges content in from the edge.
var SlideTransition = TransitionConfig{
	Duration: 120 * time.Millisecond,
	Frames:   []string{">", ">>", ">>>"},
}

// transitionsByName maps animation tokens to transitions.
var transitionsByName = map[string]TransitionConfig{
	"fade":  FadeTransition,
	"slide": SlideTransition,
}

// TransitionByName resolves an animation token to its transition, falling
// back to fade for unknown tokens.
func TransitionByName(name string) TransitionConfig {
	if cfg, ok := transitionsByName[name]; ok {
		return cfg
	}
	return FadeTransition
}

// =============================================================================
// PROGRESS INDICATORS
// =============================================================================

// Progress bar characters.
var (
	ProgressFull  = "#"
	ProgressEmpty = "-"
)

// RenderProgressBar creates a progress bar string.
// width: total width of the bar in characters
// percent: 0-100 percentage complete
func RenderProgressBar(width int, percent float64) string {
	if width <= 0 {
		return ""
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(float64(width) * percent / 100)
	out := make([]byte, 0, width)
	for i := 0; i < width; i++ {
		if i < filled {
			out = append(out, ProgressFull[0])
		} else {
			out = append(out, ProgressEmpty[0])
		}
	}
	return string(out)
}

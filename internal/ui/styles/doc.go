// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the sidekick TUI.
//
// All colors use Lip Gloss AdaptiveColor so components render correctly on
// both light and dark terminals. The Theme struct bundles every styled
// element; animation token sets name the spinner and transition frames
// that tool-call plugins reference.
//
// # Key Types
//
//   - Theme: all styled components, built once at startup
//   - SpinnerConfig: named frame sets for loading indicators
//   - AnimationSet: enter/exit/loading tokens attached to tool plugins
package styles

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package panels defines the sidebar panels and their loaders. A panel
// separates its expensive part (Load, which may read disk or render
// markdown) from its cheap part (Render, which draws already-loaded
// content). Load runs through the preload scheduler, so a panel whose
// sidebar entry was hovered opens instantly.
//
// # Key Types
//
//   - Panel: one loadable sidebar unit
//   - Registry: ordered panel set, source of the preload loader table
//
// # Adding a Panel
//
// Implement Panel, register it in the Registry the app builds at
// startup, and it participates in hover preloading automatically.
package panels

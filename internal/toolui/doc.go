// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolui maps tool names to pluggable rendering behavior.
//
// Each tool the agent can invoke registers a Plugin: a renderer for the
// resolved result, an optional loading renderer for the pending phase, an
// optional wrapper that frames the whole card, and display metadata (icon,
// category, animation tokens). Call sites never branch on tool names;
// resolution is a total function that falls back to a generic plugin for
// anything unregistered.
//
// # Key Types
//
//   - Plugin: static per-tool rendering descriptor
//   - Registry: name -> Plugin lookup with a built-in fallback
//   - Renderer / LoadingRenderer / Wrapper: the pluggable surfaces
//   - Category: presentation grouping (file, shell, web, agent, other)
//
// # Usage
//
//	reg := toolui.NewRegistry()
//	toolui.RegisterBuiltins(reg)
//
//	plugin := reg.Resolve(inv.Name) // never nil
//	card := reg.RenderFor(inv, width, theme, frame)
package toolui

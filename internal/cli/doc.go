// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses command-line arguments and runs the non-TUI
// commands: ask, chat, status, config, activity, version, and help.
//
// The TUI itself lives in internal/ui/chat; this package only decides
// that it should start and hands back CmdTUI.
package cli

// sidekick - A terminal front-end for a local AI agent.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/sidekick-tui/internal/activity"
	"github.com/jeranaias/sidekick-tui/internal/agent"
	"github.com/jeranaias/sidekick-tui/internal/cli"
	"github.com/jeranaias/sidekick-tui/internal/config"
	"github.com/jeranaias/sidekick-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.ParseArgs(os.Args[1:])

	var err error
	switch cmd {
	case cli.CmdTUI:
		err = runTUI()
	case cli.CmdAsk:
		err = cli.HandleAskCommand(args)
	case cli.CmdChat:
		err = cli.HandleChatCommand(args)
	case cli.CmdStatus:
		err = cli.HandleStatusCommand(args)
	case cli.CmdConfig:
		err = cli.HandleConfigCommand(args)
	case cli.CmdActivity:
		err = cli.HandleActivityCommand(args)
	case cli.CmdVersion:
		err = cli.HandleVersionCommand(args)
	case cli.CmdHelp:
		err = cli.HandleHelpCommand()
	default:
		err = cli.HandleHelpCommand()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runTUI wires the pieces together and starts the bubbletea program.
func runTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Activity log is best-effort: the TUI runs without it
	var store *activity.Store
	if path, err := cfg.ActivityPath(); err == nil {
		if s, err := activity.OpenWithLimit(path, cfg.Activity.MaxEvents); err == nil {
			store = s
			defer store.Close()
		}
	}

	client := agent.NewCommandClient(cfg.Agent.Command, cfg.Agent.Args,
		time.Duration(cfg.Agent.TimeoutSecs)*time.Second)

	model := chat.New(cfg, client, store)
	program := tea.NewProgram(model, tea.WithAltScreen())

	// Hot-reload config edits into the running TUI
	if path, err := config.ConfigPathTOML(); err == nil {
		if watcher, werr := config.NewWatcher(path, 500*time.Millisecond, func(next *config.Config) {
			program.Send(chat.ConfigReloadedMsg{Config: next})
		}); werr == nil {
			if werr := watcher.Watch(); werr == nil {
				defer watcher.Close()
			}
		}
	}

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

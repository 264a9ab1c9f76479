// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command selection and top-level argument parsing.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"runtime"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdAsk
	CmdChat
	CmdStatus
	CmdConfig
	CmdActivity
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool

	// Command-specific
	Query      string // ask: the question text
	File       string // ask: file to include with the question
	Subcommand string // config/activity: show, set, clear, ...

	// Parser retained for handlers that need extra flags
	Parser *ArgParser
}

const usageText = `sidekick - AI assistant for the terminal

Sidekick is a chat front-end for a local AI agent. It streams replies,
renders tool calls as cards, and keeps side panels warm so they open
instantly.

Usage:
  sidekick                    Start the TUI (default)
  sidekick ask "question"     Ask a single question and exit
  sidekick chat               Interactive chat in the plain terminal
  sidekick status             Show configuration and backend status
  sidekick config [show|set|path]   Configuration management
  sidekick activity [show|clear]    Recent activity log
  sidekick version            Show version information
  sidekick help               Show this help

Ask:
  sidekick ask "what does this error mean?"
  sidekick ask --file main.go "review this"
  cat err.log | sidekick ask "explain"
    --file FILE               Include file content with the question
    --json                    Emit the reply as JSON
    --quiet                   Suppress progress output

Config:
  sidekick config show              Print the active configuration
  sidekick config set KEY VALUE     Set a value (e.g. ui.theme dark)
  sidekick config path              Print the config file location

Activity:
  sidekick activity show            Recent events (default: 20)
    --limit N                 Show last N events
    --kind KIND               Filter: preload, tool, chat, config
  sidekick activity clear           Delete all recorded events

Environment:
  SIDEKICK_THEME              Override ui.theme
  SIDEKICK_AGENT_COMMAND      Override agent.command
  NO_COLOR                    Disable colored output
`

// ParseArgs turns os.Args[1:] into a command plus its arguments.
func ParseArgs(argv []string) (Command, Args) {
	parser := NewArgParser(argv)
	args := Args{
		Quiet:   parser.BoolFlag("quiet") || parser.BoolFlag("q"),
		Verbose: parser.BoolFlag("verbose") || parser.BoolFlag("v"),
		JSON:    parser.BoolFlag("json"),
		File:    parser.Flag("file"),
		Parser:  parser,
	}

	switch parser.Subcommand() {
	case "":
		return CmdTUI, args
	case "ask":
		args.Query = parser.JoinPositionalFrom(1)
		return CmdAsk, args
	case "chat":
		return CmdChat, args
	case "status", "s":
		return CmdStatus, args
	case "config":
		args.Subcommand = parser.Positional(1)
		return CmdConfig, args
	case "activity":
		args.Subcommand = parser.Positional(1)
		return CmdActivity, args
	case "version", "--version", "-V":
		return CmdVersion, args
	case "help", "--help", "-h":
		return CmdHelp, args
	default:
		// Unknown word: treat the whole line as an ask query, which
		// makes `sidekick why is my build slow` do the obvious thing
		args.Query = parser.JoinPositionalFrom(0)
		return CmdAsk, args
	}
}

// HandleVersionCommand prints version information.
func HandleVersionCommand(args Args) error {
	if args.JSON {
		fmt.Printf("{\"version\":%q,\"commit\":%q,\"built\":%q,\"go\":%q}\n",
			Version, GitCommit, BuildDate, runtime.Version())
		return nil
	}

	fmt.Printf("sidekick %s\n", Version)
	if args.Verbose {
		fmt.Printf("  commit:  %s\n", GitCommit)
		fmt.Printf("  built:   %s\n", BuildDate)
		fmt.Printf("  runtime: %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	}
	return nil
}

// HandleHelpCommand prints usage.
func HandleHelpCommand() error {
	fmt.Print(strings.TrimLeft(usageText, "\n"))
	return nil
}

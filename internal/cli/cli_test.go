// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"strings"
	"testing"
)

// =============================================================================
// ARG PARSER TESTS (args.go)
// =============================================================================

func TestArgParser_BasicParsing(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantSub  string
		validate func(*testing.T, *ArgParser)
	}{
		{
			name:    "simple subcommand",
			args:    []string{"show"},
			wantSub: "show",
		},
		{
			name:    "subcommand with flag",
			args:    []string{"show", "--limit", "50"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("limit") != "50" {
					t.Errorf("Flag(limit) = %q, want %q", p.Flag("limit"), "50")
				}
			},
		},
		{
			name:    "flag with equals",
			args:    []string{"show", "--kind=tool"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("kind") != "tool" {
					t.Errorf("Flag(kind) = %q, want %q", p.Flag("kind"), "tool")
				}
			},
		},
		{
			name:    "boolean flag",
			args:    []string{"show", "--json"},
			wantSub: "show",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("json") {
					t.Error("BoolFlag(json) should be true")
				}
			},
		},
		{
			name:    "boolean flag before another flag",
			args:    []string{"ask", "--quiet", "--file", "main.go"},
			wantSub: "ask",
			validate: func(t *testing.T, p *ArgParser) {
				if !p.BoolFlag("quiet") {
					t.Error("BoolFlag(quiet) should be true")
				}
				if p.Flag("file") != "main.go" {
					t.Errorf("Flag(file) = %q, want main.go", p.Flag("file"))
				}
			},
		},
		{
			name:    "multiple positional args",
			args:    []string{"ask", "why", "is", "it", "slow"},
			wantSub: "ask",
			validate: func(t *testing.T, p *ArgParser) {
				if p.PositionalCount() != 5 {
					t.Errorf("PositionalCount() = %d, want 5", p.PositionalCount())
				}
				if p.JoinPositionalFrom(1) != "why is it slow" {
					t.Errorf("JoinPositionalFrom(1) = %q", p.JoinPositionalFrom(1))
				}
			},
		},
		{
			name:    "mixed flags and positional",
			args:    []string{"ask", "--file", "main.go", "Review", "this"},
			wantSub: "ask",
			validate: func(t *testing.T, p *ArgParser) {
				if p.Flag("file") != "main.go" {
					t.Errorf("Flag(file) = %q, want main.go", p.Flag("file"))
				}
				if p.Positional(1) != "Review" {
					t.Errorf("Positional(1) = %q, want Review", p.Positional(1))
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewArgParser(tt.args)
			if parser.Subcommand() != tt.wantSub {
				t.Errorf("Subcommand() = %q, want %q", parser.Subcommand(), tt.wantSub)
			}
			if tt.validate != nil {
				tt.validate(t, parser)
			}
		})
	}
}

func TestArgParser_FlagIntOrDefault(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		flagName   string
		defaultVal int
		want       int
	}{
		{
			name:       "flag present",
			args:       []string{"show", "--limit", "10"},
			flagName:   "limit",
			defaultVal: 5,
			want:       10,
		},
		{
			name:       "flag absent",
			args:       []string{"show"},
			flagName:   "limit",
			defaultVal: 5,
			want:       5,
		},
		{
			name:       "flag not a number",
			args:       []string{"show", "--limit", "lots"},
			flagName:   "limit",
			defaultVal: 5,
			want:       5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := NewArgParser(tt.args)
			got := parser.FlagIntOrDefault(tt.flagName, tt.defaultVal)
			if got != tt.want {
				t.Errorf("FlagIntOrDefault(%s) = %d, want %d", tt.flagName, got, tt.want)
			}
		})
	}
}

func TestArgParser_OutOfRangePositional(t *testing.T) {
	parser := NewArgParser([]string{"show"})
	if parser.Positional(5) != "" {
		t.Error("out-of-range Positional should return empty string")
	}
	if parser.PositionalFrom(5) != nil {
		t.Error("out-of-range PositionalFrom should return nil")
	}
}

// =============================================================================
// COMMAND SELECTION TESTS (cli.go)
// =============================================================================

func TestParseArgs_CommandSelection(t *testing.T) {
	tests := []struct {
		name string
		argv []string
		want Command
	}{
		{"no args starts TUI", nil, CmdTUI},
		{"ask", []string{"ask", "hello"}, CmdAsk},
		{"chat", []string{"chat"}, CmdChat},
		{"status", []string{"status"}, CmdStatus},
		{"status alias", []string{"s"}, CmdStatus},
		{"config", []string{"config", "show"}, CmdConfig},
		{"activity", []string{"activity", "show"}, CmdActivity},
		{"version", []string{"version"}, CmdVersion},
		{"version flag", []string{"--version"}, CmdVersion},
		{"help", []string{"help"}, CmdHelp},
		{"help flag", []string{"-h"}, CmdHelp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, _ := ParseArgs(tt.argv)
			if cmd != tt.want {
				t.Errorf("ParseArgs(%v) = %v, want %v", tt.argv, cmd, tt.want)
			}
		})
	}
}

func TestParseArgs_AskQuery(t *testing.T) {
	cmd, args := ParseArgs([]string{"ask", "what", "is", "a", "goroutine"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if args.Query != "what is a goroutine" {
		t.Errorf("Query = %q", args.Query)
	}
}

func TestParseArgs_BareQuestionFallsBackToAsk(t *testing.T) {
	cmd, args := ParseArgs([]string{"why", "is", "my", "build", "slow"})
	if cmd != CmdAsk {
		t.Fatalf("cmd = %v, want CmdAsk", cmd)
	}
	if !strings.HasPrefix(args.Query, "why") {
		t.Errorf("Query = %q, want the full line", args.Query)
	}
}

func TestParseArgs_GlobalFlags(t *testing.T) {
	_, args := ParseArgs([]string{"ask", "--quiet", "--json", "hi"})
	if !args.Quiet {
		t.Error("Quiet should be set")
	}
	if !args.JSON {
		t.Error("JSON should be set")
	}
}

func TestParseArgs_Subcommand(t *testing.T) {
	_, args := ParseArgs([]string{"config", "set", "ui.theme", "dark"})
	if args.Subcommand != "set" {
		t.Errorf("Subcommand = %q, want set", args.Subcommand)
	}
	if args.Parser.Positional(2) != "ui.theme" || args.Parser.Positional(3) != "dark" {
		t.Errorf("positionals = %v", args.Parser.Raw())
	}
}

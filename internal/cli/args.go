// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Unified argument parsing for sidekick subcommands.
//
// CLI: One parser shared by every command handler
//
// ArgParser treats its input as a subcommand followed by a mix of
// --flags and positional arguments:
//
//	sidekick activity show --kind tool --limit 20
//	          ^subcommand  ^flag        ^flag
//
// Flags accept both "--flag value" and "--flag=value" forms. A flag
// with no following value (or followed by another flag) parses as a
// boolean.
package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// =============================================================================
// ARG PARSER
// =============================================================================

// ArgParser holds the parsed form of a command's argument list.
type ArgParser struct {
	subcommand string
	flags      map[string]string
	positional []string
	raw        []string
}

// NewArgParser parses args into subcommand, flags, and positionals.
// The first non-flag argument becomes the subcommand (and also
// positional 0).
func NewArgParser(args []string) *ArgParser {
	p := &ArgParser{
		flags: make(map[string]string),
		raw:   args,
	}

	i := 0
	for i < len(args) {
		arg := args[i]

		if strings.HasPrefix(arg, "--") {
			name := strings.TrimPrefix(arg, "--")

			// --flag=value form
			if eq := strings.Index(name, "="); eq >= 0 {
				p.flags[name[:eq]] = name[eq+1:]
				i++
				continue
			}

			// --flag value form, unless the next token is another flag
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "--") {
				p.flags[name] = args[i+1]
				i += 2
				continue
			}

			// Bare boolean flag
			p.flags[name] = "true"
			i++
			continue
		}

		p.positional = append(p.positional, arg)
		i++
	}

	if len(p.positional) > 0 {
		p.subcommand = p.positional[0]
	}
	return p
}

// Subcommand returns the first positional argument, or "".
func (p *ArgParser) Subcommand() string {
	return p.subcommand
}

// Flag returns the value of a named flag, or "" when absent.
func (p *ArgParser) Flag(name string) string {
	return p.flags[name]
}

// FlagOrDefault returns the flag value or def when the flag is absent.
func (p *ArgParser) FlagOrDefault(name, def string) string {
	if v, ok := p.flags[name]; ok {
		return v
	}
	return def
}

// HasFlag reports whether the flag was present at all.
func (p *ArgParser) HasFlag(name string) bool {
	_, ok := p.flags[name]
	return ok
}

// BoolFlag reports whether a flag is present and not explicitly false.
func (p *ArgParser) BoolFlag(name string) bool {
	v, ok := p.flags[name]
	if !ok {
		return false
	}
	return v != "false" && v != "0" && v != "no"
}

// FlagInt parses a flag as an integer.
func (p *ArgParser) FlagInt(name string) (int, error) {
	v, ok := p.flags[name]
	if !ok {
		return 0, fmt.Errorf("flag --%s not provided", name)
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("flag --%s: %q is not a number", name, v)
	}
	return n, nil
}

// FlagIntOrDefault parses a flag as an integer, falling back to def on
// absence or parse failure.
func (p *ArgParser) FlagIntOrDefault(name string, def int) int {
	n, err := p.FlagInt(name)
	if err != nil {
		return def
	}
	return n
}

// Positional returns the positional argument at index i, or "".
func (p *ArgParser) Positional(i int) string {
	if i < 0 || i >= len(p.positional) {
		return ""
	}
	return p.positional[i]
}

// PositionalFrom returns all positional arguments from index i on.
func (p *ArgParser) PositionalFrom(i int) []string {
	if i < 0 || i >= len(p.positional) {
		return nil
	}
	return p.positional[i:]
}

// PositionalCount returns the number of positional arguments.
func (p *ArgParser) PositionalCount() int {
	return len(p.positional)
}

// Raw returns the unparsed argument list.
func (p *ArgParser) Raw() []string {
	return p.raw
}

// JoinPositionalFrom joins positional arguments from index i with
// spaces. Used to rebuild free-text queries like `sidekick ask what
// is a goroutine`.
func (p *ArgParser) JoinPositionalFrom(i int) string {
	return strings.Join(p.PositionalFrom(i), " ")
}

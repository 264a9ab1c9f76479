// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// ask.go - Single query command handler for sidekick CLI.
//
// CLI: Comprehensive help and examples for all commands
// USABILITY: Markdown rendering and history for better CLI experience
//
// Handles the "sidekick ask" command, which sends one question to the
// agent backend and streams the reply to stdout.
//
// Examples:
//   sidekick ask "What is the capital of France?"
//   sidekick ask --file main.go "Review this code"
//   sidekick ask --json "List running processes"
//   cat build.log | sidekick ask "why did this fail?"
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"

	"github.com/jeranaias/sidekick-tui/internal/agent"
	"github.com/jeranaias/sidekick-tui/internal/config"
	"github.com/jeranaias/sidekick-tui/internal/util"
)

// MaxFileSize is the largest file ask will inline into a question (50KB).
const MaxFileSize = 50 * 1024

// =============================================================================
// MARKDOWN RENDERING
// =============================================================================

// markdownRenderer is the shared glamour renderer for TTY output.
var markdownRenderer *glamour.TermRenderer

func init() {
	var err error
	markdownRenderer, err = glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Plain text fallback when the renderer cannot initialize
		markdownRenderer = nil
	}
}

// renderMarkdown renders markdown for terminal display, returning the
// input unchanged when rendering is unavailable.
func renderMarkdown(content string) string {
	if markdownRenderer == nil {
		return content
	}
	rendered, err := markdownRenderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}

// displayResponse writes a reply to stdout, rendering markdown only on
// a TTY so piped output stays clean.
func displayResponse(response string) {
	if IsStdoutTTY() {
		fmt.Print(renderMarkdown(response))
	} else {
		fmt.Print(response)
	}
}

// =============================================================================
// FILE AND STDIN INPUT
// =============================================================================

// readFileForContext reads a file and formats it for inclusion in a
// question. Files larger than MaxFileSize are rejected.
func readFileForContext(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %s", path)
		}
		return "", fmt.Errorf("cannot access file: %w", err)
	}

	if info.Size() > MaxFileSize {
		return "", fmt.Errorf("file too large: %d bytes (max %d bytes)", info.Size(), MaxFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	var builder strings.Builder
	builder.WriteString(fmt.Sprintf("\n--- File: %s ---\n", path))
	builder.Write(content)
	builder.WriteString("\n--- End of file ---\n")
	return builder.String(), nil
}

// readStdinQuestion drains piped stdin into a question string.
func readStdinQuestion() string {
	reader := bufio.NewReader(os.Stdin)
	data, err := io.ReadAll(reader)
	if err != nil || len(data) == 0 {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// =============================================================================
// ASK HANDLER
// =============================================================================

// askResult is the JSON shape emitted with --json.
type askResult struct {
	Response   string `json:"response"`
	ToolCalls  int    `json:"tool_calls"`
	DurationMs int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// HandleAskCommand sends one question to the agent and streams the
// reply.
func HandleAskCommand(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	question := args.Query
	if question == "" && StdinIsPipe() {
		question = readStdinQuestion()
		if question != "" && !args.Quiet {
			fmt.Fprintf(os.Stderr, "%s Read question from stdin (%d bytes)\n",
				infoStyle.Render("[+]"), len(question))
		}
	}
	if question == "" {
		return fmt.Errorf("no question provided. Usage: sidekick ask \"your question\"")
	}

	if args.File != "" {
		fileContent, err := readFileForContext(args.File)
		if err != nil {
			return err
		}
		question += "\n" + fileContent
		if !args.Quiet && !args.JSON {
			fmt.Fprintf(os.Stderr, "%s Including file: %s\n",
				infoStyle.Render("[+]"), args.File)
		}
	}

	client := agent.NewCommandClient(cfg.Agent.Command, cfg.Agent.Args,
		time.Duration(cfg.Agent.TimeoutSecs)*time.Second)

	// Collect the reply; markdown output renders once at the end so the
	// formatting is not corrupted mid-stream
	useMarkdown := IsStdoutTTY() && !args.JSON
	var reply strings.Builder
	toolCalls := 0
	start := time.Now()

	if !args.Quiet && !args.JSON {
		fmt.Println()
	}

	sendErr := client.Send(context.Background(), []agent.Message{
		{Role: "user", Content: question},
	}, func(e agent.Event) {
		switch e.Type {
		case agent.EventText:
			reply.WriteString(e.Content)
			if !args.JSON && !useMarkdown {
				fmt.Print(e.Content)
			}
		case agent.EventToolStart:
			toolCalls++
			if !args.Quiet && !args.JSON {
				fmt.Fprintf(os.Stderr, "%s %s\n", toolStyle.Render("[tool]"), e.Name)
			}
		case agent.EventToolEnd:
			if !args.Quiet && !args.JSON && !e.Success {
				fmt.Fprintf(os.Stderr, "%s %s failed: %s\n",
					errorStyle.Render("[tool]"), e.Name,
					util.TruncateRunes(e.Output, 120))
			}
		case agent.EventError:
			if !args.JSON {
				fmt.Fprintf(os.Stderr, "\n%s %s\n", errorStyle.Render("[Error]"), e.Message)
			}
		}
	})

	duration := time.Since(start)

	if args.JSON {
		result := askResult{
			Response:   reply.String(),
			ToolCalls:  toolCalls,
			DurationMs: duration.Milliseconds(),
		}
		if sendErr != nil {
			result.Error = sendErr.Error()
		}
		enc := json.NewEncoder(os.Stdout)
		if err := enc.Encode(result); err != nil {
			return err
		}
		return sendErr
	}

	if sendErr != nil {
		return fmt.Errorf("agent failed: %w", sendErr)
	}

	if useMarkdown {
		displayResponse(reply.String())
	}
	fmt.Println()

	if !args.Quiet {
		summary := fmt.Sprintf("%s %s", labelStyle.Render("Time:"),
			valueStyle.Render(util.FormatDuration(duration)))
		if toolCalls > 0 {
			summary += fmt.Sprintf(" | %s %d", labelStyle.Render("Tools:"), toolCalls)
		}
		fmt.Fprintln(os.Stderr, separatorStyle.Render(strings.Repeat("─", 45)))
		fmt.Fprintln(os.Stderr, summary)
	}

	return nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// chat.go - Interactive chat command handler for sidekick CLI.
//
// CLI: Comprehensive help and examples for all commands
// USABILITY: Markdown rendering and history for better CLI experience
//
// Handles "sidekick chat", a plain-terminal REPL for people who want
// the agent without the full TUI (or whose terminal can't run it).
//
// Interactive commands:
//   /help, /h           Show available commands
//   /clear, /c          Clear conversation history
//   /status, /s         Show session statistics
//   /history            Show conversation history
//   /quit, /q           Exit chat
//   Ctrl+C              Cancel current generation
//   Ctrl+D              Exit chat
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/peterh/liner"

	"github.com/jeranaias/sidekick-tui/internal/agent"
	"github.com/jeranaias/sidekick-tui/internal/config"
	"github.com/jeranaias/sidekick-tui/internal/util"
)

// =============================================================================
// INPUT HISTORY
// =============================================================================

// ChatCLI provides input history and line editing for interactive chat.
// USABILITY: Supports arrow keys for history navigation and line editing.
type ChatCLI struct {
	line        *liner.State
	historyFile string
}

// NewChatCLI creates a ChatCLI with history loaded from the config dir.
func NewChatCLI() *ChatCLI {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}

	c := &ChatCLI{
		line:        line,
		historyFile: filepath.Join(configDir, "chat_history"),
	}
	c.LoadHistory()
	return c
}

// LoadHistory loads command history from file.
func (c *ChatCLI) LoadHistory() {
	if f, err := os.Open(c.historyFile); err == nil {
		c.line.ReadHistory(f)
		f.Close()
	}
}

// ReadInput reads a line of input with the given prompt, recording
// non-empty lines into history.
func (c *ChatCLI) ReadInput(prompt string) (string, error) {
	input, err := c.line.Prompt(prompt)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(input) != "" {
		c.line.AppendHistory(input)
	}
	return input, nil
}

// SaveHistory persists history with owner-only permissions.
func (c *ChatCLI) SaveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(c.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	c.line.WriteHistory(f)
}

// Close saves history and closes the liner.
func (c *ChatCLI) Close() {
	c.SaveHistory()
	c.line.Close()
}

// =============================================================================
// SESSION STATE
// =============================================================================

// ChatSession holds the state for an interactive chat session.
type ChatSession struct {
	Messages []agent.Message

	Config *config.Config
	Client agent.Client
	Quiet  bool

	StartTime  time.Time
	Turns      int
	ToolCalls  int
	CancelFunc context.CancelFunc

	// USABILITY: Provides readline-like input with history
	InputCLI *ChatCLI
}

// NewChatSession creates a session wired to the configured agent.
func NewChatSession(cfg *config.Config, args Args) *ChatSession {
	client := agent.NewCommandClient(cfg.Agent.Command, cfg.Agent.Args,
		time.Duration(cfg.Agent.TimeoutSecs)*time.Second)

	return &ChatSession{
		Messages:  make([]agent.Message, 0),
		Config:    cfg,
		Client:    client,
		Quiet:     args.Quiet,
		StartTime: time.Now(),
		InputCLI:  NewChatCLI(),
	}
}

// =============================================================================
// CHAT HANDLER
// =============================================================================

// HandleChatCommand runs the interactive chat REPL.
func HandleChatCommand(args Args) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	session := NewChatSession(cfg, args)

	if !session.Quiet {
		printWelcome(session)
	}

	// USABILITY: Save history for future sessions
	defer session.InputCLI.Close()

	// First Ctrl+C during a generation cancels it rather than exiting
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		for range sigChan {
			if session.CancelFunc != nil {
				session.CancelFunc()
				session.CancelFunc = nil
				fmt.Fprintln(os.Stderr, "\n"+warningStyle.Render("[Cancelled]"))
			}
		}
	}()

	for {
		input, err := session.InputCLI.ReadInput(promptStyle.Render("sidekick> "))
		if err != nil {
			// liner.ErrPromptAborted is Ctrl+C, everything else is EOF
			fmt.Println()
			printExitSummary(session)
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if strings.HasPrefix(input, "/") {
			shouldContinue, err := handleSlashCommand(input, session)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
			}
			if !shouldContinue {
				printExitSummary(session)
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			printExitSummary(session)
			return nil
		}

		if err := processMessage(session, input); err != nil {
			fmt.Fprintf(os.Stderr, "%s %v\n", errorStyle.Render("[Error]"), err)
		}
	}
}

// =============================================================================
// MESSAGE PROCESSING
// =============================================================================

// processMessage sends one turn to the agent and streams the reply.
func processMessage(session *ChatSession, input string) error {
	session.Messages = append(session.Messages, agent.Message{Role: "user", Content: input})

	ctx, cancel := context.WithCancel(context.Background())
	session.CancelFunc = cancel
	defer func() {
		session.CancelFunc = nil
		cancel()
	}()

	// USABILITY: Render markdown on TTY for better formatting
	useMarkdown := IsStdoutTTY()
	var reply strings.Builder
	turnTools := 0
	start := time.Now()

	fmt.Println()

	err := session.Client.Send(ctx, session.Messages, func(e agent.Event) {
		switch e.Type {
		case agent.EventText:
			reply.WriteString(e.Content)
			if !useMarkdown {
				fmt.Print(e.Content)
			}
		case agent.EventToolStart:
			turnTools++
			fmt.Fprintf(os.Stderr, "%s %s\n", toolStyle.Render("[tool]"), e.Name)
		case agent.EventToolEnd:
			if !e.Success {
				fmt.Fprintf(os.Stderr, "%s %s failed\n", errorStyle.Render("[tool]"), e.Name)
			}
		case agent.EventError:
			fmt.Fprintf(os.Stderr, "\n%s %s\n", errorStyle.Render("[Error]"), e.Message)
		}
	})

	if err != nil {
		// Drop the user message so a retry doesn't double it
		session.Messages = session.Messages[:len(session.Messages)-1]
		return fmt.Errorf("agent failed: %w", err)
	}

	response := reply.String()
	if useMarkdown {
		displayResponse(response)
	}
	fmt.Println()
	fmt.Println()

	session.Messages = append(session.Messages, agent.Message{Role: "assistant", Content: response})
	session.Turns++
	session.ToolCalls += turnTools

	if !session.Quiet {
		showBriefStats(turnTools, time.Since(start))
	}
	return nil
}

// showBriefStats shows a one-line summary after each turn.
func showBriefStats(tools int, duration time.Duration) {
	if tools > 0 {
		fmt.Fprintf(os.Stderr, "%s %s | %d tool calls\n",
			infoStyle.Render("[Stats]"),
			util.FormatDuration(duration), tools)
	} else {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			infoStyle.Render("[Stats]"),
			util.FormatDuration(duration))
	}
}

// =============================================================================
// SLASH COMMANDS
// =============================================================================

// handleSlashCommand processes slash commands.
// Returns (shouldContinue, error) where shouldContinue=false means exit.
func handleSlashCommand(cmd string, session *ChatSession) (bool, error) {
	parts := strings.Fields(cmd)
	if len(parts) == 0 {
		return true, nil
	}

	switch strings.ToLower(parts[0]) {
	case "/help", "/h", "/?", "/":
		printChatHelp()
		return true, nil

	case "/clear", "/c":
		session.Messages = session.Messages[:0]
		fmt.Println(valueStyle.Render("[Conversation cleared]"))
		return true, nil

	case "/status", "/s":
		printSessionStatus(session)
		return true, nil

	case "/history":
		printHistory(session)
		return true, nil

	case "/quit", "/q", "/exit":
		return false, nil

	default:
		return true, fmt.Errorf("unknown command: %s (type /help for commands)", parts[0])
	}
}

// =============================================================================
// DISPLAY FUNCTIONS
// =============================================================================

// printWelcome prints the welcome banner.
func printWelcome(session *ChatSession) {
	fmt.Println()
	fmt.Println(welcomeStyle.Render("sidekick interactive chat"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 30)))
	fmt.Printf("%s %s\n",
		infoStyle.Render("Agent:"),
		valueStyle.Render(session.Config.Agent.Command))
	fmt.Println()
	fmt.Println(infoStyle.Render("Type your message and press Enter. Commands: /help, /quit"))
	fmt.Println()
}

// printChatHelp prints available REPL commands.
func printChatHelp() {
	fmt.Println()
	fmt.Println(headerStyle.Render("Available Commands"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()

	commands := []struct {
		cmd  string
		desc string
	}{
		{"/help, /h", "Show this help"},
		{"/clear, /c", "Clear conversation history"},
		{"/status, /s", "Show session statistics"},
		{"/history", "Show conversation history"},
		{"/quit, /q", "Exit chat"},
	}

	for _, c := range commands {
		fmt.Printf("  %s  %s\n",
			valueStyle.Render(fmt.Sprintf("%-15s", c.cmd)),
			infoStyle.Render(c.desc))
	}

	fmt.Println()
	fmt.Println(infoStyle.Render("Tip: Ctrl+C cancels current generation, Ctrl+D exits"))
	fmt.Println()
}

// printSessionStatus prints session statistics.
func printSessionStatus(session *ChatSession) {
	elapsed := time.Since(session.StartTime).Round(time.Second)

	fmt.Println()
	fmt.Println(headerStyle.Render("Session Status"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 20)))
	fmt.Println()
	fmt.Printf("  %s %s\n", infoStyle.Render("Agent:"), valueStyle.Render(session.Config.Agent.Command))
	fmt.Printf("  %s %s\n", infoStyle.Render("Duration:"), elapsed.String())
	fmt.Printf("  %s %d messages\n", infoStyle.Render("History:"), len(session.Messages))
	fmt.Printf("  %s %d\n", infoStyle.Render("Turns:"), session.Turns)
	fmt.Printf("  %s %d\n", infoStyle.Render("Tool calls:"), session.ToolCalls)
	fmt.Println()
}

// printHistory prints the conversation so far, one truncated line per
// message.
func printHistory(session *ChatSession) {
	if len(session.Messages) == 0 {
		fmt.Println(infoStyle.Render("[No messages yet]"))
		return
	}

	fmt.Println()
	fmt.Println(headerStyle.Render("Conversation History"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 25)))
	fmt.Println()

	for i, msg := range session.Messages {
		role := msg.Role
		switch role {
		case "user":
			role = promptStyle.Render("You")
		case "assistant":
			role = welcomeStyle.Render("AI")
		}

		content := strings.ReplaceAll(util.TruncateRunes(msg.Content, 100), "\n", " ")
		fmt.Printf("  %d. %s: %s\n", i+1, role, content)
	}

	fmt.Println()
}

// printExitSummary prints the session summary on exit.
func printExitSummary(session *ChatSession) {
	if session.Turns == 0 {
		fmt.Println(infoStyle.Render("Goodbye!"))
		return
	}

	elapsed := time.Since(session.StartTime).Round(time.Second)

	fmt.Println()
	fmt.Println(headerStyle.Render("Session Summary"))
	fmt.Println(infoStyle.Render(strings.Repeat("─", 15)))
	fmt.Printf("  %s %d\n", infoStyle.Render("Turns:"), session.Turns)
	fmt.Printf("  %s %d\n", infoStyle.Render("Tool calls:"), session.ToolCalls)
	fmt.Printf("  %s %s\n", infoStyle.Render("Duration:"), elapsed.String())
	fmt.Println()
	fmt.Println(infoStyle.Render("Goodbye!"))
}

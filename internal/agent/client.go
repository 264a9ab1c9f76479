// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// CLIENT INTERFACE
// =============================================================================

// Client is the interface the UI talks to. Implementations stream
// events to the callback until the turn completes.
type Client interface {
	// Send submits a conversation and streams response events.
	// Blocks until the backend finishes or ctx is cancelled.
	Send(ctx context.Context, messages []Message, callback EventCallback) error
}

// ErrNoBackend is returned when no backend command is configured.
var ErrNoBackend = errors.New("no agent backend configured")

// =============================================================================
// COMMAND CLIENT
// =============================================================================

// CommandClient runs the configured backend command once per prompt:
// the request goes to its stdin, events stream back on its stdout.
// Spawning per prompt keeps the bridge stateless; conversation history
// travels with every request.
type CommandClient struct {
	command string
	args    []string
	timeout time.Duration
}

// NewCommandClient creates a client for the given backend command.
// A non-positive timeout means no per-prompt deadline.
func NewCommandClient(command string, args []string, timeout time.Duration) *CommandClient {
	return &CommandClient{
		command: command,
		args:    args,
		timeout: timeout,
	}
}

// Send implements Client.
func (c *CommandClient) Send(ctx context.Context, messages []Message, callback EventCallback) error {
	if c.command == "" {
		return ErrNoBackend
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, c.command, c.args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return fmt.Errorf("agent stdin: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("agent stdout: %w", err)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start agent %q: %w", c.command, err)
	}

	req := Request{ID: uuid.NewString(), Messages: messages}
	data, err := json.Marshal(req)
	if err != nil {
		stdin.Close()
		cmd.Process.Kill()
		cmd.Wait()
		return err
	}
	data = append(data, '\n')
	if _, err := stdin.Write(data); err != nil {
		stdin.Close()
		cmd.Wait()
		return fmt.Errorf("write agent request: %w", err)
	}
	stdin.Close()

	streamErr := NewEventReader(stdout).Process(ctx, callback)
	waitErr := cmd.Wait()

	if streamErr != nil {
		return streamErr
	}
	if waitErr != nil {
		// Surface the stderr tail; it is usually the actual diagnosis
		tail := strings.TrimSpace(stderr.String())
		if len(tail) > 500 {
			tail = tail[len(tail)-500:]
		}
		if tail != "" {
			return fmt.Errorf("agent exited: %w: %s", waitErr, tail)
		}
		return fmt.Errorf("agent exited: %w", waitErr)
	}
	return nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/jeranaias/sidekick-tui/internal/toolcall"
)

// =============================================================================
// EVENT READER TESTS
// =============================================================================

func TestEventReader_ParsesStream(t *testing.T) {
	stream := strings.Join([]string{
		`{"type":"text","content":"Hel"}`,
		`{"type":"text","content":"lo"}`,
		`{"type":"done"}`,
	}, "\n") + "\n"

	var events []Event
	er := NewEventReader(strings.NewReader(stream))
	err := er.Process(context.Background(), func(e Event) {
		events = append(events, e)
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	if events[2].Type != EventDone {
		t.Errorf("last event = %q, want done", events[2].Type)
	}
	if er.Accumulated() != "Hello" {
		t.Errorf("Accumulated = %q, want Hello", er.Accumulated())
	}
}

func TestEventReader_SkipsMalformedLines(t *testing.T) {
	stream := "not json at all\n" +
		`{"type":"text","content":"ok"}` + "\n" +
		"\n" +
		`{"type":"done"}` + "\n"

	var events []Event
	er := NewEventReader(strings.NewReader(stream))
	if err := er.Process(context.Background(), func(e Event) {
		events = append(events, e)
	}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(events) != 2 {
		t.Errorf("got %d events, want 2 (malformed and blank lines skipped)", len(events))
	}
}

func TestEventReader_UnterminatedLastLine(t *testing.T) {
	// Stream cut off without a trailing newline still yields the event
	stream := `{"type":"text","content":"partial"}`

	var events []Event
	er := NewEventReader(strings.NewReader(stream))
	if err := er.Process(context.Background(), func(e Event) {
		events = append(events, e)
	}); err != nil {
		t.Fatalf("Process: %v", err)
	}

	if len(events) != 1 || events[0].Content != "partial" {
		t.Errorf("events = %+v, want the unterminated line parsed", events)
	}
}

func TestEventReader_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	er := NewEventReader(strings.NewReader(`{"type":"text","content":"x"}` + "\n"))
	err := er.Process(ctx, func(Event) {})
	if err == nil {
		t.Error("Process should surface context cancellation")
	}
}

func TestEvent_ArgPairs(t *testing.T) {
	e := Event{
		Type: EventToolStart,
		Name: "shell",
		Args: []byte(`{"command":"ls -la","timeout":30}`),
	}

	pairs := e.ArgPairs()
	if pairs["command"] != "ls -la" {
		t.Errorf("command = %q", pairs["command"])
	}
	if pairs["timeout"] != "30" {
		t.Errorf("timeout = %q, want non-string values marshaled compactly", pairs["timeout"])
	}
}

// =============================================================================
// TRACKER TESTS
// =============================================================================

func TestTracker_Lifecycle(t *testing.T) {
	tr := NewTracker()

	tr.Apply(Event{
		Type:   EventToolStart,
		ToolID: "t1",
		Name:   "shell",
		Args:   []byte(`{"command":"ls"}`),
	})

	invs := tr.Invocations()
	if len(invs) != 1 {
		t.Fatalf("got %d invocations, want 1", len(invs))
	}
	if invs[0].State() != toolcall.StatePending {
		t.Errorf("state = %v, want pending before tool_end", invs[0].State())
	}
	if tr.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", tr.Pending())
	}

	tr.Apply(Event{
		Type:       EventToolEnd,
		ToolID:     "t1",
		Success:    true,
		Output:     "file.txt",
		DurationMs: 42,
	})

	inv := tr.Invocations()[0]
	if inv.State() != toolcall.StateSucceeded {
		t.Errorf("state = %v, want succeeded", inv.State())
	}
	if inv.Result.Output != "file.txt" {
		t.Errorf("Output = %q", inv.Result.Output)
	}
	if inv.Result.Duration != 42*time.Millisecond {
		t.Errorf("Duration = %v", inv.Result.Duration)
	}
}

func TestTracker_ArgsSortedByName(t *testing.T) {
	tr := NewTracker()
	tr.Apply(Event{
		Type:   EventToolStart,
		ToolID: "t1",
		Name:   "write_file",
		Args:   []byte(`{"path":"a.txt","content":"hi","append":false}`),
	})

	args := tr.Invocations()[0].Args
	want := []string{"append", "content", "path"}
	if len(args) != len(want) {
		t.Fatalf("got %d args, want %d", len(args), len(want))
	}
	for i, name := range want {
		if args[i].Name != name {
			t.Errorf("args[%d] = %q, want %q", i, args[i].Name, name)
		}
	}
}

func TestTracker_IgnoresOrphanEvents(t *testing.T) {
	tr := NewTracker()

	// tool_end with no matching start
	tr.Apply(Event{Type: EventToolEnd, ToolID: "ghost", Success: true})
	if len(tr.Invocations()) != 0 {
		t.Error("orphan tool_end should not create an invocation")
	}

	// duplicate tool_start for the same ID
	tr.Apply(Event{Type: EventToolStart, ToolID: "t1", Name: "shell"})
	tr.Apply(Event{Type: EventToolStart, ToolID: "t1", Name: "shell"})
	if len(tr.Invocations()) != 1 {
		t.Errorf("got %d invocations, want duplicate start ignored", len(tr.Invocations()))
	}

	// duplicate tool_end keeps the first result
	tr.Apply(Event{Type: EventToolEnd, ToolID: "t1", Success: true, Output: "first"})
	tr.Apply(Event{Type: EventToolEnd, ToolID: "t1", Success: false, Output: "second"})
	inv := tr.Invocations()[0]
	if inv.Result == nil || inv.Result.Output != "first" {
		t.Errorf("Result = %+v, want first resolution kept", inv.Result)
	}
}

// =============================================================================
// COMMAND CLIENT TESTS
// =============================================================================

func TestCommandClient_NoBackend(t *testing.T) {
	c := NewCommandClient("", nil, 0)
	err := c.Send(context.Background(), []Message{{Role: "user", Content: "hi"}}, func(Event) {})
	if err != ErrNoBackend {
		t.Errorf("err = %v, want ErrNoBackend", err)
	}
}

func TestCommandClient_MissingCommand(t *testing.T) {
	c := NewCommandClient("/nonexistent/sidekick-agent", nil, time.Second)
	err := c.Send(context.Background(), []Message{{Role: "user", Content: "hi"}}, func(Event) {})
	if err == nil {
		t.Error("expected error for missing backend command")
	}
}

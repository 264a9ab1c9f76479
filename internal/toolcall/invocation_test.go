// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolcall defines the tool invocation model shared between the
// agent bridge and the UI.
package toolcall

import (
	"testing"
	"time"
)

// =============================================================================
// LIFECYCLE TESTS
// =============================================================================

func TestNew_StartsPending(t *testing.T) {
	inv := New("shell", []Arg{{Name: "command", Value: "ls"}})

	if inv.ID == "" {
		t.Error("New invocation should have an ID")
	}
	if inv.State() != StatePending {
		t.Errorf("State = %v, want pending", inv.State())
	}
	if inv.Result != nil {
		t.Error("Result should be nil while pending")
	}
}

func TestResolve_Success(t *testing.T) {
	inv := New("shell", nil)

	err := inv.Resolve(Result{Success: true, Output: "ok", Duration: 120 * time.Millisecond})
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if inv.State() != StateSucceeded {
		t.Errorf("State = %v, want succeeded", inv.State())
	}
	if !inv.State().Terminal() {
		t.Error("Succeeded should be terminal")
	}
}

func TestResolve_Failure(t *testing.T) {
	inv := New("shell", nil)

	if err := inv.Resolve(Result{Success: false, Error: "exit 1"}); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if inv.State() != StateFailed {
		t.Errorf("State = %v, want failed", inv.State())
	}
}

func TestResolve_Twice(t *testing.T) {
	inv := New("shell", nil)

	if err := inv.Resolve(Result{Success: true}); err != nil {
		t.Fatalf("First resolve failed: %v", err)
	}
	if err := inv.Resolve(Result{Success: false}); err != ErrAlreadyResolved {
		t.Errorf("Second resolve error = %v, want ErrAlreadyResolved", err)
	}
	// First result wins
	if inv.State() != StateSucceeded {
		t.Errorf("State = %v, want succeeded after rejected re-resolve", inv.State())
	}
}

func TestNew_DistinctIDs(t *testing.T) {
	a := New("shell", nil)
	b := New("shell", nil)
	if a.ID == b.ID {
		t.Error("Two invocations should have distinct IDs")
	}
}

// =============================================================================
// ARGUMENT TESTS
// =============================================================================

func TestArg_OrderPreserved(t *testing.T) {
	args := []Arg{
		{Name: "path", Value: "/tmp/a"},
		{Name: "mode", Value: "append"},
		{Name: "content", Value: "x"},
	}
	inv := New("write_file", args)

	for i, a := range inv.Args {
		if a.Name != args[i].Name {
			t.Errorf("Args[%d].Name = %q, want %q", i, a.Name, args[i].Name)
		}
	}
}

func TestArg_Lookup(t *testing.T) {
	inv := New("read_file", []Arg{{Name: "path", Value: "/etc/hosts"}})

	if v, ok := inv.Arg("path"); !ok || v != "/etc/hosts" {
		t.Errorf("Arg(path) = %q, %v", v, ok)
	}
	if _, ok := inv.Arg("missing"); ok {
		t.Error("Arg(missing) should report absent")
	}
}

func TestState_String(t *testing.T) {
	if StatePending.String() != "pending" || StateSucceeded.String() != "succeeded" || StateFailed.String() != "failed" {
		t.Error("State.String mismatch")
	}
	if StatePending.Terminal() {
		t.Error("Pending should not be terminal")
	}
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolcall defines the tool invocation model shared between the
// agent bridge and the UI.
package toolcall

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// STATE
// =============================================================================

// State is the lifecycle state of an invocation.
type State int

const (
	// StatePending - issued, no result yet
	StatePending State = iota

	// StateSucceeded - terminal, result carries output
	StateSucceeded

	// StateFailed - terminal, result carries the error
	StateFailed
)

// String returns the string representation of a state.
func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state admits no further transitions.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed
}

// =============================================================================
// INVOCATION
// =============================================================================

// Arg is a single named argument. Arguments are kept as an ordered slice,
// not a map: the backend sends them in a meaningful order and the UI
// renders them in that order.
type Arg struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Result is the outcome of a finished invocation.
type Result struct {
	Success  bool          `json:"success"`
	Output   string        `json:"output"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration,omitempty"`
}

// Invocation is one tool call issued by the agent. Result is nil while the
// call is pending.
type Invocation struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Args     []Arg     `json:"args,omitempty"`
	IssuedAt time.Time `json:"issued_at"`
	Result   *Result   `json:"result,omitempty"`
}

// New creates a pending invocation with a fresh ID.
func New(name string, args []Arg) *Invocation {
	return &Invocation{
		ID:       uuid.NewString(),
		Name:     name,
		Args:     args,
		IssuedAt: time.Now(),
	}
}

// State derives the lifecycle state from the result.
func (inv *Invocation) State() State {
	if inv.Result == nil {
		return StatePending
	}
	if inv.Result.Success {
		return StateSucceeded
	}
	return StateFailed
}

// ErrAlreadyResolved is returned when a result arrives for an invocation
// that already has one.
var ErrAlreadyResolved = errors.New("toolcall: invocation already resolved")

// Resolve attaches the result, completing the lifecycle. A second resolve
// is rejected: each invocation passes through Pending to a terminal state
// exactly once.
func (inv *Invocation) Resolve(res Result) error {
	if inv.Result != nil {
		return ErrAlreadyResolved
	}
	inv.Result = &res
	return nil
}

// Arg returns the value of a named argument and whether it was present.
func (inv *Invocation) Arg(name string) (string, bool) {
	for _, a := range inv.Args {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

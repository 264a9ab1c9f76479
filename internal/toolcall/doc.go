// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package toolcall defines the tool invocation model shared between the
// agent bridge and the UI.
//
// An Invocation is one discrete action the assistant asked the external
// backend to perform. Its lifecycle is Pending until a Result arrives,
// then terminally Succeeded or Failed. Retries are new invocations with
// new IDs, never transitions on a finished one.
//
// # Key Types
//
//   - Invocation: id, tool name, ordered arguments, nullable result
//   - Arg: one named argument (order-preserving)
//   - Result: success flag, output, error text, duration
//   - State: Pending, Succeeded, Failed
package toolcall

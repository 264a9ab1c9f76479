// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package agent

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
)

// =============================================================================
// EVENT READER
// =============================================================================

// EventReader handles line-by-line JSON parsing of the backend's event
// stream.
type EventReader struct {
	reader *bufio.Reader
	// PERFORMANCE: strings.Builder avoids quadratic allocations
	accumulator strings.Builder
}

// NewEventReader creates an event reader over the backend's stdout.
func NewEventReader(r io.Reader) *EventReader {
	return &EventReader{reader: bufio.NewReader(r)}
}

// Process reads the stream and calls the callback for each event.
// Blocks until a done event, stream end, or context cancellation.
func (er *EventReader) Process(ctx context.Context, callback EventCallback) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			event, err := er.readEvent()
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}

			if event != nil {
				callback(*event)
				if event.Type == EventDone {
					return nil
				}
			}
		}
	}
}

// readEvent reads and parses a single line from the stream. Malformed
// and empty lines yield (nil, nil) and are skipped by the caller.
func (er *EventReader) readEvent() (*Event, error) {
	line, err := er.reader.ReadBytes('\n')
	if err != nil {
		if err == io.EOF && len(line) == 0 {
			return nil, io.EOF
		}
		// Process the last unterminated line before surfacing EOF
		if len(line) == 0 {
			return nil, err
		}
	}

	trimmed := strings.TrimSpace(string(line))
	if trimmed == "" {
		return nil, nil
	}

	var event Event
	if err := json.Unmarshal([]byte(trimmed), &event); err != nil {
		// Skip malformed lines
		return nil, nil
	}

	if event.Type == EventText {
		er.accumulator.WriteString(event.Content)
	}

	return &event, nil
}

// Accumulated returns all text content seen so far.
func (er *EventReader) Accumulated() string {
	return er.accumulator.String()
}

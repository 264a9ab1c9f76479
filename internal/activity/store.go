// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package activity

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// =============================================================================
// EVENT TYPE
// =============================================================================

// Event kinds. Free-form strings are accepted; these are the ones
// sidekick itself writes.
const (
	KindPreload = "preload"
	KindTool    = "tool"
	KindChat    = "chat"
	KindConfig  = "config"
)

// Event is one recorded action.
type Event struct {
	ID        int64     `json:"id"`
	Kind      string    `json:"kind"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

// =============================================================================
// STORE
// =============================================================================

// DefaultMaxEvents bounds the table when no limit is configured.
const DefaultMaxEvents = 1000

// Store is an append-only event log backed by SQLite. Safe for
// concurrent use; database/sql serializes access.
type Store struct {
	db        *sql.DB
	maxEvents int
}

// Open opens (creating if needed) the activity database at path.
// An empty path defaults to ~/.sidekick/activity.db.
func Open(path string) (*Store, error) {
	return OpenWithLimit(path, DefaultMaxEvents)
}

// OpenWithLimit opens the database with an explicit retention limit.
// A non-positive limit disables pruning.
func OpenWithLimit(path string, maxEvents int) (*Store, error) {
	if path == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(homeDir, ".sidekick", "activity.db")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open activity db: %w", err)
	}

	// RELIABILITY: Single connection avoids SQLITE_BUSY under
	// concurrent appends from the UI and the agent bridge.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init activity db: %w", err)
	}

	return &Store{db: db, maxEvents: maxEvents}, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	kind       TEXT NOT NULL,
	detail     TEXT NOT NULL,
	created_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_events_created ON events(created_at);
`

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// =============================================================================
// APPEND / READ
// =============================================================================

// Append records an event. A zero CreatedAt is filled with the current
// time. Appending also prunes rows beyond the retention limit, oldest
// first.
func (s *Store) Append(e Event) error {
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO events (kind, detail, created_at) VALUES (?, ?, ?)`,
		e.Kind, e.Detail, e.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}

	if s.maxEvents > 0 {
		// Pruning failures are not worth failing the append over
		s.pruneOver(s.maxEvents)
	}
	return nil
}

// Recent returns the newest events, most recent first.
func (s *Store) Recent(limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, kind, detail, created_at FROM events ORDER BY id DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// RecentByKind returns the newest events of one kind, most recent first.
func (s *Store) RecentByKind(kind string, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := s.db.Query(
		`SELECT id, kind, detail, created_at FROM events WHERE kind = ? ORDER BY id DESC LIMIT ?`,
		kind, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanEvents(rows)
}

// Count returns the number of stored events.
func (s *Store) Count() (int, error) {
	var n int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM events`).Scan(&n)
	return n, err
}

func scanEvents(rows *sql.Rows) ([]Event, error) {
	var events []Event
	for rows.Next() {
		var e Event
		var createdMs int64
		if err := rows.Scan(&e.ID, &e.Kind, &e.Detail, &createdMs); err != nil {
			return nil, err
		}
		e.CreatedAt = time.UnixMilli(createdMs)
		events = append(events, e)
	}
	return events, rows.Err()
}

// =============================================================================
// RETENTION
// =============================================================================

// PruneBefore deletes events older than cutoff. Returns rows removed.
func (s *Store) PruneBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(`DELETE FROM events WHERE created_at < ?`, cutoff.UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// pruneOver trims the table down to keep rows, oldest first.
func (s *Store) pruneOver(keep int) {
	s.db.Exec(
		`DELETE FROM events WHERE id NOT IN (SELECT id FROM events ORDER BY id DESC LIMIT ?)`,
		keep,
	)
}

// Clear removes all events.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM events`)
	return err
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package activity

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T, maxEvents int) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "activity.db")
	store, err := OpenWithLimit(path, maxEvents)
	if err != nil {
		t.Fatalf("OpenWithLimit: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStore_AppendAndRecent(t *testing.T) {
	store := openTestStore(t, 0)

	if err := store.Append(Event{Kind: KindTool, Detail: "shell: ls"}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := store.Append(Event{Kind: KindPreload, Detail: "settings"}); err != nil {
		t.Fatalf("Append: %v", err)
	}

	events, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	// Most recent first
	if events[0].Kind != KindPreload || events[1].Kind != KindTool {
		t.Errorf("wrong order: %q then %q", events[0].Kind, events[1].Kind)
	}
	if events[0].CreatedAt.IsZero() {
		t.Error("CreatedAt not filled")
	}
}

func TestStore_RecentByKind(t *testing.T) {
	store := openTestStore(t, 0)

	store.Append(Event{Kind: KindTool, Detail: "a"})
	store.Append(Event{Kind: KindChat, Detail: "b"})
	store.Append(Event{Kind: KindTool, Detail: "c"})

	events, err := store.RecentByKind(KindTool, 10)
	if err != nil {
		t.Fatalf("RecentByKind: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d tool events, want 2", len(events))
	}
	if events[0].Detail != "c" {
		t.Errorf("Detail = %q, want most recent tool event first", events[0].Detail)
	}
}

func TestStore_RetentionLimit(t *testing.T) {
	store := openTestStore(t, 5)

	for i := 0; i < 8; i++ {
		store.Append(Event{Kind: KindChat, Detail: fmt.Sprintf("msg %d", i)})
	}

	n, err := store.Count()
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 5 {
		t.Errorf("Count = %d, want 5 after pruning", n)
	}

	// Oldest rows were the ones trimmed
	events, _ := store.Recent(10)
	if events[len(events)-1].Detail != "msg 3" {
		t.Errorf("oldest surviving event = %q, want msg 3", events[len(events)-1].Detail)
	}
}

func TestStore_PruneBefore(t *testing.T) {
	store := openTestStore(t, 0)

	old := time.Now().Add(-48 * time.Hour)
	store.Append(Event{Kind: KindTool, Detail: "stale", CreatedAt: old})
	store.Append(Event{Kind: KindTool, Detail: "fresh"})

	removed, err := store.PruneBefore(time.Now().Add(-24 * time.Hour))
	if err != nil {
		t.Fatalf("PruneBefore: %v", err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}

	events, _ := store.Recent(10)
	if len(events) != 1 || events[0].Detail != "fresh" {
		t.Errorf("unexpected surviving events: %+v", events)
	}
}

func TestStore_Clear(t *testing.T) {
	store := openTestStore(t, 0)
	store.Append(Event{Kind: KindConfig, Detail: "reloaded"})

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	n, _ := store.Count()
	if n != 0 {
		t.Errorf("Count = %d after Clear, want 0", n)
	}
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.db")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	store.Append(Event{Kind: KindChat, Detail: "hello"})
	store.Close()

	store, err = Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer store.Close()

	events, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(events) != 1 || events[0].Detail != "hello" {
		t.Errorf("events after reopen: %+v", events)
	}
}

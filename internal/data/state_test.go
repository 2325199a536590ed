package data

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/afrinode-dev/userbot/internal/biz/domain"
)

func newTestStateStore(t *testing.T) *StateStore {
	t.Helper()
	store, err := NewStateStore(filepath.Join(t.TempDir(), "state.db"))
	if err != nil {
		t.Fatalf("failed to open state store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStateStoreGateNotFoundInitially(t *testing.T) {
	store := newTestStateStore(t)

	_, found, err := store.LoadGate(context.Background())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if found {
		t.Error("expected no persisted gate state in a fresh database")
	}
}

func TestStateStoreGateRoundtrip(t *testing.T) {
	store := newTestStateStore(t)
	ctx := context.Background()

	for _, want := range []bool{false, true, false} {
		if err := store.SaveGate(ctx, want); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		got, found, err := store.LoadGate(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if !found {
			t.Fatal("expected gate state to be found after save")
		}
		if got != want {
			t.Errorf("gate state mismatch: got %v, want %v", got, want)
		}
	}
}

func TestStateStoreDeadLetters(t *testing.T) {
	store := newTestStateStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	letters := []domain.DeadLetter{
		{ID: "a", Source: "100", MessageID: 1, Reason: "FLOOD_WAIT", CreatedAt: base},
		{ID: "b", Source: "200", MessageID: 2, Reason: "PEER_ID_INVALID", CreatedAt: base.Add(time.Minute)},
		{ID: "c", Source: "100", MessageID: 3, Reason: "FLOOD_WAIT", CreatedAt: base.Add(2 * time.Minute)},
	}
	for i := range letters {
		if err := store.Record(ctx, &letters[i]); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 dead letters, got %d", n)
	}

	got, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 dead letters, got %d", len(got))
	}
	// Newest first.
	if got[0].ID != "c" || got[1].ID != "b" {
		t.Errorf("unexpected order: %q, %q", got[0].ID, got[1].ID)
	}
	if got[0].Source != "100" || got[0].MessageID != 3 || got[0].Reason != "FLOOD_WAIT" {
		t.Errorf("unexpected dead letter: %+v", got[0])
	}
	if !got[0].CreatedAt.Equal(base.Add(2 * time.Minute)) {
		t.Errorf("unexpected timestamp: %v", got[0].CreatedAt)
	}
}

func TestStateStoreListEmpty(t *testing.T) {
	store := newTestStateStore(t)

	got, err := store.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no dead letters, got %d", len(got))
	}
}

func TestStateStoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state.db")
	ctx := context.Background()

	store, err := NewStateStore(dbPath)
	if err != nil {
		t.Fatalf("failed to open state store: %v", err)
	}
	if err := store.SaveGate(ctx, false); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close failed: %v", err)
	}

	store, err = NewStateStore(dbPath)
	if err != nil {
		t.Fatalf("failed to reopen state store: %v", err)
	}
	defer store.Close()

	enabled, found, err := store.LoadGate(ctx)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !found || enabled {
		t.Errorf("expected persisted disabled state, got enabled=%v found=%v", enabled, found)
	}
}

package sqlite

import (
	"fmt"
	"testing"

	"github.com/hupe1980/agentsim/core"
)

// Interface compliance (compile-time assertion)
var _ core.SessionStore = (*Store)(nil)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStore_CreateEnsureExists(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Create()
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !store.Exists(id) {
		t.Fatalf("expected session %s to exist", id)
	}

	same, _ := store.Ensure(id)
	if same != id {
		t.Fatalf("expected %s, got %s", id, same)
	}

	fresh, _ := store.Ensure("unknown-id")
	if fresh == "unknown-id" || !store.Exists(fresh) {
		t.Fatalf("expected replacement session, got %s", fresh)
	}
}

func TestSQLiteStore_AppendAndHistory(t *testing.T) {
	store := newTestStore(t)
	id, _ := store.Create()

	for i := 0; i < 3; i++ {
		if err := store.AppendTurn(id, fmt.Sprintf("q%d", i), fmt.Sprintf("a%d", i)); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	turns, err := store.History(id)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(turns) != 3 {
		t.Fatalf("expected 3 turns, got %d", len(turns))
	}
	for i, turn := range turns {
		if turn.User != fmt.Sprintf("q%d", i) {
			t.Fatalf("turns out of order: %#v", turns)
		}
	}

	if turns, _ := store.History("unknown"); len(turns) != 0 {
		t.Fatalf("expected empty history, got %#v", turns)
	}
}

func TestSQLiteStore_AppendCreatesMissingSession(t *testing.T) {
	store := newTestStore(t)
	if err := store.AppendTurn("ghost", "hi", "hello"); err != nil {
		t.Fatalf("append to missing session failed: %v", err)
	}
	if !store.Exists("ghost") {
		t.Fatal("expected lazy session creation")
	}
}

func TestSQLiteStore_RecentContext(t *testing.T) {
	store := newTestStore(t)
	id, _ := store.Create()
	store.AppendTurn(id, "q0", "a0")
	store.AppendTurn(id, "q1", "a1")

	ctx, err := store.RecentContext(id, 1)
	if err != nil {
		t.Fatalf("recent context failed: %v", err)
	}
	want := "사용자: q1\n에이전트: a1\n\n"
	if ctx != want {
		t.Fatalf("unexpected context %q, want %q", ctx, want)
	}
}

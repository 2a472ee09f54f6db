package storage

import (
	"path/filepath"
	"testing"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/domain"
)

func openTestDB(t *testing.T) *SQLiteStore {
	t.Helper()

	store, err := OpenSQLite(filepath.Join(t.TempDir(), "mimi.db"))
	if err != nil {
		t.Fatalf("Expected sqlite to open, got %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStore_EmptyLoad(t *testing.T) {
	store := openTestDB(t)

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error on empty load, got %v", err)
	}
	if state != nil {
		t.Error("Expected nil state before first save")
	}
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	store := openTestDB(t)

	in := domain.DefaultState()
	in.Players[0].Username = "persisted"

	if err := store.Save(in); err != nil {
		t.Fatal(err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if out.Players[0].Username != "persisted" {
		t.Errorf("Expected username to survive round trip, got %q", out.Players[0].Username)
	}
	if len(out.Monsters) != len(in.Monsters) {
		t.Errorf("Expected %d monsters, got %d", len(in.Monsters), len(out.Monsters))
	}
}

func TestSQLiteStore_SaveOverwrites(t *testing.T) {
	store := openTestDB(t)

	first := domain.DefaultState()
	first.Players[0].Coins = 1
	if err := store.Save(first); err != nil {
		t.Fatal(err)
	}

	second := domain.DefaultState()
	second.Players[0].Coins = 2
	if err := store.Save(second); err != nil {
		t.Fatal(err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if out.Players[0].Coins != 2 {
		t.Errorf("Expected the second save to win, got coins %d", out.Players[0].Coins)
	}
}

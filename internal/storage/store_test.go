package storage

import (
	"testing"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/domain"
)

func TestMemoryStore_EmptyLoad(t *testing.T) {
	store := NewMemoryStore()

	state, err := store.Load()
	if err != nil {
		t.Fatalf("Expected no error on empty load, got %v", err)
	}
	if state != nil {
		t.Error("Expected nil state before first save")
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	store := NewMemoryStore()

	in := domain.DefaultState()
	in.Players[0].Coins = 777

	if err := store.Save(in); err != nil {
		t.Fatal(err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatal(err)
	}
	if out.Players[0].Coins != 777 {
		t.Errorf("Expected coins 777 after round trip, got %d", out.Players[0].Coins)
	}
	if len(out.Items) != len(in.Items) {
		t.Errorf("Expected %d items, got %d", len(in.Items), len(out.Items))
	}
}

func TestMemoryStore_LoadDoesNotAlias(t *testing.T) {
	store := NewMemoryStore()
	if err := store.Save(domain.DefaultState()); err != nil {
		t.Fatal(err)
	}

	a, _ := store.Load()
	a.Players[0].Coins = 1

	b, _ := store.Load()
	if b.Players[0].Coins == 1 {
		t.Error("Expected loaded states to be independent snapshots")
	}
}

package storage

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/domain"
)

// Store is the injected load/save pair backing the player directory. Load
// returns (nil, nil) when no document has been saved yet so callers can seed
// defaults.
type Store interface {
	Load() (*domain.GameState, error)
	Save(state *domain.GameState) error
}

// MemoryStore keeps the document as a JSON snapshot in memory. Snapshotting
// instead of sharing pointers keeps Save/Load honest: a loaded state never
// aliases the saved one.
type MemoryStore struct {
	mu   sync.Mutex
	data []byte
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns the last saved state, or (nil, nil) if nothing was saved
func (m *MemoryStore) Load() (*domain.GameState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data == nil {
		return nil, nil
	}

	var state domain.GameState
	if err := json.Unmarshal(m.data, &state); err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return &state, nil
}

// Save snapshots the state document
func (m *MemoryStore) Save(state *domain.GameState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	m.mu.Lock()
	m.data = data
	m.mu.Unlock()
	return nil
}

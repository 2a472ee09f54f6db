package usecase

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/domain"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/internal/storage"
	"github.com/AyumeeTermux/MiMiBotGamesTelegram/pkg/logger"
)

// Directory is the keyed collection of player records, backed by an injected
// store. Access goes through a single mutex: the bot path and any other
// writer share the same document, last writer wins on Save.
type Directory struct {
	mu    sync.Mutex
	state *domain.GameState
	store storage.Store
}

// NewDirectory loads the state document from the store, seeding catalog
// defaults when nothing has been saved yet.
func NewDirectory(store storage.Store) (*Directory, error) {
	state, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	if state == nil {
		state = domain.DefaultState()
		if err := store.Save(state); err != nil {
			return nil, fmt.Errorf("seed state: %w", err)
		}
		logger.Log.WithField("component", "directory").Info("Seeded default game state.")
	}

	return &Directory{state: state, store: store}, nil
}

// GetOrCreate returns the player for the given user id, creating one from
// the starter template on first contact. The second return reports whether a
// new record was created; the caller owns the welcome side effect.
//
// Lookup is by exact id. Calling twice with the same id returns the same
// record and resets nothing.
func (d *Directory) GetOrCreate(userID, username string) (*domain.Player, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, p := range d.state.Players {
		if p.UserID == userID {
			return p, false
		}
	}

	p := domain.NewPlayer(userID, username)
	d.state.Players = append(d.state.Players, p)

	logger.Log.WithFields(logrus.Fields{
		"component": "directory",
		"player_id": userID,
		"username":  username,
	}).Info("New player registered.")
	return p, true
}

// State exposes the shared document for catalog reads and exports.
func (d *Directory) State() *domain.GameState {
	return d.state
}

// Save writes the current document back through the injected store.
func (d *Directory) Save() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.store.Save(d.state); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}

// Reset replaces the document with catalog defaults and persists it.
func (d *Directory) Reset() error {
	d.mu.Lock()
	d.state = domain.DefaultState()
	d.mu.Unlock()
	return d.Save()
}

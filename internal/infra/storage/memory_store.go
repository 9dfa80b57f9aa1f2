package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mrjones-game/life-server/internal/domain/player"
)

// MemoryStore is an in-memory PlayerStore for tests and local runs.
// States are deep-copied through JSON so callers never share pointers
// with the store, matching the isolation a real backend gives.
type MemoryStore struct {
	mu     sync.RWMutex
	states map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{states: make(map[string][]byte)}
}

// Load retrieves a copy of a player's state, or ErrNotFound.
func (m *MemoryStore) Load(_ context.Context, username string) (*player.State, error) {
	m.mu.RLock()
	blob, ok := m.states[username]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}

	var state player.State
	if err := json.Unmarshal(blob, &state); err != nil {
		return nil, err
	}
	state.RecomputeLook()
	return &state, nil
}

// Save stores a copy of a player's state.
func (m *MemoryStore) Save(_ context.Context, username string, state *player.State) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.states[username] = blob
	m.mu.Unlock()
	return nil
}

var _ PlayerStore = (*MemoryStore)(nil)

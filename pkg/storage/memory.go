package storage

import (
	"context"
	"sync"

	"github.com/fadedpez/aetheria/pkg/entities"
)

// MemoryStore keeps the snapshot in process memory; nothing survives a restart
type MemoryStore struct {
	mu    sync.RWMutex
	state *entities.WalletState
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load returns a copy of the stored snapshot
func (m *MemoryStore) Load(ctx context.Context) (*entities.WalletState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == nil {
		return nil, ErrNotFound
	}
	return m.state.Clone(), nil
}

// Save stores a copy of the snapshot
func (m *MemoryStore) Save(ctx context.Context, state *entities.WalletState) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = state.Clone()
	return nil
}

// Close is a no-op
func (m *MemoryStore) Close() error {
	return nil
}

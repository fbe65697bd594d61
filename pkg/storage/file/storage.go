package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/storage"
)

// Storage keeps the wallet snapshot as a JSON document on disk
type Storage struct {
	path string
	mu   sync.Mutex
}

// New creates a file storage rooted at path
func New(path string) (*Storage, error) {
	if path == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	return &Storage{path: path}, nil
}

// Load reads and decodes the snapshot
func (s *Storage) Load(ctx context.Context) (*entities.WalletState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read wallet file: %w", err)
	}

	// Missing fields keep their defaults, matching a partial snapshot merge
	state := entities.NewWalletState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	if state.History == nil {
		state.History = []entities.HistoryEntry{}
	}

	return state, nil
}

// Save writes the snapshot through a temp file and rename so a crash never leaves a torn file
func (s *Storage) Save(ctx context.Context, state *entities.WalletState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal wallet: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".wallet-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to sync file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace wallet file: %w", err)
	}

	return nil
}

// Close is a no-op for file storage
func (s *Storage) Close() error {
	return nil
}

package storage

import (
	"context"
	"errors"

	"github.com/fadedpez/aetheria/pkg/entities"
)

// SlotKey names the single persisted wallet snapshot
const SlotKey = "aetheria_user"

// Common storage errors
var (
	ErrNotFound = errors.New("wallet snapshot not found")
	ErrCorrupt  = errors.New("wallet snapshot is corrupt")
)

// Store is a durable slot holding the serialized wallet snapshot
type Store interface {
	// Load returns the stored snapshot, ErrNotFound when the slot is empty,
	// or an error wrapping ErrCorrupt when it cannot be decoded
	Load(ctx context.Context) (*entities.WalletState, error)

	// Save replaces the stored snapshot
	Save(ctx context.Context, state *entities.WalletState) error

	// Close releases any underlying resources
	Close() error
}

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/storage"
	_ "github.com/mattn/go-sqlite3"
)

// Storage keeps the wallet snapshot as a JSON blob in a SQLite key/value table
type Storage struct {
	db  *sql.DB
	key string
}

// New opens (or creates) the database at dbPath
func New(dbPath string) (*Storage, error) {
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	s, err := NewWithDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewWithDB wraps an already opened database and migrates it to the current schema
func NewWithDB(db *sql.DB) (*Storage, error) {
	if err := NewMigrator(db, migrationFiles).MigrateUp(context.Background()); err != nil {
		return nil, err
	}
	return &Storage{db: db, key: storage.SlotKey}, nil
}

// Load reads the snapshot blob
func (s *Storage) Load(ctx context.Context) (*entities.WalletState, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, s.key).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("error reading wallet slot: %w", err)
	}

	state := entities.NewWalletState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("%w: %v", storage.ErrCorrupt, err)
	}
	if state.History == nil {
		state.History = []entities.HistoryEntry{}
	}

	return state, nil
}

// Save upserts the snapshot blob
func (s *Storage) Save(ctx context.Context, state *entities.WalletState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error marshaling wallet: %w", err)
	}

	query := `
		INSERT INTO slots (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	formattedTime := time.Now().UTC().Format("2006-01-02 15:04:05")
	if _, err := s.db.ExecContext(ctx, query, s.key, data, formattedTime); err != nil {
		return fmt.Errorf("error saving wallet slot: %w", err)
	}

	return nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	return s.db.Close()
}

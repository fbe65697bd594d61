package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/storage"
	"github.com/stretchr/testify/suite"
)

type StorageTestSuite struct {
	suite.Suite
	tempDir string
	storage *Storage
}

func TestStorage(t *testing.T) {
	suite.Run(t, new(StorageTestSuite))
}

func (s *StorageTestSuite) SetupTest() {
	s.tempDir = s.T().TempDir()

	st, err := New(filepath.Join(s.tempDir, "nested", "aetheria_user.json"))
	s.Require().NoError(err)
	s.storage = st
}

func (s *StorageTestSuite) TestLoadEmptySlot() {
	_, err := s.storage.Load(context.Background())

	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *StorageTestSuite) TestSaveAndLoad() {
	ctx := context.Background()
	bonusAt := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)
	state := entities.NewWalletState()
	state.Credits = 42
	state.Streak = 4
	state.LastBonusAt = &bonusAt
	state.SoundEnabled = false
	state.History = append(state.History, entities.HistoryEntry{
		ID:        "entry-1",
		Timestamp: bonusAt,
		Kind:      entities.KindDream,
		Summary:   "Flying over a silver sea",
	})

	s.Require().NoError(s.storage.Save(ctx, state))

	loaded, err := s.storage.Load(ctx)
	s.Require().NoError(err)
	s.Equal(int64(42), loaded.Credits)
	s.Equal(int64(4), loaded.Streak)
	s.Require().NotNil(loaded.LastBonusAt)
	s.True(bonusAt.Equal(*loaded.LastBonusAt))
	s.False(loaded.SoundEnabled)
	s.True(loaded.HapticEnabled)
	s.Require().Len(loaded.History, 1)
	s.Equal(entities.KindDream, loaded.History[0].Kind)
}

func (s *StorageTestSuite) TestSaveOverwrites() {
	ctx := context.Background()
	first := entities.NewWalletState()
	first.Credits = 10
	second := entities.NewWalletState()
	second.Credits = 99

	s.Require().NoError(s.storage.Save(ctx, first))
	s.Require().NoError(s.storage.Save(ctx, second))

	loaded, err := s.storage.Load(ctx)
	s.Require().NoError(err)
	s.Equal(int64(99), loaded.Credits)

	entries, err := os.ReadDir(filepath.Dir(s.storage.path))
	s.Require().NoError(err)
	s.Len(entries, 1, "temp files should not be left behind")
}

func (s *StorageTestSuite) TestLoadCorrupt() {
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.storage.path), 0755))
	s.Require().NoError(os.WriteFile(s.storage.path, []byte("{not json"), 0644))

	_, err := s.storage.Load(context.Background())

	s.ErrorIs(err, storage.ErrCorrupt)
}

func (s *StorageTestSuite) TestLoadPartialKeepsDefaults() {
	s.Require().NoError(os.MkdirAll(filepath.Dir(s.storage.path), 0755))
	s.Require().NoError(os.WriteFile(s.storage.path, []byte(`{"credits": 7}`), 0644))

	loaded, err := s.storage.Load(context.Background())

	s.Require().NoError(err)
	s.Equal(int64(7), loaded.Credits)
	s.Equal(entities.DefaultStreak, loaded.Streak)
	s.True(loaded.SoundEnabled)
	s.NotNil(loaded.History)
}

func (s *StorageTestSuite) TestNewRequiresPath() {
	_, err := New("")
	s.Error(err)
}

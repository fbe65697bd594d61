package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fadedpez/aetheria/pkg/entities"
	"github.com/fadedpez/aetheria/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type SQLiteStorageTestSuite struct {
	suite.Suite
	storage *Storage
}

func TestSQLiteStorage(t *testing.T) {
	suite.Run(t, new(SQLiteStorageTestSuite))
}

func (s *SQLiteStorageTestSuite) SetupTest() {
	st, err := New(filepath.Join(s.T().TempDir(), "db", "aetheria.db"))
	s.Require().NoError(err)
	s.storage = st
}

func (s *SQLiteStorageTestSuite) TearDownTest() {
	s.storage.Close()
}

func (s *SQLiteStorageTestSuite) TestLoadEmptySlot() {
	_, err := s.storage.Load(context.Background())
	s.ErrorIs(err, storage.ErrNotFound)
}

func (s *SQLiteStorageTestSuite) TestSaveAndLoad() {
	ctx := context.Background()
	state := entities.NewWalletState()
	state.Credits = 130
	state.HasSeenTutorial = true
	state.History = append(state.History, entities.HistoryEntry{ID: "a", Kind: entities.KindAstral, Summary: "Etheric plane"})

	s.Require().NoError(s.storage.Save(ctx, state))
	state.Credits = 5
	s.Require().NoError(s.storage.Save(ctx, state))

	loaded, err := s.storage.Load(ctx)
	s.Require().NoError(err)
	s.Equal(int64(5), loaded.Credits)
	s.True(loaded.HasSeenTutorial)
	s.Len(loaded.History, 1)
}

func newMockedStorage(t *testing.T) (*Storage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	expectMigrations(mock)
	st, err := NewWithDB(db)
	require.NoError(t, err)
	return st, mock
}

func TestLoad_QueryError(t *testing.T) {
	st, mock := newMockedStorage(t)
	mock.ExpectQuery("SELECT value FROM slots").
		WithArgs(storage.SlotKey).
		WillReturnError(sql.ErrConnDone)

	_, err := st.Load(context.Background())

	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoad_CorruptBlob(t *testing.T) {
	st, mock := newMockedStorage(t)
	mock.ExpectQuery("SELECT value FROM slots").
		WithArgs(storage.SlotKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("garbage")))

	_, err := st.Load(context.Background())

	assert.ErrorIs(t, err, storage.ErrCorrupt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_ExecError(t *testing.T) {
	st, mock := newMockedStorage(t)
	mock.ExpectExec("INSERT INTO slots").
		WithArgs(storage.SlotKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(sql.ErrTxDone)

	err := st.Save(context.Background(), entities.NewWalletState())

	assert.ErrorIs(t, err, sql.ErrTxDone)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func expectMigrations(mock sqlmock.Sqlmock) {
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS slots").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO schema_migrations").
		WithArgs("001", "create slots").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
}

func TestNewWithDB_MigrationTableError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnError(sql.ErrConnDone)

	_, err = NewWithDB(db)

	assert.ErrorContains(t, err, "error creating migrations table")
}

func TestNewWithDB_MigrationRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").WillReturnRows(sqlmock.NewRows([]string{"version"}))
	mock.ExpectBegin()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS slots").WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	_, err = NewWithDB(db)

	assert.ErrorContains(t, err, "error applying migration 001")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewWithDB_SkipsAppliedMigrations(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS schema_migrations").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT version FROM schema_migrations").
		WillReturnRows(sqlmock.NewRows([]string{"version"}).AddRow("001"))

	_, err = NewWithDB(db)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func (s *SQLiteStorageTestSuite) TestReopenKeepsData() {
	ctx := context.Background()
	dir := s.T().TempDir()
	path := filepath.Join(dir, "aetheria.db")

	first, err := New(path)
	s.Require().NoError(err)
	state := entities.NewWalletState()
	state.Credits = 77
	s.Require().NoError(first.Save(ctx, state))
	s.Require().NoError(first.Close())

	second, err := New(path)
	s.Require().NoError(err)
	defer second.Close()
	loaded, err := second.Load(ctx)
	s.Require().NoError(err)
	s.Equal(int64(77), loaded.Credits)
}

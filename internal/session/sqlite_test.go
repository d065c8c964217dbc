package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/internal/common"
	"salonbook/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	u := &models.User{Phone: "0900000000", Password: "abc123", FullName: "Nguyen Van A"}
	require.NoError(t, s.Save(ctx, u))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestSave_ReplacesPriorSession(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &models.User{Phone: "111", FullName: "First"}))
	require.NoError(t, s.Save(ctx, &models.User{Phone: "222", FullName: "Second"}))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "222", got.Phone)
	assert.Equal(t, "Second", got.FullName)

	// only one row may ever exist
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM session`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestLoad_AbsentSession(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)

	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestClear_ThenLoadIsAbsent(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, &models.User{Phone: "0900000000"}))
	require.NoError(t, s.Clear(ctx))

	_, err := s.Load(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestClear_AbsentSessionIsNoop(t *testing.T) {
	db := setupDB(t)
	s := NewSQLiteStore(db)

	require.NoError(t, s.Clear(context.Background()))
}

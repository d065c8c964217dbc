package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"salonbook/internal/common"
	"salonbook/internal/dbx"
	"salonbook/internal/models"
)

// SQLiteStore implements Store on top of a local SQLite key/value table.
type SQLiteStore struct {
	db dbx.DBTX
}

// NewSQLiteStore returns a new SQLiteStore bound to the given DBTX.
func NewSQLiteStore(db dbx.DBTX) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save serializes the user to JSON and upserts it under the fixed key.
func (s *SQLiteStore) Save(ctx context.Context, user *models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}

	query := `INSERT INTO session (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	_, err = s.db.ExecContext(ctx, query, userKey, data)
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Load returns the stored user, or common.ErrorNotFound when no session exists.
func (s *SQLiteStore) Load(ctx context.Context) (*models.User, error) {
	query := `SELECT value FROM session WHERE key = ?`
	row := s.db.QueryRowContext(ctx, query, userKey)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	user := &models.User{}
	if err := json.Unmarshal(data, user); err != nil {
		return nil, fmt.Errorf("failed to deserialize user: %w", err)
	}
	return user, nil
}

// Clear removes the session key. Removing an absent key is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context) error {
	query := `DELETE FROM session WHERE key = ?`
	if _, err := s.db.ExecContext(ctx, query, userKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

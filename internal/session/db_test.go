package session

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonbook/internal/common"
)

func TestInitDatabase_CreatesUsableStore(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	store, err := InitDatabase(ctx, path)
	require.NoError(t, err)
	require.NotNil(t, store)

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestInitDatabase_MigrationFailureReturnsError(t *testing.T) {
	ctx := context.Background()

	// A directory is not a valid database file, so migrating it fails.
	store, err := InitDatabase(ctx, t.TempDir())
	require.Error(t, err)
	assert.Nil(t, store)
}

// Package session persists the logged-in user on the device. The store is
// local only: it is never synchronized with the remote store and is not
// itself authentication, just a cached copy of the matched user record.
package session

import (
	"context"

	"salonbook/internal/models"
)

// userKey is the single fixed key the user record lives under.
// At most one session exists at a time; writing replaces it.
const userKey = "user"

// Store describes session persistence operations.
//
// Contract:
//   - Save: overwrites any prior session with the given user.
//   - Load: returns the stored user, or common.ErrorNotFound when absent.
//   - Clear: removes the session; clearing an absent session is not an error.
type Store interface {
	Save(ctx context.Context, user *models.User) error
	Load(ctx context.Context) (*models.User, error)
	Clear(ctx context.Context) error
}

package users

import (
	"context"

	"salonbook/internal/models"
)

// Repository describes read access to the remote users collection.
// Accounts are created out-of-band; there is no registration flow.
type Repository interface {
	// FindByCredentials returns the first user whose phone and password both
	// match exactly (case-sensitive, plain text). The match order is the
	// store's enumeration order and must be treated as non-deterministic.
	// Returns common.ErrorNotFound when nothing matches.
	FindByCredentials(ctx context.Context, phone, password string) (*models.User, error)
}

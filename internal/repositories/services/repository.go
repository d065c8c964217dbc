package services

import (
	"context"

	"salonbook/internal/models"
)

// Repository describes CRUD operations against the remote services
// collection. Each call is one independent round trip; there is no
// batching and no transaction spanning calls.
type Repository interface {
	// GetAll returns every record in the collection in the store's
	// enumeration order, which is not guaranteed stable across calls.
	GetAll(ctx context.Context) ([]models.Service, error)

	// Create inserts the record and fills in the store-assigned id.
	Create(ctx context.Context, svc *models.Service) error

	// StampID writes the assigned id back into the record's own self_id
	// column, the denormalized self-reference every created record carries.
	StampID(ctx context.Context, id string) error

	// UpdateNamePrice overwrites only the name and price of the record.
	// Returns common.ErrorNotFound when the id does not exist.
	UpdateNamePrice(ctx context.Context, id, name, price string) error

	// DeleteByID removes the record. Deleting a missing id is not an error.
	DeleteByID(ctx context.Context, id string) error
}

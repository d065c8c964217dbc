package users

import (
	"context"
	"sync"

	"salonbook/internal/common"
	"salonbook/internal/models"
)

// InMemoryRepository keeps the users collection in memory. It backs unit
// tests and demos; the match order is insertion order, which shows why the
// tie-break for duplicate credentials is treated as non-deterministic.
type InMemoryRepository struct {
	mu    sync.RWMutex
	users []models.User
}

func NewInMemoryRepository(seed ...models.User) *InMemoryRepository {
	return &InMemoryRepository{users: append([]models.User(nil), seed...)}
}

func (r *InMemoryRepository) FindByCredentials(ctx context.Context, phone, password string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.users {
		if r.users[i].Phone == phone && r.users[i].Password == password {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, common.ErrorNotFound
}

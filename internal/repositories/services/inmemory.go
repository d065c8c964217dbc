package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"salonbook/internal/common"
	"salonbook/internal/models"
)

// InMemoryRepository keeps the services collection in memory, in insertion
// order. It backs unit tests and demos as a drop-in store substitute.
type InMemoryRepository struct {
	mu    sync.Mutex
	items []models.Service
}

func NewInMemoryRepository(seed ...models.Service) *InMemoryRepository {
	return &InMemoryRepository{items: append([]models.Service(nil), seed...)}
}

func (r *InMemoryRepository) GetAll(ctx context.Context) ([]models.Service, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Service(nil), r.items...), nil
}

func (r *InMemoryRepository) Create(ctx context.Context, svc *models.Service) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	svc.ID = uuid.NewString()
	cp := *svc
	cp.SelfID = ""
	r.items = append(r.items, cp)
	return nil
}

func (r *InMemoryRepository) StampID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].SelfID = id
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *InMemoryRepository) UpdateNamePrice(ctx context.Context, id, name, price string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Name = name
			r.items[i].Price = price
			return nil
		}
	}
	return common.ErrorNotFound
}

func (r *InMemoryRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	// deleting a missing record is not an error
	return nil
}

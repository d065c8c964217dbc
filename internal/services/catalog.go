package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"salonbook/internal/common"
	"salonbook/internal/logging"
	"salonbook/internal/models"
	srepo "salonbook/internal/repositories/services"
)

// nowFn is a test seam for time.Now.
var nowFn = time.Now

// createSlot is the in-flight key shared by all creations; a record being
// created has no identity yet.
const createSlot = "create"

// CatalogService mediates every list/add/update/delete between the UI and
// the remote services collection. Each operation is one independent round
// trip; the local cache is patched only after a confirmed success, so a
// failed call leaves it exactly as it was.
type CatalogService interface {
	// List reads the whole collection and replaces the cache on success.
	List(ctx context.Context) ([]models.Service, error)

	// Create validates the input, writes the record with creator and
	// creation time stamped, lets the store assign the identity, stamps
	// that identity back into the record with a second write, and appends
	// the fully-formed record to the cache.
	Create(ctx context.Context, name, price, creatorName string) (*models.Service, error)

	// Update overwrites only name and price of the record, then patches
	// the cached entry by identity.
	Update(ctx context.Context, id, name, price string) error

	// Delete removes the record by identity, then drops the cached entry.
	// Deleting an identity the store no longer has is logged and treated
	// as success.
	Delete(ctx context.Context, id string) error

	// Cached returns the current client-side copy of the list without a
	// round trip. It may diverge from the store until the next List.
	Cached() []models.Service
}

type catalogService struct {
	repo     srepo.Repository
	logger   logging.Logger
	cache    listCache
	inflight inflightGuard
}

// NewCatalogService constructs a CatalogService bound to the given repository.
func NewCatalogService(repo srepo.Repository, logger logging.Logger) CatalogService {
	return &catalogService{repo: repo, logger: logger}
}

func (s *catalogService) List(ctx context.Context) ([]models.Service, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error(ctx, "listing services failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorRemote, err)
	}

	s.cache.Replace(items)
	return s.cache.Snapshot(), nil
}

func (s *catalogService) Create(ctx context.Context, name, price, creatorName string) (*models.Service, error) {
	if name == "" || price == "" {
		return nil, fmt.Errorf("%w: enter both name and price", common.ErrorValidation)
	}
	if creatorName == "" {
		creatorName = "Unknown"
	}

	if !s.inflight.tryAcquire(createSlot) {
		return nil, common.ErrorBusy
	}
	defer s.inflight.release(createSlot)

	svc := &models.Service{
		Name:      name,
		Price:     price,
		Creator:   creatorName,
		CreatedAt: nowFn().UTC().Format(time.RFC3339),
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		s.logger.Error(ctx, "creating service failed", "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorRemote, err)
	}

	// Second write: the record carries its own identity.
	if err := s.repo.StampID(ctx, svc.ID); err != nil {
		s.logger.Error(ctx, "stamping service id failed", "id", svc.ID, "error", err)
		return nil, fmt.Errorf("%w: %v", common.ErrorRemote, err)
	}
	svc.SelfID = svc.ID

	s.cache.Append(*svc)
	return svc, nil
}

func (s *catalogService) Update(ctx context.Context, id, name, price string) error {
	if !s.inflight.tryAcquire(id) {
		return common.ErrorBusy
	}
	defer s.inflight.release(id)

	if err := s.repo.UpdateNamePrice(ctx, id, name, price); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return err
		}
		s.logger.Error(ctx, "updating service failed", "id", id, "error", err)
		return fmt.Errorf("%w: %v", common.ErrorRemote, err)
	}

	s.cache.Patch(id, name, price)
	return nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	if !s.inflight.tryAcquire(id) {
		return common.ErrorBusy
	}
	defer s.inflight.release(id)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			// already gone, treat the deletion as done
			s.logger.Warn(ctx, "deleting missing service", "id", id)
		} else {
			s.logger.Error(ctx, "deleting service failed", "id", id, "error", err)
			return fmt.Errorf("%w: %v", common.ErrorRemote, err)
		}
	}

	s.cache.Remove(id)
	return nil
}

func (s *catalogService) Cached() []models.Service {
	return s.cache.Snapshot()
}

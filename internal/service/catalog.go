package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ovenside/storefront-api/internal/core"
	"github.com/ovenside/storefront-api/internal/domain/model"
	apperrors "github.com/ovenside/storefront-api/internal/errors"
	"github.com/ovenside/storefront-api/internal/observability/statsd"
)

// CatalogServiceOptions groups dependencies for CatalogService.
type CatalogServiceOptions struct {
	API     core.CatalogAPI // Required: remote catalog backend
	Logger  *slog.Logger    // Optional: structured logger
	Metrics statsd.Sink     // Optional: request timing
}

// CatalogService maintains the local mirror of the remote catalog and applies
// admin mutations write-through: validate first, then the network call, and
// only on success update the mirror. A failed call leaves the mirror exactly
// as it was.
type CatalogService struct {
	api     core.CatalogAPI
	logger  *slog.Logger
	metrics statsd.Sink

	mu    sync.RWMutex
	items []model.CatalogItem
}

// NewCatalogService constructs a CatalogService with an empty mirror. Call
// Refresh to populate it.
func NewCatalogService(opts CatalogServiceOptions) *CatalogService {
	if opts.API == nil {
		panic("CatalogAPI is required")
	}
	return &CatalogService{
		api:     opts.API,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// Refresh replaces the mirror with the backend's current list. On failure
// the mirror is left untouched and the error is returned.
func (s *CatalogService) Refresh(ctx context.Context) ([]model.CatalogItem, error) {
	start := time.Now()
	items, err := s.api.List(ctx)
	if s.metrics != nil {
		s.metrics.Timing("catalog.list", time.Since(start))
	}
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "catalog refresh failed", "error", err)
		}
		return nil, apperrors.Unavailable("fetch catalog", err)
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	return s.Items(), nil
}

// Items returns a copy of the mirror.
func (s *CatalogService) Items() []model.CatalogItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

// Create validates the request, creates the item on the backend, and appends
// the backend's record (with its assigned ID) to the mirror.
func (s *CatalogService) Create(ctx context.Context, req model.CreateCatalogItemRequest) (*model.CatalogItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.api.Create(ctx, req.Item())
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "catalog create failed", "name", req.Name, "error", err)
		}
		return nil, apperrors.Unavailable("create catalog item", err)
	}

	s.mu.Lock()
	s.items = append(s.items, *created)
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.Count("catalog.created", 1)
	}
	if s.logger != nil {
		s.logger.InfoContext(ctx, "catalog item created", "id", created.ID, "name", created.Name)
	}
	return created, nil
}

// Update validates the request, replaces the record on the backend, and
// swaps the mirror entry matching the ID.
func (s *CatalogService) Update(ctx context.Context, id int, req model.UpdateCatalogItemRequest) (*model.CatalogItem, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.api.Update(ctx, req.Item(id))
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "catalog update failed", "id", id, "error", err)
		}
		return nil, apperrors.Unavailable("update catalog item", err)
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = *updated
			break
		}
	}
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.InfoContext(ctx, "catalog item updated", "id", id)
	}
	return updated, nil
}

// Delete removes the record on the backend, then drops it from the mirror.
func (s *CatalogService) Delete(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, id); err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "catalog delete failed", "id", id, "error", err)
		}
		return apperrors.Unavailable("delete catalog item", err)
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	s.items = kept
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.InfoContext(ctx, "catalog item deleted", "id", id)
	}
	return nil
}

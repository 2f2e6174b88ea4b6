package repository

import (
	"context"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

// FilterRepository persists the active search filters.
type FilterRepository struct {
	store store.Store
}

func NewFilterRepository(s store.Store) *FilterRepository {
	return &FilterRepository{store: s}
}

// GetFilters returns the stored filters, or the zero value (no restrictions)
// when none are saved.
func (r *FilterRepository) GetFilters(ctx context.Context) models.SearchFilters {
	return store.ReadJSON(ctx, r.store, store.KeySearchFilters, models.SearchFilters{})
}

// SaveFilters normalizes and stores f.
func (r *FilterRepository) SaveFilters(ctx context.Context, f models.SearchFilters) error {
	f.Normalize()
	return store.WriteJSON(ctx, r.store, store.KeySearchFilters, f)
}

package repository

import (
	"context"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

// CurrentProfileRepository is the single-slot handoff for "which candidate is
// active right now". Any screen may overwrite it, so callers read it right
// after the relevant navigation and never assume it survives unrelated ones.
type CurrentProfileRepository struct {
	store store.Store
}

func NewCurrentProfileRepository(s store.Store) *CurrentProfileRepository {
	return &CurrentProfileRepository{store: s}
}

func (r *CurrentProfileRepository) Save(ctx context.Context, p *models.CandidateProfile) error {
	return store.WriteJSON(ctx, r.store, store.KeyCurrentProfile, p)
}

func (r *CurrentProfileRepository) Get(ctx context.Context) *models.CandidateProfile {
	return store.ReadJSON[*models.CandidateProfile](ctx, r.store, store.KeyCurrentProfile, nil)
}

func (r *CurrentProfileRepository) Clear(ctx context.Context) error {
	return r.store.Delete(ctx, store.KeyCurrentProfile)
}

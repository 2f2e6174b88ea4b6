package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/domain"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

// MatchRepository keeps the match list under one key.
type MatchRepository struct {
	store store.Store
}

func NewMatchRepository(s store.Store) *MatchRepository {
	return &MatchRepository{store: s}
}

func (r *MatchRepository) GetMatches(ctx context.Context) []models.Match {
	return store.ReadJSON(ctx, r.store, store.KeyMatches, []models.Match{})
}

func (r *MatchRepository) SaveMatches(ctx context.Context, list []models.Match) error {
	return store.WriteJSON(ctx, r.store, store.KeyMatches, list)
}

// AddMatch records a new match for the candidate and returns it.
func (r *MatchRepository) AddMatch(ctx context.Context, p *models.CandidateProfile) (*models.Match, error) {
	m := models.Match{
		ID:        uuid.NewString(),
		ProfileID: p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Image:     p.Image,
		Section:   domain.MatchSectionToday,
	}
	list := r.GetMatches(ctx)
	if err := r.SaveMatches(ctx, append([]models.Match{m}, list...)); err != nil {
		return nil, err
	}
	return &m, nil
}

// Find returns the match with the given id, or nil.
func (r *MatchRepository) Find(ctx context.Context, id string) *models.Match {
	for _, m := range r.GetMatches(ctx) {
		if m.ID == id {
			match := m
			return &match
		}
	}
	return nil
}

// Remove deletes the match with the given id; other entries are untouched.
func (r *MatchRepository) Remove(ctx context.Context, id string) error {
	list := r.GetMatches(ctx)
	kept := list[:0]
	for _, m := range list {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return r.SaveMatches(ctx, kept)
}

// LikeRepository keeps liked-candidate snapshots for the likes screen.
type LikeRepository struct {
	store store.Store

	Now func() time.Time
}

func NewLikeRepository(s store.Store) *LikeRepository {
	return &LikeRepository{store: s, Now: time.Now}
}

func (r *LikeRepository) GetLikes(ctx context.Context) []models.Like {
	return store.ReadJSON(ctx, r.store, store.KeyLikesData, []models.Like{})
}

// AddLike appends a snapshot of the liked candidate.
func (r *LikeRepository) AddLike(ctx context.Context, p *models.CandidateProfile) error {
	likes := r.GetLikes(ctx)
	likes = append(likes, models.Like{
		ProfileID: p.ID,
		Name:      p.Name,
		Age:       p.Age,
		Image:     p.Image,
		LikedAt:   r.Now().Unix(),
	})
	return store.WriteJSON(ctx, r.store, store.KeyLikesData, likes)
}

package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
)

// Resolver produces a fresh location reading. Implementations may call a
// geolocation service or simply re-confirm the stored coordinates.
type Resolver interface {
	Resolve(ctx context.Context) (*models.Location, error)
}

// LocationRefresher periodically refreshes the profile location. Best-effort:
// failures are logged and dropped, no retry or backoff.
type LocationRefresher struct {
	profiles *repository.ProfileRepository
	resolver Resolver
	interval time.Duration
	log      *zap.Logger
}

func NewLocationRefresher(profiles *repository.ProfileRepository, resolver Resolver, interval time.Duration, log *zap.Logger) *LocationRefresher {
	return &LocationRefresher{profiles: profiles, resolver: resolver, interval: interval, log: log}
}

// Run blocks until ctx is done, refreshing on every tick.
func (r *LocationRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refresh(ctx)
		}
	}
}

func (r *LocationRefresher) refresh(ctx context.Context) {
	loc, err := r.resolver.Resolve(ctx)
	if err != nil {
		r.log.Debug("location refresh failed", zap.Error(err))
		return
	}
	if loc == nil {
		return
	}
	if _, err := r.profiles.UpdateProfile(ctx, &models.ProfileUpdate{Location: loc}); err != nil {
		r.log.Debug("location update failed", zap.Error(err))
	}
}

// StoredLocationResolver re-confirms whatever location the profile already
// holds. Stands in until a real geolocation collaborator is wired.
type StoredLocationResolver struct {
	profiles *repository.ProfileRepository
}

func NewStoredLocationResolver(profiles *repository.ProfileRepository) *StoredLocationResolver {
	return &StoredLocationResolver{profiles: profiles}
}

func (s *StoredLocationResolver) Resolve(ctx context.Context) (*models.Location, error) {
	rec := s.profiles.GetProfile(ctx)
	if rec == nil {
		return nil, nil
	}
	return rec.Location, nil
}

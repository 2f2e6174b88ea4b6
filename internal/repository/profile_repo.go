package repository

import (
	"context"
	"errors"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/domain"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

var (
	ErrUnderage       = errors.New("age must be 18 or older")
	ErrUnknownCatalog = errors.New("value not in catalog")
)

// ProfileRepository persists the user's own profile as one JSON blob.
type ProfileRepository struct {
	store store.Store
}

func NewProfileRepository(s store.Store) *ProfileRepository {
	return &ProfileRepository{store: s}
}

// GetProfile returns the stored record or nil.
func (r *ProfileRepository) GetProfile(ctx context.Context) *models.ProfileRecord {
	return store.ReadJSON[*models.ProfileRecord](ctx, r.store, store.KeyProfileData, nil)
}

// SaveProfile overwrites the record. Callers are responsible for spreading
// prior state; no merge happens here.
func (r *ProfileRepository) SaveProfile(ctx context.Context, rec *models.ProfileRecord) error {
	if err := validateProfile(rec); err != nil {
		return err
	}
	normalizePhotos(rec)
	return store.WriteJSON(ctx, r.store, store.KeyProfileData, rec)
}

// UpdateProfile reads the current record, shallow-merges the non-nil fields
// of u, and writes back. Returns nil without error when no record exists yet.
func (r *ProfileRepository) UpdateProfile(ctx context.Context, u *models.ProfileUpdate) (*models.ProfileRecord, error) {
	rec := r.GetProfile(ctx)
	if rec == nil {
		return nil, nil
	}
	u.Apply(rec)
	if err := r.SaveProfile(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func validateProfile(rec *models.ProfileRecord) error {
	if rec.Age < 18 {
		return ErrUnderage
	}
	catalogs := []struct {
		v       string
		catalog []string
	}{
		{rec.Purpose, domain.Purposes},
		{rec.Education, domain.Educations},
		{rec.Build, domain.Builds},
		{rec.Orientation, domain.Orientations},
		{rec.Alcohol, domain.AlcoholOptions},
		{rec.Smoking, domain.SmokingOptions},
		{rec.Kids, domain.KidsOptions},
		{rec.Living, domain.LivingConditions},
		{rec.Income, domain.IncomeLevels},
	}
	for _, c := range catalogs {
		if !domain.InCatalog(c.v, c.catalog) {
			return ErrUnknownCatalog
		}
	}
	for _, tag := range rec.Interests {
		if !domain.InCatalog(tag, domain.Interests) {
			return ErrUnknownCatalog
		}
	}
	return nil
}

// normalizePhotos keeps at most one primary photo. The first marked photo
// wins; with none marked, the first upload acts as primary on read.
func normalizePhotos(rec *models.ProfileRecord) {
	seen := false
	for i := range rec.Photos {
		if rec.Photos[i].Primary {
			if seen {
				rec.Photos[i].Primary = false
			}
			seen = true
		}
	}
}

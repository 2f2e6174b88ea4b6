package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

func TestFilterRepository_DefaultIsUnrestricted(t *testing.T) {
	r := NewFilterRepository(store.NewMemoryStore())
	f := r.GetFilters(context.Background())
	assert.Equal(t, models.SearchFilters{}, f)
}

func TestFilterRepository_SaveNormalizes(t *testing.T) {
	r := NewFilterRepository(store.NewMemoryStore())
	ctx := context.Background()

	require.NoError(t, r.SaveFilters(ctx, models.SearchFilters{AgeMin: 35, AgeMax: 20}))
	f := r.GetFilters(ctx)
	assert.Equal(t, 35, f.AgeMin)
	assert.Equal(t, 35, f.AgeMax)
}

func TestFilterRepository_RoundTrip(t *testing.T) {
	r := NewFilterRepository(store.NewMemoryStore())
	ctx := context.Background()

	in := models.SearchFilters{AgeMin: 25, AgeMax: 30, MaxDistanceKm: 5, Purpose: "casual"}
	require.NoError(t, r.SaveFilters(ctx, in))
	assert.Equal(t, in, r.GetFilters(ctx))
}

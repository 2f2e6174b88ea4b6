package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/domain"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

func TestMatchRepository_AddPrependsAndFills(t *testing.T) {
	r := NewMatchRepository(store.NewMemoryStore())
	ctx := context.Background()

	first, err := r.AddMatch(ctx, candidate(1))
	require.NoError(t, err)
	second, err := r.AddMatch(ctx, candidate(2))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, domain.MatchSectionToday, first.Section)

	list := r.GetMatches(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, 2, list[0].ProfileID)
}

func TestMatchRepository_FindAndRemove(t *testing.T) {
	r := NewMatchRepository(store.NewMemoryStore())
	ctx := context.Background()

	m, err := r.AddMatch(ctx, candidate(5))
	require.NoError(t, err)
	keep, err := r.AddMatch(ctx, candidate(6))
	require.NoError(t, err)

	assert.NotNil(t, r.Find(ctx, m.ID))
	assert.Nil(t, r.Find(ctx, "missing"))

	require.NoError(t, r.Remove(ctx, m.ID))
	assert.Nil(t, r.Find(ctx, m.ID))
	assert.NotNil(t, r.Find(ctx, keep.ID))
}

func TestMatchRepository_RemoveMissingIsNoop(t *testing.T) {
	r := NewMatchRepository(store.NewMemoryStore())
	assert.NoError(t, r.Remove(context.Background(), "nope"))
}

func TestLikeRepository_AddAppendsSnapshot(t *testing.T) {
	r := NewLikeRepository(store.NewMemoryStore())
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	r.Now = func() time.Time { return now }

	require.NoError(t, r.AddLike(ctx, candidate(3)))
	require.NoError(t, r.AddLike(ctx, candidate(4)))

	likes := r.GetLikes(ctx)
	require.Len(t, likes, 2)
	assert.Equal(t, 3, likes[0].ProfileID)
	assert.Equal(t, now.Unix(), likes[0].LikedAt)
}

package feed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

func newFeed(t *testing.T) *Feed {
	t.Helper()
	filters := repository.NewFilterRepository(store.NewMemoryStore())
	return NewFeed(NewGenerator(filters))
}

func TestFeed_AlwaysThreeVisible(t *testing.T) {
	f := newFeed(t)
	ctx := context.Background()

	got := f.Candidates(ctx)
	require.Len(t, got, 3)

	got = f.Remove(ctx, got[0].ID)
	assert.Len(t, got, 3)
}

func TestFeed_RemovedCandidateNeverReturns(t *testing.T) {
	f := newFeed(t)
	ctx := context.Background()

	seen := map[int]bool{}
	current := f.Candidates(ctx)
	for i := 0; i < 30; i++ {
		victim := current[0].ID
		assert.False(t, seen[victim], "sequence id %d reused", victim)
		seen[victim] = true
		current = f.Remove(ctx, victim)
		for _, p := range current {
			assert.NotEqual(t, victim, p.ID)
		}
	}
}

func TestFeed_CollapseToOneRegeneratesAll(t *testing.T) {
	f := newFeed(t)
	ctx := context.Background()

	first := f.Candidates(ctx)
	survivor := first[2]

	// put the window into the degraded two-candidate state a pending refill
	// would leave behind, then swipe one away
	f.mu.Lock()
	f.visible = []models.CandidateProfile{first[1], survivor}
	f.mu.Unlock()

	got := f.Remove(ctx, first[1].ID)
	require.Len(t, got, 3)
	for _, p := range got {
		assert.NotEqual(t, survivor.ID, p.ID, "survivor must be regenerated too")
		assert.Greater(t, p.ID, survivor.ID)
	}
}

func TestFeed_FindOnlySeesVisible(t *testing.T) {
	f := newFeed(t)
	ctx := context.Background()

	got := f.Candidates(ctx)
	assert.NotNil(t, f.Find(got[1].ID))
	assert.Nil(t, f.Find(9999))

	f.Remove(ctx, got[1].ID)
	assert.Nil(t, f.Find(got[1].ID))
}

func TestFeed_ResetDiscardsWindow(t *testing.T) {
	f := newFeed(t)
	ctx := context.Background()

	before := f.Candidates(ctx)
	f.Reset()
	after := f.Candidates(ctx)

	require.Len(t, after, 3)
	for _, p := range after {
		assert.Greater(t, p.ID, before[2].ID)
	}
}

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

func TestPaymentRepository_RoundTrip(t *testing.T) {
	r := NewPaymentRepository(store.NewMemoryStore())
	ctx := context.Background()

	assert.Equal(t, models.PaymentSelection{}, r.Get(ctx))

	require.NoError(t, r.Save(ctx, models.PaymentSelection{Type: "subscription", Method: "ton"}))
	assert.Equal(t, models.PaymentSelection{Type: "subscription", Method: "ton"}, r.Get(ctx))
}

func TestCurrentProfileRepository_SaveGetClear(t *testing.T) {
	r := NewCurrentProfileRepository(store.NewMemoryStore())
	ctx := context.Background()

	assert.Nil(t, r.Get(ctx))

	require.NoError(t, r.Save(ctx, candidate(3)))
	got := r.Get(ctx)
	require.NotNil(t, got)
	assert.Equal(t, 3, got.ID)

	// a later save overwrites the slot
	require.NoError(t, r.Save(ctx, candidate(4)))
	assert.Equal(t, 4, r.Get(ctx).ID)

	require.NoError(t, r.Clear(ctx))
	assert.Nil(t, r.Get(ctx))
}

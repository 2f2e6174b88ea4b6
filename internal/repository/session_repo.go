package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

// SessionRepository holds the authenticated identity and its expiry policy.
type SessionRepository struct {
	store store.Store
	ttl   time.Duration

	// Now is the clock, replaceable in tests.
	Now func() time.Time
}

func NewSessionRepository(s store.Store, ttl time.Duration) *SessionRepository {
	return &SessionRepository{store: s, ttl: ttl, Now: time.Now}
}

// GetIdentity returns the stored identity, or nil when absent, unparsable or
// expired. An expired identity wipes the whole session state as a side
// effect: stale credentials must not leave profile or chat data behind.
func (r *SessionRepository) GetIdentity(ctx context.Context) *models.Identity {
	raw, err := r.store.Get(ctx, store.KeyTelegramUser)
	if err != nil {
		return nil
	}
	var id models.Identity
	if err := json.Unmarshal([]byte(raw), &id); err != nil {
		return nil
	}
	if id.ExpiredAt(r.Now(), r.ttl) {
		_ = r.ClearAll(ctx)
		return nil
	}
	return &id
}

// SaveIdentity overwrites the stored identity unconditionally.
func (r *SessionRepository) SaveIdentity(ctx context.Context, id *models.Identity) error {
	return store.WriteJSON(ctx, r.store, store.KeyTelegramUser, id)
}

// ClearAll removes every session-owned key: a full logout/reset.
func (r *SessionRepository) ClearAll(ctx context.Context) error {
	var firstErr error
	for _, key := range store.AllKeys {
		if err := r.store.Delete(ctx, key); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

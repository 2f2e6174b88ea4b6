package store

import (
	"context"
	"encoding/json"
	"errors"
)

// Storage keys. Every key holds a single JSON-serialized value; absence or a
// parse failure is treated as "no data", never as a fatal error.
const (
	KeyTelegramUser   = "telegram_user"
	KeyProfileData    = "profile_data"
	KeySearchFilters  = "search_filters"
	KeyChatsData      = "chats_data"
	KeyLikesData      = "likes_data"
	KeyConversations  = "conversations_data"
	KeyMatches        = "matches_data"
	KeyCurrentProfile = "current_profile"
	KeyPaymentType    = "payment_type"
	KeyPaymentMethod  = "payment_method"
)

// AllKeys lists every key owned by the session, in the order ClearAll wipes them.
var AllKeys = []string{
	KeyTelegramUser,
	KeyProfileData,
	KeySearchFilters,
	KeyChatsData,
	KeyLikesData,
	KeyConversations,
	KeyMatches,
	KeyCurrentProfile,
	KeyPaymentType,
	KeyPaymentMethod,
}

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// Store is the key-value persistence contract. Implementations are
// single-tenant: one local actor, last-write-wins, no cross-writer ordering.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// ReadJSON reads and unmarshals the value under key. Any failure (missing
// key, backend error, malformed JSON) yields the fallback instead of an
// error, so callers always proceed as if there were simply no data.
func ReadJSON[T any](ctx context.Context, s Store, key string, fallback T) T {
	raw, err := s.Get(ctx, key)
	if err != nil {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	return v
}

// WriteJSON marshals v and stores it under key.
func WriteJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.Set(ctx, key, string(data))
}

package repository

import (
	"context"
	"time"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/domain"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

// ConversationRepository keeps the ordered conversation list under one key.
// Ordering is most-recently-active first; every appended message moves its
// conversation to the front.
type ConversationRepository struct {
	store   store.Store
	current *CurrentProfileRepository

	// Now is the clock, replaceable in tests. Conversation ids are derived
	// from it; two creations in the same millisecond collide, acceptable for
	// a single local actor.
	Now func() time.Time
}

func NewConversationRepository(s store.Store, current *CurrentProfileRepository) *ConversationRepository {
	return &ConversationRepository{store: s, current: current, Now: time.Now}
}

// GetConversations returns the full ordered list; empty on any read trouble.
func (r *ConversationRepository) GetConversations(ctx context.Context) []models.Conversation {
	return store.ReadJSON(ctx, r.store, store.KeyConversations, []models.Conversation{})
}

// SaveConversations overwrites the full list.
func (r *ConversationRepository) SaveConversations(ctx context.Context, list []models.Conversation) error {
	return store.WriteJSON(ctx, r.store, store.KeyConversations, list)
}

// SaveConversation upserts by id: update in place when found, else prepend.
func (r *ConversationRepository) SaveConversation(ctx context.Context, conv models.Conversation) error {
	list := r.GetConversations(ctx)
	for i := range list {
		if list[i].ID == conv.ID {
			list[i] = conv
			return r.SaveConversations(ctx, list)
		}
	}
	return r.SaveConversations(ctx, append([]models.Conversation{conv}, list...))
}

// FindByProfileID returns the conversation embedding the candidate, or nil.
func (r *ConversationRepository) FindByProfileID(ctx context.Context, profileID int) *models.Conversation {
	list := r.GetConversations(ctx)
	for i := range list {
		if list[i].Profile.ID == profileID {
			return &list[i]
		}
	}
	return nil
}

// AddMessage appends msg to the conversation, refreshes the denormalized
// last-message fields, bumps the unread counter, and moves the conversation
// to the front of the list. No-op when the id is unknown: callers create the
// conversation first. Returns the stored message, nil when nothing happened.
func (r *ConversationRepository) AddMessage(ctx context.Context, convID int64, msg models.Message) (*models.Message, error) {
	list := r.GetConversations(ctx)
	for i := range list {
		if list[i].ID != convID {
			continue
		}
		conv := list[i]
		msg.ID = len(conv.Messages) + 1
		if msg.Time == "" {
			msg.Time = r.Now().Format("15:04")
		}
		if msg.Status == "" {
			msg.Status = domain.MessageStatusSent
		}
		conv.Messages = append(conv.Messages, msg)
		if msg.Text != "" {
			conv.LastMessage = msg.Text
		} else {
			conv.LastMessage = domain.LastMessagePlaceholder
		}
		conv.LastActivity = msg.Time
		conv.Unread++
		conv.Read = false

		// move to front
		list = append(list[:i], list[i+1:]...)
		list = append([]models.Conversation{conv}, list...)
		if err := r.SaveConversations(ctx, list); err != nil {
			return nil, err
		}
		return &msg, nil
	}
	return nil, nil
}

// MarkMessageRead flips one message's delivery status to read.
func (r *ConversationRepository) MarkMessageRead(ctx context.Context, convID int64, msgID int) error {
	list := r.GetConversations(ctx)
	for i := range list {
		if list[i].ID != convID {
			continue
		}
		for j := range list[i].Messages {
			if list[i].Messages[j].ID == msgID {
				list[i].Messages[j].Status = domain.MessageStatusRead
				return r.SaveConversations(ctx, list)
			}
		}
	}
	return nil
}

// MarkConversationRead clears the unread counter and sets the read flag.
func (r *ConversationRepository) MarkConversationRead(ctx context.Context, convID int64) error {
	list := r.GetConversations(ctx)
	for i := range list {
		if list[i].ID == convID {
			list[i].Unread = 0
			list[i].Read = true
			return r.SaveConversations(ctx, list)
		}
	}
	return nil
}

// CreateFromCurrent builds a new empty conversation around the
// current-candidate pointer. Returns nil without touching the list when the
// pointer is empty. An existing conversation for the same candidate is
// returned instead of creating a duplicate.
func (r *ConversationRepository) CreateFromCurrent(ctx context.Context, matchID string) (*models.Conversation, error) {
	profile := r.current.Get(ctx)
	if profile == nil {
		return nil, nil
	}
	if existing := r.FindByProfileID(ctx, profile.ID); existing != nil {
		return existing, nil
	}
	conv := models.Conversation{
		ID:       r.Now().UnixMilli(),
		MatchID:  matchID,
		Name:     profile.Name,
		Avatar:   profile.Image,
		Read:     true,
		Profile:  *profile,
		Messages: []models.Message{},
	}
	if err := r.SaveConversation(ctx, conv); err != nil {
		return nil, err
	}
	return &conv, nil
}

// DeleteByMatchID removes the conversation tied to the match.
func (r *ConversationRepository) DeleteByMatchID(ctx context.Context, matchID string) error {
	list := r.GetConversations(ctx)
	kept := list[:0]
	for _, c := range list {
		if c.MatchID != matchID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return r.SaveConversations(ctx, kept)
}

// DeleteByProfileID removes the conversation embedding the candidate.
func (r *ConversationRepository) DeleteByProfileID(ctx context.Context, profileID int) error {
	list := r.GetConversations(ctx)
	kept := list[:0]
	for _, c := range list {
		if c.Profile.ID != profileID {
			kept = append(kept, c)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return r.SaveConversations(ctx, kept)
}

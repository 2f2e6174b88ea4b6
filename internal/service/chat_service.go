package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/domain"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/ws"
)

var ErrEmptyMessage = errors.New("message needs text or an image")

// readDelay is how long after sending a message its delivery status flips
// from sent to read.
const readDelay = 2 * time.Second

// ChatService appends messages and drives the sent-to-read status
// transition, pushing both over the WebSocket hub.
type ChatService struct {
	convs *repository.ConversationRepository
	hub   *ws.Hub
	log   *zap.Logger

	// AfterFunc schedules the delayed status flip; replaceable in tests.
	AfterFunc func(d time.Duration, f func()) *time.Timer
}

func NewChatService(convs *repository.ConversationRepository, hub *ws.Hub, log *zap.Logger) *ChatService {
	return &ChatService{convs: convs, hub: hub, log: log, AfterFunc: time.AfterFunc}
}

// SendMessage appends a self-sent message to the conversation. Returns nil
// when the conversation does not exist; callers create it first.
func (s *ChatService) SendMessage(ctx context.Context, convID int64, text, image string) (*models.Message, error) {
	if text == "" && image == "" {
		return nil, ErrEmptyMessage
	}
	msg, err := s.convs.AddMessage(ctx, convID, models.Message{
		Text:   text,
		Image:  image,
		Sender: domain.SenderSelf,
	})
	if err != nil || msg == nil {
		return msg, err
	}
	s.hub.Broadcast(ws.Event{Type: "message", ConversationID: convID, Payload: msg})

	msgID := msg.ID
	s.AfterFunc(readDelay, func() {
		// Request context is gone by now; the pending transition still
		// completes, mirroring a write that outlives its screen.
		if err := s.convs.MarkMessageRead(context.Background(), convID, msgID); err != nil {
			s.log.Warn("mark message read", zap.Int64("conversation", convID), zap.Error(err))
			return
		}
		s.hub.Broadcast(ws.Event{
			Type:           "status",
			ConversationID: convID,
			Payload:        map[string]any{"message_id": msgID, "status": domain.MessageStatusRead},
		})
	})
	return msg, nil
}

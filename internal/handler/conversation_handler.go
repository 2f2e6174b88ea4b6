package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/service"
)

type ConversationHandler struct {
	convs *repository.ConversationRepository
	chat  *service.ChatService
}

func NewConversationHandler(convs *repository.ConversationRepository, chat *service.ChatService) *ConversationHandler {
	return &ConversationHandler{convs: convs, chat: chat}
}

func (h *ConversationHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"conversations": h.convs.GetConversations(c.Request.Context())})
}

// Create opens a conversation with the current candidate. Re-opening an
// existing conversation returns it instead of duplicating.
func (h *ConversationHandler) Create(c *gin.Context) {
	var req struct {
		MatchID string `json:"match_id"`
	}
	// body is optional; a bare POST opens an unmatched conversation
	_ = c.ShouldBindJSON(&req)
	conv, err := h.convs.CreateFromCurrent(c.Request.Context(), req.MatchID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if conv == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "no current profile to start a conversation with"})
		return
	}
	c.JSON(http.StatusCreated, conv)
}

type SendMessageRequest struct {
	Text  string `json:"text"`
	Image string `json:"image"`
}

// SendMessage appends a message to the conversation and schedules the
// delayed read receipt.
func (h *ConversationHandler) SendMessage(c *gin.Context) {
	convID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	msg, err := h.chat.SendMessage(c.Request.Context(), convID, req.Text, req.Image)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if msg == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "conversation not found"})
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// MarkRead zeroes the unread counter for a conversation.
func (h *ConversationHandler) MarkRead(c *gin.Context) {
	convID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid conversation id"})
		return
	}
	if err := h.convs.MarkConversationRead(c.Request.Context(), convID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

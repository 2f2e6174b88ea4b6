package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
)

type MatchHandler struct {
	matches *repository.MatchRepository
	convs   *repository.ConversationRepository
}

func NewMatchHandler(matches *repository.MatchRepository, convs *repository.ConversationRepository) *MatchHandler {
	return &MatchHandler{matches: matches, convs: convs}
}

func (h *MatchHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"matches": h.matches.GetMatches(c.Request.Context())})
}

// Reject removes a match and every conversation tied to it. Conversations
// are matched by match id first, then by the candidate's profile id to
// cover chats opened before the match was recorded.
func (h *MatchHandler) Reject(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()
	m := h.matches.Find(ctx, id)
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}
	if err := h.convs.DeleteByMatchID(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.convs.DeleteByProfileID(ctx, m.ProfileID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.matches.Remove(ctx, id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/domain"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/feed"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/match"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
)

type FeedHandler struct {
	feed    *feed.Feed
	likes   *repository.LikeRepository
	matches *repository.MatchRepository
	convs   *repository.ConversationRepository
	current *repository.CurrentProfileRepository
	policy  match.Policy
}

func NewFeedHandler(f *feed.Feed, likes *repository.LikeRepository, matches *repository.MatchRepository, convs *repository.ConversationRepository, current *repository.CurrentProfileRepository, policy match.Policy) *FeedHandler {
	return &FeedHandler{feed: f, likes: likes, matches: matches, convs: convs, current: current, policy: policy}
}

// Candidates returns the visible batch of three candidates.
func (h *FeedHandler) Candidates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"candidates": h.feed.Candidates(c.Request.Context())})
}

type SwipeRequest struct {
	ProfileID int    `json:"profile_id" binding:"required"`
	Direction string `json:"direction" binding:"required,oneof=left right"`
}

// Swipe removes the candidate from the feed. A right swipe records a like
// and, when the match policy fires, creates a match plus its conversation.
func (h *FeedHandler) Swipe(c *gin.Context) {
	var req SwipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	candidate := h.feed.Find(req.ProfileID)
	if candidate == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "candidate is not in the current feed"})
		return
	}

	resp := gin.H{"matched": false}
	if req.Direction == domain.SwipeRight {
		if err := h.likes.AddLike(ctx, candidate); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if h.policy.Decide(candidate.ID) {
			m, err := h.matches.AddMatch(ctx, candidate)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			if err := h.current.Save(ctx, candidate); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			conv, err := h.convs.CreateFromCurrent(ctx, m.ID)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			resp["matched"] = true
			resp["match"] = m
			resp["conversation"] = conv
		}
	}

	resp["candidates"] = h.feed.Remove(ctx, req.ProfileID)
	c.JSON(http.StatusOK, resp)
}

// Current returns the candidate pointer set by the last match or profile view.
func (h *FeedHandler) Current(c *gin.Context) {
	p := h.current.Get(c.Request.Context())
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no current profile"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// SetCurrent stores the candidate the user is inspecting, so a conversation
// can later be created from it.
func (h *FeedHandler) SetCurrent(c *gin.Context) {
	var p models.CandidateProfile
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.current.Save(c.Request.Context(), &p); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ClearCurrent drops the pointer.
func (h *FeedHandler) ClearCurrent(c *gin.Context) {
	if err := h.current.Clear(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Likes lists the candidates the user swiped right on.
func (h *FeedHandler) Likes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"likes": h.likes.GetLikes(c.Request.Context())})
}

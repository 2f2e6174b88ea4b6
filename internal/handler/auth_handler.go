package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mario2280/Dating-App-Front-sub000/config"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/auth"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
)

type AuthHandler struct {
	cfg      *config.Config
	sessions *repository.SessionRepository
}

func NewAuthHandler(cfg *config.Config, sessions *repository.SessionRepository) *AuthHandler {
	return &AuthHandler{cfg: cfg, sessions: sessions}
}

type TelegramLoginRequest struct {
	ID        int64  `json:"id" binding:"required"`
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photo_url"`
	AuthDate  int64  `json:"auth_date" binding:"required"`
	Hash      string `json:"hash" binding:"required"`
}

// Login verifies the Telegram widget payload, persists the identity and
// issues an access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req TelegramLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	id := &models.Identity{
		ID:        req.ID,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		PhotoURL:  req.PhotoURL,
		AuthDate:  req.AuthDate,
		Hash:      req.Hash,
	}
	if err := auth.VerifyIdentity(id, h.cfg.Telegram.BotToken); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "telegram signature verification failed"})
		return
	}
	if err := h.sessions.SaveIdentity(c.Request.Context(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist session"})
		return
	}
	token, err := auth.GenerateAccessToken(&h.cfg.JWT, id.ID, id.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "user": id})
}

// Session returns the stored identity, or 401 when it is absent or expired.
func (h *AuthHandler) Session(c *gin.Context) {
	id := h.sessions.GetIdentity(c.Request.Context())
	if id == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "no active session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": id})
}

// Logout wipes every stored key for the local user.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to clear session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

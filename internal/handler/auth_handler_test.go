package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mario2280/Dating-App-Front-sub000/config"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/auth"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/handler"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

const botToken = "123456:test-bot-token"

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret: "0123456789abcdef0123456789abcdef",
			Expiry: time.Hour,
			Issuer: "dating-app",
		},
		Telegram: config.TelegramConfig{
			BotToken:    botToken,
			IdentityTTL: 7776000 * time.Second,
		},
	}
}

func newAuthRouter(t *testing.T) (*gin.Engine, store.Store, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	s := store.NewMemoryStore()
	sessions := repository.NewSessionRepository(s, cfg.Telegram.IdentityTTL)
	h := handler.NewAuthHandler(cfg, sessions)

	r := gin.New()
	r.POST("/auth/telegram", h.Login)
	r.GET("/auth/session", h.Session)
	r.POST("/auth/logout", h.Logout)
	return r, s, cfg
}

func signedLoginBody(t *testing.T) []byte {
	t.Helper()
	id := &models.Identity{
		ID:        99281932,
		FirstName: "Ann",
		Username:  "annk",
		AuthDate:  time.Now().Unix(),
	}
	id.Hash = auth.SignIdentity(id, botToken)
	body, err := json.Marshal(id)
	require.NoError(t, err)
	return body
}

func TestAuthHandler_LoginIssuesToken(t *testing.T) {
	r, s, cfg := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/auth/telegram", bytes.NewReader(signedLoginBody(t)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		AccessToken string          `json:"access_token"`
		User        models.Identity `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(99281932), resp.User.ID)

	claims, err := auth.ParseAccessToken(&cfg.JWT, resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(99281932), claims.UserID)

	// identity persisted under its storage key
	_, err = s.Get(req.Context(), store.KeyTelegramUser)
	assert.NoError(t, err)
}

func TestAuthHandler_LoginRejectsBadSignature(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	id := &models.Identity{ID: 1, FirstName: "Eve", AuthDate: time.Now().Unix(), Hash: "deadbeef"}
	body, _ := json.Marshal(id)
	req := httptest.NewRequest(http.MethodPost, "/auth/telegram", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_SessionWithoutLogin(t *testing.T) {
	r, _, _ := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_LogoutWipesState(t *testing.T) {
	r, s, _ := newAuthRouter(t)

	login := httptest.NewRequest(http.MethodPost, "/auth/telegram", bytes.NewReader(signedLoginBody(t)))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, login)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, s.Set(login.Context(), store.KeyProfileData, `{"name":"Ann"}`))

	logout := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, logout)
	require.Equal(t, http.StatusOK, w.Code)

	for _, key := range store.AllKeys {
		_, err := s.Get(logout.Context(), key)
		assert.ErrorIs(t, err, store.ErrNotFound)
	}
}

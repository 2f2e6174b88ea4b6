package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mario2280/Dating-App-Front-sub000/config"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/auth"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/middleware"
)

func newProtectedRouter(cfg *config.JWTConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthRequired(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": middleware.GetUserID(c)})
	})
	return r
}

func jwtConfig() *config.JWTConfig {
	return &config.JWTConfig{
		Secret: "0123456789abcdef0123456789abcdef",
		Expiry: time.Hour,
		Issuer: "dating-app",
	}
}

func TestAuthRequired_ValidToken(t *testing.T) {
	cfg := jwtConfig()
	token, err := auth.GenerateAccessToken(cfg, 42, "ann")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	newProtectedRouter(cfg).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "42")
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	newProtectedRouter(jwtConfig()).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_MalformedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	newProtectedRouter(jwtConfig()).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_InvalidToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	newProtectedRouter(jwtConfig()).ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

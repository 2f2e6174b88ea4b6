package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/handler"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/store"
)

type matchFixture struct {
	router  *gin.Engine
	matches *repository.MatchRepository
	convs   *repository.ConversationRepository
	current *repository.CurrentProfileRepository
}

func newMatchFixture(t *testing.T) *matchFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := store.NewMemoryStore()
	current := repository.NewCurrentProfileRepository(s)
	convs := repository.NewConversationRepository(s, current)
	matches := repository.NewMatchRepository(s)

	h := handler.NewMatchHandler(matches, convs)
	r := gin.New()
	r.GET("/matches", h.List)
	r.DELETE("/matches/:id", h.Reject)
	return &matchFixture{router: r, matches: matches, convs: convs, current: current}
}

// seed creates a match for the candidate plus its conversation.
func (f *matchFixture) seed(t *testing.T, profileID int) *models.Match {
	t.Helper()
	ctx := context.Background()
	p := &models.CandidateProfile{ID: profileID, Name: "Kate", Image: "img"}
	m, err := f.matches.AddMatch(ctx, p)
	require.NoError(t, err)
	require.NoError(t, f.current.Save(ctx, p))
	conv, err := f.convs.CreateFromCurrent(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, conv)
	return m
}

func TestMatchHandler_RejectRemovesMatchAndItsConversation(t *testing.T) {
	f := newMatchFixture(t)
	ctx := context.Background()

	victim := f.seed(t, 1)
	keep := f.seed(t, 2)

	req := httptest.NewRequest(http.MethodDelete, "/matches/"+victim.ID, nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Nil(t, f.matches.Find(ctx, victim.ID))
	require.NotNil(t, f.matches.Find(ctx, keep.ID))

	convs := f.convs.GetConversations(ctx)
	require.Len(t, convs, 1)
	assert.Equal(t, keep.ID, convs[0].MatchID)
}

func TestMatchHandler_RejectUnknownMatch(t *testing.T) {
	f := newMatchFixture(t)
	req := httptest.NewRequest(http.MethodDelete, "/matches/nope", nil)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMatchHandler_List(t *testing.T) {
	f := newMatchFixture(t)
	f.seed(t, 1)

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/matches", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"profile_id":1`)
}

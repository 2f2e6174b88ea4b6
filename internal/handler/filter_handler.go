package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/feed"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
)

type FilterHandler struct {
	filters *repository.FilterRepository
	feed    *feed.Feed
}

func NewFilterHandler(filters *repository.FilterRepository, f *feed.Feed) *FilterHandler {
	return &FilterHandler{filters: filters, feed: f}
}

func (h *FilterHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.filters.GetFilters(c.Request.Context()))
}

// Put saves search filters and resets the feed so the next batch of
// candidates reflects them.
func (h *FilterHandler) Put(c *gin.Context) {
	var f models.SearchFilters
	if err := c.ShouldBindJSON(&f); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.filters.SaveFilters(c.Request.Context(), f); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.feed.Reset()
	c.JSON(http.StatusOK, h.filters.GetFilters(c.Request.Context()))
}

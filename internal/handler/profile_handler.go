package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/middleware"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
	"github.com/Mario2280/Dating-App-Front-sub000/pkg/cloudinary"
)

type ProfileHandler struct {
	profiles *repository.ProfileRepository
	uploader cloudinary.Uploader
}

func NewProfileHandler(profiles *repository.ProfileRepository, uploader cloudinary.Uploader) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, uploader: uploader}
}

// Get returns the stored profile, or 404 when onboarding never completed.
func (h *ProfileHandler) Get(c *gin.Context) {
	rec := h.profiles.GetProfile(c.Request.Context())
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Put replaces the whole profile record.
func (h *ProfileHandler) Put(c *gin.Context) {
	var rec models.ProfileRecord
	if err := c.ShouldBindJSON(&rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec.TelegramID = middleware.GetUserID(c)
	if err := h.profiles.SaveProfile(c.Request.Context(), &rec); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrUnderage) || errors.Is(err, repository.ErrUnknownCatalog) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Patch applies a partial update; only the submitted fields change.
func (h *ProfileHandler) Patch(c *gin.Context) {
	var upd models.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.profiles.UpdateProfile(c.Request.Context(), &upd)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, repository.ErrUnderage) || errors.Is(err, repository.ErrUnknownCatalog) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// GetNotifications returns the toggles together with their wire bitmask.
func (h *ProfileHandler) GetNotifications(c *gin.Context) {
	rec := h.profiles.GetProfile(c.Request.Context())
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"settings": rec.Notifications,
		"mask":     rec.Notifications.Mask(),
	})
}

// PutNotifications updates the six notification toggles.
func (h *ProfileHandler) PutNotifications(c *gin.Context) {
	var settings models.NotificationSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec, err := h.profiles.UpdateProfile(c.Request.Context(), &models.ProfileUpdate{Notifications: &settings})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"settings": rec.Notifications,
		"mask":     rec.Notifications.Mask(),
	})
}

// UploadPhoto stores a new profile photo via Cloudinary and appends it to the
// profile. The "primary" form field promotes it to the main photo.
func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	rec := h.profiles.GetProfile(c.Request.Context())
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo file is required"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cannot read uploaded file"})
		return
	}
	defer file.Close()

	url, thumb, err := h.uploader.UploadPhoto(c.Request.Context(), file, middleware.GetUserID(c), uuid.NewString())
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "photo upload failed"})
		return
	}

	photo := models.Photo{URL: url, Primary: c.PostForm("primary") == "true"}
	photos := make([]models.Photo, len(rec.Photos))
	copy(photos, rec.Photos)
	if photo.Primary {
		// the new upload takes over as the main photo
		for i := range photos {
			photos[i].Primary = false
		}
	}
	photos = append(photos, photo)
	updated, err := h.profiles.UpdateProfile(c.Request.Context(), &models.ProfileUpdate{Photos: &photos})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"photo": photo, "thumbnail_url": thumb, "photos": updated.Photos})
}

type LocationUpdateRequest struct {
	Label string   `json:"label"`
	Lat   *float64 `json:"lat"`
	Lon   *float64 `json:"lon"`
}

// PatchLocation updates only the profile location.
func (h *ProfileHandler) PatchLocation(c *gin.Context) {
	var req LocationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Label == "" && (req.Lat == nil || req.Lon == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "label or lat/lon pair is required"})
		return
	}
	loc := &models.Location{Label: req.Label, Lat: req.Lat, Lon: req.Lon}
	rec, err := h.profiles.UpdateProfile(c.Request.Context(), &models.ProfileUpdate{Location: loc})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"location": rec.Location})
}

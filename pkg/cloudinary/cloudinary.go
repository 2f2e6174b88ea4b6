package cloudinary

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/cloudinary/cloudinary-go/v2/config"
)

// Uploader stores profile photos and returns delivery URLs.
type Uploader interface {
	UploadPhoto(ctx context.Context, file io.Reader, userID int64, publicID string) (url, thumbnailURL string, err error)
}

const (
	photoWidth = 800
	thumbWidth = 200

	photoEager = "q_auto,f_auto,w_800,c_fill"
)

var eagerAsyncFalse = false

// OptimizedPhotoURL builds a delivery URL with quality/format transforms
// for an already-uploaded public id.
func OptimizedPhotoURL(cloudName, publicID string, width int) string {
	if width <= 0 {
		width = photoWidth
	}
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/upload/q_auto,f_auto,w_%d,c_fill/%s",
		cloudName, width, publicID)
}

type client struct {
	cloudName string
	uploader  *uploader.API
}

// New builds an Uploader from Cloudinary credentials.
func New(cloudName, apiKey, apiSecret string) (Uploader, error) {
	cfg, err := config.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	up, err := uploader.NewWithConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	return &client{cloudName: cloudName, uploader: up}, nil
}

// UploadPhoto uploads a profile photo under a per-user folder with eager
// optimization, returning the full-size and thumbnail URLs.
func (c *client) UploadPhoto(ctx context.Context, file io.Reader, userID int64, publicID string) (string, string, error) {
	result, err := c.uploader.Upload(ctx, file, uploader.UploadParams{
		Folder:     fmt.Sprintf("profiles/%d", userID),
		PublicID:   publicID,
		Eager:      photoEager,
		EagerAsync: &eagerAsyncFalse,
	})
	if err != nil {
		return "", "", err
	}
	thumb := ""
	if len(result.Eager) > 0 {
		thumb = result.Eager[0].SecureURL
	}
	if thumb == "" {
		thumb = OptimizedPhotoURL(c.cloudName, result.PublicID, thumbWidth)
	}
	return result.SecureURL, thumb, nil
}

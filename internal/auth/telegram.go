package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
)

var ErrBadSignature = errors.New("telegram signature mismatch")

// loginPayload builds the data-check string the Login Widget signs: the
// sorted "key=value" lines of all fields except hash, joined by newlines.
func loginPayload(id *models.Identity) string {
	fields := map[string]string{
		"id":         fmt.Sprintf("%d", id.ID),
		"first_name": id.FirstName,
		"auth_date":  fmt.Sprintf("%d", id.AuthDate),
	}
	if id.LastName != "" {
		fields["last_name"] = id.LastName
	}
	if id.Username != "" {
		fields["username"] = id.Username
	}
	if id.PhotoURL != "" {
		fields["photo_url"] = id.PhotoURL
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(fields[k])
	}
	return b.String()
}

func computeHash(id *models.Identity, botToken string) string {
	secret := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secret[:])
	mac.Write([]byte(loginPayload(id)))
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyIdentity checks the Login Widget payload signature. The widget uses
// HMAC-SHA256 keyed by SHA256(bot token).
func VerifyIdentity(id *models.Identity, botToken string) error {
	expected := computeHash(id, botToken)
	if !hmac.Equal([]byte(expected), []byte(strings.ToLower(id.Hash))) {
		return ErrBadSignature
	}
	return nil
}

// SignIdentity computes the widget hash for id. Used by tests and tooling to
// produce valid payloads.
func SignIdentity(id *models.Identity, botToken string) string {
	return computeHash(id, botToken)
}

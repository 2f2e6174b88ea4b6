package models

import "time"

// Identity is the authenticated user's credentials as issued by the Telegram
// Login Widget. AuthDate is the widget's unix timestamp; Hash is the HMAC the
// widget signs the payload with.
type Identity struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	PhotoURL  string `json:"photo_url,omitempty"`
	AuthDate  int64  `json:"auth_date"`
	Hash      string `json:"hash"`
}

func (i *Identity) DisplayName() string {
	if i.LastName != "" {
		return i.FirstName + " " + i.LastName
	}
	return i.FirstName
}

// ExpiredAt reports whether the identity is older than ttl at time now.
func (i *Identity) ExpiredAt(now time.Time, ttl time.Duration) bool {
	return now.Sub(time.Unix(i.AuthDate, 0)) > ttl
}

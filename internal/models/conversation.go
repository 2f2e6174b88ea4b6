package models

// Message is one chat entry. A message carries text or an image, never
// neither. Messages are append-only; only Status transitions after creation.
type Message struct {
	ID     int    `json:"id"`
	Text   string `json:"text,omitempty"`
	Image  string `json:"image,omitempty"`
	Time   string `json:"time"`
	Sender string `json:"sender"` // domain.SenderSelf or domain.SenderOther
	Status string `json:"status"` // domain.MessageStatusSent -> Read
}

// Conversation is a message thread tied to one candidate. The candidate
// snapshot is embedded; at most one conversation exists per candidate id.
// LastMessage and LastActivity are denormalized from the newest message.
type Conversation struct {
	ID           int64            `json:"id"` // creation unix-milli timestamp
	MatchID      string           `json:"match_id,omitempty"`
	Name         string           `json:"name"`
	Avatar       string           `json:"avatar,omitempty"`
	LastMessage  string           `json:"last_message,omitempty"`
	LastActivity string           `json:"last_activity,omitempty"`
	Unread       int              `json:"unread"`
	Read         bool             `json:"read"`
	Profile      CandidateProfile `json:"profile"`
	Messages     []Message        `json:"messages"`
}

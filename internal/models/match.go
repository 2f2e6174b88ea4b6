package models

// Match records a mutual-like event between the user and a candidate.
// Rejecting a match removes it and deletes its conversation.
type Match struct {
	ID        string `json:"id"`
	ProfileID int    `json:"profile_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Image     string `json:"image,omitempty"`
	Section   string `json:"section"` // domain.MatchSectionToday / Yesterday
	Rejected  bool   `json:"rejected,omitempty"`
}

// Like is a liked-candidate snapshot kept for the likes screen.
type Like struct {
	ProfileID int    `json:"profile_id"`
	Name      string `json:"name"`
	Age       int    `json:"age"`
	Image     string `json:"image,omitempty"`
	LikedAt   int64  `json:"liked_at"`
}

// PaymentSelection stores which payment surface the user connected.
// The actual processing happens in the external provider.
type PaymentSelection struct {
	Type   string `json:"type,omitempty"`   // e.g. "ton", "card"
	Method string `json:"method,omitempty"` // provider-specific method id
}

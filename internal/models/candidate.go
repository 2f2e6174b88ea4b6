package models

// CandidateProfile is a synthetically generated "other user" shown in the
// swipe feed. Candidates are never persisted standalone; a snapshot is
// captured into a Conversation or Match when the user acts on one.
type CandidateProfile struct {
	ID         int      `json:"id"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Occupation string   `json:"occupation"`
	Location   string   `json:"location"`
	Distance   string   `json:"distance"`
	Image      string   `json:"image"`
	Bio        string   `json:"bio"`
	Interests  []string `json:"interests"`
	Gallery    []string `json:"gallery,omitempty"`
}

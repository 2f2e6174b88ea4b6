package domain

const (
	GenderMale   = "male"
	GenderFemale = "female"
)

const (
	SenderSelf  = "self"
	SenderOther = "other"
)

const (
	MessageStatusSent = "sent"
	MessageStatusRead = "read"
)

const (
	MatchSectionToday     = "today"
	MatchSectionYesterday = "yesterday"
)

const (
	SwipeLeft  = "left"
	SwipeRight = "right"
)

// LastMessagePlaceholder replaces the preview text for image-only messages.
const LastMessagePlaceholder = "Photo"

// Interests is the fixed tag catalog shared between the candidate generator
// and profile editing. The two must stay in sync or tag filtering breaks.
var Interests = []string{
	"photo",
	"shopping",
	"karaoke",
	"yoga",
	"cooking",
	"tennis",
	"running",
	"swimming",
	"art",
	"travel",
	"extreme",
	"music",
	"drinks",
	"video_games",
}

// Notification toggle bits. The bit order is part of the external
// profile-creation contract and must be preserved exactly.
const (
	NotifyMatches uint8 = 1 << iota
	NotifyMessages
	NotifyLikes
	NotifySuperLikes
	NotifyPromotions
	NotifyUpdates
)

// Categorical profile vocabularies.
var (
	Purposes         = []string{"relationship", "friendship", "casual", "not_sure"}
	Educations       = []string{"school", "college", "bachelor", "master", "phd"}
	Builds           = []string{"slim", "athletic", "average", "curvy"}
	Orientations     = []string{"straight", "gay", "bisexual"}
	AlcoholOptions   = []string{"never", "sometimes", "often"}
	SmokingOptions   = []string{"never", "sometimes", "often"}
	KidsOptions      = []string{"none", "have", "want", "have_and_want"}
	LivingConditions = []string{"alone", "with_parents", "with_roommates"}
	IncomeLevels     = []string{"low", "medium", "high", "prefer_not_to_say"}
)

// InCatalog reports whether v is one of the allowed values. Empty means unset
// and is always allowed.
func InCatalog(v string, catalog []string) bool {
	if v == "" {
		return true
	}
	for _, c := range catalog {
		if c == v {
			return true
		}
	}
	return false
}

package models

// Photo is one profile image. At most one photo is primary; when none is
// marked, the first uploaded photo is treated as primary.
type Photo struct {
	URL     string `json:"url"`
	Primary bool   `json:"primary,omitempty"`
}

// Location is either a free-text label or a coordinate pair.
type Location struct {
	Label string   `json:"label,omitempty"`
	Lat   *float64 `json:"lat,omitempty"`
	Lon   *float64 `json:"lon,omitempty"`
}

// NotificationSettings mirrors the 6-bit mask submitted to the external
// profile-creation API: bit0=matches, bit1=messages, bit2=likes,
// bit3=super_likes, bit4=promotions, bit5=updates.
type NotificationSettings struct {
	Matches    bool `json:"matches"`
	Messages   bool `json:"messages"`
	Likes      bool `json:"likes"`
	SuperLikes bool `json:"super_likes"`
	Promotions bool `json:"promotions"`
	Updates    bool `json:"updates"`
}

// Mask encodes the toggles into the wire bitmask. Bit order is part of the
// external contract and must not change.
func (n NotificationSettings) Mask() uint8 {
	var m uint8
	for i, on := range [6]bool{n.Matches, n.Messages, n.Likes, n.SuperLikes, n.Promotions, n.Updates} {
		if on {
			m |= 1 << i
		}
	}
	return m
}

// NotificationsFromMask decodes a wire bitmask.
func NotificationsFromMask(m uint8) NotificationSettings {
	return NotificationSettings{
		Matches:    m&(1<<0) != 0,
		Messages:   m&(1<<1) != 0,
		Likes:      m&(1<<2) != 0,
		SuperLikes: m&(1<<3) != 0,
		Promotions: m&(1<<4) != 0,
		Updates:    m&(1<<5) != 0,
	}
}

// ProfileRecord is the current user's own dating profile, persisted as a
// single denormalized JSON blob. Onboarding screens each contribute a slice
// of it through partial updates.
type ProfileRecord struct {
	TelegramID    int64                `json:"telegram_id"`
	Name          string               `json:"name"`
	Age           int                  `json:"age"`
	Gender        string               `json:"gender,omitempty"`
	Bio           string               `json:"bio,omitempty"`
	Purpose       string               `json:"purpose,omitempty"`
	Education     string               `json:"education,omitempty"`
	Build         string               `json:"build,omitempty"`
	Language      string               `json:"language,omitempty"`
	Orientation   string               `json:"orientation,omitempty"`
	Alcohol       string               `json:"alcohol,omitempty"`
	Smoking       string               `json:"smoking,omitempty"`
	Kids          string               `json:"kids,omitempty"`
	Living        string               `json:"living,omitempty"`
	Income        string               `json:"income,omitempty"`
	WeightKg      int                  `json:"weight_kg,omitempty"`
	HeightCm      int                  `json:"height_cm,omitempty"`
	Interests     []string             `json:"interests,omitempty"`
	Photos        []Photo              `json:"photos,omitempty"`
	Location      *Location            `json:"location,omitempty"`
	Notifications NotificationSettings `json:"notifications"`
}

// PrimaryPhoto returns the designated primary photo, defaulting to the first
// uploaded one. Nil when the profile has no photos.
func (p *ProfileRecord) PrimaryPhoto() *Photo {
	for i := range p.Photos {
		if p.Photos[i].Primary {
			return &p.Photos[i]
		}
	}
	if len(p.Photos) > 0 {
		return &p.Photos[0]
	}
	return nil
}

// ProfileUpdate is a typed partial update. Only non-nil fields are applied;
// the fixed schema rejects unknown fields at the binding boundary instead of
// silently merging them.
type ProfileUpdate struct {
	Name          *string               `json:"name,omitempty"`
	Age           *int                  `json:"age,omitempty" binding:"omitempty,gte=18"`
	Gender        *string               `json:"gender,omitempty"`
	Bio           *string               `json:"bio,omitempty"`
	Purpose       *string               `json:"purpose,omitempty"`
	Education     *string               `json:"education,omitempty"`
	Build         *string               `json:"build,omitempty"`
	Language      *string               `json:"language,omitempty"`
	Orientation   *string               `json:"orientation,omitempty"`
	Alcohol       *string               `json:"alcohol,omitempty"`
	Smoking       *string               `json:"smoking,omitempty"`
	Kids          *string               `json:"kids,omitempty"`
	Living        *string               `json:"living,omitempty"`
	Income        *string               `json:"income,omitempty"`
	WeightKg      *int                  `json:"weight_kg,omitempty"`
	HeightCm      *int                  `json:"height_cm,omitempty"`
	Interests     *[]string             `json:"interests,omitempty"`
	Photos        *[]Photo              `json:"photos,omitempty"`
	Location      *Location             `json:"location,omitempty"`
	Notifications *NotificationSettings `json:"notifications,omitempty"`
}

// Apply shallow-merges the non-nil fields of u into p.
func (u *ProfileUpdate) Apply(p *ProfileRecord) {
	if u.Name != nil {
		p.Name = *u.Name
	}
	if u.Age != nil {
		p.Age = *u.Age
	}
	if u.Gender != nil {
		p.Gender = *u.Gender
	}
	if u.Bio != nil {
		p.Bio = *u.Bio
	}
	if u.Purpose != nil {
		p.Purpose = *u.Purpose
	}
	if u.Education != nil {
		p.Education = *u.Education
	}
	if u.Build != nil {
		p.Build = *u.Build
	}
	if u.Language != nil {
		p.Language = *u.Language
	}
	if u.Orientation != nil {
		p.Orientation = *u.Orientation
	}
	if u.Alcohol != nil {
		p.Alcohol = *u.Alcohol
	}
	if u.Smoking != nil {
		p.Smoking = *u.Smoking
	}
	if u.Kids != nil {
		p.Kids = *u.Kids
	}
	if u.Living != nil {
		p.Living = *u.Living
	}
	if u.Income != nil {
		p.Income = *u.Income
	}
	if u.WeightKg != nil {
		p.WeightKg = *u.WeightKg
	}
	if u.HeightCm != nil {
		p.HeightCm = *u.HeightCm
	}
	if u.Interests != nil {
		p.Interests = *u.Interests
	}
	if u.Photos != nil {
		p.Photos = *u.Photos
	}
	if u.Location != nil {
		p.Location = u.Location
	}
	if u.Notifications != nil {
		p.Notifications = *u.Notifications
	}
}

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotificationMask_BitOrder(t *testing.T) {
	assert.Equal(t, uint8(0b000001), NotificationSettings{Matches: true}.Mask())
	assert.Equal(t, uint8(0b000010), NotificationSettings{Messages: true}.Mask())
	assert.Equal(t, uint8(0b000100), NotificationSettings{Likes: true}.Mask())
	assert.Equal(t, uint8(0b001000), NotificationSettings{SuperLikes: true}.Mask())
	assert.Equal(t, uint8(0b010000), NotificationSettings{Promotions: true}.Mask())
	assert.Equal(t, uint8(0b100000), NotificationSettings{Updates: true}.Mask())
}

func TestNotificationMask_RoundTrip(t *testing.T) {
	for m := uint8(0); m < 64; m++ {
		assert.Equal(t, m, NotificationsFromMask(m).Mask())
	}
}

func TestProfileUpdate_ApplyMergesOnlySetFields(t *testing.T) {
	rec := ProfileRecord{Name: "Ann", Age: 25, Bio: "old bio", Interests: []string{"yoga"}}

	newBio := "new bio"
	u := ProfileUpdate{Bio: &newBio}
	u.Apply(&rec)

	assert.Equal(t, "new bio", rec.Bio)
	assert.Equal(t, "Ann", rec.Name)
	assert.Equal(t, 25, rec.Age)
	assert.Equal(t, []string{"yoga"}, rec.Interests)
}

func TestProfileUpdate_ApplyIsIdempotent(t *testing.T) {
	rec := ProfileRecord{Name: "Ann", Age: 25}
	age := 30
	name := "Anna"
	u := ProfileUpdate{Age: &age, Name: &name}

	u.Apply(&rec)
	once := rec
	u.Apply(&rec)
	assert.Equal(t, once, rec)
}

func TestProfileUpdate_EmptyUpdateChangesNothing(t *testing.T) {
	rec := ProfileRecord{Name: "Ann", Age: 25, Gender: "female"}
	before := rec
	(&ProfileUpdate{}).Apply(&rec)
	assert.Equal(t, before, rec)
}

func TestPrimaryPhoto(t *testing.T) {
	p := ProfileRecord{}
	assert.Nil(t, p.PrimaryPhoto())

	p.Photos = []Photo{{URL: "a"}, {URL: "b"}}
	assert.Equal(t, "a", p.PrimaryPhoto().URL)

	p.Photos[1].Primary = true
	assert.Equal(t, "b", p.PrimaryPhoto().URL)
}

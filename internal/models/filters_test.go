package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchFilters_NormalizeClampsInvertedRange(t *testing.T) {
	f := SearchFilters{AgeMin: 40, AgeMax: 25}
	f.Normalize()
	assert.Equal(t, 40, f.AgeMin)
	assert.Equal(t, 40, f.AgeMax)
}

func TestSearchFilters_NormalizeKeepsValidRange(t *testing.T) {
	f := SearchFilters{AgeMin: 25, AgeMax: 30}
	f.Normalize()
	assert.Equal(t, SearchFilters{AgeMin: 25, AgeMax: 30}, f)
}

func TestSearchFilters_NormalizeRaisesUnderageMin(t *testing.T) {
	f := SearchFilters{AgeMin: 16, AgeMax: 30}
	f.Normalize()
	assert.Equal(t, 18, f.AgeMin)
}

func TestSearchFilters_HasAgeRange(t *testing.T) {
	assert.False(t, (&SearchFilters{}).HasAgeRange())
	assert.False(t, (&SearchFilters{AgeMin: 20}).HasAgeRange())
	assert.True(t, (&SearchFilters{AgeMin: 20, AgeMax: 30}).HasAgeRange())
}

package models

// SearchFilters narrows the candidate feed. Consulted, never mutated, by the
// generator; zero values mean "no restriction".
type SearchFilters struct {
	AgeMin        int    `json:"age_min,omitempty"`
	AgeMax        int    `json:"age_max,omitempty"`
	MaxDistanceKm int    `json:"max_distance_km,omitempty"`
	Purpose       string `json:"purpose,omitempty"`
	Education     string `json:"education,omitempty"`
	Build         string `json:"build,omitempty"`
	Orientation   string `json:"orientation,omitempty"`
	Alcohol       string `json:"alcohol,omitempty"`
	Smoking       string `json:"smoking,omitempty"`
}

// HasAgeRange reports whether an age-range filter is active.
func (f *SearchFilters) HasAgeRange() bool {
	return f.AgeMin > 0 && f.AgeMax > 0
}

// Normalize clamps an inverted age range by moving the opposite bound, the
// same way the UI resolves a violation.
func (f *SearchFilters) Normalize() {
	if f.AgeMin > 0 && f.AgeMax > 0 && f.AgeMin > f.AgeMax {
		f.AgeMax = f.AgeMin
	}
	if f.AgeMin > 0 && f.AgeMin < 18 {
		f.AgeMin = 18
	}
}

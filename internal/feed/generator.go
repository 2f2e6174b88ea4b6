package feed

import (
	"context"
	"math/rand"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/domain"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
	"github.com/Mario2280/Dating-App-Front-sub000/internal/repository"
)

// Fixed candidate catalogs. Name, occupation, bio and image rotate
// round-robin by sequence id; only age and interests are drawn from the
// seeded RNG.
var (
	names = []string{
		"Alina", "Maria", "Kate", "Sofia", "Anna",
		"Polina", "Dasha", "Vika", "Lera", "Nastya",
	}
	occupations = []string{
		"Designer", "Photographer", "Marketer", "Doctor", "Teacher",
		"Barista", "Artist", "Product Manager", "Fitness Coach", "Journalist",
	}
	bios = []string{
		"Love traveling and good coffee",
		"Looking for someone to explore the city with",
		"Yoga in the morning, books at night",
		"Can cook better than your favorite restaurant",
		"Concert addict, always up for live music",
		"Weekend hiker and amateur photographer",
		"Here for deep talks and bad puns",
		"Dancing like nobody is watching",
	}
	images = []string{
		"https://images.dating.app/candidates/1.jpg",
		"https://images.dating.app/candidates/2.jpg",
		"https://images.dating.app/candidates/3.jpg",
		"https://images.dating.app/candidates/4.jpg",
		"https://images.dating.app/candidates/5.jpg",
		"https://images.dating.app/candidates/6.jpg",
	}
	locations = []string{
		"Moscow", "Saint Petersburg", "Kazan", "Novosibirsk", "Yekaterinburg",
	}
)

// distanceEntry pairs a display label with its numeric distance so the
// max-distance filter can restrict the table before indexing.
type distanceEntry struct {
	Km    int
	Label string
}

var distanceTable = []distanceEntry{
	{1, "1 km away"},
	{2, "2 km away"},
	{3, "3 km away"},
	{4, "4 km away"},
	{5, "5 km away"},
	{7, "7 km away"},
	{10, "10 km away"},
	{15, "15 km away"},
	{25, "25 km away"},
}

const (
	defaultAgeMin = 18
	defaultAgeMax = 56
	// the distance filter never restricts beyond this many km
	distanceFilterCapKm = 10
)

// Generator produces synthetic candidate profiles. Output is deterministic
// for a given sequence id and filter set; filters are read live so results
// track filter changes between calls.
type Generator struct {
	filters *repository.FilterRepository
}

func NewGenerator(filters *repository.FilterRepository) *Generator {
	return &Generator{filters: filters}
}

// Profile generates the candidate for the given sequence id.
func (g *Generator) Profile(ctx context.Context, seq int) models.CandidateProfile {
	f := g.filters.GetFilters(ctx)
	rng := rand.New(rand.NewSource(int64(seq)))

	ageMin, ageMax := defaultAgeMin, defaultAgeMax
	if f.HasAgeRange() {
		ageMin, ageMax = f.AgeMin, f.AgeMax
	}
	age := ageMin
	if ageMax > ageMin {
		age = ageMin + rng.Intn(ageMax-ageMin+1)
	}

	table := distanceTable
	if f.MaxDistanceKm > 0 {
		maxKm := f.MaxDistanceKm
		if maxKm > distanceFilterCapKm {
			maxKm = distanceFilterCapKm
		}
		restricted := make([]distanceEntry, 0, len(distanceTable))
		for _, d := range distanceTable {
			if d.Km <= maxKm {
				restricted = append(restricted, d)
			}
		}
		if len(restricted) > 0 {
			table = restricted
		}
	}

	perm := rng.Perm(len(domain.Interests))
	count := 3 + rng.Intn(3) // 3-5 tags
	tags := make([]string, 0, count)
	for _, idx := range perm[:count] {
		tags = append(tags, domain.Interests[idx])
	}

	image := images[seq%len(images)]
	return models.CandidateProfile{
		ID:         seq,
		Name:       names[seq%len(names)],
		Age:        age,
		Occupation: occupations[seq%len(occupations)],
		Location:   locations[seq%len(locations)],
		Distance:   table[seq%len(table)].Label,
		Image:      image,
		Bio:        bios[seq%len(bios)],
		Interests:  tags,
		Gallery: []string{
			images[(seq+1)%len(images)],
			images[(seq+2)%len(images)],
		},
	}
}

package feed

import (
	"context"
	"sync"

	"github.com/Mario2280/Dating-App-Front-sub000/internal/models"
)

// visibleSize is the steady-state number of candidates on the swipe screen.
const visibleSize = 3

// Feed maintains the visible candidate window. Sequence ids grow
// monotonically and are never reused, so removed candidates cannot come back.
type Feed struct {
	mu      sync.Mutex
	gen     *Generator
	visible []models.CandidateProfile
	nextSeq int
}

func NewFeed(gen *Generator) *Feed {
	return &Feed{gen: gen, nextSeq: 1}
}

// Candidates returns the current window, filling it to size on first use.
func (f *Feed) Candidates(ctx context.Context) []models.CandidateProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fill(ctx)
	return f.snapshot()
}

// Remove takes the candidate out of the window and tops it back up. When the
// window has collapsed to a single profile the whole set is regenerated from
// fresh sequence ids.
func (f *Feed) Remove(ctx context.Context, id int) []models.CandidateProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.visible[:0]
	for _, p := range f.visible {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	f.visible = kept
	if len(f.visible) == 1 {
		f.visible = f.visible[:0]
	}
	f.fill(ctx)
	return f.snapshot()
}

// Find returns the visible candidate with the given id, or nil.
func (f *Feed) Find(id int) *models.CandidateProfile {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.visible {
		if f.visible[i].ID == id {
			p := f.visible[i]
			return &p
		}
	}
	return nil
}

// Reset discards the window; the next read regenerates it. Used when filters
// change so stale candidates do not linger.
func (f *Feed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.visible = f.visible[:0]
}

func (f *Feed) fill(ctx context.Context) {
	for len(f.visible) < visibleSize {
		f.visible = append(f.visible, f.gen.Profile(ctx, f.nextSeq))
		f.nextSeq++
	}
}

func (f *Feed) snapshot() []models.CandidateProfile {
	out := make([]models.CandidateProfile, len(f.visible))
	copy(out, f.visible)
	return out
}

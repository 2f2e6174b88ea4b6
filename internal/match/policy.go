// Package match decides whether a right-swipe turns into a match.
//
// The production rule requires a mutual-interest signal from the backend; the
// shipped default keeps the prototype's behavior, a fair coin flip. Policy is
// an interface so tests and the future backend integration can inject a real
// decision source.
package match

import (
	"math/rand"
	"sync"
)

// Policy decides whether liking the given candidate produces a match.
type Policy interface {
	Decide(profileID int) bool
}

// CoinFlipPolicy matches with probability 1/2, independent of the candidate.
type CoinFlipPolicy struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewCoinFlipPolicy(seed int64) *CoinFlipPolicy {
	return &CoinFlipPolicy{rng: rand.New(rand.NewSource(seed))}
}

func (p *CoinFlipPolicy) Decide(int) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.rng.Float64() > 0.5
}

// FixedPolicy always answers the same; used in tests.
type FixedPolicy bool

func (p FixedPolicy) Decide(int) bool { return bool(p) }

package worker

import (
	"math/rand"
	"sync"
)

// SharedRand wraps a math/rand.Rand with a mutex so a single process-wide
// generator can be shared by every worker for window-jitter and
// negative-sample draws. It must be safe to call from multiple
// goroutines but need not be reproducible.
type SharedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSharedRand builds a SharedRand seeded from seed.
func NewSharedRand(seed int64) *SharedRand {
	return &SharedRand{rng: rand.New(rand.NewSource(seed))}
}

// Intn returns a uniform int in [0, n).
func (s *SharedRand) Intn(n int) int {
	s.mu.Lock()
	v := s.rng.Intn(n)
	s.mu.Unlock()
	return v
}

// Int63n returns a uniform int64 in [0, n).
func (s *SharedRand) Int63n(n int64) int64 {
	s.mu.Lock()
	v := s.rng.Int63n(n)
	s.mu.Unlock()
	return v
}

// Package random abstracts the pseudo-random source used by the booking
// synthesizer and the promotion generator so tests can pin every draw.
package random

import (
	"math/rand/v2"
	"sync"
	"time"
)

// Source is satisfied by *rand.Rand.
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int
	// Float64 returns a uniform float in [0.0, 1.0).
	Float64() float64
}

// New returns a goroutine-safe PCG source. A zero seed draws one from the wall clock.
func New(seed uint64) Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &lockedSource{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

type lockedSource struct {
	mu sync.Mutex
	r  *rand.Rand
}

func (s *lockedSource) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.IntN(n)
}

func (s *lockedSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.r.Float64()
}

// Scripted replays fixed draws in order and wraps around when exhausted.
type Scripted struct {
	mu     sync.Mutex
	Ints   []int
	Floats []float64
	ni, nf int
}

func (s *Scripted) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ni%len(s.Ints)]
	s.ni++
	if v >= n {
		return n - 1
	}
	return v
}

func (s *Scripted) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Floats) == 0 {
		return 0.99
	}
	v := s.Floats[s.nf%len(s.Floats)]
	s.nf++
	return v
}

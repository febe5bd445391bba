// Package random abstracts the uniform integer draws behind the graph
// generators so tests can substitute deterministic sequences.
package random

import (
	"math/rand/v2"
	"sync"
)

// Source draws uniform integers.
type Source interface {
	// IntBetween returns a uniform draw from [lo, hi], inclusive on both ends.
	IntBetween(lo, hi int) int
}

// PCG is a Source backed by math/rand/v2, safe for concurrent use.
type PCG struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewPCG creates a seeded PCG source.
func NewPCG(seed1, seed2 uint64) *PCG {
	return &PCG{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// New creates a PCG source with OS-derived seeds.
func New() *PCG {
	return NewPCG(rand.Uint64(), rand.Uint64())
}

// IntBetween implements Source.
func (p *PCG) IntBetween(lo, hi int) int {
	if hi < lo {
		panic("random: inverted bounds")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return lo + p.rng.IntN(hi-lo+1)
}

// Sequence is a deterministic Source that replays a fixed list of values,
// clamping each into the requested bounds. Intended for tests.
type Sequence struct {
	mu     sync.Mutex
	values []int
	next   int
}

// NewSequence creates a Sequence source.
func NewSequence(values ...int) *Sequence {
	return &Sequence{values: values}
}

// IntBetween implements Source. It wraps around when the sequence runs out.
func (s *Sequence) IntBetween(lo, hi int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.values) == 0 {
		return lo
	}
	v := s.values[s.next%len(s.values)]
	s.next++
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

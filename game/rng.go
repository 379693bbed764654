package game

import (
	"math/rand"
	"time"
)

// Rand is the single random source the simulation draws from.
// Swap it for a seeded one to replay a run.
type Rand interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64

	// Uniform returns a uniform value in [lo, hi)
	Uniform(lo, hi float64) float64

	// Intn returns a uniform integer in [0, n)
	Intn(n int) int

	// IntRange returns a uniform integer in [lo, hi)
	IntRange(lo, hi int) int

	// Discrete returns index i with probability freqs[i] / sum(freqs)
	Discrete(freqs []int) int
}

// StdRand implements Rand on math/rand
type StdRand struct {
	r *rand.Rand
}

// NewRand creates a random source. A zero seed picks one from the clock.
func NewRand(seed int64) *StdRand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &StdRand{r: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform value in [0, 1)
func (s *StdRand) Float64() float64 {
	return s.r.Float64()
}

// Uniform returns a uniform value in [lo, hi)
func (s *StdRand) Uniform(lo, hi float64) float64 {
	return lo + s.r.Float64()*(hi-lo)
}

// Intn returns a uniform integer in [0, n)
func (s *StdRand) Intn(n int) int {
	return s.r.Intn(n)
}

// IntRange returns a uniform integer in [lo, hi)
func (s *StdRand) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.r.Intn(hi-lo)
}

// Discrete returns index i with probability freqs[i] / sum(freqs)
func (s *StdRand) Discrete(freqs []int) int {
	total := 0
	for _, f := range freqs {
		total += f
	}
	if total <= 0 {
		return 0
	}
	pick := s.r.Intn(total)
	for i, f := range freqs {
		if pick < f {
			return i
		}
		pick -= f
	}
	return len(freqs) - 1
}

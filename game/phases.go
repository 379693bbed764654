package game

import (
	"fmt"
	"time"
)

// PhaseTimes is the wall time handler updates spent in each pipeline phase
type PhaseTimes struct {
	Projectiles time.Duration
	Entities    time.Duration
	Collisions  time.Duration
	Cleanup     time.Duration
	Effects     time.Duration
}

func (p PhaseTimes) named() [5]struct {
	name string
	d    time.Duration
} {
	return [5]struct {
		name string
		d    time.Duration
	}{
		{"projectiles", p.Projectiles},
		{"entities", p.Entities},
		{"collisions", p.Collisions},
		{"cleanup", p.Cleanup},
		{"effects", p.Effects},
	}
}

// Total sums every phase
func (p PhaseTimes) Total() time.Duration {
	return p.Projectiles + p.Entities + p.Collisions + p.Cleanup + p.Effects
}

// Add sums two breakdowns phase by phase
func (p PhaseTimes) Add(o PhaseTimes) PhaseTimes {
	return PhaseTimes{
		Projectiles: p.Projectiles + o.Projectiles,
		Entities:    p.Entities + o.Entities,
		Collisions:  p.Collisions + o.Collisions,
		Cleanup:     p.Cleanup + o.Cleanup,
		Effects:     p.Effects + o.Effects,
	}
}

// Average divides an accumulated breakdown by the frames it covers
func (p PhaseTimes) Average(frames int) PhaseTimes {
	if frames <= 0 {
		return PhaseTimes{}
	}
	n := time.Duration(frames)
	return PhaseTimes{
		Projectiles: p.Projectiles / n,
		Entities:    p.Entities / n,
		Collisions:  p.Collisions / n,
		Cleanup:     p.Cleanup / n,
		Effects:     p.Effects / n,
	}
}

// Slowest returns the costliest phase. Ties go to the earlier phase.
func (p PhaseTimes) Slowest() (string, time.Duration) {
	named := p.named()
	best := named[0]
	for _, ph := range named[1:] {
		if ph.d > best.d {
			best = ph
		}
	}
	return best.name, best.d
}

// String lists every phase in pipeline order
func (p PhaseTimes) String() string {
	s := ""
	for i, ph := range p.named() {
		if i > 0 {
			s += " "
		}
		s += fmt.Sprintf("%s=%s", ph.name, ph.d)
	}
	return s
}

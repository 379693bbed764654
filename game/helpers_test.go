package game

import (
	"math"
	"testing"

	"sharpshots/geom"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

// newTestContext returns a seeded context on a step clock with drops disabled
func newTestContext(t *testing.T) (*WorldContext, *StepClock) {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Seed = 7
	cfg.AsteroidDropChance = 0
	cfg.EnemyDropChance = 0
	clock := &StepClock{}
	return NewWorldContext(cfg, clock, NewRand(cfg.Seed)), clock
}

// newTestHandler parks the player at the center of the playfield
func newTestHandler(t *testing.T) (*EntityHandler, *StepClock) {
	t.Helper()
	ctx, clock := newTestContext(t)
	p := NewPlayer(geom.Point{X: 50, Y: 50}, ctx)
	return NewEntityHandler(ctx, p, nil), clock
}

func block(kind Kind, tag Tag, c geom.Point, side float64, vel geom.Vec) *Entity {
	return NewEntity(kind, tag, geom.Square(c, side), vel)
}

func rect(x, y, w, h float64) *geom.Polygon {
	return geom.MustPolygon([]geom.Point{{X: x, Y: y}, {X: x + w, Y: y}, {X: x + w, Y: y + h}, {X: x, Y: y + h}})
}

// fixedRand answers every draw with the same fraction
type fixedRand struct{ v float64 }

func (f fixedRand) Float64() float64               { return f.v }
func (f fixedRand) Uniform(lo, hi float64) float64 { return lo + (hi-lo)*f.v }
func (f fixedRand) Intn(n int) int                 { return int(f.v * float64(n)) }
func (f fixedRand) IntRange(lo, hi int) int        { return lo + int(f.v*float64(hi-lo)) }
func (f fixedRand) Discrete([]int) int             { return 0 }

package game

import (
	crand "crypto/rand"
	"io"
	"math/rand"

	"github.com/google/uuid"
)

// idSalt keeps the id stream apart from the gameplay stream of the same seed
const idSalt = 0x5eed1d5

// WorldContext is the shared state a simulation step reads from. The
// handler owns it and passes it to every behavior, so nothing in the
// package keeps a global target or clock.
type WorldContext struct {
	// Player is the entity enemies hunt. It stays set while the player is dead.
	Player *Entity

	Clock  Clock
	Rand   Rand
	Config Config

	// Frame counts completed handler updates
	Frame int

	// ids feeds entity ids; seeded runs replay the same ids
	ids io.Reader
}

// NewWorldContext builds a context on the given clock and random source
func NewWorldContext(config Config, clock Clock, rng Rand) *WorldContext {
	w := &WorldContext{
		Clock:  clock,
		Rand:   rng,
		Config: config,
		ids:    crand.Reader,
	}
	if config.Seed != 0 {
		w.ids = rand.New(rand.NewSource(config.Seed ^ idSalt))
	}
	return w
}

// NewID draws the next entity id
func (w *WorldContext) NewID() uuid.UUID {
	id, err := uuid.NewRandomFromReader(w.ids)
	if err != nil {
		return uuid.New()
	}
	return id
}

// Now returns the clock reading in milliseconds
func (w *WorldContext) Now() float64 {
	return w.Clock.Now()
}

package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrTimerNotFound is returned when a timer key was never added
var ErrTimerNotFound = errors.New("timer does not exist")

// Clock supplies monotonic time in milliseconds
type Clock interface {
	Now() float64
}

// WallClock reads real elapsed time since it was created
type WallClock struct {
	start time.Time
}

// NewWallClock creates a clock starting at zero
func NewWallClock() *WallClock {
	return &WallClock{start: time.Now()}
}

// Now returns milliseconds since the clock started
func (c *WallClock) Now() float64 {
	return float64(time.Since(c.start).Microseconds()) / 1000
}

// StepClock only moves when advanced. The game loop advances it by one
// frame per tick so that a seeded run replays exactly.
type StepClock struct {
	now float64
}

// Now returns the current time in milliseconds
func (c *StepClock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by ms milliseconds
func (c *StepClock) Advance(ms float64) {
	c.now += ms
}

// Timers is a keyed registry of duration/last-check pairs read against a clock
type Timers struct {
	clock     Clock
	durations map[string]float64
	previous  map[string]float64
}

// NewTimers creates an empty registry on clock
func NewTimers(clock Clock) *Timers {
	return &Timers{
		clock:     clock,
		durations: make(map[string]float64),
		previous:  make(map[string]float64),
	}
}

func (t *Timers) lookup(key string) (float64, error) {
	d, ok := t.durations[key]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrTimerNotFound, key)
	}
	return d, nil
}

// Has reports whether key was added
func (t *Timers) Has(key string) bool {
	_, ok := t.durations[key]
	return ok
}

// Add registers key with a duration in milliseconds, stamped now.
// Adding an existing key does nothing.
func (t *Timers) Add(key string, duration float64) {
	if t.Has(key) {
		return
	}
	t.durations[key] = duration
	t.previous[key] = t.clock.Now()
}

// Remove deletes key
func (t *Timers) Remove(key string) error {
	if _, err := t.lookup(key); err != nil {
		return err
	}
	delete(t.durations, key)
	delete(t.previous, key)
	return nil
}

// Check reports whether the duration has passed since the last stamp,
// and re-stamps the timer when it has
func (t *Timers) Check(key string) (bool, error) {
	d, err := t.lookup(key)
	if err != nil {
		return false, err
	}
	now := t.clock.Now()
	if now-t.previous[key] >= d {
		t.previous[key] = now
		return true, nil
	}
	return false, nil
}

// Peek is Check without the re-stamp
func (t *Timers) Peek(key string) (bool, error) {
	d, err := t.lookup(key)
	if err != nil {
		return false, err
	}
	return t.clock.Now()-t.previous[key] >= d, nil
}

// Elapsed returns the time since the last stamp, capped at the duration
func (t *Timers) Elapsed(key string) (float64, error) {
	d, err := t.lookup(key)
	if err != nil {
		return 0, err
	}
	e := t.clock.Now() - t.previous[key]
	if e > d {
		e = d
	}
	return e, nil
}

// TimeRemaining returns how long until the timer is ready, never negative
func (t *Timers) TimeRemaining(key string) (float64, error) {
	d, err := t.lookup(key)
	if err != nil {
		return 0, err
	}
	e, _ := t.Elapsed(key)
	return d - e, nil
}

// Duration returns the configured duration for key
func (t *Timers) Duration(key string) (float64, error) {
	return t.lookup(key)
}

// SetCheck stamps key with the current time
func (t *Timers) SetCheck(key string) error {
	if _, err := t.lookup(key); err != nil {
		return err
	}
	t.previous[key] = t.clock.Now()
	return nil
}

// ChangeDuration replaces the duration for key
func (t *Timers) ChangeDuration(key string, duration float64) error {
	if _, err := t.lookup(key); err != nil {
		return err
	}
	t.durations[key] = duration
	return nil
}

// RandomizeDuration sets the duration for key to a uniform value in [base, scale)
func (t *Timers) RandomizeDuration(key string, scale, base float64, rng Rand) error {
	if _, err := t.lookup(key); err != nil {
		return err
	}
	t.durations[key] = rng.Float64()*(scale-base) + base
	return nil
}

// must panics on a lookup failure. Behaviors only query keys they add
// at construction, so a failure here is a programming error.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// mustOK is must for calls that only return an error
func mustOK(err error) {
	if err != nil {
		panic(err)
	}
}

package game

import (
	"errors"
	"fmt"
	"log"
	"math"

	"sharpshots/geom"
)

// ErrGameOver is returned by Step once the player is out of lives
var ErrGameOver = errors.New("game over")

// maxStepMillis clamps a single wall-clock step so a stall does not teleport bodies
const maxStepMillis = 100.0

// FrameSink receives a snapshot after every completed frame
type FrameSink interface {
	OnFrame(s Snapshot) error
}

// FrameSinkFunc adapts a function to FrameSink
type FrameSinkFunc func(s Snapshot) error

// OnFrame calls f
func (f FrameSinkFunc) OnFrame(s Snapshot) error {
	return f(s)
}

// Result is the outcome of a finished run
type Result struct {
	Name     string
	Seed     int64
	Score    float64
	Frames   int
	Duration float64 // ms
	Lives    int
}

// Session runs the whole field: spawning, camera, the entity handler
// and the backdrop. It is the loop every front end drives.
type Session struct {
	ctx        *WorldContext
	handler    *EntityHandler
	background *Background
	scroll     geom.Vec
	last       float64
	sinks      []FrameSink
	over       bool
}

// NewSession builds a fresh run. A nil clock gets a StepClock, which
// advances one frame per Step.
func NewSession(config Config, clock Clock, input InputProvider) *Session {
	if clock == nil {
		clock = &StepClock{}
	}
	ctx := NewWorldContext(config, clock, NewRand(config.Seed))
	s := &Session{ctx: ctx}
	s.background = NewBackground(ctx.Rand, config.Scale)
	s.handler = NewEntityHandler(ctx, s.newPlayer(), input)
	s.scroll = s.followTarget()
	s.last = clock.Now()
	return s
}

func (s *Session) newPlayer() *Entity {
	c := s.ctx.Config.Scale / 2
	return NewPlayer(geom.Point{X: c, Y: c}, s.ctx)
}

// Handler returns the entity handler
func (s *Session) Handler() *EntityHandler { return s.handler }

// Context returns the world context
func (s *Session) Context() *WorldContext { return s.ctx }

// Background returns the backdrop
func (s *Session) Background() *Background { return s.background }

// Scroll returns the camera offset
func (s *Session) Scroll() geom.Vec { return s.scroll }

// Over reports whether the player has run out of lives
func (s *Session) Over() bool { return s.over }

// AddSink registers a frame observer
func (s *Session) AddSink(sink FrameSink) {
	s.sinks = append(s.sinks, sink)
}

// Restart begins a new run with a new player, keeping the sinks
func (s *Session) Restart() {
	s.handler.Restart(s.newPlayer())
	s.scroll = s.followTarget()
	s.over = false
	log.Printf("session: restart at frame %d", s.ctx.Frame)
}

// Step advances the simulation by one tick
func (s *Session) Step() error {
	if s.over {
		return ErrGameOver
	}
	if step, ok := s.ctx.Clock.(*StepClock); ok {
		step.Advance(s.ctx.Config.FrameMillis())
	}
	now := s.ctx.Clock.Now()
	elapsed := math.Min(now-s.last, maxStepMillis)
	s.last = now
	dt := elapsed / s.ctx.Config.TimeDivisor

	s.spawn()
	if err := s.handler.Update(dt, s.scroll); err != nil {
		return fmt.Errorf("frame %d: %w", s.ctx.Frame, err)
	}
	s.background.Update(dt)
	s.follow()

	if len(s.sinks) > 0 {
		snap := s.handler.Snapshot(s.scroll)
		for _, sink := range s.sinks {
			if err := sink.OnFrame(snap); err != nil {
				return fmt.Errorf("frame %d sink: %w", snap.Frame, err)
			}
		}
	}

	if pilot := PilotOf(s.handler.Player()); pilot != nil && pilot.GameOver(s.handler.Player()) {
		s.over = true
		log.Printf("session: game over, score %.0f after %d frames", pilot.Score, s.ctx.Frame)
		return ErrGameOver
	}
	return nil
}

// Run steps until the game ends or frames ticks have passed. A
// non-positive frames runs until game over.
func (s *Session) Run(frames int) error {
	for i := 0; frames <= 0 || i < frames; i++ {
		if err := s.Step(); err != nil {
			if errors.Is(err, ErrGameOver) {
				return nil
			}
			return err
		}
	}
	return nil
}

// Result summarizes the run so far
func (s *Session) Result() Result {
	r := Result{
		Name:     s.ctx.Config.PlayerName,
		Seed:     s.ctx.Config.Seed,
		Frames:   s.ctx.Frame,
		Duration: s.ctx.Now(),
	}
	if pilot := PilotOf(s.handler.Player()); pilot != nil {
		r.Score = pilot.Score
		r.Lives = pilot.Lives
	}
	return r
}

// spawn rolls the per-tick asteroid and enemy spawns
func (s *Session) spawn() {
	cfg := s.ctx.Config
	rng := s.ctx.Rand
	camera := s.handler.Camera(s.scroll)

	if rng.Float64() < cfg.AsteroidSpawnChance {
		s.handler.AddAsteroid(GenRandomAsteroid(s.ctx, camera))
	}
	if s.handler.NumEnemies() < cfg.MaxEnemies && rng.Float64() < cfg.EnemySpawnChance {
		c := camera.Center()
		reach := camera.Width()/2*math.Sqrt2 + EnemySize
		pos := c.Add(geom.FromAngle(reach, rng.Uniform(0, 360)))
		s.handler.AddEnemy(NewEnemy(pos, s.ctx))
	}
}

// followTarget is the scroll that centers the player on screen
func (s *Session) followTarget() geom.Vec {
	half := s.ctx.Config.Scale / 2
	return s.handler.Player().Center().Vec().Sub(geom.Vec{X: half, Y: half})
}

// follow eases the camera toward the player
func (s *Session) follow() {
	if s.handler.Player().IsDead() {
		return
	}
	gap := s.followTarget().Sub(s.scroll)
	s.scroll = s.scroll.Add(gap.Scale(s.ctx.Config.CameraLag))
}

package game

import (
	"math"

	"sharpshots/geom"
)

// Autopilot flies the player without a keyboard. It turns toward the
// nearest asteroid or enemy, closes distance, and fires when lined up.
// The headless runner and the terminal demo use it.
type Autopilot struct {
	// Standoff is the distance it tries to keep from its target
	Standoff float64

	// Window is how closely it must face the aim point to fire, in degrees
	Window float64

	// Deadband is the bearing error it tolerates without turning
	Deadband float64
}

// NewAutopilot returns an autopilot with demo-friendly settings
func NewAutopilot() *Autopilot {
	return &Autopilot{Standoff: 25, Window: 8, Deadband: 3}
}

// Poll steers toward the closest live target
func (a *Autopilot) Poll(view View) Intents {
	p := view.Player()
	if p == nil || p.IsDead() {
		return Intents{}
	}

	target := a.pick(p, view.Entities())
	in := Intents{}
	if pilot := PilotOf(p); pilot != nil && pilot.Ammo == 0 {
		in.Reload = true
	}
	if target == nil {
		return in
	}

	aim := PredictiveAim(p.Head(), target.Center(), target.Vel.Sub(p.Vel), p.ProjSpd)
	to := geom.Between(p.Center(), aim)
	if to.IsZero() {
		return in
	}
	diff := signedDegrees(to.RotAngle() - p.Rotation)
	switch {
	case diff > a.Deadband:
		in.TurnLeft = true
	case diff < -a.Deadband:
		in.TurnRight = true
	}
	in.Thrust = to.Norm() > a.Standoff && math.Abs(diff) < 45
	in.Shoot = math.Abs(diff) <= a.Window
	return in
}

// pick returns the nearest enemy, falling back to the nearest asteroid
func (a *Autopilot) pick(p *Entity, candidates []*Entity) *Entity {
	var best *Entity
	bestDist := math.Inf(1)
	bestEnemy := false
	c := p.Center()
	for _, e := range candidates {
		if e == p || e.IsDead() {
			continue
		}
		if e.Kind != KindEnemy && e.Kind != KindAsteroid {
			continue
		}
		enemy := e.Kind == KindEnemy
		if bestEnemy && !enemy {
			continue
		}
		d := c.DistanceTo(e.Center())
		if (enemy && !bestEnemy) || d < bestDist {
			best, bestDist, bestEnemy = e, d, enemy
		}
	}
	return best
}

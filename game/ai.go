package game

import (
	"math"

	"sharpshots/geom"
)

// AIState is the raider's current intent
type AIState int

const (
	AIStateIdle AIState = iota
	AIStateSeeking
	AIStateAttacking
)

// String names the state
func (s AIState) String() string {
	switch s {
	case AIStateIdle:
		return "idle"
	case AIStateSeeking:
		return "seeking"
	case AIStateAttacking:
		return "attacking"
	default:
		return "unknown"
	}
}

// fireWindow is how closely a raider must face its aim point to fire, in degrees
const fireWindow = 15.0

// think picks the raider's state and steering for this frame
func (r *Raider) think(e *Entity, target *Entity, dt float64) {
	r.thrusting = false
	r.aligned = false

	if target == nil || target.IsDead() {
		r.State = AIStateIdle
		return
	}

	aim := PredictiveAim(e.Head(), target.Center(), target.Vel, e.ProjSpd)
	bearing := e.Rotation
	if to := geom.Between(e.Center(), aim); to.IsNonZero() {
		bearing = to.RotAngle()
	}
	step := TurnToward(e.Rotation, bearing, r.TurnRate*dt)
	e.Rotate(step)

	if e.Center().DistanceTo(target.Center()) > r.Range {
		r.State = AIStateSeeking
		r.thrusting = true
		return
	}

	r.State = AIStateAttacking
	r.aligned = math.Abs(signedDegrees(bearing-e.Rotation)) <= fireWindow
}

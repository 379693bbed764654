package game

import (
	"math"

	"sharpshots/geom"
)

// PredictiveAim returns where a projectile fired from shooter at
// projectileSpeed meets a target moving at targetVel
func PredictiveAim(shooter, target geom.Point, targetVel geom.Vec, projectileSpeed float64) geom.Point {
	// If target is not moving, just return current position
	if math.Abs(targetVel.X) < 0.01 && math.Abs(targetVel.Y) < 0.01 {
		return target
	}

	distance := shooter.DistanceTo(target)
	if distance < 1.0 || projectileSpeed <= 0 {
		return target
	}

	// Find t such that |target + vel*t - shooter| = speed*t, starting from
	// the time to reach the current position
	t := distance / projectileSpeed
	for i := 0; i < 5; i++ {
		predicted := target.Add(targetVel.Scale(t))
		newT := shooter.DistanceTo(predicted) / projectileSpeed
		// If change is very small, we've converged
		if math.Abs(newT-t) < 0.001 {
			break
		}
		t = newT
	}

	return target.Add(targetVel.Scale(t))
}

// TurnToward returns the rotation step, in degrees, that moves current
// toward target without exceeding maxStep
func TurnToward(current, target, maxStep float64) float64 {
	diff := signedDegrees(target - current)
	if math.Abs(diff) > maxStep {
		if diff > 0 {
			return maxStep
		}
		return -maxStep
	}
	return diff
}

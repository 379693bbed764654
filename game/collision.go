package game

import (
	"math"

	"sharpshots/geom"
)

// ResolveCollision separates aggressor and victim along mtv, half each,
// then exchanges momentum between them as a one dimensional elastic
// collision on each axis independently. Mass is polygon area.
func ResolveCollision(aggressor, victim *Entity, mtv geom.Vec) {
	aggressor.Translate(mtv.Scale(0.5))
	victim.Translate(mtv.Scale(-0.5))

	m1 := aggressor.Area()
	m2 := victim.Area()
	v1 := aggressor.Vel
	v2 := victim.Vel

	aggressor.Vel, victim.Vel = elasticExchange(m1, m2, v1, v2)
}

// elasticExchange returns the post-collision velocities for masses m1 and m2
func elasticExchange(m1, m2 float64, v1, v2 geom.Vec) (geom.Vec, geom.Vec) {
	denom := m1 + m2
	out1 := geom.Vec{
		X: ((m1-m2)/denom)*v1.X + (2*m2/denom)*v2.X,
		Y: ((m1-m2)/denom)*v1.Y + (2*m2/denom)*v2.Y,
	}
	out2 := geom.Vec{
		X: (2*m1/denom)*v1.X + ((m2-m1)/denom)*v2.X,
		Y: (2*m1/denom)*v1.Y + ((m2-m1)/denom)*v2.Y,
	}
	return out1, out2
}

// CollisionDamage returns the damage each side takes from an impact. Each
// side is hit by half the other's mass times the difference in speed.
func CollisionDamage(a, b *Entity) (toA, toB float64) {
	toA = math.Abs(b.Area() / 2 * (b.Vel.Norm() - a.Vel.Norm()))
	toB = math.Abs(a.Area() / 2 * (a.Vel.Norm() - b.Vel.Norm()))
	return toA, toB
}

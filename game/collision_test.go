package game

import (
	"testing"

	"sharpshots/geom"
)

func TestResolveCollisionConservesMomentum(t *testing.T) {
	a := block(KindAsteroid, TagAsteroid, geom.Point{X: 0, Y: 0}, 4, geom.Vec{X: 1, Y: 0})
	b := block(KindAsteroid, TagAsteroid, geom.Point{X: 2.5, Y: 0}, 2, geom.Vec{X: -0.5, Y: 0.2})
	m1, m2 := a.Area(), b.Area()
	before := a.Vel.Scale(m1).Add(b.Vel.Scale(m2))
	energy := m1*a.Vel.X*a.Vel.X + m2*b.Vel.X*b.Vel.X

	mtv := a.Collide(b)
	if mtv.IsZero() {
		t.Fatal("expected the blocks to overlap")
	}
	ResolveCollision(a, b, mtv)

	after := a.Vel.Scale(m1).Add(b.Vel.Scale(m2))
	if !near(before.X, after.X) || !near(before.Y, after.Y) {
		t.Errorf("momentum changed from %v to %v", before, after)
	}
	if e := m1*a.Vel.X*a.Vel.X + m2*b.Vel.X*b.Vel.X; !near(energy, e) {
		t.Errorf("x kinetic energy changed from %f to %f", energy, e)
	}
	if rest := a.Collide(b); rest.Norm() > eps {
		t.Errorf("expected the blocks to be separated, still overlap by %v", rest)
	}
}

func TestEqualMassesSwapVelocities(t *testing.T) {
	a := block(KindAsteroid, TagAsteroid, geom.Point{X: 0, Y: 0}, 4, geom.Vec{X: 1, Y: 0})
	b := block(KindAsteroid, TagAsteroid, geom.Point{X: 3, Y: 0}, 4, geom.Vec{X: -1, Y: 0.5})
	ResolveCollision(a, b, a.Collide(b))
	if !near(a.Vel.X, -1) || !near(a.Vel.Y, 0.5) {
		t.Errorf("expected a to leave at (-1, 0.5), got %v", a.Vel)
	}
	if !near(b.Vel.X, 1) || !near(b.Vel.Y, 0) {
		t.Errorf("expected b to leave at (1, 0), got %v", b.Vel)
	}
}

func TestCollisionDamage(t *testing.T) {
	a := block(KindAsteroid, TagAsteroid, geom.Point{}, 4, geom.Vec{X: 2})
	b := block(KindEnemy, TagEnemy, geom.Point{X: 3}, 2, geom.Vec{})

	toA, toB := CollisionDamage(a, b)
	if !near(toA, b.Area()/2*2) {
		t.Errorf("expected a to take %f, got %f", b.Area(), toA)
	}
	if !near(toB, a.Area()/2*2) {
		t.Errorf("expected b to take %f, got %f", a.Area(), toB)
	}

	b.Vel = geom.Vec{Y: -2}
	if toA, toB = CollisionDamage(a, b); toA != 0 || toB != 0 {
		t.Errorf("equal speeds should deal no damage, got %f and %f", toA, toB)
	}
}

func TestCollideSkipsShieldedAndDead(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := NewPlayer(geom.Point{X: 10, Y: 10}, ctx)
	rock := block(KindAsteroid, TagAsteroid, geom.Point{X: 11, Y: 10}, 4, geom.Vec{})

	if p.Collide(rock).IsZero() {
		t.Fatal("expected an overlap before shielding")
	}
	PilotOf(p).invuln = true
	if !p.Collide(rock).IsZero() || !rock.Collide(p).IsZero() {
		t.Error("a shielded player should not collide from either side")
	}
	PilotOf(p).invuln = false

	rock.Die()
	if !p.Collide(rock).IsZero() || !rock.Collide(p).IsZero() {
		t.Error("a dead body should not collide from either side")
	}
}

func TestCircleAgainstPolygonDispatch(t *testing.T) {
	b := NewSlug(geom.Point{X: 1, Y: 0}, 0, 1, 1, TagEnemy)
	rock := block(KindAsteroid, TagAsteroid, geom.Point{}, 4, geom.Vec{})
	if b.Collide(rock).IsZero() || rock.Collide(b).IsZero() {
		t.Error("expected a projectile inside a block to collide both ways")
	}
	far := NewSlug(geom.Point{X: 20, Y: 0}, 0, 1, 1, TagEnemy)
	if !far.Collide(rock).IsZero() {
		t.Error("expected no collision for a distant projectile")
	}
}

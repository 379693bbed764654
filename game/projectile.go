package game

import (
	"errors"
	"math"

	"sharpshots/geom"
)

var (
	// ErrHomeWeight is returned for a home weight that would divide by ~zero
	ErrHomeWeight = errors.New("home weight must not be 1")

	// ErrNoTarget is returned when a homing projectile has neither a target nor a target tag
	ErrNoTarget = errors.New("homing projectile has no target")
)

const (
	// ProjectileSize is the hit radius of every projectile
	ProjectileSize = 1.5

	// HomingRange is the distance within which a homing projectile steers
	HomingRange = 30.0

	defaultHomeWeight = 0.1
)

// Slug is a plain projectile that flies straight
type Slug struct{}

// Update moves the projectile
func (Slug) Update(e *Entity, _ *WorldContext, dt float64) error {
	e.Integrate(dt)
	return nil
}

func newProjectile(pos geom.Point, degrees, speed, dmg float64, owner Tag) *Entity {
	return &Entity{
		Kind:     KindProjectile,
		Tag:      owner,
		Hit:      &geom.Circle{Center: pos, Radius: ProjectileSize},
		Vel:      geom.FromAngle(speed, degrees),
		Rotation: wrapDegrees(degrees),
		HP:       1,
		HPStat:   1,
		Dmg:      dmg,
		ProjSpd:  speed,
	}
}

// NewSlug creates a straight projectile at pos heading along degrees
func NewSlug(pos geom.Point, degrees, speed, dmg float64, owner Tag) *Entity {
	e := newProjectile(pos, degrees, speed, dmg, owner)
	e.Behavior = Slug{}
	return e
}

// Homing steers its projectile toward a fixed target or the nearest
// entity carrying a target tag
type Homing struct {
	Target     *Entity
	TargetTag  Tag
	Speed      float64
	AngleRange float64
	Range      float64
	homeWeight float64
}

// NewHoming creates a guided projectile. It needs a target or a target
// tag before its first steer.
func NewHoming(pos geom.Point, degrees, speed, dmg float64, owner Tag, angleRange float64) *Entity {
	e := newProjectile(pos, degrees, speed, dmg, owner)

	shape := must(geom.GenShape(3, ProjectileSize))
	shape.Recenter(pos)
	shape.Rotate(e.Vel.RotAngle())
	e.Shape = geom.NewBounded(shape)
	e.Rotation = e.Vel.RotAngle()

	e.Behavior = &Homing{
		Speed:      speed,
		AngleRange: angleRange,
		Range:      HomingRange,
		homeWeight: defaultHomeWeight,
	}
	return e
}

// HomingOf returns the Homing behavior of e, or nil
func HomingOf(e *Entity) *Homing {
	h, _ := e.Behavior.(*Homing)
	return h
}

// HomeWeight returns the steering divisor
func (h *Homing) HomeWeight() float64 {
	return h.homeWeight
}

// SetHomeWeight sets the steering divisor. Larger weights turn slower.
func (h *Homing) SetHomeWeight(w float64) error {
	if math.Abs(w-1) < 1.0e-7 {
		return ErrHomeWeight
	}
	h.homeWeight = w
	return nil
}

// SetTarget locks onto a specific entity
func (h *Homing) SetTarget(e *Entity) {
	h.Target = e
}

// SetTargetTag hunts the nearest entity carrying tag
func (h *Homing) SetTargetTag(tag Tag) {
	h.TargetTag = tag
}

// Validate reports ErrNoTarget when there is nothing to steer toward
func (h *Homing) Validate() error {
	if h.Target == nil && h.TargetTag == 0 {
		return ErrNoTarget
	}
	return nil
}

// Update moves the projectile
func (h *Homing) Update(e *Entity, _ *WorldContext, dt float64) error {
	e.Integrate(dt)
	return nil
}

// Steer turns the projectile toward its target. Targets beyond Range or
// outside the angle window are ignored.
func (h *Homing) Steer(e *Entity, candidates []*Entity, dt float64) error {
	if err := h.Validate(); err != nil {
		return err
	}

	target := h.Target
	if target == nil {
		target = h.nearest(e.Center(), candidates)
	}
	if target == nil || target.IsDead() {
		return nil
	}

	dist := geom.Between(e.Center(), target.Center())
	if dist.Norm() > h.Range || dist.IsZero() {
		return nil
	}
	diff := signedDegrees(dist.RotAngle() - e.Rotation)
	if math.Abs(diff) > h.AngleRange {
		return nil
	}

	e.Rotate(diff / h.homeWeight * dt)
	e.Vel = e.Vel.Add(dist.Scale(dt / h.homeWeight)).Clamp(h.Speed)
	return nil
}

func (h *Homing) nearest(c geom.Point, candidates []*Entity) *Entity {
	var best *Entity
	bestDist := math.Inf(1)
	for _, o := range candidates {
		if o.Tag != h.TargetTag || o.IsDead() {
			continue
		}
		d := c.DistanceTo(o.Center())
		if d > h.Range {
			continue
		}
		if d < bestDist {
			best = o
			bestDist = d
		}
	}
	return best
}

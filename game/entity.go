package game

import (
	"math"

	"github.com/google/uuid"

	"sharpshots/geom"
)

// Kind identifies which variant an entity is
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindAsteroid
	KindProjectile
	KindBuff
)

// String returns a lowercase name for the kind
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindAsteroid:
		return "asteroid"
	case KindProjectile:
		return "projectile"
	case KindBuff:
		return "buff"
	default:
		return "unknown"
	}
}

// Behavior is the variant-specific part of an entity. Update advances the
// entity one step and is responsible for calling Integrate when the
// variant moves like a plain body.
type Behavior interface {
	Update(e *Entity, ctx *WorldContext, dt float64) error
}

// Shielded behaviors can make their entity temporarily untouchable
type Shielded interface {
	Shielded() bool
}

// Mortal behaviors react to their entity's death
type Mortal interface {
	OnDeath(e *Entity)
}

// Shooter behaviors produce projectiles
type Shooter interface {
	HasShot() bool
	Shoot(e *Entity, ctx *WorldContext) (*Entity, error)
}

// Exhauster behaviors emit engine particles while thrusting
type Exhauster interface {
	CanGenExhaust(e *Entity) bool
}

// Entity is the shared physical record for everything that collides.
// Projectiles collide with Hit; every other kind collides with Shape.
type Entity struct {
	// ID is stamped when the entity enters a handler
	ID   uuid.UUID
	Kind Kind
	Tag  Tag

	Shape *geom.BoundedPolygon
	Hit   *geom.Circle

	Vel        geom.Vec
	Rotation   float64 // degrees, [0,360)
	AngularVel float64

	HP     float64
	HPStat float64

	Dmg        float64
	HomeChance float64
	DropChance float64
	ReloadTime float64
	Spd        float64
	MaxSpeed   float64
	ProjSpd    float64

	// Points is awarded to the player for destroying this entity
	Points float64

	// HeadIndex is the vertex projectiles leave from
	HeadIndex int

	Buffs  []*Entity
	Timers *Timers

	Behavior Behavior
}

// NewEntity creates an entity owning shape with hp equal to its area
func NewEntity(kind Kind, tag Tag, shape *geom.Polygon, vel geom.Vec) *Entity {
	e := &Entity{
		Kind:  kind,
		Tag:   tag,
		Shape: geom.NewBounded(shape),
		Vel:   vel,
	}
	e.HP = shape.Area()
	e.HPStat = e.HP
	return e
}

// Center returns the entity's position
func (e *Entity) Center() geom.Point {
	if e.Hit != nil {
		return e.Hit.Center
	}
	return e.Shape.Center()
}

// Area is the entity's mass. Projectiles weigh a tenth of their hit circle.
func (e *Entity) Area() float64 {
	if e.Hit != nil {
		return e.Hit.Area() / 10
	}
	return e.Shape.Poly.Area()
}

// Radius returns the collision radius
func (e *Entity) Radius() float64 {
	if e.Hit != nil {
		return e.Hit.Radius
	}
	return e.Shape.Poly.Radius()
}

// Head returns the muzzle point
func (e *Entity) Head() geom.Point {
	if e.Shape == nil {
		return e.Center()
	}
	return e.Shape.Poly.Vertex(e.HeadIndex)
}

// Bounds returns the broad-phase box
func (e *Entity) Bounds() geom.Rect {
	if e.Hit != nil {
		return e.Hit.Bounds()
	}
	return e.Shape.Box
}

// IsDead reports whether hp has dropped below tolerance
func (e *Entity) IsDead() bool {
	return e.HP < Tolerance
}

// CanBeDamaged reports whether the entity takes part in collisions
func (e *Entity) CanBeDamaged() bool {
	if e.IsDead() {
		return false
	}
	if s, ok := e.Behavior.(Shielded); ok && s.Shielded() {
		return false
	}
	return true
}

func (e *Entity) shielded() bool {
	s, ok := e.Behavior.(Shielded)
	return ok && s.Shielded()
}

// Collide returns the translation pushing e out of o, or the zero vector
// when they do not overlap or either side cannot be damaged.
func (e *Entity) Collide(o *Entity) geom.Vec {
	if !e.CanBeDamaged() || !o.CanBeDamaged() {
		return geom.Vec{}
	}
	return e.overlap(o)
}

// overlap runs the shape test without any capability checks
func (e *Entity) overlap(o *Entity) geom.Vec {
	switch {
	case e.Hit != nil && o.Hit != nil:
		return e.Hit.Collide(*o.Hit)
	case e.Hit != nil:
		return e.Hit.CollidePolygon(o.Shape)
	case o.Hit != nil:
		return e.Shape.CollideCircle(*o.Hit)
	default:
		return e.Shape.Collide(o.Shape)
	}
}

// Translate moves the entity by v
func (e *Entity) Translate(v geom.Vec) {
	if e.Shape != nil {
		e.Shape.Translate(v)
	}
	if e.Hit != nil {
		*e.Hit = e.Hit.Translate(v)
	}
}

// SetPosition moves the entity's center to p
func (e *Entity) SetPosition(p geom.Point) {
	e.Translate(geom.Between(e.Center(), p))
}

// Rotate turns the entity by degrees and wraps the heading into [0,360)
func (e *Entity) Rotate(degrees float64) {
	e.Rotation = wrapDegrees(e.Rotation + degrees)
	if e.Shape != nil {
		e.Shape.Rotate(degrees)
	}
}

// Integrate moves by vel*dt and turns by angularVel*dt
func (e *Entity) Integrate(dt float64) {
	e.Translate(e.Vel.Scale(dt))
	if e.AngularVel != 0 {
		e.Rotate(e.AngularVel * dt)
	}
}

// Update advances the entity through its behavior
func (e *Entity) Update(ctx *WorldContext, dt float64) error {
	if e.Behavior == nil {
		e.Integrate(dt)
		return nil
	}
	return e.Behavior.Update(e, ctx, dt)
}

// Damage subtracts hp and kills the entity once it falls below tolerance
func (e *Entity) Damage(amount float64) {
	if e.shielded() || e.IsDead() {
		return
	}
	e.HP -= amount
	if e.IsDead() {
		e.kill()
	}
}

// Die forces hp to zero
func (e *Entity) Die() {
	if e.shielded() {
		return
	}
	if e.IsDead() {
		e.HP = 0
		return
	}
	e.kill()
}

func (e *Entity) kill() {
	e.HP = 0
	if m, ok := e.Behavior.(Mortal); ok {
		m.OnDeath(e)
	}
}

// AddBuff attaches b and applies its effect once
func (e *Entity) AddBuff(b *Entity) {
	e.Buffs = append(e.Buffs, b)
	if p, ok := b.Behavior.(*Pickup); ok {
		p.Apply(e)
	}
}

// GenBuffs rolls the drop chance and, on success, attaches drops random buffs
func (e *Entity) GenBuffs(drops int, ctx *WorldContext) {
	if ctx.Rand.Float64() >= e.DropChance {
		return
	}
	c := e.Center()
	for i := 0; i < drops; i++ {
		e.AddBuff(GenBuff(c, ctx.Rand))
	}
}

// DropBuffs releases every carried buff at the entity's center
func (e *Entity) DropBuffs() []*Entity {
	if len(e.Buffs) == 0 {
		return nil
	}
	c := e.Center()
	dropped := e.Buffs
	for _, b := range dropped {
		b.SetPosition(c)
	}
	e.Buffs = nil
	return dropped
}

// wrapDegrees maps any angle into [0,360)
func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d -= 360
	}
	return d
}

// signedDegrees maps any angle into (-180,180]
func signedDegrees(d float64) float64 {
	d = wrapDegrees(d)
	if d > 180 {
		d -= 360
	}
	return d
}

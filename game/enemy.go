package game

import (
	"fmt"

	"sharpshots/geom"
)

const (
	enemyHP         = 10.0
	enemyDamage     = 5.0
	enemyMaxSpeed   = 1.0
	enemyThrust     = 1.0
	enemyTurnRate   = 10.0
	enemyCooldown   = 500.0
	enemyAmmo       = 5
	enemyReload     = 2000.0
	enemyRange      = 30.0
	enemyJitter     = 5.0
	enemyPoints     = 25.0
	enemyDecay      = 0.05
	enemyHomeWindow = 90.0
)

// Raider is the enemy behavior. It closes on the context's player until
// within range, then turns toward a predicted intercept and fires on a
// cooldown from a limited magazine.
type Raider struct {
	State    AIState
	TurnRate float64
	Range    float64
	Jitter   float64
	AmmoStat int
	Ammo     int

	thrusting bool
	aligned   bool
	shot      bool
	reloading bool
}

// NewEnemy creates a raider centered at c
func NewEnemy(c geom.Point, ctx *WorldContext) *Entity {
	shape := must(geom.GenShape(5, EnemySize))
	shape.Recenter(c)

	e := NewEntity(KindEnemy, TagEnemy, shape, geom.Vec{})
	e.HP = enemyHP
	e.HPStat = enemyHP
	e.Dmg = enemyDamage
	e.Spd = enemyThrust
	e.MaxSpeed = enemyMaxSpeed
	e.ProjSpd = enemyMaxSpeed * 1.25
	e.ReloadTime = enemyReload
	e.DropChance = ctx.Config.EnemyDropChance
	e.Points = enemyPoints

	e.Timers = NewTimers(ctx.Clock)
	e.Timers.Add(KeyShoot, enemyCooldown)
	e.Timers.Add(KeyReload, e.ReloadTime)
	e.Timers.Add(KeyExhaust, 10)

	e.Behavior = &Raider{
		State:    AIStateIdle,
		TurnRate: enemyTurnRate,
		Range:    enemyRange,
		Jitter:   enemyJitter,
		AmmoStat: enemyAmmo,
		Ammo:     enemyAmmo,
	}
	e.GenBuffs(1, ctx)
	return e
}

// RaiderOf returns the Raider behind e, or nil
func RaiderOf(e *Entity) *Raider {
	r, _ := e.Behavior.(*Raider)
	return r
}

// HasShot reports whether the raider fired this frame
func (r *Raider) HasShot() bool {
	return r.shot
}

// Reloading reports whether a reload is in progress
func (r *Raider) Reloading() bool {
	return r.reloading
}

// CanGenExhaust reports whether an exhaust particle is due
func (r *Raider) CanGenExhaust(e *Entity) bool {
	return r.thrusting && must(e.Timers.Check(KeyExhaust))
}

func (r *Raider) canShoot(e *Entity) bool {
	return must(e.Timers.Peek(KeyShoot)) && r.Ammo > 0 && !r.reloading
}

// Update steers toward the player, moves, and manages the magazine
func (r *Raider) Update(e *Entity, ctx *WorldContext, dt float64) error {
	r.shot = false
	r.think(e, ctx.Player, dt)

	if r.thrusting {
		e.Vel = e.Vel.AddPolar(e.Spd*dt, e.Rotation).Clamp(e.MaxSpeed)
	} else {
		e.Vel = e.Vel.Grow(-enemyDecay * e.MaxSpeed * dt)
	}
	e.Integrate(dt)

	if r.reloading && must(e.Timers.Check(KeyReload)) {
		r.Ammo = r.AmmoStat
		r.reloading = false
	} else if r.Ammo == 0 && !r.reloading {
		r.reloading = true
		mustOK(e.Timers.SetCheck(KeyReload))
	}

	if r.State == AIStateAttacking && r.aligned && r.canShoot(e) {
		r.shot = true
	}
	return nil
}

// Shoot fires from the nose with a small random miss angle
func (r *Raider) Shoot(e *Entity, ctx *WorldContext) (*Entity, error) {
	heading := e.Rotation + ctx.Rand.Uniform(-r.Jitter, r.Jitter)

	var b *Entity
	if ctx.Rand.Float64() < e.HomeChance {
		b = NewHoming(e.Head(), heading, e.ProjSpd, e.Dmg, e.Tag, enemyHomeWindow)
		h := HomingOf(b)
		h.SetTargetTag(GetOpposingTag(e.Tag))
		if err := h.SetHomeWeight(playerHomeWeight); err != nil {
			return nil, fmt.Errorf("enemy homing shot: %w", err)
		}
	} else {
		b = NewSlug(e.Head(), heading, e.ProjSpd, e.Dmg, e.Tag)
	}

	r.Ammo--
	r.shot = false
	if err := e.Timers.SetCheck(KeyShoot); err != nil {
		return nil, err
	}
	return b, nil
}

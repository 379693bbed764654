package game

import (
	"errors"
	"fmt"

	"sharpshots/geom"
)

// ErrHomingChance is returned for a homing modification outside [0,1]
var ErrHomingChance = errors.New("homing modification must be within [0, 1]")

const (
	playerLives      = 5
	playerHP         = 50.0
	playerDamage     = 30.0
	playerAmmo       = 10
	playerReload     = 1500.0
	playerMaxSpeed   = 2.0
	playerThrust     = 1.0
	playerTurnRate   = 10.0
	playerDecay      = 0.05
	playerHomeWeight = 20.0
	playerHomeWindow = 90.0
)

// Pilot is the player-controlled behavior
type Pilot struct {
	Lives int
	Score float64

	TurnRate float64
	AmmoStat int
	Ammo     int

	thrusting bool
	turnLeft  bool
	turnRight bool
	shot      bool
	reloading bool
	invuln    bool
}

// NewPlayer creates the player entity centered at c
func NewPlayer(c geom.Point, ctx *WorldContext) *Entity {
	shape := must(geom.GenShape(3, PlayerSize))
	shape.Recenter(c)

	e := NewEntity(KindPlayer, TagPlayer, shape, geom.Vec{})
	e.HP = playerHP
	e.HPStat = playerHP
	e.Dmg = playerDamage
	e.ReloadTime = playerReload
	e.Spd = playerThrust
	e.MaxSpeed = playerMaxSpeed
	e.ProjSpd = playerMaxSpeed * 1.25

	e.Timers = NewTimers(ctx.Clock)
	e.Timers.Add(KeyRespawn, 2500)
	e.Timers.Add(KeyInvuln, 5000)
	e.Timers.Add(KeyShoot, 150)
	e.Timers.Add(KeyReload, e.ReloadTime)
	e.Timers.Add(KeyExhaust, 10)

	e.Behavior = &Pilot{
		Lives:    playerLives,
		TurnRate: playerTurnRate,
		AmmoStat: playerAmmo,
		Ammo:     playerAmmo,
	}
	return e
}

// PilotOf returns the Pilot behind a player entity, or nil
func PilotOf(e *Entity) *Pilot {
	if e == nil {
		return nil
	}
	p, _ := e.Behavior.(*Pilot)
	return p
}

// Shielded reports whether the player is invulnerable
func (p *Pilot) Shielded() bool {
	return p.invuln
}

// Reloading reports whether a reload is in progress
func (p *Pilot) Reloading() bool {
	return p.reloading
}

// ReloadLeft returns the fraction of the reload still to go, 0 when not reloading
func (p *Pilot) ReloadLeft(e *Entity) float64 {
	if !p.reloading {
		return 0
	}
	d := must(e.Timers.Duration(KeyReload))
	if d <= 0 {
		return 0
	}
	return must(e.Timers.TimeRemaining(KeyReload)) / d
}

// Thrusting reports whether thrust was requested this frame
func (p *Pilot) Thrusting() bool {
	return p.thrusting
}

// HasShot reports whether the last HandleInputs fired
func (p *Pilot) HasShot() bool {
	return p.shot
}

// HandleInputs latches this frame's intents
func (p *Pilot) HandleInputs(e *Entity, in Intents) {
	p.thrusting = in.Thrust
	p.turnLeft = in.TurnLeft
	p.turnRight = in.TurnRight
	p.shot = false

	if in.Reload && !p.reloading && p.Ammo < p.AmmoStat {
		p.startReload(e)
	}
	if in.Shoot && p.canShoot(e) {
		p.shot = true
	}
}

func (p *Pilot) canShoot(e *Entity) bool {
	return must(e.Timers.Peek(KeyShoot)) && p.Ammo > 0 && !p.reloading
}

func (p *Pilot) startReload(e *Entity) {
	p.reloading = true
	mustOK(e.Timers.SetCheck(KeyReload))
}

// CanGenExhaust reports whether an exhaust particle is due
func (p *Pilot) CanGenExhaust(e *Entity) bool {
	return p.thrusting && must(e.Timers.Check(KeyExhaust))
}

// Update applies thrust and turning, moves, and advances the timers
func (p *Pilot) Update(e *Entity, ctx *WorldContext, dt float64) error {
	if p.thrusting {
		e.Vel = e.Vel.AddPolar(e.Spd*dt, e.Rotation).Clamp(e.MaxSpeed)
	} else {
		e.Vel = e.Vel.Grow(-playerDecay * e.MaxSpeed * dt)
	}

	if p.turnRight {
		e.Rotate(-p.TurnRate * dt)
	}
	if p.turnLeft {
		e.Rotate(p.TurnRate * dt)
	}

	e.Integrate(dt)

	if p.invuln && must(e.Timers.Check(KeyInvuln)) {
		p.invuln = false
	}

	if p.reloading && must(e.Timers.Check(KeyReload)) {
		p.Reload()
	} else if p.Ammo == 0 && !p.reloading {
		p.startReload(e)
	}
	return nil
}

// Reload refills the magazine
func (p *Pilot) Reload() {
	p.Ammo = p.AmmoStat
	p.reloading = false
}

// Shoot fires a plain or homing projectile from the nose and applies recoil
func (p *Pilot) Shoot(e *Entity, ctx *WorldContext) (*Entity, error) {
	var b *Entity
	if ctx.Rand.Float64() < e.HomeChance {
		b = NewHoming(e.Head(), e.Rotation, e.ProjSpd, e.Dmg, e.Tag, playerHomeWindow)
		h := HomingOf(b)
		h.SetTargetTag(GetOpposingTag(e.Tag))
		if err := h.SetHomeWeight(playerHomeWeight); err != nil {
			return nil, fmt.Errorf("player homing shot: %w", err)
		}
	} else {
		b = NewSlug(e.Head(), e.Rotation, e.ProjSpd, e.Dmg, e.Tag)
	}

	p.Ammo--
	p.shot = false
	if err := e.Timers.SetCheck(KeyShoot); err != nil {
		return nil, err
	}
	e.Vel = e.Vel.Sub(b.Vel.Scale(b.Area() / e.Area()))
	return b, nil
}

// OnDeath spends a life and starts the respawn countdown
func (p *Pilot) OnDeath(e *Entity) {
	p.Lives--
	if p.Lives > 0 {
		p.Score *= 0.75
	}
	mustOK(e.Timers.SetCheck(KeyRespawn))
}

// CanRespawn reports whether the respawn delay has passed and lives remain
func (p *Pilot) CanRespawn(e *Entity) bool {
	return must(e.Timers.Peek(KeyRespawn)) && p.Lives > 0
}

// Respawn restores the player and starts the invulnerability window
func (p *Pilot) Respawn(e *Entity) {
	e.HP = e.HPStat
	p.Ammo = p.AmmoStat
	p.reloading = false
	p.invuln = true
	mustOK(e.Timers.SetCheck(KeyInvuln))
}

// GameOver reports whether every life is spent
func (p *Pilot) GameOver(e *Entity) bool {
	return e.IsDead() && p.Lives <= 0
}

// Heal adds hp up to the cap
func (p *Pilot) Heal(e *Entity, value float64) {
	e.HP += value
	if e.HP > e.HPStat {
		e.HP = e.HPStat
	}
}

// IncreaseScore adds value to the score
func (p *Pilot) IncreaseScore(value float64) {
	p.Score += value
}

// ModifyHomingChance moves the homing chance toward 1 by scale
func (p *Pilot) ModifyHomingChance(e *Entity, scale float64) error {
	if scale < 0 || scale > 1 {
		return fmt.Errorf("%w: got %g", ErrHomingChance, scale)
	}
	if e.HomeChance < Tolerance {
		e.HomeChance = scale
		return nil
	}
	e.HomeChance += (1 - e.HomeChance) * scale
	if e.HomeChance > 1 {
		e.HomeChance = 1
	}
	return nil
}

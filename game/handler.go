package game

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"sharpshots/geom"
)

const (
	asteroidKillHeal = 0.05
	enemyKillHeal    = 0.25
	blastRadius      = 0.5
	blastPush        = 5.0
	explosionScale   = 1.5
	respawnBlastSize = 20.0
)

// EntityHandler owns every live entity and runs the per-frame pipeline:
// projectiles, then entities, then the pairwise collision sweep, then
// cleanup. Entities created during a phase are appended after it.
type EntityHandler struct {
	ctx   *WorldContext
	input InputProvider
	vfx   *VFX

	player      *Entity
	entities    []*Entity
	asteroids   []*Entity
	enemies     []*Entity
	buffs       []*Entity
	projectiles []*Entity

	// spawned holds entities created during the collision sweep
	spawned []*Entity

	phases PhaseTimes
}

// NewEntityHandler creates a handler around player. A nil input idles the player.
func NewEntityHandler(ctx *WorldContext, player *Entity, input InputProvider) *EntityHandler {
	if input == nil {
		input = NoInput{}
	}
	h := &EntityHandler{
		ctx:   ctx,
		input: input,
		vfx:   NewVFX(ctx.Rand, ctx.Config.Scale),
	}
	h.Restart(player)
	return h
}

// Restart drops everything and starts over with player
func (h *EntityHandler) Restart(player *Entity) {
	h.admit(player)
	h.player = player
	h.ctx.Player = player
	h.entities = []*Entity{player}
	h.asteroids = nil
	h.enemies = nil
	h.buffs = nil
	h.projectiles = nil
	h.spawned = nil
	h.vfx.Clear()
}

// SetInput replaces the player's input provider
func (h *EntityHandler) SetInput(input InputProvider) {
	h.input = input
}

// Context returns the shared world context
func (h *EntityHandler) Context() *WorldContext { return h.ctx }

// Player returns the player entity
func (h *EntityHandler) Player() *Entity { return h.player }

// Entities returns every non-projectile entity, player included
func (h *EntityHandler) Entities() []*Entity { return h.entities }

// Projectiles returns the live projectiles
func (h *EntityHandler) Projectiles() []*Entity { return h.projectiles }

// Asteroids returns the live asteroids
func (h *EntityHandler) Asteroids() []*Entity { return h.asteroids }

// Enemies returns the live enemies
func (h *EntityHandler) Enemies() []*Entity { return h.enemies }

// Buffs returns the pickups lying in the world
func (h *EntityHandler) Buffs() []*Entity { return h.buffs }

// VFX returns the effect list
func (h *EntityHandler) VFX() *VFX { return h.vfx }

// NumEnemies returns the number of tracked enemies
func (h *EntityHandler) NumEnemies() int { return len(h.enemies) }

// admit stamps an id on an entity entering the world
func (h *EntityHandler) admit(e *Entity) {
	if e.ID == uuid.Nil {
		e.ID = h.ctx.NewID()
	}
}

// AddAsteroid adds an asteroid
func (h *EntityHandler) AddAsteroid(a *Entity) {
	h.admit(a)
	h.entities = append(h.entities, a)
	h.asteroids = append(h.asteroids, a)
}

// AddEnemy adds an enemy
func (h *EntityHandler) AddEnemy(e *Entity) {
	h.admit(e)
	h.entities = append(h.entities, e)
	h.enemies = append(h.enemies, e)
}

// AddBuff drops a pickup into the world
func (h *EntityHandler) AddBuff(b *Entity) {
	h.admit(b)
	h.entities = append(h.entities, b)
	h.buffs = append(h.buffs, b)
}

// AddProjectile adds a projectile. A homing projectile without a target
// is rejected with ErrNoTarget.
func (h *EntityHandler) AddProjectile(b *Entity) error {
	if hm := HomingOf(b); hm != nil {
		if err := hm.Validate(); err != nil {
			return err
		}
	}
	h.admit(b)
	h.projectiles = append(h.projectiles, b)
	return nil
}

// Bounds returns the region outside which entities are culled
func (h *EntityHandler) Bounds(scroll geom.Vec) geom.Rect {
	s := h.ctx.Config.Scale
	return geom.NewRect(-s*2, s*3, s*3, -s*2).Translate(scroll)
}

// Camera returns the visible region
func (h *EntityHandler) Camera(scroll geom.Vec) geom.Rect {
	s := h.ctx.Config.Scale
	return geom.NewRect(0, s, s, 0).Translate(scroll)
}

// Update runs one frame of the pipeline
func (h *EntityHandler) Update(dt float64, scroll geom.Vec) error {
	bounds := h.Bounds(scroll)
	start := time.Now()
	lap := func(d *time.Duration) {
		now := time.Now()
		*d = now.Sub(start)
		start = now
	}

	if err := h.handleProjectiles(dt, bounds); err != nil {
		return err
	}
	lap(&h.phases.Projectiles)
	if err := h.updateEntities(dt, bounds); err != nil {
		return err
	}
	lap(&h.phases.Entities)
	h.collideEntities()
	lap(&h.phases.Collisions)
	h.cleanLists()
	lap(&h.phases.Cleanup)

	camera := h.Camera(scroll)
	for _, e := range h.entities {
		if !e.IsDead() && camera.Collide(e.Bounds()) {
			h.vfx.GenBuffParticles(e)
		}
	}
	h.vfx.Update(dt)
	lap(&h.phases.Effects)
	h.ctx.Frame++
	return nil
}

// Phases returns the time the last Update spent in each phase
func (h *EntityHandler) Phases() PhaseTimes { return h.phases }

func (h *EntityHandler) genExplosion(e *Entity) {
	h.vfx.GenExplosion(e.Center(), e.Radius()*explosionScale)
}

// hitWithProjectile applies a projectile hit on e. Same-tag pairs never
// touch, so friendly projectiles pass through.
func (h *EntityHandler) hitWithProjectile(b, e *Entity) bool {
	if b.Tag == e.Tag {
		return false
	}
	mtv := b.Collide(e)
	if mtv.IsZero() {
		return false
	}

	b.Damage(1)
	h.vfx.AddSparks(h.ctx.Rand.IntRange(3, 6), b.Center(), b.Vel.Clamp(1), 90)
	ResolveCollision(b, e, mtv)
	if !e.IsDead() {
		e.Damage(b.Dmg)
	}
	return true
}

// rewardPlayer credits the player for a kill
func (h *EntityHandler) rewardPlayer(victim *Entity) {
	pilot := PilotOf(h.player)
	if pilot == nil || h.player.IsDead() {
		return
	}
	pilot.IncreaseScore(victim.Points)
	switch victim.Kind {
	case KindAsteroid:
		pilot.Heal(h.player, victim.Area()*asteroidKillHeal)
	case KindEnemy:
		pilot.Heal(h.player, victim.Area()*enemyKillHeal)
	}
}

func (h *EntityHandler) handleProjectiles(dt float64, bounds geom.Rect) error {
	for i := 0; i < len(h.projectiles); i++ {
		b := h.projectiles[i]
		if b.IsDead() {
			continue
		}
		if !bounds.Contains(b.Center()) {
			b.Die()
			continue
		}

		if err := b.Update(h.ctx, dt); err != nil {
			return err
		}
		if hm := HomingOf(b); hm != nil {
			if err := hm.Steer(b, h.entities, dt); err != nil {
				return fmt.Errorf("steer projectile %s: %w", b.ID, err)
			}
		}

		if p := h.player; !p.IsDead() && h.hitWithProjectile(b, p) && p.IsDead() {
			h.genExplosion(p)
		}

		for _, targets := range [][]*Entity{h.asteroids, h.enemies} {
			for _, t := range targets {
				if b.IsDead() {
					break
				}
				if t.IsDead() {
					continue
				}
				if h.hitWithProjectile(b, t) && t.IsDead() && b.Tag == TagPlayer {
					h.rewardPlayer(t)
				}
			}
		}

		for j := i + 1; j < len(h.projectiles) && !b.IsDead(); j++ {
			o := h.projectiles[j]
			if o.IsDead() || b.Tag == o.Tag {
				continue
			}
			if b.Collide(o).IsZero() {
				continue
			}
			b.Die()
			o.Die()
			n := h.ctx.Rand.IntRange(2, 3)
			h.vfx.AddSparks(n, b.Center(), b.Vel.Scale(0.5), 360)
			h.vfx.AddSparks(n, o.Center(), o.Vel.Scale(0.5), 360)
			h.genExplosion(b)
			h.genExplosion(o)
		}
	}
	return nil
}

// fire turns a shooter's pending shot into a projectile
func (h *EntityHandler) fire(e *Entity) error {
	s, ok := e.Behavior.(Shooter)
	if !ok || !s.HasShot() {
		return nil
	}
	b, err := s.Shoot(e, h.ctx)
	if err != nil {
		return err
	}
	if err := h.AddProjectile(b); err != nil {
		return err
	}
	h.vfx.AddSparks(h.ctx.Rand.IntRange(3, 5), e.Head(), geom.FromAngle(0.75, e.Rotation), 180)
	return nil
}

// exhaust emits an engine particle behind a thrusting ship
func (h *EntityHandler) exhaust(e *Entity) {
	x, ok := e.Behavior.(Exhauster)
	if !ok || !x.CanGenExhaust(e) {
		return
	}
	tail := e.Center().Add(geom.FromAngle(-e.Radius(), e.Rotation))
	h.vfx.AddExhaust(tail, e.Vel)
}

// respawnBlast damages and shoves everything near a respawning player
func (h *EntityHandler) respawnBlast(p *Entity) {
	pc := p.Center()
	reach := h.ctx.Config.Scale * blastRadius
	blast := func(e *Entity) {
		dist := geom.Between(pc, e.Center())
		if dist.Norm() > reach {
			return
		}
		e.Damage(PlayerExplosionDamage)
		e.Vel = e.Vel.Add(dist.Clamp(blastPush))
		h.genExplosion(e)
	}
	for _, e := range h.entities {
		if e == p || e.Kind == KindBuff {
			continue
		}
		blast(e)
	}
	for _, b := range h.projectiles {
		blast(b)
	}
}

func (h *EntityHandler) updateEntities(dt float64, bounds geom.Rect) error {
	p := h.player
	pilot := PilotOf(p)
	if !p.IsDead() {
		if pilot != nil {
			pilot.HandleInputs(p, h.input.Poll(h))
		}
		if err := p.Update(h.ctx, dt); err != nil {
			return err
		}
		if err := h.fire(p); err != nil {
			return err
		}
		h.exhaust(p)
	} else if pilot != nil && pilot.CanRespawn(p) {
		pilot.Respawn(p)
		h.vfx.GenExplosion(p.Center(), p.Radius()*respawnBlastSize)
		h.respawnBlast(p)
	}

	var drops []*Entity
	for _, e := range h.enemies {
		if e.IsDead() {
			drops = append(drops, e.DropBuffs()...)
			h.genExplosion(e)
			continue
		}
		if !bounds.Contains(e.Center()) {
			e.Die()
			continue
		}
		if err := e.Update(h.ctx, dt); err != nil {
			return err
		}
		if err := h.fire(e); err != nil {
			return err
		}
		h.exhaust(e)
	}

	var children []*Entity
	for _, a := range h.asteroids {
		if !bounds.Contains(a.Center()) {
			a.Die()
			continue
		}
		if !a.IsDead() {
			if err := a.Update(h.ctx, dt); err != nil {
				return err
			}
			continue
		}
		children = append(children, GenChildren(a, h.ctx)...)
		drops = append(drops, a.DropBuffs()...)
		h.genExplosion(a)
	}

	for _, b := range h.buffs {
		if !bounds.Contains(b.Center()) {
			b.Die()
			continue
		}
		if err := b.Update(h.ctx, dt); err != nil {
			return err
		}
	}

	for _, b := range drops {
		h.AddBuff(b)
	}
	for _, c := range children {
		h.AddAsteroid(c)
	}
	return nil
}

// canObtainBuff reports whether receiver may collect b
func canObtainBuff(receiver, b *Entity) bool {
	return b.Kind == KindBuff &&
		receiver.Kind != KindBuff &&
		receiver.Kind != KindAsteroid &&
		receiver.Area() >= MinPickupArea
}

// asteroidBuffPass reports whether an asteroid/pickup pair should pass
// through each other. Only asteroids large enough push pickups around.
func asteroidBuffPass(a, b *Entity) bool {
	switch {
	case a.Kind == KindAsteroid && b.Kind == KindBuff:
		return a.Area() < MinPickupArea
	case b.Kind == KindAsteroid && a.Kind == KindBuff:
		return b.Area() < MinPickupArea
	}
	return false
}

// contact returns the collision vector for a pair in the sweep. Pickups
// are collected even by a shielded player, so they skip the shield check.
func contact(a, b *Entity) geom.Vec {
	if a.Kind == KindBuff || b.Kind == KindBuff {
		if a.IsDead() || b.IsDead() {
			return geom.Vec{}
		}
		return a.overlap(b)
	}
	return a.Collide(b)
}

// pickUp hands b to receiver and removes it from play
func (h *EntityHandler) pickUp(receiver, b *Entity, picked map[*Entity]bool) {
	receiver.AddBuff(b)
	picked[b] = true
	glow := PickupOf(b).Glow()
	h.vfx.AddPulse(b.Center(), 5, &glow)
	if receiver == h.player {
		if pilot := PilotOf(receiver); pilot != nil {
			pilot.IncreaseScore(PickupOf(b).Value)
		}
	}
}

// onKill handles an entity destroyed in the sweep
func (h *EntityHandler) onKill(victim, killer *Entity) {
	h.genExplosion(victim)
	if victim == h.player {
		return
	}
	h.spawned = append(h.spawned, victim.DropBuffs()...)
	if victim.Kind == KindAsteroid {
		h.spawned = append(h.spawned, GenChildren(victim, h.ctx)...)
	}
	if killer == h.player {
		h.rewardPlayer(victim)
	}
}

func (h *EntityHandler) collideEntities() {
	h.entities = purgeDead(h.entities, h.player)
	h.buffs = purgeDead(h.buffs, nil)

	picked := make(map[*Entity]bool)
	n := len(h.entities)
	for i := 0; i < n-1; i++ {
		a := h.entities[i]
		for j := i + 1; j < n; j++ {
			if a.IsDead() || picked[a] {
				break
			}
			b := h.entities[j]
			if b.IsDead() || picked[b] {
				continue
			}

			mtv := contact(a, b)
			if mtv.IsZero() {
				continue
			}

			if canObtainBuff(b, a) {
				h.pickUp(b, a, picked)
				continue
			}
			if canObtainBuff(a, b) {
				h.pickUp(a, b, picked)
				continue
			}
			if asteroidBuffPass(a, b) {
				continue
			}

			ResolveCollision(a, b, mtv)
			if a.Kind == KindBuff || b.Kind == KindBuff {
				continue
			}

			half := geom.Between(a.Center(), b.Center()).Scale(0.5)
			h.vfx.AddSparks(h.ctx.Rand.IntRange(5, 8), a.Center().Add(half), half.Clamp(0.75), 360)

			if a.Tag == b.Tag {
				continue
			}

			toA, toB := CollisionDamage(a, b)
			a.Damage(toA)
			b.Damage(toB)
			if a.IsDead() {
				h.onKill(a, b)
			}
			if b.IsDead() {
				h.onKill(b, a)
			}
		}
	}

	if len(picked) > 0 {
		h.entities = removeSet(h.entities, picked)
		h.buffs = removeSet(h.buffs, picked)
	}

	for _, e := range h.spawned {
		switch e.Kind {
		case KindBuff:
			h.AddBuff(e)
		case KindAsteroid:
			h.AddAsteroid(e)
		}
	}
	h.spawned = h.spawned[:0]
}

func (h *EntityHandler) cleanLists() {
	h.entities = purgeDead(h.entities, h.player)
	h.asteroids = purgeDead(h.asteroids, nil)
	h.enemies = purgeDead(h.enemies, nil)
	h.projectiles = purgeDead(h.projectiles, nil)
	h.buffs = purgeDead(h.buffs, nil)
}

// purgeDead filters dead entities in place, always keeping keep
func purgeDead(list []*Entity, keep *Entity) []*Entity {
	live := list[:0]
	for _, e := range list {
		if e == keep || !e.IsDead() {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(list); i++ {
		list[i] = nil
	}
	return live
}

// removeSet filters out every entity in set
func removeSet(list []*Entity, set map[*Entity]bool) []*Entity {
	live := list[:0]
	for _, e := range list {
		if !set[e] {
			live = append(live, e)
		}
	}
	for i := len(live); i < len(list); i++ {
		list[i] = nil
	}
	return live
}

// String summarizes the tracked sets
func (h *EntityHandler) String() string {
	return fmt.Sprintf("entities=%d asteroids=%d enemies=%d projectiles=%d pickups=%d",
		len(h.entities), len(h.asteroids), len(h.enemies), len(h.projectiles), len(h.buffs))
}

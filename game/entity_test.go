package game

import (
	"testing"

	"sharpshots/geom"
)

func TestRotationWraps(t *testing.T) {
	e := block(KindAsteroid, TagAsteroid, geom.Point{}, 2, geom.Vec{})
	e.Rotate(-30)
	if !near(e.Rotation, 330) {
		t.Errorf("expected 330, got %f", e.Rotation)
	}
	e.Rotate(400)
	if !near(e.Rotation, 10) {
		t.Errorf("expected 10, got %f", e.Rotation)
	}
	if got := signedDegrees(270); !near(got, -90) {
		t.Errorf("expected -90, got %f", got)
	}
}

func TestNewEntityHPIsArea(t *testing.T) {
	e := block(KindEnemy, TagEnemy, geom.Point{}, 3, geom.Vec{})
	if !near(e.HP, 9) || !near(e.HPStat, 9) {
		t.Errorf("expected hp 9/9, got %f/%f", e.HP, e.HPStat)
	}
}

func TestProjectileMassIsTenthOfCircle(t *testing.T) {
	b := NewSlug(geom.Point{}, 0, 1, 1, TagPlayer)
	want := b.Hit.Area() / 10
	if !near(b.Area(), want) {
		t.Errorf("expected %f, got %f", want, b.Area())
	}
}

func TestPlayerLosesOneLifePerDeath(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := NewPlayer(geom.Point{}, ctx)
	pilot := PilotOf(p)

	p.Damage(1000)
	if !p.IsDead() || pilot.Lives != playerLives-1 {
		t.Fatalf("expected one life lost, have %d lives", pilot.Lives)
	}
	p.Damage(1000)
	p.Die()
	if pilot.Lives != playerLives-1 {
		t.Errorf("repeat kills should not cost lives, have %d", pilot.Lives)
	}
	if p.HP != 0 {
		t.Errorf("expected hp 0, got %f", p.HP)
	}
}

func TestShieldBlocksDamage(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := NewPlayer(geom.Point{}, ctx)
	PilotOf(p).invuln = true
	p.Damage(1000)
	p.Die()
	if p.IsDead() {
		t.Error("a shielded player should survive")
	}
}

func TestDropBuffsMovesBuffsToCarrier(t *testing.T) {
	ctx, _ := newTestContext(t)
	e := NewEnemy(geom.Point{X: 20, Y: 30}, ctx)
	e.AddBuff(NewBuff(BuffSpeed, geom.Point{}))

	drops := e.DropBuffs()
	if len(drops) != 1 {
		t.Fatalf("expected one drop, got %d", len(drops))
	}
	if c := drops[0].Center(); !near(c.X, 20) || !near(c.Y, 30) {
		t.Errorf("expected drop at (20,30), got %v", c)
	}
	if len(e.Buffs) != 0 || e.DropBuffs() != nil {
		t.Error("expected buffs to be released once")
	}
}

func TestGenBuffsRollsDropChance(t *testing.T) {
	ctx, _ := newTestContext(t)
	ctx.Rand = fixedRand{v: 0.5}

	e := block(KindEnemy, TagEnemy, geom.Point{}, 3, geom.Vec{})
	e.DropChance = 0.4
	e.GenBuffs(1, ctx)
	if len(e.Buffs) != 0 {
		t.Errorf("expected no buff when the roll misses, got %d", len(e.Buffs))
	}
	e.DropChance = 0.6
	e.GenBuffs(2, ctx)
	if len(e.Buffs) != 2 {
		t.Errorf("expected two buffs when the roll hits, got %d", len(e.Buffs))
	}
}

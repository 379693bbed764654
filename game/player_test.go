package game

import (
	"errors"
	"testing"

	"sharpshots/geom"
)

func TestPlayerShootCooldownAndAmmo(t *testing.T) {
	ctx, clock := newTestContext(t)
	p := NewPlayer(geom.Point{X: 50, Y: 50}, ctx)
	pilot := PilotOf(p)

	pilot.HandleInputs(p, Intents{Shoot: true})
	if pilot.HasShot() {
		t.Fatal("should not fire before the cooldown")
	}

	clock.Advance(200)
	pilot.HandleInputs(p, Intents{Shoot: true})
	if !pilot.HasShot() {
		t.Fatal("expected a shot after the cooldown")
	}
	b, err := pilot.Shoot(p, ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Kind != KindProjectile || b.Tag != TagPlayer || b.Dmg != playerDamage {
		t.Errorf("unexpected projectile %s %s %f", b.Kind, b.Tag, b.Dmg)
	}
	if pilot.Ammo != playerAmmo-1 {
		t.Errorf("expected %d rounds, got %d", playerAmmo-1, pilot.Ammo)
	}
	if p.Vel.IsZero() {
		t.Error("expected recoil")
	}

	pilot.HandleInputs(p, Intents{Shoot: true})
	if pilot.HasShot() {
		t.Error("the cooldown should restart after a shot")
	}
}

func TestPlayerReloads(t *testing.T) {
	ctx, clock := newTestContext(t)
	p := NewPlayer(geom.Point{}, ctx)
	pilot := PilotOf(p)

	pilot.Ammo = 0
	if err := p.Update(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if !pilot.Reloading() {
		t.Fatal("expected an empty magazine to start a reload")
	}
	clock.Advance(200)
	pilot.HandleInputs(p, Intents{Shoot: true})
	if pilot.HasShot() {
		t.Error("should not fire while reloading")
	}

	clock.Advance(playerReload)
	if err := p.Update(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if pilot.Reloading() || pilot.Ammo != playerAmmo {
		t.Errorf("expected a full magazine, got %d (reloading %v)", pilot.Ammo, pilot.Reloading())
	}
}

func TestPlayerManualReload(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := NewPlayer(geom.Point{}, ctx)
	pilot := PilotOf(p)

	pilot.HandleInputs(p, Intents{Reload: true})
	if pilot.Reloading() {
		t.Error("a full magazine should not reload")
	}
	pilot.Ammo = 3
	pilot.HandleInputs(p, Intents{Reload: true})
	if !pilot.Reloading() {
		t.Error("expected a reload")
	}
}

func TestPlayerRespawn(t *testing.T) {
	ctx, clock := newTestContext(t)
	p := NewPlayer(geom.Point{}, ctx)
	pilot := PilotOf(p)
	pilot.Score = 100

	p.Damage(1000)
	if pilot.Score != 75 {
		t.Errorf("expected the score to drop to 75, got %f", pilot.Score)
	}
	if pilot.CanRespawn(p) {
		t.Fatal("should not respawn immediately")
	}
	clock.Advance(2500)
	if !pilot.CanRespawn(p) {
		t.Fatal("expected to respawn after the delay")
	}
	pilot.Respawn(p)
	if p.IsDead() || !pilot.Shielded() {
		t.Fatal("expected a live shielded player")
	}

	clock.Advance(5000)
	if err := p.Update(ctx, 0); err != nil {
		t.Fatal(err)
	}
	if pilot.Shielded() {
		t.Error("expected the shield to drop")
	}
}

func TestGameOverAfterLastLife(t *testing.T) {
	ctx, clock := newTestContext(t)
	p := NewPlayer(geom.Point{}, ctx)
	pilot := PilotOf(p)
	for i := 0; i < playerLives; i++ {
		p.Damage(1000)
		clock.Advance(2500)
		if i < playerLives-1 {
			pilot.Respawn(p)
			clock.Advance(5000)
			mustOK(p.Update(ctx, 0))
		}
	}
	if !pilot.GameOver(p) || pilot.CanRespawn(p) {
		t.Errorf("expected game over with %d lives", pilot.Lives)
	}
}

func TestModifyHomingChance(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := NewPlayer(geom.Point{}, ctx)
	pilot := PilotOf(p)
	if err := pilot.ModifyHomingChance(p, 1.5); !errors.Is(err, ErrHomingChance) {
		t.Errorf("expected ErrHomingChance, got %v", err)
	}
	mustOK(pilot.ModifyHomingChance(p, 0.5))
	mustOK(pilot.ModifyHomingChance(p, 0.5))
	if !near(p.HomeChance, 0.75) {
		t.Errorf("expected 0.75, got %f", p.HomeChance)
	}
}

func TestHealCapsAtMax(t *testing.T) {
	ctx, _ := newTestContext(t)
	p := NewPlayer(geom.Point{}, ctx)
	p.HP = 45
	PilotOf(p).Heal(p, 100)
	if p.HP != p.HPStat {
		t.Errorf("expected %f, got %f", p.HPStat, p.HP)
	}
}

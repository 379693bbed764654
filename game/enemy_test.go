package game

import (
	"testing"

	"sharpshots/geom"
)

func TestRaiderStates(t *testing.T) {
	tests := []struct {
		name       string
		target     *geom.Point
		deadTarget bool
		wantState  AIState
		wantThrust bool
		wantShot   bool
	}{
		{name: "out of range seeks", target: &geom.Point{X: 60}, wantState: AIStateSeeking, wantThrust: true},
		{name: "in range and aligned fires", target: &geom.Point{X: 20}, wantState: AIStateAttacking, wantShot: true},
		{name: "in range facing away holds fire", target: &geom.Point{X: -20}, wantState: AIStateAttacking},
		{name: "no target idles", wantState: AIStateIdle},
		{name: "dead target idles", target: &geom.Point{X: 20}, deadTarget: true, wantState: AIStateIdle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, clock := newTestContext(t)
			e := NewEnemy(geom.Point{}, ctx)
			r := RaiderOf(e)
			if tt.target != nil {
				ctx.Player = NewPlayer(*tt.target, ctx)
				if tt.deadTarget {
					ctx.Player.HP = 0
				}
			}

			clock.Advance(enemyCooldown)
			if err := e.Update(ctx, 1); err != nil {
				t.Fatal(err)
			}

			if r.State != tt.wantState {
				t.Errorf("expected state %s, got %s", tt.wantState, r.State)
			}
			if r.thrusting != tt.wantThrust {
				t.Errorf("expected thrusting %v, got %v", tt.wantThrust, r.thrusting)
			}
			if r.HasShot() != tt.wantShot {
				t.Errorf("expected shot %v, got %v", tt.wantShot, r.HasShot())
			}
			if tt.wantThrust && e.Vel.IsZero() {
				t.Error("expected a seeking raider to pick up speed")
			}
		})
	}
}

func TestRaiderMagazineCycle(t *testing.T) {
	ctx, clock := newTestContext(t)
	ctx.Player = NewPlayer(geom.Point{X: 20}, ctx)
	e := NewEnemy(geom.Point{}, ctx)
	r := RaiderOf(e)

	for i := 0; i < enemyAmmo; i++ {
		clock.Advance(enemyCooldown)
		mustOK(e.Update(ctx, 1))
		if !r.HasShot() {
			t.Fatalf("expected shot %d to be ready", i+1)
		}
		if _, err := r.Shoot(e, ctx); err != nil {
			t.Fatal(err)
		}
	}
	if r.Ammo != 0 {
		t.Fatalf("expected an empty magazine, got %d", r.Ammo)
	}

	mustOK(e.Update(ctx, 1))
	if !r.Reloading() || r.HasShot() {
		t.Fatalf("expected a reload without firing, reloading=%v shot=%v", r.Reloading(), r.HasShot())
	}

	clock.Advance(enemyReload - 1)
	mustOK(e.Update(ctx, 1))
	if !r.Reloading() || r.HasShot() || r.Ammo != 0 {
		t.Fatalf("reload finished early: ammo %d", r.Ammo)
	}

	clock.Advance(1)
	mustOK(e.Update(ctx, 1))
	if r.Reloading() || r.Ammo != r.AmmoStat {
		t.Errorf("expected a full magazine, got %d/%d reloading=%v", r.Ammo, r.AmmoStat, r.Reloading())
	}
}

func TestRaiderShotComesFromNose(t *testing.T) {
	ctx, clock := newTestContext(t)
	ctx.Player = NewPlayer(geom.Point{X: 20}, ctx)
	e := NewEnemy(geom.Point{}, ctx)
	r := RaiderOf(e)

	clock.Advance(enemyCooldown)
	mustOK(e.Update(ctx, 1))
	b, err := r.Shoot(e, ctx)
	if err != nil {
		t.Fatal(err)
	}
	if b.Tag != TagEnemy || b.Kind != KindProjectile {
		t.Errorf("unexpected projectile %s/%s", b.Kind, b.Tag)
	}
	if d := b.Center().DistanceTo(e.Head()); d > eps {
		t.Errorf("expected the shot at the nose, %f away", d)
	}
	if r.HasShot() {
		t.Error("shooting should clear the pending shot")
	}
	if r.canShoot(e) {
		t.Error("expected the cooldown to block an immediate second shot")
	}
}

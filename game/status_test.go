package game

import (
	"testing"

	"sharpshots/geom"
)

func TestHPGlowFades(t *testing.T) {
	if got := HPGlow(50, 50); got != GetTagConfig(TagPlayer).Glow {
		t.Errorf("expected the player glow at full health, got %v", got)
	}
	if got := HPGlow(25, 50); got != Lerp(MidHPGlow, LowHPGlow, 0.5) {
		t.Errorf("unexpected glow at half health %v", got)
	}
	if got := HPGlow(0, 50); got != LowHPGlow {
		t.Errorf("expected the low glow at zero health, got %v", got)
	}
}

func TestHealthBarShrinksFromTheLeft(t *testing.T) {
	frame, fill := healthBar(97, 97, 100, 0.5)
	if len(frame) != 4 || len(fill) != 4 {
		t.Fatalf("expected quads, got %d and %d points", len(frame), len(fill))
	}
	if !near(frame[3].X, 47) || !near(frame[2].X, 46) {
		t.Errorf("unexpected frame %v", frame)
	}
	want := geom.Point{X: 97, Y: 95}.Add(AccentOffset)
	if !near(fill[0].X, want.X) || !near(fill[0].Y, want.Y) {
		t.Errorf("expected the fill anchored at %v, got %v", want, fill[0])
	}
	if !near(fill[3].X, 72+AccentOffset.X) {
		t.Errorf("expected half the width filled, left edge at %f", fill[3].X)
	}
}

func TestReloadLeft(t *testing.T) {
	ctx, clock := newTestContext(t)
	p := NewPlayer(geom.Point{}, ctx)
	pilot := PilotOf(p)
	if pilot.ReloadLeft(p) != 0 {
		t.Error("expected nothing left when not reloading")
	}

	pilot.Ammo = 0
	mustOK(p.Update(ctx, 0))
	if !near(pilot.ReloadLeft(p), 1) {
		t.Errorf("expected a fresh reload, got %f", pilot.ReloadLeft(p))
	}
	clock.Advance(playerReload / 2)
	if !near(pilot.ReloadLeft(p), 0.5) {
		t.Errorf("expected half the reload left, got %f", pilot.ReloadLeft(p))
	}
}

func TestDrawStatus(t *testing.T) {
	h, _ := newTestHandler(t)
	pilot := PilotOf(h.Player())

	full := &RecordingCanvas{}
	h.DrawStatus(full)
	if full.Circles != 2*playerAmmo {
		t.Errorf("expected a pip and shadow per round, got %d circles", full.Circles)
	}
	if full.Polygons != 12 {
		t.Errorf("expected frame, glow and bar outlines, got %d", full.Polygons)
	}

	pilot.Ammo = 0
	mustOK(h.Player().Update(h.Context(), 0))
	empty := &RecordingCanvas{}
	h.DrawStatus(empty)
	if empty.Circles != 0 {
		t.Errorf("expected no pips, got %d", empty.Circles)
	}
	if empty.Polygons != full.Polygons+2 {
		t.Errorf("expected the reload bar, got %d outlines", empty.Polygons)
	}
}

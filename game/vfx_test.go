package game

import (
	"image/color"
	"testing"

	"sharpshots/geom"
)

func TestEffectsDieOut(t *testing.T) {
	v := NewVFX(NewRand(3), 100)
	glow := color.NRGBA{255, 0, 0, 40}
	v.AddSparks(6, geom.Point{}, geom.Vec{X: 1}, 360)
	v.AddExhaust(geom.Point{}, geom.Vec{X: 0.5})
	v.AddPulse(geom.Point{}, 5, &glow)
	v.GenExplosion(geom.Point{X: 4}, 3)
	if v.Len() == 0 {
		t.Fatal("expected live effects")
	}

	for i := 0; i < 2000 && v.Len() > 0; i++ {
		v.Update(1)
	}
	if v.Len() != 0 {
		t.Errorf("expected every effect to die, %d left", v.Len())
	}
}

func TestSparksRespectSpeedCap(t *testing.T) {
	v := NewVFX(NewRand(3), 100)
	v.AddSparks(20, geom.Point{}, geom.Vec{X: 100}, 90)
	for _, e := range v.Effects() {
		s := e.(*Spark)
		if s.Vel.Norm() > v.sparkMax+eps {
			t.Errorf("spark speed %f exceeds %f", s.Vel.Norm(), v.sparkMax)
		}
	}
}

func TestLerpClamps(t *testing.T) {
	a := color.NRGBA{0, 100, 200, 255}
	b := color.NRGBA{100, 100, 0, 0}
	if got := Lerp(a, b, 0.5); got != (color.NRGBA{50, 100, 100, 127}) {
		t.Errorf("unexpected midpoint %v", got)
	}
	if got := Lerp(a, b, 2); got != (color.NRGBA{200, 100, 0, 0}) {
		t.Errorf("expected clamping, got %v", got)
	}
}

func TestBuffParticlesNeedBuffs(t *testing.T) {
	v := NewVFX(fixedRand{v: 0}, 100)
	e := block(KindEnemy, TagEnemy, geom.Point{}, 3, geom.Vec{})
	v.GenBuffParticles(e)
	if v.Len() != 0 {
		t.Errorf("expected no particles without buffs, got %d", v.Len())
	}
	e.Buffs = append(e.Buffs, NewBuff(BuffSpeed, geom.Point{}))
	v.GenBuffParticles(e)
	if v.Len() != 1 {
		t.Errorf("expected one particle, got %d", v.Len())
	}
}

func TestDrawSkipsOffscreenAndDead(t *testing.T) {
	h, _ := newTestHandler(t)
	h.AddAsteroid(NewAsteroid(h.Context(), rect(500, 500, 4, 4), geom.Vec{}, 2))
	dead := NewAsteroid(h.Context(), rect(10, 10, 4, 4), geom.Vec{}, 2)
	dead.Die()
	h.AddAsteroid(dead)

	cv := &RecordingCanvas{}
	h.Draw(cv, geom.Vec{})
	onlyPlayer := *cv

	h.AddAsteroid(NewAsteroid(h.Context(), rect(20, 20, 4, 4), geom.Vec{}, 2))
	cv = &RecordingCanvas{}
	h.Draw(cv, geom.Vec{})
	if cv.Polygons <= onlyPlayer.Polygons {
		t.Errorf("expected a visible asteroid to add outlines, %d vs %d", cv.Polygons, onlyPlayer.Polygons)
	}
}

func TestBackgroundStaysOnCamera(t *testing.T) {
	bg := NewBackground(NewRand(5), 100)
	for i := 0; i < 5000; i++ {
		bg.Update(1)
	}
	for i, o := range bg.objs {
		c := o.shape.Center()
		if c.X < -100 || c.X > 200 || c.Y < -100 || c.Y > 200 {
			t.Errorf("backdrop %d escaped to %v", i, c)
		}
	}
	cv := &RecordingCanvas{}
	bg.Draw(cv)
	if cv.Fills != len(bg.objs) {
		t.Errorf("expected %d fills, got %d", len(bg.objs), cv.Fills)
	}
}

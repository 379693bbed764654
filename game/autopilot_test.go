package game

import (
	"testing"

	"sharpshots/geom"
)

func TestAutopilotTurnsTowardTarget(t *testing.T) {
	h, _ := newTestHandler(t)
	p := h.Player()
	h.AddAsteroid(NewAsteroid(h.Context(), rect(48, 80, 4, 4), geom.Vec{}, 2))

	in := NewAutopilot().Poll(h)
	if !in.TurnLeft || in.TurnRight {
		t.Errorf("expected a left turn toward a target above, got %+v", in)
	}
	if in.Shoot {
		t.Error("should not fire while facing away")
	}

	p.Rotate(90)
	in = NewAutopilot().Poll(h)
	if !in.Shoot || in.TurnLeft || in.TurnRight {
		t.Errorf("expected to fire when lined up, got %+v", in)
	}
	if !in.Thrust {
		t.Error("expected to close distance on a far target")
	}
}

func TestAutopilotPrefersEnemies(t *testing.T) {
	h, _ := newTestHandler(t)
	h.AddAsteroid(NewAsteroid(h.Context(), rect(55, 48, 4, 4), geom.Vec{}, 2))
	enemy := NewEnemy(geom.Point{X: 10, Y: 50}, h.Context())
	h.AddEnemy(enemy)

	if got := NewAutopilot().pick(h.Player(), h.Entities()); got != enemy {
		t.Errorf("expected the enemy, got %v", got)
	}
}

func TestAutopilotIdlesWhenDead(t *testing.T) {
	h, _ := newTestHandler(t)
	h.Player().Damage(1000)
	if in := NewAutopilot().Poll(h); in != (Intents{}) {
		t.Errorf("expected no intents, got %+v", in)
	}
}

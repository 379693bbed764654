package game

import (
	"strings"
	"testing"
	"time"

	"sharpshots/geom"
)

func TestPhaseTimesSlowest(t *testing.T) {
	p := PhaseTimes{Projectiles: 2 * time.Millisecond, Entities: 5 * time.Millisecond, Collisions: 5 * time.Millisecond, Cleanup: time.Millisecond}
	name, d := p.Slowest()
	if name != "entities" || d != 5*time.Millisecond {
		t.Errorf("expected entities at 5ms, got %s at %s", name, d)
	}
	if p.Total() != 13*time.Millisecond {
		t.Errorf("expected 13ms total, got %s", p.Total())
	}
	if name, _ := (PhaseTimes{}).Slowest(); name != "projectiles" {
		t.Errorf("an empty breakdown should report the first phase, got %s", name)
	}
}

func TestPhaseTimesAverage(t *testing.T) {
	var sum PhaseTimes
	for i := 0; i < 4; i++ {
		sum = sum.Add(PhaseTimes{Collisions: 8 * time.Millisecond, Effects: time.Millisecond})
	}
	avg := sum.Average(4)
	if avg.Collisions != 8*time.Millisecond || avg.Effects != time.Millisecond {
		t.Errorf("unexpected average %s", avg)
	}
	if (sum.Average(0) != PhaseTimes{}) {
		t.Error("averaging zero frames should yield an empty breakdown")
	}
}

func TestPhaseTimesString(t *testing.T) {
	s := PhaseTimes{Cleanup: time.Millisecond}.String()
	want := []string{"projectiles=0s", "entities=0s", "collisions=0s", "cleanup=1ms", "effects=0s"}
	for _, w := range want {
		if !strings.Contains(s, w) {
			t.Errorf("expected %q in %q", w, s)
		}
	}
	if strings.Index(s, "projectiles") > strings.Index(s, "effects") {
		t.Errorf("phases out of pipeline order: %q", s)
	}
}

func TestUpdateRecordsPhases(t *testing.T) {
	h, _ := newTestHandler(t)
	if (h.Phases() != PhaseTimes{}) {
		t.Fatal("a fresh handler should have no timings")
	}
	for i := 0; i < 3; i++ {
		h.AddAsteroid(NewAsteroid(h.Context(), rect(float64(10+20*i), 10, 6, 6), geom.Vec{X: 0.1}, 4))
	}
	if err := h.Update(1, geom.Vec{}); err != nil {
		t.Fatalf("update: %v", err)
	}
	p := h.Phases()
	if p.Total() < 0 || p.Total() != p.Projectiles+p.Entities+p.Collisions+p.Cleanup+p.Effects {
		t.Errorf("inconsistent timings %s", p)
	}
}

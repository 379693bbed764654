package game

import (
	"testing"

	"sharpshots/geom"
)

func TestThresholdAsteroidDoesNotFragment(t *testing.T) {
	ctx, _ := newTestContext(t)
	a := NewAsteroid(ctx, rect(0, 0, 5, 7), geom.Vec{X: 1}, 5)
	if !near(a.Area(), ParentSizeThreshold) {
		t.Fatalf("expected area %f, got %f", ParentSizeThreshold, a.Area())
	}
	if CanSpawn(a) {
		t.Error("an asteroid exactly at the threshold should not fragment")
	}
	a.Die()
	if kids := GenChildren(a, ctx); len(kids) != 0 {
		t.Errorf("expected no children, got %d", len(kids))
	}
}

func TestLargeAsteroidFragments(t *testing.T) {
	ctx, _ := newTestContext(t)
	const radius = 7.0
	a := NewAsteroid(ctx, rect(0, 0, 7, 15), geom.Vec{X: 1}, radius)
	if !near(a.Area(), 3*ParentSizeThreshold) || !near(a.HP, 3*a.Area()) {
		t.Fatalf("unexpected area %f or hp %f", a.Area(), a.HP)
	}
	a.Die()

	kids := GenChildren(a, ctx)
	if len(kids) == 0 {
		t.Fatal("expected at least one child")
	}
	if len(kids) > MaxChildren {
		t.Errorf("expected at most %d children, got %d", MaxChildren, len(kids))
	}
	if total := ChildRadius(kids); total > radius*childBudget+eps {
		t.Errorf("children share %f of radius, budget is %f", total, radius*childBudget)
	}
	for i, k := range kids {
		r := RockOf(k).Radius
		if r < MinSpawnRadius || r > radius*childCap+eps {
			t.Errorf("child %d radius %f outside [%f, %f]", i, r, MinSpawnRadius, radius*childCap)
		}
		if k.Kind != KindAsteroid || k.IsDead() {
			t.Errorf("child %d should be a live asteroid", i)
		}
	}

	if again := GenChildren(a, ctx); len(again) != 0 {
		t.Errorf("a parent should fragment once, got %d more children", len(again))
	}
}

func TestFragmentationIsSeeded(t *testing.T) {
	shatter := func() []*Entity {
		ctx, _ := newTestContext(t)
		a := GenAsteroid(ctx, 20, 30, geom.Vec{X: 0.4, Y: -0.3}, 8)
		a.Die()
		return GenChildren(a, ctx)
	}
	first, second := shatter(), shatter()
	if len(first) == 0 {
		t.Fatal("expected the asteroid to fragment")
	}
	if len(first) != len(second) {
		t.Fatalf("child count %d vs %d", len(first), len(second))
	}
	for i := range first {
		if RockOf(first[i]).Radius != RockOf(second[i]).Radius {
			t.Errorf("child %d radius %f vs %f", i, RockOf(first[i]).Radius, RockOf(second[i]).Radius)
		}
		if first[i].Center() != second[i].Center() {
			t.Errorf("child %d center %v vs %v", i, first[i].Center(), second[i].Center())
		}
	}
}

func TestFragmentationTerminates(t *testing.T) {
	ctx, _ := newTestContext(t)
	queue := []*Entity{GenAsteroid(ctx, 0, 0, geom.Vec{X: 0.5, Y: 0.2}, 12)}
	generated := 0
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		a.Die()
		kids := GenChildren(a, ctx)
		for _, k := range kids {
			if RockOf(k).Radius >= RockOf(a).Radius {
				t.Fatalf("child radius %f not smaller than parent %f", RockOf(k).Radius, RockOf(a).Radius)
			}
		}
		generated += len(kids)
		queue = append(queue, kids...)
		if generated > 10000 {
			t.Fatal("fragmentation did not terminate")
		}
	}
}

func TestRandomAsteroidSpawnsOffCamera(t *testing.T) {
	ctx, _ := newTestContext(t)
	camera := geom.NewRect(0, 100, 100, 0)
	for i := 0; i < 20; i++ {
		a := GenRandomAsteroid(ctx, camera)
		if camera.Contains(a.Center()) {
			t.Errorf("asteroid %d spawned inside the camera at %v", i, a.Center())
		}
		inward := geom.Between(a.Center(), camera.Center())
		if a.Vel.Dot(inward) <= 0 {
			t.Errorf("asteroid %d drifts away from the camera", i)
		}
	}
}

package geom

import "testing"

func TestRectContainsIsStrict(t *testing.T) {
	r := NewRect(0, 10, 10, 0)
	if !r.Contains(Point{5, 5}) {
		t.Error("center must be contained")
	}
	if r.Contains(Point{0, 5}) {
		t.Error("an edge point must not be strictly contained")
	}
	if !r.Encloses(Point{0, 5}) {
		t.Error("an edge point must be enclosed")
	}
}

func TestRectCollide(t *testing.T) {
	a := NewRect(0, 10, 10, 0)
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"overlap", NewRect(5, 15, 5, -5), true},
		{"touching", NewRect(10, 20, 10, 0), true},
		{"apart x", NewRect(11, 20, 10, 0), false},
		{"apart y", NewRect(0, 10, 30, 20), false},
		{"inside", NewRect(2, 3, 3, 2), true},
	}
	for _, tt := range tests {
		if got := a.Collide(tt.b); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
		if got := tt.b.Collide(a); got != tt.want {
			t.Errorf("%s (swapped): expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestEncompass(t *testing.T) {
	r := Encompass([]Point{{1, 2}, {-3, 5}, {4, -1}})
	if r != NewRect(-3, 4, 5, -1) {
		t.Errorf("unexpected box %+v", r)
	}
}

func TestRectTranslate(t *testing.T) {
	r := NewRect(0, 1, 1, 0).Translate(Vec{2, 3})
	if r != NewRect(2, 3, 4, 3) {
		t.Errorf("unexpected box %+v", r)
	}
}

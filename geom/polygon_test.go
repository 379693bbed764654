package geom

import (
	"errors"
	"math"
	"math/rand"
	"testing"
)

func TestNewPolygonErrors(t *testing.T) {
	if _, err := NewPolygonXY([]float64{0, 1, 2}, []float64{0, 1}); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if _, err := NewPolygon([]Point{{0, 0}, {1, 1}}); !errors.Is(err, ErrDegenerate) {
		t.Errorf("expected ErrDegenerate, got %v", err)
	}
	if _, err := GenShape(2, 1); !errors.Is(err, ErrDegenerate) {
		t.Errorf("expected ErrDegenerate for a two sided shape, got %v", err)
	}
}

func TestPolygonDerived(t *testing.T) {
	p := Square(Point{1, 2}, 4)
	if c := p.Center(); !near(c.X, 1) || !near(c.Y, 2) {
		t.Errorf("expected center (1,2), got %v", c)
	}
	if !near(p.Area(), 16) {
		t.Errorf("expected area 16, got %f", p.Area())
	}
	if !near(p.Radius(), 2*math.Sqrt2) {
		t.Errorf("expected radius 2*sqrt2, got %f", p.Radius())
	}
	if len(p.Edges()) != 4 || len(p.Normals()) != 4 {
		t.Errorf("expected 4 edges and normals, got %d and %d", len(p.Edges()), len(p.Normals()))
	}
}

func TestNormalsPointOutwardForBothWindings(t *testing.T) {
	ccw := MustPolygon([]Point{{0, 0}, {4, 0}, {5, 3}, {1, 4}})
	cw := MustPolygon([]Point{{1, 4}, {5, 3}, {4, 0}, {0, 0}})
	for _, p := range []*Polygon{ccw, cw} {
		for i, n := range p.Normals() {
			if !near(n.Vec.Norm(), 1) {
				t.Errorf("normal %d is not unit length: %v", i, n.Vec)
			}
			if n.Vec.Dot(Between(p.Center(), n.Origin)) <= 0 {
				t.Errorf("normal %d points toward the centroid", i)
			}
			if !n.Vec.IsPerpendicular(p.Edges()[i]) {
				t.Errorf("normal %d is not perpendicular to its edge", i)
			}
		}
	}
}

func TestSquaresOverlapAlongX(t *testing.T) {
	a := Square(Point{0, 0}, 20)
	b := Square(Point{15, 0}, 20)
	mtv := a.Collide(b)
	if !near(mtv.X, -5) || !near(mtv.Y, 0) {
		t.Errorf("expected mtv (-5,0), got %v", mtv)
	}
	if back := b.Collide(a); !near(back.X, 5) || !near(back.Y, 0) {
		t.Errorf("expected reverse mtv (5,0), got %v", back)
	}
}

func TestSquaresWithGapDoNotCollide(t *testing.T) {
	a := Square(Point{0, 0}, 10)
	b := Square(Point{15, 0}, 10)
	if mtv := a.Collide(b); mtv.IsNonZero() {
		t.Errorf("squares with a gap of 5 must not collide, got %v", mtv)
	}
}

func TestCircleAndDistantSquare(t *testing.T) {
	c := Circle{Center: Point{0, 0}, Radius: 5}
	sq := NewBounded(Square(Point{20, 0}, 10))
	if mtv := c.CollidePolygon(sq); mtv.IsNonZero() {
		t.Errorf("expected zero vector, got %v", mtv)
	}
	if mtv := sq.Poly.CollideCircle(c); mtv.IsNonZero() {
		t.Errorf("expected zero vector from the polygon side, got %v", mtv)
	}
}

func TestPolygonCircleOverlap(t *testing.T) {
	sq := Square(Point{0, 0}, 10)
	c := Circle{Center: Point{6, 0}, Radius: 2}
	mtv := sq.CollideCircle(c)
	if !near(mtv.X, -1) || !near(mtv.Y, 0) {
		t.Errorf("expected (-1,0), got %v", mtv)
	}
	out := c.CollidePolygon(NewBounded(sq))
	if !near(out.X, 1) || !near(out.Y, 0) {
		t.Errorf("expected (1,0) pushing the circle out, got %v", out)
	}
}

func TestPolygonCircleCornerAxis(t *testing.T) {
	sq := Square(Point{0, 0}, 2)
	// overlaps on both edge axes but the diagonal axis separates
	c := Circle{Center: Point{1.45, 1.45}, Radius: 0.5}
	if mtv := sq.CollideCircle(c); mtv.IsNonZero() {
		t.Errorf("corner gap must be found, got %v", mtv)
	}
	hit := Circle{Center: Point{1.3, 1.3}, Radius: 0.5}
	if mtv := sq.CollideCircle(hit); !mtv.IsNonZero() {
		t.Error("circle over the corner must collide")
	}
}

func TestMTVPointsFromBToA(t *testing.T) {
	tri, _ := GenShape(3, 3)
	pent, _ := GenShape(5, 3)
	pent.Recenter(Point{4, 1})
	tri.Rotate(17)

	mtv := tri.Collide(pent)
	if !mtv.IsNonZero() {
		t.Fatal("shapes should overlap")
	}
	dir := Between(pent.Center(), tri.Center())
	if mtv.Dot(dir) <= 0 {
		t.Errorf("mtv %v must point from B's centroid toward A's (%v)", mtv, dir)
	}
	rev := pent.Collide(tri)
	if rev.Dot(dir) >= 0 {
		t.Errorf("reverse mtv %v must point toward B", rev)
	}
}

func TestSATSeparationConverges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	sides := []int{4, 6, 8}
	hits := 0
	for i := 0; i < 300; i++ {
		a, _ := GenShape(sides[rng.Intn(3)], 1+rng.Float64()*4)
		b, _ := GenShape(sides[rng.Intn(3)], 1+rng.Float64()*4)
		a.Rotate(rng.Float64() * 360)
		b.Rotate(rng.Float64() * 360)
		b.Recenter(Point{rng.Float64()*8 - 4, rng.Float64()*8 - 4})

		mtv := a.Collide(b)
		if !mtv.IsNonZero() {
			continue
		}
		hits++
		a.Translate(mtv.Scale(0.5))
		b.Translate(mtv.Scale(-0.5))
		if again := a.Collide(b); again.Norm() > 1e-6 {
			t.Fatalf("case %d: shapes still overlap after applying mtv, residual %v", i, again)
		}
	}
	if hits == 0 {
		t.Fatal("no overlapping pairs generated")
	}
}

func TestDisjointPolygonsReturnZero(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		a, _ := GenShape(3+rng.Intn(6), 1+rng.Float64()*2)
		b, _ := GenShape(3+rng.Intn(6), 1+rng.Float64()*2)
		a.Rotate(rng.Float64() * 360)
		b.Rotate(rng.Float64() * 360)
		// centers further apart than the sum of circumradii
		dir := FromAngle(a.Radius()+b.Radius()+0.01, rng.Float64()*360)
		b.Recenter(a.Center().Add(dir))
		if mtv := a.Collide(b); mtv.IsNonZero() {
			t.Fatalf("case %d: disjoint shapes reported mtv %v", i, mtv)
		}
	}
}

func TestAreaInvariance(t *testing.T) {
	p := MustPolygon([]Point{{0, 0}, {5, 1}, {6, 4}, {2, 6}, {-1, 3}})
	area := p.Area()
	p.Translate(Vec{13, -7})
	if math.Abs(p.Area()-area) > 1e-9 {
		t.Errorf("translation changed area: %f -> %f", area, p.Area())
	}
	p.Rotate(73)
	if math.Abs(p.Area()-area) > 1e-9 {
		t.Errorf("rotation changed area: %f -> %f", area, p.Area())
	}
	p.Scale(3)
	if math.Abs(p.Area()-9*area) > 1e-9 {
		t.Errorf("scaling by 3 should multiply area by 9: %f -> %f", area, p.Area())
	}
}

func TestGenShape(t *testing.T) {
	p, err := GenShape(6, 2)
	if err != nil {
		t.Fatal(err)
	}
	if v := p.Vertex(0); !near(v.X, 2) || !near(v.Y, 0) {
		t.Errorf("vertex 0 should sit on +x, got %v", v)
	}
	for i := 0; i < p.Len(); i++ {
		if d := p.Center().DistanceTo(p.Vertex(i)); !near(d, 2) {
			t.Errorf("vertex %d at distance %f", i, d)
		}
	}
}

package geom

import (
	"errors"
	"math"
)

var (
	// ErrDegenerate is returned for polygons with fewer than three vertices
	ErrDegenerate = errors.New("polygon needs at least 3 vertices")

	// ErrLengthMismatch is returned when coordinate arrays differ in length
	ErrLengthMismatch = errors.New("coordinate arrays differ in length")
)

// Polygon is a convex polygon with derived edges, outward normals,
// centroid, circumradius and area. Derived state is rebuilt after
// every vertex mutation.
type Polygon struct {
	verts   []Point
	edges   []Vec
	normals []LocatedVec
	center  Point
	radius  float64
	area    float64
}

// NewPolygon creates a polygon from an ordered vertex list
func NewPolygon(pts []Point) (*Polygon, error) {
	if len(pts) < 3 {
		return nil, ErrDegenerate
	}
	p := &Polygon{verts: append([]Point(nil), pts...)}
	p.generateVectors()
	return p, nil
}

// NewPolygonXY creates a polygon from parallel coordinate arrays
func NewPolygonXY(xs, ys []float64) (*Polygon, error) {
	if len(xs) != len(ys) {
		return nil, ErrLengthMismatch
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{xs[i], ys[i]}
	}
	return NewPolygon(pts)
}

// MustPolygon is like NewPolygon but panics on error
func MustPolygon(pts []Point) *Polygon {
	p, err := NewPolygon(pts)
	if err != nil {
		panic(err)
	}
	return p
}

// Clone returns a deep copy
func (p *Polygon) Clone() *Polygon {
	c := &Polygon{verts: append([]Point(nil), p.verts...)}
	c.generateVectors()
	return c
}

// generateVectors rebuilds every derived quantity from the vertex list
func (p *Polygon) generateVectors() {
	n := len(p.verts)

	var sx, sy float64
	for _, v := range p.verts {
		sx += v.X
		sy += v.Y
	}
	p.center = Point{sx / float64(n), sy / float64(n)}

	p.radius = 0
	var shoelace float64
	p.edges = p.edges[:0]
	p.normals = p.normals[:0]
	for i, a := range p.verts {
		b := p.verts[(i+1)%n]
		p.radius = math.Max(p.radius, p.center.DistanceTo(a))
		shoelace += a.X*b.Y - b.X*a.Y

		edge := Between(a, b)
		p.edges = append(p.edges, edge)

		mid := a.Mid(b)
		var normal Vec
		if edge.IsNonZero() {
			normal = edge.Perp().Normalize().Scale(-1)
			// flip anything that points back into the polygon
			if normal.Dot(Between(mid, p.center)) > 0 {
				normal = normal.Neg()
			}
		}
		p.normals = append(p.normals, LocatedVec{Origin: mid, Vec: normal})
	}
	p.area = math.Abs(shoelace) / 2
}

// Len returns the number of vertices
func (p *Polygon) Len() int {
	return len(p.verts)
}

// Vertex returns vertex i
func (p *Polygon) Vertex(i int) Point {
	return p.verts[i]
}

// Vertices returns a copy of the vertex list
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.verts...)
}

// Edges returns a copy of the edge vectors, vertex i to vertex i+1
func (p *Polygon) Edges() []Vec {
	return append([]Vec(nil), p.edges...)
}

// Normals returns a copy of the outward unit normals anchored at edge midpoints
func (p *Polygon) Normals() []LocatedVec {
	return append([]LocatedVec(nil), p.normals...)
}

// Center returns the arithmetic mean of the vertices
func (p *Polygon) Center() Point {
	return p.center
}

// Radius returns the largest centroid-to-vertex distance
func (p *Polygon) Radius() float64 {
	return p.radius
}

// Area returns the unsigned shoelace area
func (p *Polygon) Area() float64 {
	return p.area
}

// Translate moves every vertex by v
func (p *Polygon) Translate(v Vec) {
	for i := range p.verts {
		p.verts[i] = p.verts[i].Add(v)
	}
	p.generateVectors()
}

// Rotate turns the polygon by degrees about its centroid
func (p *Polygon) Rotate(degrees float64) {
	p.RotateAbout(p.center, degrees)
}

// RotateAbout turns the polygon by degrees about c
func (p *Polygon) RotateAbout(c Point, degrees float64) {
	for i := range p.verts {
		p.verts[i] = p.verts[i].RotateAbout(c, degrees)
	}
	p.generateVectors()
}

// Recenter moves the polygon so its centroid sits at c
func (p *Polygon) Recenter(c Point) {
	p.Translate(Between(p.center, c))
}

// Scale grows the polygon by k about its centroid
func (p *Polygon) Scale(k float64) {
	c := p.center
	for i, v := range p.verts {
		p.verts[i] = c.Add(Between(c, v).Scale(k))
	}
	p.generateVectors()
}

// project returns the interval covered by the polygon on axis
func (p *Polygon) project(axis Vec) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range p.verts {
		d := axis.Dot(v.Vec())
		min = math.Min(min, d)
		max = math.Max(max, d)
	}
	return min, max
}

// Collide runs the separating axis test against o. It returns the
// minimum translation vector that pushes p away from o, or the zero
// vector when the polygons do not overlap.
func (p *Polygon) Collide(o *Polygon) Vec {
	axes := make([]Vec, 0, len(p.normals)+len(o.normals))
	for _, n := range p.normals {
		axes = append(axes, n.Vec)
	}
	for _, n := range o.normals {
		axes = append(axes, n.Vec)
	}

	minOverlap := math.Inf(1)
	var best Vec
	for _, axis := range axes {
		if axis.IsZero() {
			continue
		}
		minA, maxA := p.project(axis)
		minB, maxB := o.project(axis)
		if minA > maxB || minB > maxA {
			return Vec{}
		}
		overlap := math.Min(maxA-minB, maxB-minA)
		if overlap < minOverlap {
			minOverlap = overlap
			best = axis
		}
	}
	if math.IsInf(minOverlap, 1) {
		return Vec{}
	}
	return orient(best, Between(o.center, p.center)).Scale(minOverlap)
}

// CollideCircle runs the separating axis test against c. It returns the
// minimum translation vector that pushes p away from the circle.
func (p *Polygon) CollideCircle(c Circle) Vec {
	axes := make([]Vec, 0, len(p.normals)+1)
	for _, n := range p.normals {
		axes = append(axes, n.Vec)
	}
	if toCircle := Between(p.center, c.Center); toCircle.IsNonZero() {
		axes = append(axes, toCircle.Normalize())
	}

	minOverlap := math.Inf(1)
	var best Vec
	for _, axis := range axes {
		if axis.IsZero() {
			continue
		}
		minA, maxA := p.project(axis)
		d := axis.Dot(c.Center.Vec())
		minB, maxB := d-c.Radius, d+c.Radius
		if minA > maxB || minB > maxA {
			return Vec{}
		}
		overlap := math.Min(maxA-minB, maxB-minA)
		if overlap < minOverlap {
			minOverlap = overlap
			best = axis
		}
	}
	if math.IsInf(minOverlap, 1) {
		return Vec{}
	}
	return orient(best, Between(c.Center, p.center)).Scale(minOverlap)
}

// orient flips axis when it points against direction
func orient(axis, direction Vec) Vec {
	if axis.Dot(direction) < 0 {
		return axis.Neg()
	}
	return axis
}

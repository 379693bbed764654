package geom

// BoundedPolygon pairs a polygon with its axis-aligned bounding box.
// Every transform keeps the two in sync.
type BoundedPolygon struct {
	Poly *Polygon
	Box  Rect
}

// NewBounded wraps p and fits a box around it
func NewBounded(p *Polygon) *BoundedPolygon {
	return &BoundedPolygon{Poly: p, Box: Encompass(p.verts)}
}

// Clone returns a deep copy
func (b *BoundedPolygon) Clone() *BoundedPolygon {
	return &BoundedPolygon{Poly: b.Poly.Clone(), Box: b.Box}
}

// reencompass refits the box to the current vertices
func (b *BoundedPolygon) reencompass() {
	b.Box = Encompass(b.Poly.verts)
}

// Translate moves the polygon and its box by v
func (b *BoundedPolygon) Translate(v Vec) {
	b.Poly.Translate(v)
	b.Box = b.Box.Translate(v)
}

// Rotate turns the polygon about its centroid and refits the box
func (b *BoundedPolygon) Rotate(degrees float64) {
	b.Poly.Rotate(degrees)
	b.reencompass()
}

// Recenter moves the centroid to c and refits the box
func (b *BoundedPolygon) Recenter(c Point) {
	b.Poly.Recenter(c)
	b.reencompass()
}

// Scale grows the polygon about its centroid and refits the box
func (b *BoundedPolygon) Scale(k float64) {
	b.Poly.Scale(k)
	b.reencompass()
}

// Center returns the polygon centroid
func (b *BoundedPolygon) Center() Point {
	return b.Poly.Center()
}

// Collide rejects on the boxes first, then runs the separating axis
// test. The result pushes b away from o.
func (b *BoundedPolygon) Collide(o *BoundedPolygon) Vec {
	if !b.Box.Collide(o.Box) {
		return Vec{}
	}
	return b.Poly.Collide(o.Poly)
}

// CollideCircle rejects on the boxes first, then runs the separating
// axis test against c. The result pushes b away from c.
func (b *BoundedPolygon) CollideCircle(c Circle) Vec {
	if !b.Box.Collide(c.Bounds()) {
		return Vec{}
	}
	return b.Poly.CollideCircle(c)
}

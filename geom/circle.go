package geom

import "math"

// Circle is a collidable disc
type Circle struct {
	Center Point
	Radius float64
}

// Area returns the disc area
func (c Circle) Area() float64 {
	return math.Pi * c.Radius * c.Radius
}

// Bounds returns the circle's bounding box
func (c Circle) Bounds() Rect {
	return Rect{
		Lft: c.Center.X - c.Radius,
		Rht: c.Center.X + c.Radius,
		Top: c.Center.Y + c.Radius,
		Bot: c.Center.Y - c.Radius,
	}
}

// Translate returns the circle moved by v
func (c Circle) Translate(v Vec) Circle {
	return Circle{Center: c.Center.Add(v), Radius: c.Radius}
}

// Collide returns the vector that pushes c away from o, or zero when
// the discs do not overlap.
func (c Circle) Collide(o Circle) Vec {
	if !c.Bounds().Collide(o.Bounds()) {
		return Vec{}
	}
	minDist := c.Radius + o.Radius
	d := Between(o.Center, c.Center)
	dist := d.Norm()
	if dist >= minDist {
		return Vec{}
	}
	if d.IsZero() {
		// concentric: any direction separates, pick +x
		return Vec{minDist, 0}
	}
	return d.Normalize().Scale(minDist - dist)
}

// CollidePolygon returns the vector that pushes c away from b
func (c Circle) CollidePolygon(b *BoundedPolygon) Vec {
	if !c.Bounds().Collide(b.Box) {
		return Vec{}
	}
	return b.Poly.CollideCircle(c).Neg()
}

package geom

import "math"

// Point is a position in world coordinates
type Point struct {
	X, Y float64
}

// Add returns p translated by v
func (p Point) Add(v Vec) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// Sub returns p translated by -v
func (p Point) Sub(v Vec) Point {
	return Point{p.X - v.X, p.Y - v.Y}
}

// DistanceTo returns the Euclidean distance between p and q
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// RotateAbout returns p rotated by degrees around c
func (p Point) RotateAbout(c Point, degrees float64) Point {
	return c.Add(Between(c, p).Rotate(degrees))
}

// Vec returns the position vector of p
func (p Point) Vec() Vec {
	return Vec{p.X, p.Y}
}

// Mid returns the midpoint of p and q
func (p Point) Mid(q Point) Point {
	return Point{(p.X + q.X) / 2, (p.Y + q.Y) / 2}
}

package geom

import "math"

// Tolerance is the threshold below which a vector norm counts as zero
const Tolerance = 1.0e-7

// Vec is a 2D direction/magnitude vector. All methods return new values.
type Vec struct {
	X, Y float64
}

// FromAngle returns a vector of the given magnitude pointing at degrees
func FromAngle(mag, degrees float64) Vec {
	rad := degrees * math.Pi / 180
	return Vec{mag * math.Cos(rad), mag * math.Sin(rad)}
}

// Between returns the vector from a to b
func Between(a, b Point) Vec {
	return Vec{b.X - a.X, b.Y - a.Y}
}

// Add returns v + w
func (v Vec) Add(w Vec) Vec {
	return Vec{v.X + w.X, v.Y + w.Y}
}

// Sub returns v - w
func (v Vec) Sub(w Vec) Vec {
	return Vec{v.X - w.X, v.Y - w.Y}
}

// Scale returns v scaled by k
func (v Vec) Scale(k float64) Vec {
	return Vec{v.X * k, v.Y * k}
}

// Neg returns -v
func (v Vec) Neg() Vec {
	return Vec{-v.X, -v.Y}
}

// Dot returns the dot product of v and w
func (v Vec) Dot(w Vec) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Norm returns the Euclidean length of v
func (v Vec) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the direction of v.
// The result is NaN for a zero vector; guard with IsNonZero.
func (v Vec) Normalize() Vec {
	n := v.Norm()
	return Vec{v.X / n, v.Y / n}
}

// Clamp limits the norm of v to max
func (v Vec) Clamp(max float64) Vec {
	n := v.Norm()
	if n > max {
		return v.Scale(max / n)
	}
	return v
}

// Resize returns v with its norm set to exactly n
func (v Vec) Resize(n float64) Vec {
	if v.IsZero() {
		return v
	}
	return v.Normalize().Scale(n)
}

// Grow lengthens v by value along its own direction. A negative value
// shortens it, and the result never flips past zero.
func (v Vec) Grow(value float64) Vec {
	n := v.Norm()
	if n <= Tolerance {
		return v
	}
	m := n + value
	if m < 0 {
		m = 0
	}
	return v.Scale(m / n)
}

// AddPolar adds a vector of magnitude mag at degrees to v
func (v Vec) AddPolar(mag, degrees float64) Vec {
	return v.Add(FromAngle(mag, degrees))
}

// IsZero reports whether v has (near) zero length
func (v Vec) IsZero() bool {
	return v.Norm() <= Tolerance
}

// IsNonZero reports whether v has a length above Tolerance
func (v Vec) IsNonZero() bool {
	return v.Norm() > Tolerance
}

// Perp returns v rotated 90 degrees counter-clockwise, (-y, x)
func (v Vec) Perp() Vec {
	return Vec{-v.Y, v.X}
}

// Rotate returns v rotated by degrees about the origin
func (v Vec) Rotate(degrees float64) Vec {
	rad := degrees * math.Pi / 180
	cos, sin := math.Cos(rad), math.Sin(rad)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Angle returns the signed angle of v in degrees, in (-180, 180]
func (v Vec) Angle() float64 {
	return math.Atan2(v.Y, v.X) * 180 / math.Pi
}

// RotAngle returns the angle of v in degrees, in [0, 360)
func (v Vec) RotAngle() float64 {
	a := v.Angle()
	if a < 0 {
		a += 360
	}
	if a >= 360 {
		a -= 360
	}
	return a
}

// SetAngle returns a vector with the norm of v pointing at degrees
func (v Vec) SetAngle(degrees float64) Vec {
	return FromAngle(v.Norm(), degrees)
}

// Correlation returns the cosine of the angle between v and w.
// Neither vector may be zero.
func (v Vec) Correlation(w Vec) float64 {
	c := v.Dot(w) / (v.Norm() * w.Norm())
	return math.Max(-1, math.Min(1, c))
}

// AngleTo returns the unsigned angle between v and w in degrees.
// Neither vector may be zero.
func (v Vec) AngleTo(w Vec) float64 {
	return math.Acos(v.Correlation(w)) * 180 / math.Pi
}

// IsParallel reports whether v and w point along the same line
func (v Vec) IsParallel(w Vec) bool {
	return math.Abs(v.X*w.Y-v.Y*w.X) <= Tolerance
}

// IsPerpendicular reports whether v and w are at right angles
func (v Vec) IsPerpendicular(w Vec) bool {
	return math.Abs(v.Dot(w)) <= Tolerance
}

// LocatedVec is a vector anchored at an origin, used for drawing and debugging
type LocatedVec struct {
	Origin Point
	Vec    Vec
}

// End returns the tip of the located vector
func (l LocatedVec) End() Point {
	return l.Origin.Add(l.Vec)
}

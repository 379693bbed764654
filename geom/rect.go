package geom

import "math"

// Rect is an axis-aligned bounding box. Top is the larger y value.
type Rect struct {
	Lft, Rht, Top, Bot float64
}

// NewRect creates a box from its four edges
func NewRect(lft, rht, top, bot float64) Rect {
	return Rect{Lft: lft, Rht: rht, Top: top, Bot: bot}
}

// Encompass returns the smallest box containing every point in pts
func Encompass(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Lft: pts[0].X, Rht: pts[0].X, Top: pts[0].Y, Bot: pts[0].Y}
	for _, p := range pts[1:] {
		r.Lft = math.Min(r.Lft, p.X)
		r.Rht = math.Max(r.Rht, p.X)
		r.Top = math.Max(r.Top, p.Y)
		r.Bot = math.Min(r.Bot, p.Y)
	}
	return r
}

// Width returns the horizontal extent
func (r Rect) Width() float64 {
	return r.Rht - r.Lft
}

// Height returns the vertical extent
func (r Rect) Height() float64 {
	return r.Top - r.Bot
}

// Center returns the middle of the box
func (r Rect) Center() Point {
	return Point{(r.Lft + r.Rht) / 2, (r.Top + r.Bot) / 2}
}

// Translate returns the box moved by v
func (r Rect) Translate(v Vec) Rect {
	return Rect{Lft: r.Lft + v.X, Rht: r.Rht + v.X, Top: r.Top + v.Y, Bot: r.Bot + v.Y}
}

// Contains reports whether p lies strictly inside the box
func (r Rect) Contains(p Point) bool {
	return p.X > r.Lft && p.X < r.Rht && p.Y > r.Bot && p.Y < r.Top
}

// Encloses reports whether p lies inside the box or on its edges
func (r Rect) Encloses(p Point) bool {
	return p.X >= r.Lft && p.X <= r.Rht && p.Y >= r.Bot && p.Y <= r.Top
}

// Collide reports whether two boxes overlap. Touching edges count.
func (r Rect) Collide(o Rect) bool {
	w := math.Min(r.Rht, o.Rht) - math.Max(r.Lft, o.Lft)
	h := math.Min(r.Top, o.Top) - math.Max(r.Bot, o.Bot)
	return w >= 0 && h >= 0
}

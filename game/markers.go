package game

import (
	"math"

	"sharpshots/geom"
)

// Marker points from the edge of the camera square toward an enemy that
// is out of view. Pos is in camera coordinates.
type Marker struct {
	Pos      geom.Point
	Dir      geom.Vec
	Distance float64
	Tag      Tag
}

// OffscreenMarkers returns one marker per live enemy outside the camera,
// inset by margin world units from the edge
func (h *EntityHandler) OffscreenMarkers(scroll geom.Vec, margin float64) []Marker {
	scale := h.ctx.Config.Scale
	half := scale / 2
	center := geom.Point{X: half, Y: half}
	reach := half - margin

	var out []Marker
	for _, e := range h.entities {
		if e.Kind != KindEnemy || e.IsDead() {
			continue
		}
		p := e.Center().Sub(scroll)
		if p.X >= 0 && p.X <= scale && p.Y >= 0 && p.Y <= scale {
			continue
		}
		d := geom.Between(center, p)
		t := math.Inf(1)
		if d.X != 0 {
			t = math.Min(t, reach/math.Abs(d.X))
		}
		if d.Y != 0 {
			t = math.Min(t, reach/math.Abs(d.Y))
		}
		out = append(out, Marker{
			Pos:      center.Add(d.Scale(t)),
			Dir:      d.Normalize(),
			Distance: h.player.Center().DistanceTo(e.Center()),
			Tag:      e.Tag,
		})
	}
	return out
}

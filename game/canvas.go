package game

import (
	"image/color"

	"sharpshots/geom"
)

// Canvas is the drawing surface. Coordinates are world units already
// offset by the camera scroll, with y pointing up.
type Canvas interface {
	StrokePolygon(pts []geom.Point, clr color.Color)
	FillPolygon(pts []geom.Point, clr color.Color)
	StrokeCircle(c geom.Point, r float64, clr color.Color)
	FillCircle(c geom.Point, r float64, clr color.Color)
	Line(a, b geom.Point, clr color.Color)
}

// offset returns pts shifted by -scroll
func offset(pts []geom.Point, scroll geom.Vec) []geom.Point {
	out := make([]geom.Point, len(pts))
	for i, p := range pts {
		out[i] = p.Sub(scroll)
	}
	return out
}

// glowCircle layers translucent rings of growing radius around c
func glowCircle(cv Canvas, c geom.Point, r float64, clr color.NRGBA, intensity float64) {
	rings := int(10 * intensity)
	for i := 0; i < rings; i++ {
		cv.StrokeCircle(c, r*(1+0.08*float64(i)), clr)
	}
}

// glowPolygon layers translucent outlines scaled out from the centroid
func glowPolygon(cv Canvas, pts []geom.Point, clr color.NRGBA, intensity float64) {
	if len(pts) == 0 {
		return
	}
	var cx, cy float64
	for _, p := range pts {
		cx += p.X
		cy += p.Y
	}
	center := geom.Point{X: cx / float64(len(pts)), Y: cy / float64(len(pts))}

	rings := int(10 * intensity)
	scaled := make([]geom.Point, len(pts))
	for i := 0; i < rings; i++ {
		k := 1 + 0.06*float64(i)
		for j, p := range pts {
			scaled[j] = center.Add(geom.Between(center, p).Scale(k))
		}
		cv.StrokePolygon(scaled, clr)
	}
}

// RecordingCanvas counts draw calls. Headless runs and tests draw into it.
type RecordingCanvas struct {
	Polygons int
	Fills    int
	Circles  int
	Lines    int
}

// StrokePolygon counts an outline
func (r *RecordingCanvas) StrokePolygon([]geom.Point, color.Color) { r.Polygons++ }

// FillPolygon counts a fill
func (r *RecordingCanvas) FillPolygon([]geom.Point, color.Color) { r.Fills++ }

// StrokeCircle counts a circle
func (r *RecordingCanvas) StrokeCircle(geom.Point, float64, color.Color) { r.Circles++ }

// FillCircle counts a filled circle
func (r *RecordingCanvas) FillCircle(geom.Point, float64, color.Color) { r.Circles++ }

// Line counts a line
func (r *RecordingCanvas) Line(geom.Point, geom.Point, color.Color) { r.Lines++ }

package game

import (
	"image/color"
	"math"

	"sharpshots/geom"
)

var projectileFill = color.RGBA{255, 255, 255, 255}
var projectileEdge = color.RGBA{0, 0, 0, 255}

// Draw renders every visible entity, then the effects. Shadows go down
// first so outlines sit on top of them.
func (h *EntityHandler) Draw(cv Canvas, scroll geom.Vec) {
	camera := h.Camera(scroll)
	visible := make([]*Entity, 0, len(h.entities)+len(h.projectiles))
	for _, list := range [][]*Entity{h.entities, h.projectiles} {
		for _, e := range list {
			if !e.IsDead() && camera.Collide(e.Bounds()) {
				visible = append(visible, e)
			}
		}
	}

	for _, e := range visible {
		drawUnderline(cv, e, scroll)
	}
	for _, e := range visible {
		drawEntity(cv, e, scroll)
	}
	h.vfx.Draw(cv, scroll)
}

func drawUnderline(cv Canvas, e *Entity, scroll geom.Vec) {
	if e.Shape == nil {
		return
	}
	cv.StrokePolygon(offset(e.Shape.Poly.Vertices(), scroll.Add(AccentOffset)), AccentColor)
}

func drawEntity(cv Canvas, e *Entity, scroll geom.Vec) {
	switch e.Kind {
	case KindPlayer:
		drawPlayer(cv, e, scroll)
	case KindProjectile:
		drawProjectile(cv, e, scroll)
	case KindBuff:
		pts := offset(e.Shape.Poly.Vertices(), scroll)
		cv.StrokePolygon(pts, PrimaryColor)
		glowPolygon(cv, pts, PickupOf(e).Glow(), 1)
	default:
		cv.StrokePolygon(offset(e.Shape.Poly.Vertices(), scroll), PrimaryColor)
	}
}

func drawPlayer(cv Canvas, e *Entity, scroll geom.Vec) {
	if p := PilotOf(e); p != nil && p.Shielded() {
		left := must(e.Timers.TimeRemaining(KeyInvuln))
		if math.Mod(left, 500) <= 200 {
			return
		}
	}
	cv.StrokePolygon(offset(e.Shape.Poly.Vertices(), scroll), PrimaryColor)

	// engine bar behind the hull
	head := e.Head().Sub(scroll)
	back := geom.FromAngle(e.Radius()*2, e.Rotation)
	side := geom.FromAngle(e.Radius()/2, e.Rotation+90)
	base := head.Sub(back)
	cv.Line(base.Add(side), base.Sub(side), PrimaryColor)
}

func drawProjectile(cv Canvas, e *Entity, scroll geom.Vec) {
	glow := GetTagConfig(e.Tag).Glow
	c := e.Center().Sub(scroll)
	if e.Shape != nil {
		cv.StrokePolygon(offset(e.Shape.Poly.Vertices(), scroll), PrimaryColor)
		glowCircle(cv, c, e.Radius()*1.1, glow, 1)
		return
	}
	glowCircle(cv, c, e.Radius()*3, glow, 1)
	cv.FillCircle(c, e.Radius()/2, projectileFill)
	cv.StrokeCircle(c, e.Radius()/2, projectileEdge)
}

package game

import (
	"image/color"
	"math"

	"sharpshots/geom"
)

// backdrop is one slow polygon drifting behind the playfield
type backdrop struct {
	shape *geom.BoundedPolygon
	vel   geom.Vec
	omega float64
	color color.RGBA
}

// Background is a handful of large dim shapes bouncing inside the camera
type Background struct {
	scale float64
	objs  []*backdrop
}

// NewBackground creates five shapes centered on the playfield
func NewBackground(rng Rand, scale float64) *Background {
	bg := &Background{scale: scale}
	for i := 0; i < 5; i++ {
		sides := rng.IntRange(4, 6)
		size := rng.Uniform(scale*0.25, scale*0.5)
		shape := must(geom.GenShape(sides, size))
		shape.Recenter(geom.Point{X: scale / 2, Y: scale / 2})

		gray := uint8(18 + rng.Intn(4))
		bg.objs = append(bg.objs, &backdrop{
			shape: geom.NewBounded(shape),
			vel:   geom.Vec{X: rng.Uniform(-1, 1), Y: rng.Uniform(-1, 1)},
			omega: rng.Uniform(-3, 3),
			color: color.RGBA{gray, gray, gray, 255},
		})
	}
	return bg
}

// Update spins and moves every shape, reflecting off the camera edges
func (bg *Background) Update(dt float64) {
	for _, o := range bg.objs {
		o.shape.Rotate(o.omega * dt)
		o.shape.Translate(o.vel.Scale(dt))

		box := o.shape.Box
		if box.Lft < 0 {
			o.vel.X = math.Abs(o.vel.X)
		} else if box.Rht > bg.scale {
			o.vel.X = -math.Abs(o.vel.X)
		}
		if box.Top > bg.scale {
			o.vel.Y = -math.Abs(o.vel.Y)
		} else if box.Bot < 0 {
			o.vel.Y = math.Abs(o.vel.Y)
		}
	}
}

// Draw fills every shape in screen-fixed coordinates
func (bg *Background) Draw(cv Canvas) {
	for _, o := range bg.objs {
		cv.FillPolygon(o.shape.Poly.Vertices(), o.color)
	}
}

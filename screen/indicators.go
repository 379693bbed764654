package screen

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sharpshots/game"
)

const (
	indicatorMargin   = 3.0 // world units
	indicatorArrowLen = 18.0
	indicatorWing     = math.Pi / 6
	indicatorLabelX   = 10.0
	indicatorLabelY   = 6.0
)

var indicatorColor = color.RGBA{255, 90, 90, 220}

// drawIndicators points an arrow at every enemy outside the camera with
// its distance printed next to it
func drawIndicators(dst *ebiten.Image, c *Canvas, s *game.Session) {
	w, h := float64(dst.Bounds().Dx()), float64(dst.Bounds().Dy())
	for _, m := range s.Handler().OffscreenMarkers(s.Scroll(), indicatorMargin) {
		px, py := c.toPixel(m.Pos)
		x, y := float64(px), float64(py)
		// screen y points down
		dx, dy := m.Dir.X, -m.Dir.Y

		tipX, tipY := x+dx*indicatorArrowLen*0.6, y+dy*indicatorArrowLen*0.6
		tailX, tailY := x-dx*indicatorArrowLen*0.4, y-dy*indicatorArrowLen*0.4
		line(dst, tailX, tailY, tipX, tipY)

		sin, cos := math.Sincos(indicatorWing)
		wing := indicatorArrowLen * 0.5
		lx, ly := dx*cos-dy*sin, dx*sin+dy*cos
		rx, ry := dx*cos+dy*sin, -dx*sin+dy*cos
		line(dst, tipX, tipY, tipX-lx*wing, tipY-ly*wing)
		line(dst, tipX, tipY, tipX-rx*wing, tipY-ry*wing)

		labelX := math.Min(math.Max(x+indicatorLabelX, 4), w-60)
		labelY := math.Min(math.Max(y-indicatorLabelY, 4), h-16)
		printAt(dst, fmt.Sprintf("%.0f", m.Distance), labelX, labelY, indicatorColor)
	}
}

func line(dst *ebiten.Image, x0, y0, x1, y1 float64) {
	vector.StrokeLine(dst, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, indicatorColor, true)
}

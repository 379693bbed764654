// Package termview draws the playfield into a terminal with tcell.
package termview

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"sharpshots/geom"
)

// minAlpha is the faintest stroke worth a terminal cell. Cells cannot
// blend, so translucent glow rings below it are dropped.
const minAlpha = 100

// Surface is the part of tcell.Screen the canvas writes to
type Surface interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
	Size() (int, int)
}

// Canvas rasterizes world-space shapes onto terminal cells. The world
// square scale x scale maps onto the surface with y flipped, leaving
// the top row for the status line.
type Canvas struct {
	surface Surface
	scale   float64
	top     int
}

// NewCanvas draws onto s a playfield scale world units wide
func NewCanvas(s Surface, scale float64) *Canvas {
	return &Canvas{surface: s, scale: scale, top: 1}
}

// cell maps a camera-relative world point to a column and row
func (c *Canvas) cell(p geom.Point) (int, int) {
	w, h := c.surface.Size()
	rows := h - c.top
	x := int(math.Floor(p.X / c.scale * float64(w)))
	y := c.top + int(math.Floor((1-p.Y/c.scale)*float64(rows)))
	return x, y
}

func (c *Canvas) inside(x, y int) bool {
	w, h := c.surface.Size()
	return x >= 0 && x < w && y >= c.top && y < h
}

func (c *Canvas) plot(x, y int, r rune, style tcell.Style) {
	if c.inside(x, y) {
		c.surface.SetContent(x, y, r, nil, style)
	}
}

// styleOf converts clr to a foreground style, reporting false for faint colors
func styleOf(clr color.Color) (tcell.Style, bool) {
	r, g, b, a := clr.RGBA()
	if a>>8 < minAlpha {
		return tcell.StyleDefault, false
	}
	fg := tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
	return tcell.StyleDefault.Foreground(fg), true
}

// line plots a Bresenham segment between two cells
func (c *Canvas) line(x0, y0, x1, y1 int, r rune, style tcell.Style) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		c.plot(x0, y0, r, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// StrokePolygon outlines pts
func (c *Canvas) StrokePolygon(pts []geom.Point, clr color.Color) {
	style, ok := styleOf(clr)
	if !ok || len(pts) == 0 {
		return
	}
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		x0, y0 := c.cell(p)
		x1, y1 := c.cell(q)
		c.line(x0, y0, x1, y1, '*', style)
	}
}

// FillPolygon paints the cell backgrounds inside pts
func (c *Canvas) FillPolygon(pts []geom.Point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b, _ := clr.RGBA()
	style := tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8)))

	box := geom.Encompass(pts)
	x0, y0 := c.cell(geom.Point{X: box.Lft, Y: box.Top})
	x1, y1 := c.cell(geom.Point{X: box.Rht, Y: box.Bot})
	w, h := c.surface.Size()
	rows := float64(h - c.top)
	for y := max(y0, c.top); y <= min(y1, h-1); y++ {
		for x := max(x0, 0); x <= min(x1, w-1); x++ {
			center := geom.Point{
				X: (float64(x) + 0.5) / float64(w) * c.scale,
				Y: (1 - (float64(y-c.top)+0.5)/rows) * c.scale,
			}
			if convexContains(pts, center) {
				c.surface.SetContent(x, y, ' ', nil, style)
			}
		}
	}
}

// StrokeCircle plots the circle outline, or a single mark when it is smaller than a cell
func (c *Canvas) StrokeCircle(center geom.Point, radius float64, clr color.Color) {
	style, ok := styleOf(clr)
	if !ok {
		return
	}
	w, _ := c.surface.Size()
	cellSize := c.scale / float64(w)
	if radius < cellSize {
		x, y := c.cell(center)
		c.plot(x, y, 'o', style)
		return
	}
	steps := int(math.Min(64, math.Max(8, 2*math.Pi*radius/cellSize)))
	for i := 0; i < steps; i++ {
		p := center.Add(geom.FromAngle(radius, 360*float64(i)/float64(steps)))
		x, y := c.cell(p)
		c.plot(x, y, '.', style)
	}
}

// FillCircle marks the circle's center
func (c *Canvas) FillCircle(center geom.Point, _ float64, clr color.Color) {
	style, ok := styleOf(clr)
	if !ok {
		return
	}
	x, y := c.cell(center)
	c.plot(x, y, '@', style)
}

// Line draws a segment
func (c *Canvas) Line(a, b geom.Point, clr color.Color) {
	style, ok := styleOf(clr)
	if !ok {
		return
	}
	x0, y0 := c.cell(a)
	x1, y1 := c.cell(b)
	c.line(x0, y0, x1, y1, '=', style)
}

// Text writes s starting at column x of row y
func (c *Canvas) Text(x, y int, s string, style tcell.Style) {
	w, _ := c.surface.Size()
	for _, r := range s {
		if x >= w {
			return
		}
		c.surface.SetContent(x, y, r, nil, style)
		x++
	}
}

// convexContains reports whether p lies inside the convex polygon pts
// of either winding
func convexContains(pts []geom.Point, p geom.Point) bool {
	sign := 0
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		switch {
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		case cross < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

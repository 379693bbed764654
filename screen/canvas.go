package screen

import (
	"image"
	"image/color"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"sharpshots/geom"
)

var (
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

// white returns a 1x1 opaque source image for triangle fills
func white() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// Canvas draws world-space shapes onto an ebiten image. World y points
// up, screen y points down.
type Canvas struct {
	dst    *ebiten.Image
	ppu    float64
	height float64
	stroke float32
}

// NewCanvas maps one world unit onto ppu pixels of a screen height pixels tall
func NewCanvas(ppu float64, height int) *Canvas {
	return &Canvas{ppu: ppu, height: float64(height), stroke: 1.5}
}

// Target sets the image the next draw calls land on
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// toPixel converts a world point to screen pixels
func (c *Canvas) toPixel(p geom.Point) (float32, float32) {
	return float32(p.X * c.ppu), float32(c.height - p.Y*c.ppu)
}

// StrokePolygon draws a closed outline
func (c *Canvas) StrokePolygon(pts []geom.Point, clr color.Color) {
	if c.dst == nil || len(pts) < 2 {
		return
	}
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		x0, y0 := c.toPixel(p)
		x1, y1 := c.toPixel(q)
		vector.StrokeLine(c.dst, x0, y0, x1, y1, c.stroke, clr, true)
	}
}

// FillPolygon fills a polygon with a path fill
func (c *Canvas) FillPolygon(pts []geom.Point, clr color.Color) {
	if c.dst == nil || len(pts) < 3 {
		return
	}
	var path vector.Path
	x, y := c.toPixel(pts[0])
	path.MoveTo(x, y)
	for _, p := range pts[1:] {
		x, y = c.toPixel(p)
		path.LineTo(x, y)
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	// vertex colors are straight alpha
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(n.R) / 0xff
		vs[i].ColorG = float32(n.G) / 0xff
		vs[i].ColorB = float32(n.B) / 0xff
		vs[i].ColorA = float32(n.A) / 0xff
	}
	c.dst.DrawTriangles(vs, is, white(), &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// StrokeCircle draws a ring
func (c *Canvas) StrokeCircle(center geom.Point, r float64, clr color.Color) {
	if c.dst == nil {
		return
	}
	x, y := c.toPixel(center)
	vector.StrokeCircle(c.dst, x, y, c.radius(r), c.stroke, clr, true)
}

// FillCircle draws a disc
func (c *Canvas) FillCircle(center geom.Point, r float64, clr color.Color) {
	if c.dst == nil {
		return
	}
	x, y := c.toPixel(center)
	vector.DrawFilledCircle(c.dst, x, y, c.radius(r), clr, true)
}

// Line draws a segment
func (c *Canvas) Line(a, b geom.Point, clr color.Color) {
	if c.dst == nil {
		return
	}
	x0, y0 := c.toPixel(a)
	x1, y1 := c.toPixel(b)
	vector.StrokeLine(c.dst, x0, y0, x1, y1, c.stroke, clr, true)
}

// radius converts a world radius to pixels, never below half a pixel
func (c *Canvas) radius(r float64) float32 {
	return float32(math.Max(r*c.ppu, 0.5))
}

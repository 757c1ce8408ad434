package window

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/space-defender/internal/core"
)

// ellipseSegments is how many edges approximate an enemy outline.
const ellipseSegments = 24

var backgroundColor = color.RGBA{0x05, 0x05, 0x12, 0xff}

// palette maps core.Color to window colors. Values follow the xterm defaults.
var palette = map[core.Color]color.RGBA{
	core.ColorDefault:      {0xe5, 0xe5, 0xe5, 0xff},
	core.ColorRed:          {0xcd, 0x00, 0x00, 0xff},
	core.ColorYellow:       {0xcd, 0xcd, 0x00, 0xff},
	core.ColorCyan:         {0x00, 0xcd, 0xcd, 0xff},
	core.ColorOrange:       {0xff, 0x87, 0x00, 0xff},
	core.ColorBrightYellow: {0xff, 0xff, 0x00, 0xff},
	core.ColorBrightCyan:   {0x00, 0xff, 0xff, 0xff},
	core.ColorBrightWhite:  {0xff, 0xff, 0xff, 0xff},
}

// rgba returns the window color for c with the given opacity applied.
// Ebiten expects premultiplied alpha.
func rgba(c core.Color, alpha float64) color.RGBA {
	base, ok := palette[c]
	if !ok {
		base = palette[core.ColorDefault]
	}
	a := core.ClampF(alpha, 0, 1)
	return color.RGBA{
		R: uint8(float64(base.R) * a),
		G: uint8(float64(base.G) * a),
		B: uint8(float64(base.B) * a),
		A: uint8(float64(base.A) * a),
	}
}

// fanIndices triangulates a convex polygon of n vertices around vertex 0.
func fanIndices(n int) []uint16 {
	if n < 3 {
		return nil
	}
	indices := make([]uint16, 0, (n-2)*3)
	for i := 1; i < n-1; i++ {
		indices = append(indices, 0, uint16(i), uint16(i+1)) //#nosec G115 -- n is a handful of vertices
	}
	return indices
}

// ellipsePoints approximates an ellipse outline.
func ellipsePoints(cx, cy, rx, ry float64, segments int) []core.Point {
	points := make([]core.Point, segments)
	for i := range points {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		points[i] = core.Point{X: cx + rx*math.Cos(theta), Y: cy + ry*math.Sin(theta)}
	}
	return points
}

// canvas draws onto an ebiten image laid out in playfield units.
type canvas struct {
	dst   *ebiten.Image
	white *ebiten.Image // Source texture for DrawTriangles
}

func newCanvas() *canvas {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &canvas{
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// target points the canvas at the frame being drawn.
func (c *canvas) target(dst *ebiten.Image) {
	c.dst = dst
}

func (c *canvas) Clear() {
	c.dst.Fill(backgroundColor)
}

func (c *canvas) FillPolygon(points []core.Point, col core.Color) {
	indices := fanIndices(len(points))
	if indices == nil {
		return
	}

	clr := rgba(col, 1)
	r, g, b, a := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff, float32(clr.A)/0xff

	vertices := make([]ebiten.Vertex, len(points))
	for i, p := range points {
		vertices[i] = ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	c.dst.DrawTriangles(vertices, indices, c.white, op)
}

func (c *canvas) FillRect(r core.RectF, col core.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(col, 1), false)
}

func (c *canvas) FillEllipse(cx, cy, rx, ry float64, col core.Color) {
	c.FillPolygon(ellipsePoints(cx, cy, rx, ry, ellipseSegments), col)
}

func (c *canvas) FillCircle(cx, cy, radius float64, col core.Color, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(radius), rgba(col, alpha), true)
}

var _ core.Canvas = (*canvas)(nil)

package core

import "math"

// Glyphs used by Raster for each primitive.
const (
	PolygonGlyph = '▲'
	RectGlyph    = '█'
	EllipseGlyph = '●'
)

// alphaRamp maps opacity to progressively lighter glyphs, densest first.
var alphaRamp = []struct {
	min   float64
	glyph rune
}{
	{0.75, '@'},
	{0.5, '*'},
	{0.25, '+'},
	{0, '.'},
}

// Raster implements Canvas on top of a Screen.
// The playfield is scaled to fill the whole screen; a cell is painted when its
// center lies inside the shape. Shapes smaller than a cell still paint the
// cell under their center so nothing disappears at low resolutions.
type Raster struct {
	dst    *Screen
	fieldW float64
	fieldH float64
}

// NewRaster creates a raster that maps a fieldW x fieldH playfield onto dst.
func NewRaster(dst *Screen, fieldW, fieldH float64) *Raster {
	return &Raster{dst: dst, fieldW: fieldW, fieldH: fieldH}
}

// Screen returns the underlying screen buffer.
func (r *Raster) Screen() *Screen {
	return r.dst
}

func (r *Raster) scale() (float64, float64) {
	if r.fieldW <= 0 || r.fieldH <= 0 {
		return 0, 0
	}
	return float64(r.dst.Width()) / r.fieldW, float64(r.dst.Height()) / r.fieldH
}

// Clear blanks the screen.
func (r *Raster) Clear() {
	r.dst.Clear()
}

// FillRect paints the cells covered by rect.
func (r *Raster) FillRect(rect RectF, c Color) {
	r.fill(rect, RectGlyph, c, func(x, y float64) bool {
		return x >= rect.X && x <= rect.Right() && y >= rect.Y && y <= rect.Bottom()
	})
}

// FillEllipse paints the cells inside the ellipse.
func (r *Raster) FillEllipse(cx, cy, rx, ry float64, c Color) {
	if rx <= 0 || ry <= 0 {
		return
	}
	bounds := NewRectF(cx-rx, cy-ry, rx*2, ry*2)
	r.fill(bounds, EllipseGlyph, c, func(x, y float64) bool {
		dx := (x - cx) / rx
		dy := (y - cy) / ry
		return dx*dx+dy*dy <= 1
	})
}

// FillCircle paints the cells inside the circle with a glyph picked by alpha.
// Fully transparent circles are skipped.
func (r *Raster) FillCircle(cx, cy, radius float64, c Color, alpha float64) {
	if alpha <= 0 || radius <= 0 {
		return
	}
	glyph := alphaGlyph(alpha)
	bounds := NewRectF(cx-radius, cy-radius, radius*2, radius*2)
	r.fill(bounds, glyph, c, func(x, y float64) bool {
		dx, dy := x-cx, y-cy
		return dx*dx+dy*dy <= radius*radius
	})
}

// FillPolygon paints the cells inside the polygon (even-odd rule).
func (r *Raster) FillPolygon(points []Point, c Color) {
	if len(points) < 3 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	bounds := NewRectF(minX, minY, maxX-minX, maxY-minY)
	r.fill(bounds, PolygonGlyph, c, func(x, y float64) bool {
		return pointInPolygon(points, x, y)
	})
}

// fill paints every cell in bounds whose center satisfies inside.
func (r *Raster) fill(bounds RectF, glyph rune, c Color, inside func(x, y float64) bool) {
	sx, sy := r.scale()
	if sx == 0 || sy == 0 {
		return
	}

	x0 := int(math.Floor(bounds.X * sx))
	x1 := int(math.Ceil(bounds.Right() * sx))
	y0 := int(math.Floor(bounds.Y * sy))
	y1 := int(math.Ceil(bounds.Bottom() * sy))

	painted := false
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			fx := (float64(cx) + 0.5) / sx
			fy := (float64(cy) + 0.5) / sy
			if inside(fx, fy) {
				r.dst.SetColored(cx, cy, glyph, c)
				painted = true
			}
		}
	}

	if !painted {
		mx, my := bounds.Center()
		r.dst.SetColored(int(math.Floor(mx*sx)), int(math.Floor(my*sy)), glyph, c)
	}
}

func alphaGlyph(alpha float64) rune {
	for _, step := range alphaRamp {
		if alpha >= step.min {
			return step.glyph
		}
	}
	return alphaRamp[len(alphaRamp)-1].glyph
}

func pointInPolygon(points []Point, x, y float64) bool {
	in := false
	j := len(points) - 1
	for i := range points {
		pi, pj := points[i], points[j]
		if (pi.Y > y) != (pj.Y > y) {
			crossX := pj.X + (y-pj.Y)*(pi.X-pj.X)/(pi.Y-pj.Y)
			if x < crossX {
				in = !in
			}
		}
		j = i
	}
	return in
}

package core

// Point is a position in playfield units.
type Point struct {
	X, Y float64
}

// Canvas is the display surface games draw on.
// Coordinates are playfield units; each implementation maps them to its own
// output (terminal cells, window pixels).
type Canvas interface {
	// Clear erases the frame.
	Clear()

	// FillPolygon fills a closed polygon.
	FillPolygon(points []Point, c Color)

	// FillRect fills an axis-aligned rectangle.
	FillRect(r RectF, c Color)

	// FillEllipse fills an axis-aligned ellipse centered at (cx, cy).
	FillEllipse(cx, cy, rx, ry float64, c Color)

	// FillCircle fills a circle with the given opacity in [0, 1].
	FillCircle(cx, cy, radius float64, c Color, alpha float64)
}

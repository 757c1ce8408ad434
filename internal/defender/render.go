package defender

import "github.com/vovakirdan/space-defender/internal/core"

// Entity colors
const (
	ShipColor     = core.ColorBrightCyan
	BulletColor   = core.ColorBrightYellow
	EnemyColor    = core.ColorRed
	ParticleColor = core.ColorOrange
)

// Render draws the playfield. It reads the collections but never changes them.
// Score, lives and level are not drawn here; frontends show State() in their HUD.
func (g *Game) Render(dst core.Canvas) {
	dst.Clear()

	s := g.ship
	dst.FillPolygon([]core.Point{
		{X: s.X + s.W/2, Y: s.Y},
		{X: s.X + s.W, Y: s.Y + s.H},
		{X: s.X, Y: s.Y + s.H},
	}, ShipColor)

	for _, b := range g.bullets {
		dst.FillRect(b.Rect(), BulletColor)
	}

	for _, e := range g.enemies {
		cx, cy := e.Rect().Center()
		dst.FillEllipse(cx, cy, e.W/2, e.H/2, EnemyColor)
	}

	for _, p := range g.particles {
		dst.FillCircle(p.X, p.Y, p.Radius, ParticleColor, p.Alpha)
	}
}

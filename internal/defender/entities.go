package defender

import (
	"math"
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Ship is the player-controlled ship.
type Ship struct {
	X, Y     float64
	W, H     float64
	Speed    float64
	Cooldown time.Duration
	LastShot time.Time // Zero until the first shot
}

// Rect returns the ship's bounding box.
func (s Ship) Rect() core.RectF {
	return core.NewRectF(s.X, s.Y, s.W, s.H)
}

// canFire reports whether the cooldown has elapsed at now.
func (s Ship) canFire(now time.Time) bool {
	return s.LastShot.IsZero() || now.Sub(s.LastShot) >= s.Cooldown
}

// Bullet is a player projectile travelling straight up.
type Bullet struct {
	X, Y  float64
	W, H  float64
	Speed float64
	dead  bool
}

// Rect returns the bullet's bounding box.
func (b Bullet) Rect() core.RectF {
	return core.NewRectF(b.X, b.Y, b.W, b.H)
}

// Enemy descends at its own speed while drifting sideways on a sine wave.
type Enemy struct {
	X, Y   float64
	W, H   float64
	Speed  float64
	Zigzag float64 // Ticks since spawn
	Period float64 // Zigzag period in ticks
	dead   bool
}

// Rect returns the enemy's bounding box.
func (e Enemy) Rect() core.RectF {
	return core.NewRectF(e.X, e.Y, e.W, e.H)
}

// advance moves the enemy one tick and keeps it inside [0, fieldW-W].
func (e *Enemy) advance(fieldW, amplitude float64) {
	e.Y += e.Speed
	e.Zigzag++
	e.X += math.Sin(e.Zigzag/e.Period) * amplitude
	e.X = core.ClampF(e.X, 0, fieldW-e.W)
}

// Particle is one fragment of an explosion burst.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
	Radius float64
	Decay  float64
}

// advance integrates one tick and reports whether the particle has faded out.
func (p *Particle) advance() bool {
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= p.Decay
	return p.Alpha <= 0
}

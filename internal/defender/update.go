package defender

import (
	"slices"
	"time"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Step advances the game by one frame. It is a no-op unless the game is running.
//
// Order within a frame: ship motion, firing, bullets, spawning, enemy motion
// and collision resolution, particles. Entities are flagged during the pass
// and compacted afterwards, so no collection is mutated while iterated.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	if g.phase != core.PhaseRunning {
		return core.StepResult{State: g.State()}
	}

	now := g.clock.Now()
	g.tickCount++

	g.moveShip(in)
	if in.Has(core.ActionFire) {
		g.fire(now)
	}
	g.advanceBullets()

	if now.Sub(g.lastSpawn) > g.spawnInterval {
		g.spawnEnemy()
		g.lastSpawn = now
	}

	g.resolveEnemies()
	g.advanceParticles()

	return core.StepResult{State: g.State(), Events: g.events}
}

func (g *Game) moveShip(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.ship.X -= g.ship.Speed
	}
	if in.Has(core.ActionRight) {
		g.ship.X += g.ship.Speed
	}
	g.ship.X = core.ClampF(g.ship.X, 0, g.cfg.Playfield.Width-g.ship.W)
}

// fire spawns one bullet at the ship's nose if the cooldown allows it.
func (g *Game) fire(now time.Time) {
	if !g.ship.canFire(now) {
		return
	}

	b := Bullet{
		X:     g.ship.X + g.ship.W/2 - g.cfg.Bullet.Width/2,
		Y:     g.ship.Y - g.cfg.Bullet.MuzzleOffset,
		W:     g.cfg.Bullet.Width,
		H:     g.cfg.Bullet.Height,
		Speed: g.cfg.Bullet.Speed,
	}
	g.bullets = append(g.bullets, b)
	g.ship.LastShot = now
	g.emit(core.Event{Kind: core.EventShot, X: b.X + b.W/2, Y: b.Y})
}

// advanceBullets moves bullets up and drops those fully above the playfield.
func (g *Game) advanceBullets() {
	for i := range g.bullets {
		g.bullets[i].Y -= g.bullets[i].Speed
	}
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool {
		return b.Y+b.H < 0
	})
}

// resolveEnemies moves every enemy and settles its fate for this frame.
//
// Ship contact is checked before bullets: an enemy touching both the ship and
// a bullet in the same frame always costs a life and never scores.
func (g *Game) resolveEnemies() {
	shipBox := g.ship.Rect()
	fieldW := g.cfg.Playfield.Width
	fieldH := g.cfg.Playfield.Height

	// Newest first
	for i := len(g.enemies) - 1; i >= 0; i-- {
		e := &g.enemies[i]
		e.advance(fieldW, g.cfg.Enemy.ZigzagAmplitude)
		box := e.Rect()

		switch {
		case box.Overlaps(shipBox):
			e.dead = true
			g.damage()
		case e.Y > fieldH:
			e.dead = true
			g.damage()
		default:
			if j := g.bulletHitting(box); j >= 0 {
				g.bullets[j].dead = true
				e.dead = true
				g.kill(box)
			}
		}
	}

	g.enemies = slices.DeleteFunc(g.enemies, func(e Enemy) bool { return e.dead })
	g.bullets = slices.DeleteFunc(g.bullets, func(b Bullet) bool { return b.dead })
}

// bulletHitting returns the index of the first live bullet overlapping box,
// newest first, or -1.
func (g *Game) bulletHitting(box core.RectF) int {
	for j := len(g.bullets) - 1; j >= 0; j-- {
		if g.bullets[j].dead {
			continue
		}
		if box.Overlaps(g.bullets[j].Rect()) {
			return j
		}
	}
	return -1
}

// damage costs one life; the last one ends the run. Ignored once the run is over.
func (g *Game) damage() {
	if g.phase != core.PhaseRunning {
		return
	}

	g.lives--
	g.emit(core.Event{Kind: core.EventDamage, Value: g.lives})

	if g.lives <= 0 {
		g.lives = 0
		g.phase = core.PhaseGameOver
		g.emit(core.Event{Kind: core.EventGameOver, Value: g.score})
	}
}

// kill scores a destroyed enemy, bursts it into particles and applies any level-up.
func (g *Game) kill(box core.RectF) {
	cx, cy := box.Center()
	g.spawnExplosion(cx, cy)

	if g.phase != core.PhaseRunning {
		return
	}

	before := g.score
	g.score += g.cfg.Progression.KillReward
	g.emit(core.Event{Kind: core.EventKill, X: cx, Y: cy, Value: g.score})

	for range g.difficulty.LevelUps(before, g.score) {
		g.levelUp()
	}
}

// levelUp raises difficulty and grants the bonus life.
func (g *Game) levelUp() {
	g.level++
	g.lives += g.cfg.Progression.BonusLives
	g.enemySpeed = g.difficulty.EnemySpeed(g.level)
	g.spawnInterval = g.difficulty.SpawnInterval(g.level)
	g.emit(core.Event{Kind: core.EventLevelUp, Value: g.level})
}

// advanceParticles integrates every particle and drops those that have faded out.
func (g *Game) advanceParticles() {
	kept := g.particles[:0]
	for _, p := range g.particles {
		if p.advance() {
			continue
		}
		kept = append(kept, p)
	}
	g.particles = kept
}

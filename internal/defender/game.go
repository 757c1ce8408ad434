// Package defender implements Space Defender: a ship at the bottom of the
// playfield shoots down enemies that zigzag their way toward it.
//
// A Game is a self-contained session. It owns every entity collection and the
// progression counters, and is driven by a single frame loop calling Step and
// Render. Timers read an injected core.Clock so tests can step them exactly.
package defender

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/space-defender/internal/config"
	"github.com/vovakirdan/space-defender/internal/core"
)

// GameID is the identifier used for score storage.
const GameID = "defender"

// Game implements the Space Defender session.
type Game struct {
	cfg        config.DefenderConfig
	difficulty *config.Difficulty
	clock      core.Clock
	rng        *rand.Rand

	ship      Ship
	bullets   []Bullet
	enemies   []Enemy
	particles []Particle

	phase         core.Phase
	score         int
	lives         int
	level         int
	enemySpeed    float64
	spawnInterval time.Duration
	lastSpawn     time.Time // Zero until the first spawn
	tickCount     int

	events []core.Event // Collected during the current Step
}

// New creates an idle game. A nil clock means the system clock.
func New(cfg config.DefenderConfig, clock core.Clock, seed int64) *Game {
	if clock == nil {
		clock = core.SystemClock{}
	}
	g := &Game{
		cfg:        cfg,
		difficulty: config.NewDifficulty(cfg.Progression, cfg.Spawn),
		clock:      clock,
		rng:        rand.New(rand.NewSource(seed)),
	}
	g.resetWorld()
	g.phase = core.PhaseIdle
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Space Defender"
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.DefenderConfig {
	return g.cfg
}

// Reset reseeds the RNG from cfg and starts a fresh run.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.Start()
}

// Start resets all scalars and collections and enters the running phase.
// Called for the first run and for every restart after game over.
func (g *Game) Start() {
	g.resetWorld()
	g.phase = core.PhaseRunning
}

// Stop abandons the current run and returns to idle.
func (g *Game) Stop() {
	g.phase = core.PhaseIdle
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() core.Phase {
	return g.phase
}

func (g *Game) resetWorld() {
	field := g.cfg.Playfield
	g.ship = Ship{
		X:        field.Width/2 - g.cfg.Ship.Width/2,
		Y:        field.Height - g.cfg.Ship.BottomOffset,
		W:        g.cfg.Ship.Width,
		H:        g.cfg.Ship.Height,
		Speed:    g.cfg.Ship.Speed,
		Cooldown: g.cfg.Ship.Cooldown,
	}
	g.bullets = g.bullets[:0]
	g.enemies = g.enemies[:0]
	g.particles = g.particles[:0]

	g.score = 0
	g.lives = g.cfg.Session.Lives
	g.level = 1
	g.enemySpeed = g.difficulty.EnemySpeed(1)
	g.spawnInterval = g.difficulty.SpawnInterval(1)
	g.lastSpawn = time.Time{}
	g.tickCount = 0
	g.events = nil
}

// State returns the current scalar readout.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		Phase:    g.phase,
		GameOver: g.phase == core.PhaseGameOver,
	}
}

// Ship returns a copy of the player ship.
func (g *Game) Ship() Ship {
	return g.ship
}

// Bullets returns the live bullets. The slice must not be modified.
func (g *Game) Bullets() []Bullet {
	return g.bullets
}

// Enemies returns the live enemies. The slice must not be modified.
func (g *Game) Enemies() []Enemy {
	return g.enemies
}

// Particles returns the live explosion particles. The slice must not be modified.
func (g *Game) Particles() []Particle {
	return g.particles
}

// EnemySpeed returns the base speed given to newly spawned enemies.
func (g *Game) EnemySpeed() float64 {
	return g.enemySpeed
}

// SpawnInterval returns the current gap between enemy spawns.
func (g *Game) SpawnInterval() time.Duration {
	return g.spawnInterval
}

func (g *Game) emit(e core.Event) {
	g.events = append(g.events, e)
}

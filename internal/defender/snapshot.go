package defender

import (
	"math"
	"time"
)

// Snapshot is a compact summary of a session for logging and determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick          int
	Phase         string
	Score         int
	Lives         int
	Level         int
	ShipX         float64
	EnemySpeed    float64
	SpawnInterval time.Duration

	// Entity positions, flattened: each entity is 2 floats (X, Y)
	BulletData   []float64
	EnemyData    []float64
	ParticleData []float64
}

// Snapshot returns the current session summary.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:          g.tickCount,
		Phase:         g.phase.String(),
		Score:         g.score,
		Lives:         g.lives,
		Level:         g.level,
		ShipX:         g.ship.X,
		EnemySpeed:    g.enemySpeed,
		SpawnInterval: g.spawnInterval,
		BulletData:    make([]float64, 0, len(g.bullets)*2),
		EnemyData:     make([]float64, 0, len(g.enemies)*2),
		ParticleData:  make([]float64, 0, len(g.particles)*2),
	}
	for _, b := range g.bullets {
		snap.BulletData = append(snap.BulletData, b.X, b.Y)
	}
	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData, e.X, e.Y)
	}
	for _, p := range g.particles {
		snap.ParticleData = append(snap.ParticleData, p.X, p.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.SpawnInterval) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.ShipX)
	h = h*31 + math.Float64bits(snap.EnemySpeed)
	for _, s := range snap.Phase {
		h = h*31 + uint64(s) //#nosec G115 -- hash computation
	}

	for _, data := range [][]float64{snap.BulletData, snap.EnemyData, snap.ParticleData} {
		h = h*31 + uint64(len(data))
		for _, v := range data {
			h = h*31 + math.Float64bits(v)
		}
	}

	return h
}

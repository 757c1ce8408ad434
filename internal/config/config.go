// Package config provides YAML-based game configuration loading and
// difficulty management for Space Defender.
package config

import "time"

// DefenderConfig contains all tunables for a Space Defender session.
// Distances are playfield units, speeds are units per tick.
type DefenderConfig struct {
	Playfield   PlayfieldConfig   `yaml:"playfield"`
	Ship        ShipConfig        `yaml:"ship"`
	Bullet      BulletConfig      `yaml:"bullet"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Spawn       SpawnConfig       `yaml:"spawn"`
	Explosion   ExplosionConfig   `yaml:"explosion"`
	Progression ProgressionConfig `yaml:"progression"`
	Session     SessionConfig     `yaml:"session"`
}

// PlayfieldConfig defines the logical drawable area.
type PlayfieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width        float64       `yaml:"width"`
	Height       float64       `yaml:"height"`
	Speed        float64       `yaml:"speed"`
	BottomOffset float64       `yaml:"bottom_offset"` // Distance from ship top to playfield bottom
	Cooldown     time.Duration `yaml:"cooldown"`      // Minimum wall-clock gap between shots
}

// BulletConfig defines player projectiles.
type BulletConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Speed        float64 `yaml:"speed"`
	MuzzleOffset float64 `yaml:"muzzle_offset"` // Spawn distance above the ship nose
}

// EnemyConfig defines descending enemies.
type EnemyConfig struct {
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	SpawnY             float64 `yaml:"spawn_y"`
	SpeedJitter        float64 `yaml:"speed_jitter"`         // Random extra speed in [0, jitter)
	ZigzagMinPeriod    float64 `yaml:"zigzag_min_period"`    // Ticks
	ZigzagPeriodJitter float64 `yaml:"zigzag_period_jitter"` // Random extra period in [0, jitter)
	ZigzagAmplitude    float64 `yaml:"zigzag_amplitude"`     // Lateral units per tick at peak
}

// SpawnConfig defines the enemy spawn timer.
type SpawnConfig struct {
	Interval     time.Duration `yaml:"interval"`      // Gap at level 1
	MinInterval  time.Duration `yaml:"min_interval"`  // Floor
	IntervalStep time.Duration `yaml:"interval_step"` // Reduction per level-up
}

// ExplosionConfig defines the particle burst on a kill.
type ExplosionConfig struct {
	Particles    int     `yaml:"particles"`
	MaxSpeed     float64 `yaml:"max_speed"` // Velocity components drawn from (-max, max)
	MinRadius    float64 `yaml:"min_radius"`
	RadiusJitter float64 `yaml:"radius_jitter"`
	MinDecay     float64 `yaml:"min_decay"` // Alpha lost per tick
	DecayJitter  float64 `yaml:"decay_jitter"`
}

// ProgressionConfig defines scoring and level-ups.
type ProgressionConfig struct {
	Enabled        bool    `yaml:"enabled"` // When false, levels never tighten speed or spawn interval
	KillReward     int     `yaml:"kill_reward"`
	LevelThreshold int     `yaml:"level_threshold"` // Level up every N points
	BaseSpeed      float64 `yaml:"base_speed"`      // Enemy speed at level 1
	SpeedStep      float64 `yaml:"speed_step"`      // Added per level-up
	BonusLives     int     `yaml:"bonus_lives"`     // Granted per level-up
}

// SessionConfig defines per-run starting values.
type SessionConfig struct {
	Lives int `yaml:"lives"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

package config

import "time"

// Difficulty derives the level-dependent parameters from the progression and
// spawn settings. Level 1 is the starting level.
type Difficulty struct {
	prog  ProgressionConfig
	spawn SpawnConfig
}

// NewDifficulty creates a difficulty calculator.
func NewDifficulty(prog ProgressionConfig, spawn SpawnConfig) *Difficulty {
	return &Difficulty{prog: prog, spawn: spawn}
}

// IsEnabled returns whether level-ups tighten speed and spawn interval.
func (d *Difficulty) IsEnabled() bool {
	return d.prog.Enabled
}

// EnemySpeed returns the enemy base speed at the given level.
func (d *Difficulty) EnemySpeed(level int) float64 {
	if !d.prog.Enabled || level <= 1 {
		return d.prog.BaseSpeed
	}
	return d.prog.BaseSpeed + float64(level-1)*d.prog.SpeedStep
}

// SpawnInterval returns the spawn interval at the given level, never below the floor.
func (d *Difficulty) SpawnInterval(level int) time.Duration {
	if !d.prog.Enabled || level <= 1 {
		return d.spawn.Interval
	}
	interval := d.spawn.Interval - time.Duration(level-1)*d.spawn.IntervalStep
	if interval < d.spawn.MinInterval {
		interval = d.spawn.MinInterval
	}
	return interval
}

// LevelUps returns how many level thresholds were crossed going from score
// before to score after.
func (d *Difficulty) LevelUps(before, after int) int {
	if d.prog.LevelThreshold <= 0 || after <= before {
		return 0
	}
	return after/d.prog.LevelThreshold - before/d.prog.LevelThreshold
}

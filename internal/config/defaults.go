package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/defender.yaml
var defaultDefenderYAML []byte

// DefaultDefenderConfig returns the built-in configuration.
// It mirrors defaults/defender.yaml and is the fallback if the embed is unreadable.
func DefaultDefenderConfig() DefenderConfig {
	return DefenderConfig{
		Playfield: PlayfieldConfig{
			Width:  800,
			Height: 600,
		},
		Ship: ShipConfig{
			Width:        50,
			Height:       40,
			Speed:        10,
			BottomOffset: 60,
			Cooldown:     300 * time.Millisecond,
		},
		Bullet: BulletConfig{
			Width:        8,
			Height:       16,
			Speed:        20,
			MuzzleOffset: 10,
		},
		Enemy: EnemyConfig{
			Width:              40,
			Height:             30,
			SpawnY:             -40,
			SpeedJitter:        1,
			ZigzagMinPeriod:    60,
			ZigzagPeriodJitter: 60,
			ZigzagAmplitude:    2,
		},
		Spawn: SpawnConfig{
			Interval:     2 * time.Second,
			MinInterval:  600 * time.Millisecond,
			IntervalStep: 150 * time.Millisecond,
		},
		Explosion: ExplosionConfig{
			Particles:    20,
			MaxSpeed:     3,
			MinRadius:    4,
			RadiusJitter: 3,
			MinDecay:     0.03,
			DecayJitter:  0.03,
		},
		Progression: ProgressionConfig{
			Enabled:        true,
			KillReward:     10,
			LevelThreshold: 100,
			BaseSpeed:      2.5,
			SpeedStep:      0.3,
			BonusLives:     1,
		},
		Session: SessionConfig{
			Lives: 3,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultDefenderYAML
}

package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/space-defender/internal/core"
)

// Cue identifies a synthesised sound.
type Cue int

const (
	CueShot Cue = iota
	CueExplosion
	CueDamage
	CueLevelUp
	CueGameOver
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueShot:
		return "shot"
	case CueExplosion:
		return "explosion"
	case CueDamage:
		return "damage"
	case CueLevelUp:
		return "level-up"
	case CueGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// CueFor maps a game event to its cue.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventShot:
		return CueShot, true
	case core.EventKill:
		return CueExplosion, true
	case core.EventDamage:
		return CueDamage, true
	case core.EventLevelUp:
		return CueLevelUp, true
	case core.EventGameOver:
		return CueGameOver, true
	default:
		return 0, false
	}
}

// Duration returns how long the cue plays.
func (c Cue) Duration() time.Duration {
	switch c {
	case CueShot:
		return 80 * time.Millisecond
	case CueExplosion:
		return 250 * time.Millisecond
	case CueDamage:
		return 180 * time.Millisecond
	case CueLevelUp:
		return 240 * time.Millisecond
	case CueGameOver:
		return 600 * time.Millisecond
	default:
		return 0
	}
}

// NewCue builds a fresh, finite streamer for the cue.
// Every call returns an independent streamer; streamers cannot be replayed.
func NewCue(c Cue, rate beep.SampleRate) beep.Streamer {
	d := c.Duration()
	switch c {
	case CueShot:
		osc := NewSweep(1200, 500, d, WaveSquare, rate)
		return newVolume(NewEnvelope(osc, d, 2*time.Millisecond, 50*time.Millisecond, rate), 0.25)

	case CueExplosion:
		noise := NewOscillator(1, d, WaveNoise, rate)
		rumble := NewSweep(120, 40, d, WaveSine, rate)
		mixed := beep.Mix(newVolume(noise, 0.5), newVolume(rumble, 0.5))
		return newVolume(NewEnvelope(mixed, d, 5*time.Millisecond, 200*time.Millisecond, rate), 0.6)

	case CueDamage:
		osc := NewSweep(220, 90, d, WaveSaw, rate)
		return newVolume(NewEnvelope(osc, d, 5*time.Millisecond, 120*time.Millisecond, rate), 0.4)

	case CueLevelUp:
		third := d / 3
		notes := make([]beep.Streamer, 0, 3)
		for _, freq := range []float64{523.25, 659.25, 783.99} {
			osc := NewOscillator(freq, third, WaveSine, rate)
			notes = append(notes, NewEnvelope(osc, third, 5*time.Millisecond, 30*time.Millisecond, rate))
		}
		return newVolume(beep.Seq(notes...), 0.4)

	case CueGameOver:
		osc := NewSweep(440, 110, d, WaveSaw, rate)
		return newVolume(NewEnvelope(osc, d, 10*time.Millisecond, 300*time.Millisecond, rate), 0.4)

	default:
		return beep.Silence(0)
	}
}

package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase is the session lifecycle state.
type Phase int

const (
	PhaseIdle     Phase = iota // Before the first start, or back at the title
	PhaseRunning               // Frame loop active
	PhaseGameOver              // Lives exhausted, awaiting restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// GameState is the scalar readout of a session: what the HUD shows.
type GameState struct {
	Score    int   // Current score
	Lives    int   // Remaining lives
	Level    int   // Current level, starting at 1
	Phase    Phase // Lifecycle phase
	GameOver bool  // Shorthand for Phase == PhaseGameOver
}

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventShot     EventKind = iota // A bullet was fired
	EventKill                      // An enemy was destroyed by a bullet
	EventDamage                    // The player lost a life
	EventLevelUp                   // Level increased
	EventGameOver                  // Lives reached zero
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventShot:
		return "shot"
	case EventKill:
		return "kill"
	case EventDamage:
		return "damage"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Event is a fire-and-forget notification for the platform (audio, logs, storage).
type Event struct {
	Kind  EventKind
	X, Y  float64 // Where it happened, when meaningful
	Value int     // Score for kills and game over, level for level-ups
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

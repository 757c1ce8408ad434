package core

import "time"

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionFire           // E, Space - fire
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to title
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions held during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they are held this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as held for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action is held this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// InputState samples press/release events into a per-action pressed state.
//
// With a zero hold window the state is exactly what Press and Release say,
// which suits frontends that report key releases. Terminals only report
// presses (plus auto-repeat), so a positive hold window treats a key as held
// until hold has passed since its last press.
type InputState struct {
	hold     time.Duration
	pressed  map[Action]bool
	lastSeen map[Action]time.Time
}

// NewInputState creates a sampler driven by explicit press/release events.
func NewInputState() *InputState {
	return NewHoldInputState(0)
}

// NewHoldInputState creates a sampler whose presses expire after hold.
func NewHoldInputState(hold time.Duration) *InputState {
	return &InputState{
		hold:     hold,
		pressed:  make(map[Action]bool),
		lastSeen: make(map[Action]time.Time),
	}
}

// Press records that a is down at the given time.
// ActionNone (an unrecognized key) is ignored.
func (s *InputState) Press(a Action, at time.Time) {
	if a == ActionNone {
		return
	}
	s.pressed[a] = true
	s.lastSeen[a] = at
}

// Release records that a is up.
func (s *InputState) Release(a Action) {
	delete(s.pressed, a)
	delete(s.lastSeen, a)
}

// Held reports whether a is down at now.
func (s *InputState) Held(a Action, now time.Time) bool {
	if !s.pressed[a] {
		return false
	}
	if s.hold > 0 && now.Sub(s.lastSeen[a]) >= s.hold {
		return false
	}
	return true
}

// Frame snapshots every held action into an InputFrame.
// Expired holds are dropped as a side effect.
func (s *InputState) Frame(now time.Time) InputFrame {
	frame := NewInputFrame()
	for a := range s.pressed {
		if s.Held(a, now) {
			frame.Set(a)
		} else {
			s.Release(a)
		}
	}
	return frame
}

// Reset releases every action.
func (s *InputState) Reset() {
	for a := range s.pressed {
		s.Release(a)
	}
}

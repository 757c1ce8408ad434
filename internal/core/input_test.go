package core

import (
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestInputStatePressRelease(t *testing.T) {
	s := NewInputState()

	s.Press(ActionLeft, epoch)
	if !s.Held(ActionLeft, epoch.Add(time.Hour)) {
		t.Error("explicit press should stay held until released")
	}

	s.Release(ActionLeft)
	if s.Held(ActionLeft, epoch) {
		t.Error("released action should not be held")
	}
}

func TestInputStateIgnoresUnknown(t *testing.T) {
	s := NewInputState()
	s.Press(ActionNone, epoch)

	frame := s.Frame(epoch)
	if len(frame.Actions) != 0 {
		t.Errorf("unrecognized input should be ignored, got %v", frame.Actions)
	}
}

func TestInputStateHoldWindow(t *testing.T) {
	s := NewHoldInputState(100 * time.Millisecond)
	s.Press(ActionFire, epoch)

	tests := []struct {
		name     string
		at       time.Duration
		expected bool
	}{
		{"immediately", 0, true},
		{"inside window", 99 * time.Millisecond, true},
		{"window elapsed", 100 * time.Millisecond, false},
		{"long after", time.Second, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Held(ActionFire, epoch.Add(tc.at)); got != tc.expected {
				t.Errorf("Held() at +%v = %v, expected %v", tc.at, got, tc.expected)
			}
		})
	}
}

func TestInputStateRepeatExtendsHold(t *testing.T) {
	s := NewHoldInputState(100 * time.Millisecond)
	s.Press(ActionRight, epoch)
	s.Press(ActionRight, epoch.Add(80*time.Millisecond)) // key auto-repeat

	if !s.Held(ActionRight, epoch.Add(150*time.Millisecond)) {
		t.Error("repeat press should extend the hold window")
	}
}

func TestInputStateFrame(t *testing.T) {
	s := NewHoldInputState(50 * time.Millisecond)
	s.Press(ActionLeft, epoch)
	s.Press(ActionFire, epoch.Add(40*time.Millisecond))

	frame := s.Frame(epoch.Add(60 * time.Millisecond))
	if frame.Has(ActionLeft) {
		t.Error("expired hold should not appear in the frame")
	}
	if !frame.Has(ActionFire) {
		t.Error("live hold should appear in the frame")
	}

	s.Reset()
	if len(s.Frame(epoch).Actions) != 0 {
		t.Error("Reset should release everything")
	}
}

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionFire) {
		t.Error("new frame should be empty")
	}

	f.Set(ActionFire)
	if !f.Has(ActionFire) {
		t.Error("Set should mark the action")
	}

	f.Clear()
	if f.Has(ActionFire) {
		t.Error("Clear should reset actions")
	}

	var zero InputFrame
	if zero.Has(ActionLeft) {
		t.Error("zero frame should report nothing held")
	}
}

func TestManualClock(t *testing.T) {
	c := NewManualClock(epoch)
	if !c.Now().Equal(epoch) {
		t.Errorf("Now() = %v, expected %v", c.Now(), epoch)
	}

	c.Advance(300 * time.Millisecond)
	if got := c.Now().Sub(epoch); got != 300*time.Millisecond {
		t.Errorf("Advance moved clock by %v, expected 300ms", got)
	}

	c.Set(epoch)
	if !c.Now().Equal(epoch) {
		t.Error("Set should jump the clock")
	}
}

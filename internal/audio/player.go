package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate used for every cue.
const SampleRate = beep.SampleRate(44100)

// Player plays cues. Calls are fire-and-forget and never block the frame loop.
type Player interface {
	Play(c Cue)
	Close() error
}

// Silent is a Player that discards every cue.
type Silent struct{}

func (Silent) Play(Cue)     {}
func (Silent) Close() error { return nil }

// initOnce guards speaker.Init, which may only run once per process.
var (
	initOnce sync.Once
	initErr  error
)

// Speaker plays cues through the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume float64
	closed bool
}

// NewSpeaker opens the audio device and starts the mixer.
// Volume is linear in [0, 1].
func NewSpeaker(volume float64) (*Speaker, error) {
	initOnce.Do(func() {
		initErr = speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond))
	})
	if initErr != nil {
		return nil, fmt.Errorf("audio: cannot open speaker: %w", initErr)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues the cue on the mixer.
func (s *Speaker) Play(c Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	stream := newVolume(NewCue(c, SampleRate), s.volume)
	speaker.Lock()
	s.mixer.Add(stream)
	speaker.Unlock()
}

// Close stops all playing cues. The device stays open for later speakers.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}

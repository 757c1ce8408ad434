package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/space-defender/internal/core"
)

// drain streams s to the end and returns the sample count and peak amplitude.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	peak := 0.0
	for range 10000 {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = math.Max(peak, math.Abs(buf[i][0]))
			peak = math.Max(peak, math.Abs(buf[i][1]))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("stream never drained")
	return 0, 0
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440, 100*time.Millisecond, WaveSine, rate)

	n, peak := drain(t, osc)
	if n != rate.N(100*time.Millisecond) {
		t.Errorf("Expected %d samples, got %d", rate.N(100*time.Millisecond), n)
	}
	if peak > 1.0 || peak < 0.9 {
		t.Errorf("Sine peak = %f, want close to 1", peak)
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

func TestOscillatorWaves(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		name string
		wave WaveType
	}{
		{"sine", WaveSine},
		{"square", WaveSquare},
		{"saw", WaveSaw},
		{"noise", WaveNoise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewSweep(880, 220, 20*time.Millisecond, tt.wave, rate)
			samples := make([][2]float64, 200)
			n, ok := osc.Stream(samples)
			if !ok || n != 200 {
				t.Fatalf("Stream() = %d, %v, want 200, true", n, ok)
			}
			for i := range n {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Fatalf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Fatalf("Sample %d differs between channels", i)
				}
			}
		})
	}
}

func TestEnvelopeShapes(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // Constant 1.0
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := make([][2]float64, 100)
	n, _ := env.Stream(samples)
	if n != 100 {
		t.Fatalf("Expected 100 samples, got %d", n)
	}

	if samples[0][0] != 0 {
		t.Errorf("Attack should start silent, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Sustain should be full volume, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Release should fade: %f -> %f", samples[90][0], samples[99][0])
	}
}

func TestNewVolumeSilent(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := newVolume(NewOscillator(0, 10*time.Millisecond, WaveSquare, rate), 0)

	_, peak := drain(t, s)
	if peak != 0 {
		t.Errorf("Zero volume should be silent, peak = %f", peak)
	}
}

func TestCuesAreFiniteAndAudible(t *testing.T) {
	cues := []Cue{CueShot, CueExplosion, CueDamage, CueLevelUp, CueGameOver}

	for _, c := range cues {
		t.Run(c.String(), func(t *testing.T) {
			n, peak := drain(t, NewCue(c, SampleRate))

			want := SampleRate.N(c.Duration())
			if n < want*9/10 || n > want*11/10 {
				t.Errorf("Expected about %d samples, got %d", want, n)
			}
			if peak <= 0 || peak > 1 {
				t.Errorf("Peak = %f, want in (0, 1]", peak)
			}
		})
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		kind core.EventKind
		want Cue
	}{
		{core.EventShot, CueShot},
		{core.EventKill, CueExplosion},
		{core.EventDamage, CueDamage},
		{core.EventLevelUp, CueLevelUp},
		{core.EventGameOver, CueGameOver},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			got, ok := CueFor(tt.kind)
			if !ok || got != tt.want {
				t.Errorf("CueFor(%v) = %v, %v, want %v", tt.kind, got, ok, tt.want)
			}
		})
	}

	if _, ok := CueFor(core.EventKind(99)); ok {
		t.Error("Unknown event should have no cue")
	}
}

func TestSilentPlayer(t *testing.T) {
	var p Player = Silent{}
	p.Play(CueShot)
	if err := p.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

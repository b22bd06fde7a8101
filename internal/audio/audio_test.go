package audio

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/ztapz/internal/config"
)

// drain streams s to completion and returns every sample.
func drain(t *testing.T, s beep.Streamer) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for range 1000 {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatal("streamer did not finish")
	return nil
}

func TestPopStreamerFinite(t *testing.T) {
	samples := drain(t, NewPopStreamer(SampleRate, 1))

	want := SampleRate.N(clickLength) + SampleRate.N(popDuration)
	if len(samples) != want {
		t.Errorf("pop length = %d samples, expected %d", len(samples), want)
	}

	peak := 0.0
	for i, s := range samples {
		if math.IsNaN(s[0]) || math.Abs(s[0]) > 1.0 {
			t.Fatalf("sample %d out of range: %v", i, s[0])
		}
		if s[0] != s[1] {
			t.Fatalf("sample %d: channels differ", i)
		}
		peak = math.Max(peak, math.Abs(s[0]))
	}
	if peak == 0 {
		t.Error("pop should not be silent at full volume")
	}
}

func TestPopStreamerSilentAtZeroVolume(t *testing.T) {
	for i, s := range drain(t, NewPopStreamer(SampleRate, 0)) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, expected silence", i, s)
		}
	}
}

func TestEnvelopeEdges(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond
	env := newEnvelope(newSweep(100, 100, d, rate), d, 10*time.Millisecond, 10*time.Millisecond, rate)

	samples := drain(t, env)
	if len(samples) != 100 {
		t.Fatalf("envelope length = %d, expected 100", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample should start at zero volume, got %v", samples[0][0])
	}
	if math.Abs(samples[len(samples)-1][0]) > 0.2 {
		t.Errorf("last sample should be nearly faded, got %v", samples[len(samples)-1][0])
	}
}

func TestBellWritesBEL(t *testing.T) {
	var buf bytes.Buffer
	b := NewBell(&buf)
	b.Pop()
	b.Pop()

	if got := buf.String(); got != "\a\a" {
		t.Errorf("bell output = %q, expected two BEL characters", got)
	}
	if err := b.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
}

func TestNewMutedIsNop(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.AudioConfig
		mute bool
	}{
		{"mute flag", config.AudioConfig{Enabled: true, Volume: 1}, true},
		{"disabled in config", config.AudioConfig{Enabled: false, Volume: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := New(tt.cfg, tt.mute)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if _, ok := p.(Nop); !ok {
				t.Errorf("New() = %T, expected Nop", p)
			}
			p.Pop()
			if err := p.Close(); err != nil {
				t.Errorf("Close() = %v", err)
			}
		})
	}
}

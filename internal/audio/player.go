package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/ztapz/internal/config"
)

// Player plays the pop sound. Implementations must be safe to call from the
// UI goroutine and must never block it.
type Player interface {
	Pop()
	Close() error
}

// New returns a speaker-backed player, or Nop when audio is disabled.
// When the sound device cannot be opened it returns Nop and the error so the
// caller can log it and keep playing.
func New(cfg config.AudioConfig, mute bool) (Player, error) {
	if mute || !cfg.Enabled {
		return Nop{}, nil
	}
	sp, err := NewSpeaker(cfg)
	if err != nil {
		return Nop{}, err
	}
	return sp, nil
}

// Speaker plays pops on the local sound device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	closed bool
}

var speakerOnce struct {
	sync.Mutex
	ready bool
}

// NewSpeaker opens the sound device. The device is shared by the process,
// so only one Speaker should be open at a time.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	speakerOnce.Lock()
	defer speakerOnce.Unlock()

	if !speakerOnce.ready {
		if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
			return nil, fmt.Errorf("audio: init speaker: %w", err)
		}
		speakerOnce.ready = true
	}

	sp := &Speaker{
		mixer:  &beep.Mixer{},
		rate:   SampleRate,
		volume: cfg.Volume,
	}
	speaker.Play(sp.mixer)
	return sp, nil
}

// Pop queues a pop on top of whatever is already playing.
func (s *Speaker) Pop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	speaker.Lock()
	s.mixer.Add(NewPopStreamer(s.rate, s.volume))
	speaker.Unlock()
}

// Close silences the mixer and releases the device.
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

	speakerOnce.Lock()
	speaker.Close()
	speakerOnce.ready = false
	speakerOnce.Unlock()
	return nil
}

// Bell rings the terminal bell on w. SSH sessions use it since the sound
// device lives on the server, not with the player.
type Bell struct {
	mu sync.Mutex
	w  io.Writer
}

// NewBell creates a bell writing to w.
func NewBell(w io.Writer) *Bell {
	return &Bell{w: w}
}

// Pop writes the BEL control character.
func (b *Bell) Pop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, "\a")
}

// Close does nothing; the writer belongs to the caller.
func (b *Bell) Close() error { return nil }

// Nop is a muted player.
type Nop struct{}

// Pop does nothing.
func (Nop) Pop() {}

// Close does nothing.
func (Nop) Close() error { return nil }

// Package audio plays the pop sound for successful taps. Sounds are
// synthesized with beep streamers, so no sample files ship with the game.
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the output rate used for every sound.
const SampleRate = beep.SampleRate(44100)

const (
	popDuration = 90 * time.Millisecond
	popAttack   = 4 * time.Millisecond
	popRelease  = 60 * time.Millisecond
	popFromHz   = 900.0
	popToHz     = 260.0
	clickHz     = 1760.0
	clickLength = 12 * time.Millisecond
)

// sweep is a sine whose frequency glides from one pitch to another.
type sweep struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	position int
	total    int
}

func newSweep(from, to float64, d time.Duration, rate beep.SampleRate) *sweep {
	return &sweep{rate: rate, from: from, to: to, total: rate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.total {
			return i, i > 0
		}
		progress := float64(s.position) / float64(s.total)
		freq := s.from + (s.to-s.from)*progress

		val := math.Sin(2 * math.Pi * s.phase)
		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales a stream linearly. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// NewPopStreamer builds one pop: a bright click followed by a short falling
// sine sweep. volume is linear in [0, 1].
func NewPopStreamer(rate beep.SampleRate, volume float64) beep.Streamer {
	body := newEnvelope(newSweep(popFromHz, popToHz, popDuration, rate), popDuration, popAttack, popRelease, rate)

	var parts []beep.Streamer
	if tone, err := generators.SineTone(rate, clickHz); err == nil {
		click := newEnvelope(beep.Take(rate.N(clickLength), tone), clickLength, 0, clickLength, rate)
		parts = append(parts, withVolume(click, 0.3))
	}
	parts = append(parts, withVolume(body, 0.8))

	return withVolume(beep.Seq(parts...), volume)
}

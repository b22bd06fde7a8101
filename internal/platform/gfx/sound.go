package gfx

import (
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/ztapz/internal/audio"
	"github.com/vovakirdan/ztapz/internal/config"
)

// Sound plays pops through ebiten's audio context. beep's speaker and
// ebiten both drive the same device backend, so the graphical front end
// renders the pop once to PCM and replays the bytes.
type Sound struct {
	ctx *ebaudio.Context
	pcm []byte
}

// NewSound returns an audio.Player for the graphical front end.
// It returns audio.Nop when sound is muted or disabled.
func NewSound(cfg config.AudioConfig, mute bool) audio.Player {
	if mute || !cfg.Enabled {
		return audio.Nop{}
	}
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(int(audio.SampleRate))
	}
	return &Sound{
		ctx: ctx,
		pcm: audio.RenderPCM16(audio.NewPopStreamer(audio.SampleRate, cfg.Volume)),
	}
}

// Pop starts a new pop. Overlapping pops mix in the context.
func (s *Sound) Pop() {
	s.ctx.NewPlayerFromBytes(s.pcm).Play()
}

// Close is a no-op; the audio context lives as long as the process.
func (s *Sound) Close() error {
	return nil
}

package audio

import (
	"encoding/binary"
	"testing"
)

// constStream yields n frames of a fixed value.
type constStream struct {
	left, right float64
	n           int
}

func (c *constStream) Stream(samples [][2]float64) (int, bool) {
	if c.n == 0 {
		return 0, false
	}
	k := min(len(samples), c.n)
	for i := range k {
		samples[i] = [2]float64{c.left, c.right}
	}
	c.n -= k
	return k, true
}

func (c *constStream) Err() error { return nil }

func TestRenderPCM16Layout(t *testing.T) {
	pcm := RenderPCM16(&constStream{left: 1, right: -2, n: 3})

	if len(pcm) != 3*4 {
		t.Fatalf("len = %d, expected 12 bytes", len(pcm))
	}
	left := int16(binary.LittleEndian.Uint16(pcm[0:2]))
	right := int16(binary.LittleEndian.Uint16(pcm[2:4]))
	if left != 32767 {
		t.Errorf("left = %d, expected 32767", left)
	}
	if right != -32767 {
		t.Errorf("right = %d, expected clamped -32767", right)
	}
}

func TestRenderPCM16Pop(t *testing.T) {
	pcm := RenderPCM16(NewPopStreamer(SampleRate, 1))

	frames := SampleRate.N(clickLength) + SampleRate.N(popDuration)
	if len(pcm) != frames*4 {
		t.Errorf("pop PCM = %d bytes, expected %d", len(pcm), frames*4)
	}
}

func TestRenderPCM16Empty(t *testing.T) {
	if pcm := RenderPCM16(&constStream{}); len(pcm) != 0 {
		t.Errorf("empty stream rendered %d bytes", len(pcm))
	}
}

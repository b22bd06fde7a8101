package audio

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"
)

// RenderPCM16 streams s to completion and encodes it as interleaved stereo
// signed 16-bit little-endian PCM, the format ebiten's audio players read.
func RenderPCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(math.Round(v * math.MaxInt16))
}

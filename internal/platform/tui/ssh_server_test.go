package tui

import (
	"bytes"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/vovakirdan/ztapz/internal/audio"
)

// chunkWriter records every Write call and fails if two overlap.
type chunkWriter struct {
	busy    atomic.Bool
	mu      sync.Mutex
	chunks  []string
	overlap atomic.Bool
}

func (w *chunkWriter) Write(p []byte) (int, error) {
	if !w.busy.CompareAndSwap(false, true) {
		w.overlap.Store(true)
	}
	time.Sleep(50 * time.Microsecond)
	w.mu.Lock()
	w.chunks = append(w.chunks, string(p))
	w.mu.Unlock()
	w.busy.Store(false)
	return len(p), nil
}

func TestSessionOutputKeepsFramesWhole(t *testing.T) {
	sink := &chunkWriter{}
	out := newSessionOutput(sink)
	bell := audio.NewBell(out)

	frame := []byte(strings.Repeat("( ● ) ", 200))

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for range 50 {
			_, _ = out.Write(frame)
		}
	}()
	go func() {
		defer wg.Done()
		for range 50 {
			bell.Pop()
		}
	}()
	wg.Wait()

	if sink.overlap.Load() {
		t.Fatal("bell and frame writes overlapped on the session")
	}
	frames, bells := 0, 0
	for _, c := range sink.chunks {
		switch {
		case c == "\a":
			bells++
		case bytes.Equal([]byte(c), frame):
			frames++
		default:
			t.Fatalf("unexpected chunk of %d bytes", len(c))
		}
	}
	if frames != 50 || bells != 50 {
		t.Errorf("frames = %d, bells = %d, expected 50 each", frames, bells)
	}
}

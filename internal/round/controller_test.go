package round

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/ztapz/internal/grid"
)

// scriptedSource returns a fixed sequence of indices, cycling when exhausted.
type scriptedSource struct {
	values []int
	pos    int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.values[s.pos%len(s.values)]
	s.pos++
	return v % n
}

func activeCount(snap Snapshot) int {
	n := 0
	for _, on := range snap.Cells {
		if on {
			n++
		}
	}
	return n
}

func TestNewControllerIsIdle(t *testing.T) {
	c := New(rand.New(rand.NewSource(1)))

	if c.Running() {
		t.Error("new controller should not be running")
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase() = %v, expected idle", c.Phase())
	}
	if n := activeCount(c.Snapshot()); n != 0 {
		t.Errorf("idle grid has %d active cells, expected 0", n)
	}
}

func TestStart(t *testing.T) {
	c := New(&scriptedSource{values: []int{9}})
	c.Start(60)

	snap := c.Snapshot()
	if snap.SecondsRemaining != 60 {
		t.Errorf("SecondsRemaining = %d, expected 60", snap.SecondsRemaining)
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
	if !snap.Running || snap.Phase != PhaseRunning {
		t.Error("round should be running after Start")
	}
	if snap.ActiveIndex != 9 {
		t.Errorf("ActiveIndex = %d, expected 9", snap.ActiveIndex)
	}
	if n := activeCount(snap); n != 1 {
		t.Errorf("expected exactly one active cell, got %d", n)
	}
	if !snap.Cells[9] {
		t.Error("cell 9 should be the active cell")
	}
}

func TestStartNonPositiveDurationUsesDefault(t *testing.T) {
	c := New(rand.New(rand.NewSource(1)))

	for _, d := range []int{0, -5} {
		c.Start(d)
		if c.SecondsRemaining() != DefaultDuration {
			t.Errorf("Start(%d): SecondsRemaining = %d, expected %d", d, c.SecondsRemaining(), DefaultDuration)
		}
	}
}

func TestTapOnTargetScores(t *testing.T) {
	c := New(&scriptedSource{values: []int{3, 17}})
	c.Start(60)

	if !c.Tap(3) {
		t.Fatal("Tap on the active cell should hit")
	}
	if c.Score() != 1 {
		t.Errorf("Score = %d, expected 1", c.Score())
	}
	if c.ActiveIndex() != 17 {
		t.Errorf("ActiveIndex = %d, expected relocation to 17", c.ActiveIndex())
	}
	if n := activeCount(c.Snapshot()); n != 1 {
		t.Errorf("expected exactly one active cell after hit, got %d", n)
	}
}

func TestTapMissHasNoEffect(t *testing.T) {
	c := New(&scriptedSource{values: []int{3}})
	c.Start(60)

	for i := 0; i < grid.Size; i++ {
		if i == 3 {
			continue
		}
		if c.Tap(i) {
			t.Errorf("Tap(%d) should miss", i)
		}
	}

	if c.Score() != 0 {
		t.Errorf("Score = %d, expected 0 after misses", c.Score())
	}
	if c.ActiveIndex() != 3 {
		t.Errorf("ActiveIndex changed to %d on misses", c.ActiveIndex())
	}
}

func TestTapOutOfRangeIsNoop(t *testing.T) {
	c := New(&scriptedSource{values: []int{0}})
	c.Start(60)

	for _, idx := range []int{-1, grid.Size, 1000} {
		if c.Tap(idx) {
			t.Errorf("Tap(%d) should be ignored", idx)
		}
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, expected 0", c.Score())
	}
}

func TestTapIncrementsByOneAndStaysInRange(t *testing.T) {
	c := New(rand.New(rand.NewSource(42)))
	c.Start(60)

	for i := 1; i <= 200; i++ {
		before := c.Score()
		c.Tap(c.ActiveIndex())

		if c.Score() != before+1 {
			t.Fatalf("tap %d: score went %d -> %d", i, before, c.Score())
		}
		if !grid.InBounds(c.ActiveIndex()) {
			t.Fatalf("tap %d: ActiveIndex %d out of range", i, c.ActiveIndex())
		}
		if n := activeCount(c.Snapshot()); n != 1 {
			t.Fatalf("tap %d: %d active cells", i, n)
		}
	}
}

func TestRelocationMayRepeat(t *testing.T) {
	c := New(&scriptedSource{values: []int{5, 5, 5}})
	c.Start(60)

	if !c.Tap(5) {
		t.Fatal("first tap should hit")
	}
	if c.ActiveIndex() != 5 {
		t.Errorf("ActiveIndex = %d, a repeated draw should be kept", c.ActiveIndex())
	}
	if !c.Tap(5) {
		t.Error("tapping the same cell again should hit again")
	}
	if c.Score() != 2 {
		t.Errorf("Score = %d, expected 2", c.Score())
	}
}

func TestTickCountsDownAndRelocates(t *testing.T) {
	c := New(&scriptedSource{values: []int{1, 2, 3}})
	c.Start(10)

	c.Tick()
	if c.SecondsRemaining() != 9 {
		t.Errorf("SecondsRemaining = %d, expected 9", c.SecondsRemaining())
	}
	if c.ActiveIndex() != 2 {
		t.Errorf("ActiveIndex = %d, expected 2 after tick", c.ActiveIndex())
	}
	if !c.Running() {
		t.Error("round should still be running")
	}
}

func TestSixtyTicksEndRound(t *testing.T) {
	c := New(rand.New(rand.NewSource(7)))
	c.Start(60)

	for i := 0; i < 59; i++ {
		c.Tick()
		if !c.Running() {
			t.Fatalf("round ended early after %d ticks", i+1)
		}
		if n := activeCount(c.Snapshot()); n != 1 {
			t.Fatalf("tick %d: %d active cells while running", i+1, n)
		}
	}

	c.Tick()
	if c.Running() {
		t.Error("round should be over after 60 ticks")
	}
	if c.SecondsRemaining() != 0 {
		t.Errorf("SecondsRemaining = %d, expected 0", c.SecondsRemaining())
	}
	if c.Phase() != PhaseGameOver {
		t.Errorf("Phase = %v, expected game_over", c.Phase())
	}
	if n := activeCount(c.Snapshot()); n != 0 {
		t.Errorf("%d cells active after game over", n)
	}

	// Further ticks are ignored
	c.Tick()
	if c.SecondsRemaining() != 0 {
		t.Errorf("tick after game over changed seconds to %d", c.SecondsRemaining())
	}
}

func TestTapAfterGameOverIgnored(t *testing.T) {
	c := New(&scriptedSource{values: []int{0}})
	c.Start(1)
	c.Tick()

	if c.Tap(0) {
		t.Error("tap after game over should be ignored")
	}
	if c.Score() != 0 {
		t.Errorf("Score = %d, expected 0", c.Score())
	}
}

func TestStopIsIdempotent(t *testing.T) {
	c := New(&scriptedSource{values: []int{4}})
	c.Start(60)
	c.Tap(4)

	c.Stop()
	c.Stop()
	c.Stop()

	if c.Running() {
		t.Error("Stop should end the round")
	}
	if c.Phase() != PhaseIdle {
		t.Errorf("Phase = %v, expected idle", c.Phase())
	}
	if c.ActiveIndex() != 0 {
		t.Errorf("ActiveIndex = %d, expected 0 after Stop", c.ActiveIndex())
	}
	if n := activeCount(c.Snapshot()); n != 0 {
		t.Errorf("%d cells active after Stop", n)
	}
}

func TestStopThenTapHasNoEffect(t *testing.T) {
	c := New(&scriptedSource{values: []int{0}})
	c.Start(60)
	c.Tap(0)
	score := c.Score()

	c.Stop()
	for i := 0; i < grid.Size; i++ {
		c.Tap(i)
	}

	if c.Score() != score {
		t.Errorf("Score changed from %d to %d after Stop", score, c.Score())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	c := New(&scriptedSource{values: []int{6}})
	c.Start(2)
	c.Tap(6)
	c.Tick()
	c.Tick()

	if c.Phase() != PhaseGameOver {
		t.Fatalf("Phase = %v, expected game_over", c.Phase())
	}

	c.Start(60)
	if !c.Running() || c.Score() != 0 || c.SecondsRemaining() != 60 {
		t.Errorf("restart: running=%v score=%d seconds=%d", c.Running(), c.Score(), c.SecondsRemaining())
	}
}

func TestListenerEvents(t *testing.T) {
	c := New(&scriptedSource{values: []int{2, 8, 11}})

	var events []Event
	var last Snapshot
	c.Subscribe(func(ev Event, snap Snapshot) {
		events = append(events, ev)
		last = snap
	})

	c.Stop() // idle: no event
	c.Start(2)
	c.Tap(2)
	c.Tick()
	c.Tick()
	c.Stop()

	expected := []Event{EventStarted, EventPop, EventRelocated, EventRoundOver, EventStopped}
	if len(events) != len(expected) {
		t.Fatalf("events = %v, expected %v", events, expected)
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("event %d = %v, expected %v", i, events[i], expected[i])
		}
	}
	if last.Phase != PhaseIdle {
		t.Errorf("last snapshot phase = %v, expected idle", last.Phase)
	}
}

func TestScenarioQuickMinute(t *testing.T) {
	c := New(rand.New(rand.NewSource(2024)))
	c.Start(60)

	first := c.ActiveIndex()
	c.Tap(first)
	if c.Score() != 1 {
		t.Errorf("Score = %d, expected 1", c.Score())
	}
	if !grid.InBounds(c.ActiveIndex()) {
		t.Errorf("ActiveIndex %d out of range", c.ActiveIndex())
	}

	for i := 0; i < 60; i++ {
		c.Tick()
	}
	if c.Running() {
		t.Error("round should be over")
	}
	if c.Score() != 1 {
		t.Errorf("final Score = %d, expected 1", c.Score())
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []int {
		c := New(rand.New(rand.NewSource(99)))
		c.Start(30)
		var seen []int
		for i := 0; i < 30; i++ {
			c.Tap(c.ActiveIndex())
			seen = append(seen, c.ActiveIndex())
			c.Tick()
		}
		return seen
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at step %d: %d vs %d", i, a[i], b[i])
		}
	}
}

// Package round implements the timed round: countdown, score and the
// relocating target on the grid.
//
// A Controller is not safe for concurrent use. Front ends call Tick and Tap
// from the same update loop.
package round

import "github.com/vovakirdan/ztapz/internal/grid"

// DefaultDuration is the length of a "Quick Minute" round in seconds.
const DefaultDuration = 60

// Source picks random target indices. *math/rand.Rand satisfies it.
type Source interface {
	Intn(n int) int
}

// Phase is the lifecycle state of a round.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted to listeners whenever round state changes.
type Event int

const (
	EventStarted   Event = iota // Start was called
	EventRelocated              // target moved on a tick
	EventPop                    // the target was hit
	EventRoundOver              // countdown reached zero
	EventStopped                // Stop left a running or finished round
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventStarted:
		return "Started"
	case EventRelocated:
		return "Relocated"
	case EventPop:
		return "Pop"
	case EventRoundOver:
		return "RoundOver"
	case EventStopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Listener receives events together with the state right after the change.
type Listener func(ev Event, snap Snapshot)

// Snapshot is a read-only copy of the round for rendering.
type Snapshot struct {
	Phase            Phase
	Duration         int
	SecondsRemaining int
	Score            int
	ActiveIndex      int
	Running          bool
	Cells            [grid.Size]bool
}

// Controller owns the grid and the round counters.
type Controller struct {
	src       Source
	grid      *grid.Grid
	listeners []Listener

	phase    Phase
	duration int
	seconds  int
	score    int
	active   int
}

// New creates an idle controller drawing targets from src.
func New(src Source) *Controller {
	return &Controller{
		src:  src,
		grid: grid.New(),
	}
}

// Subscribe registers a listener for round events.
func (c *Controller) Subscribe(fn Listener) {
	if fn == nil {
		return
	}
	c.listeners = append(c.listeners, fn)
}

// Start begins a new round of the given length, restarting any live round.
// Non-positive durations fall back to DefaultDuration.
func (c *Controller) Start(durationSeconds int) {
	if durationSeconds <= 0 {
		durationSeconds = DefaultDuration
	}

	c.duration = durationSeconds
	c.seconds = durationSeconds
	c.score = 0
	c.phase = PhaseRunning
	c.relocate()

	c.emit(EventStarted)
}

// Tick advances the countdown by one second. The target moves while time
// remains; at zero the round ends. Ticks outside a running round are ignored.
func (c *Controller) Tick() {
	if c.phase != PhaseRunning {
		return
	}

	c.seconds--
	if c.seconds > 0 {
		c.relocate()
		c.emit(EventRelocated)
		return
	}

	c.seconds = 0
	c.phase = PhaseGameOver
	c.reset()
	c.emit(EventRoundOver)
}

// Tap handles a tap on the cell at index. A tap on the target scores a point
// and moves the target; anything else is ignored. Returns true on a hit.
func (c *Controller) Tap(index int) bool {
	if c.phase != PhaseRunning || !grid.InBounds(index) || index != c.active {
		return false
	}

	c.score++
	c.relocate()
	c.emit(EventPop)
	return true
}

// Stop abandons the round and returns to idle. Safe to call repeatedly.
func (c *Controller) Stop() {
	wasLive := c.phase != PhaseIdle
	c.phase = PhaseIdle
	c.reset()
	if wasLive {
		c.emit(EventStopped)
	}
}

// Running reports whether a round is in progress.
func (c *Controller) Running() bool {
	return c.phase == PhaseRunning
}

// Phase returns the current lifecycle phase.
func (c *Controller) Phase() Phase {
	return c.phase
}

// Score returns the points scored in the current or last round.
func (c *Controller) Score() int {
	return c.score
}

// SecondsRemaining returns the countdown value.
func (c *Controller) SecondsRemaining() int {
	return c.seconds
}

// ActiveIndex returns the target cell.
func (c *Controller) ActiveIndex() int {
	return c.active
}

// Snapshot returns a copy of the round state.
func (c *Controller) Snapshot() Snapshot {
	return Snapshot{
		Phase:            c.phase,
		Duration:         c.duration,
		SecondsRemaining: c.seconds,
		Score:            c.score,
		ActiveIndex:      c.active,
		Running:          c.phase == PhaseRunning,
		Cells:            c.grid.Cells(),
	}
}

// relocate draws a new target uniformly. The previous target may repeat.
func (c *Controller) relocate() {
	c.active = c.src.Intn(grid.Size)
	c.grid.Activate(c.active)
}

// reset clears the board and parks the target at cell 0.
func (c *Controller) reset() {
	c.grid.Clear()
	c.active = 0
}

func (c *Controller) emit(ev Event) {
	if len(c.listeners) == 0 {
		return
	}
	snap := c.Snapshot()
	for _, fn := range c.listeners {
		fn(ev, snap)
	}
}

package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for graphical front ends)
	ScreenH  int   // Screen height in characters (or pixels)
	TickRate int   // Step calls per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultConfig returns a RuntimeConfig for an 80x24 terminal at 30 fps.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0,
	}
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int  // Current score
	Running  bool // A timed round is in progress
	GameOver bool // The last round finished
	Back     bool // The player asked to leave the game
}

// Event is a one-shot signal raised during a Step.
type Event int

const (
	// EventPop fires for every successful tap; platforms play the pop sound.
	EventPop Event = iota + 1
	// EventRoundOver fires once when the countdown reaches zero.
	EventRoundOver
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventPop:
		return "Pop"
	case EventRoundOver:
		return "RoundOver"
	default:
		return "Unknown"
	}
}

// StepResult is returned by Game.Step after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}

// Has reports whether ev was raised during the step.
func (r StepResult) Has(ev Event) bool {
	for _, e := range r.Events {
		if e == ev {
			return true
		}
	}
	return false
}

// Count returns how many times ev was raised during the step.
func (r StepResult) Count(ev Event) int {
	n := 0
	for _, e := range r.Events {
		if e == ev {
			n++
		}
	}
	return n
}

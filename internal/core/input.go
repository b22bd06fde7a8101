package core

// Action is a semantic input, decoupled from physical keys.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, K, Up arrow - move cursor up
	ActionDown             // S, J, Down arrow - move cursor down
	ActionLeft             // A, H, Left arrow - move cursor left
	ActionRight            // D, L, Right arrow - move cursor right
	ActionTap              // Space - tap the cell under the cursor
	ActionConfirm          // Enter - start the timer / select in menus
	ActionBack             // B, Escape - return to menu
	ActionRestart          // R - play again after game over
	ActionQuit             // Q, Ctrl+C - exit
	ActionSpeedUp          // + or = - heart speed slider up
	ActionSpeedDown        // - or _ - heart speed slider down
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionTap:
		return "Tap"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionSpeedUp:
		return "SpeedUp"
	case ActionSpeedDown:
		return "SpeedDown"
	default:
		return "Unknown"
	}
}

// InputFrame collects everything the player did during one frame.
type InputFrame struct {
	// Actions holds the semantic actions triggered this frame.
	Actions map[Action]bool

	// Clicks are pointer presses in screen coordinates, in arrival order.
	// The game hit-tests them against its own layout.
	Clicks []Point

	// Taps are presses already resolved to grid cells by the platform,
	// in arrival order.
	Taps []int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer press at screen position (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Tap records a press on a grid cell.
func (f *InputFrame) Tap(index int) {
	f.Taps = append(f.Taps, index)
}

// Empty reports whether nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0 && len(f.Taps) == 0
}

// Clear resets the frame for reuse.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
	f.Taps = f.Taps[:0]
}

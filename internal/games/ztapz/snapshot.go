package ztapz

import (
	"github.com/vovakirdan/ztapz/internal/grid"
	"github.com/vovakirdan/ztapz/internal/round"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick             uint64
	Phase            round.Phase
	SecondsRemaining int
	Score            int
	ActiveIndex      int
	Cells            [grid.Size]bool
	Speed            float64
	Cursor           int
	TooSmall         bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	rs := g.ctrl.Snapshot()
	return Snapshot{
		Tick:             g.tick,
		Phase:            rs.Phase,
		SecondsRemaining: rs.SecondsRemaining,
		Score:            rs.Score,
		ActiveIndex:      rs.ActiveIndex,
		Cells:            rs.Cells,
		Speed:            g.speed.Value(),
		Cursor:           g.cursor,
		TooSmall:         g.layout.TooSmall,
	}
}

package grid

import "testing"

func TestNewGridIsCleared(t *testing.T) {
	g := New()

	if g.ActiveCount() != 0 {
		t.Errorf("ActiveCount() = %d, expected 0", g.ActiveCount())
	}
	if _, ok := g.Active(); ok {
		t.Error("New grid should have no active cell")
	}
}

func TestActivateSetsExactlyOne(t *testing.T) {
	g := New()

	for i := 0; i < Size; i++ {
		g.Activate(i)

		if g.ActiveCount() != 1 {
			t.Fatalf("after Activate(%d): ActiveCount() = %d, expected 1", i, g.ActiveCount())
		}
		idx, ok := g.Active()
		if !ok || idx != i {
			t.Errorf("Active() = (%d, %v), expected (%d, true)", idx, ok, i)
		}
		if !g.IsActive(i) {
			t.Errorf("IsActive(%d) = false after Activate", i)
		}
	}
}

func TestActivateOutOfRangeClears(t *testing.T) {
	g := New()
	g.Activate(5)

	g.Activate(Size)
	if g.ActiveCount() != 0 {
		t.Errorf("Activate(Size) should leave grid cleared, got %d active", g.ActiveCount())
	}

	g.Activate(3)
	g.Activate(-1)
	if g.ActiveCount() != 0 {
		t.Errorf("Activate(-1) should leave grid cleared, got %d active", g.ActiveCount())
	}
}

func TestClear(t *testing.T) {
	g := New()
	g.Activate(27)
	g.Clear()

	cells := g.Cells()
	for i, on := range cells {
		if on {
			t.Errorf("cell %d still active after Clear", i)
		}
	}
}

func TestCellsIsCopy(t *testing.T) {
	g := New()
	g.Activate(0)

	cells := g.Cells()
	cells[0] = false
	cells[1] = true

	if !g.IsActive(0) || g.IsActive(1) {
		t.Error("mutating Cells() result must not change the grid")
	}
}

func TestIsActiveOutOfRange(t *testing.T) {
	g := New()
	g.Activate(0)

	if g.IsActive(-1) || g.IsActive(Size) || g.IsActive(100) {
		t.Error("out-of-range IsActive should be false")
	}
}

func TestIndexPosition(t *testing.T) {
	tests := []struct {
		row, col int
		index    int
	}{
		{0, 0, 0},
		{0, 3, 3},
		{1, 0, 4},
		{3, 2, 14},
		{6, 3, 27},
	}

	for _, tt := range tests {
		if got := Index(tt.row, tt.col); got != tt.index {
			t.Errorf("Index(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.index)
		}
		row, col := Position(tt.index)
		if row != tt.row || col != tt.col {
			t.Errorf("Position(%d) = (%d, %d), want (%d, %d)", tt.index, row, col, tt.row, tt.col)
		}
	}

	for _, bad := range [][2]int{{-1, 0}, {0, -1}, {Rows, 0}, {0, Cols}} {
		if got := Index(bad[0], bad[1]); got != -1 {
			t.Errorf("Index(%d, %d) = %d, want -1", bad[0], bad[1], got)
		}
	}
}

package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(40, 12)

	if s.Width() != 40 || s.Height() != 12 {
		t.Errorf("dimensions = %dx%d, expected 40x12", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetColored(t *testing.T) {
	s := NewScreen(10, 4)
	s.SetColored(3, 2, '♥', ColorBrightRed)

	c := s.GetCell(3, 2)
	if c.Rune != '♥' || c.Color != ColorBrightRed {
		t.Errorf("GetCell(3, 2) = %+v, expected red heart", c)
	}

	// Out of bounds writes are silent
	s.SetColored(-1, 0, 'X', ColorRed)
	s.SetColored(10, 0, 'X', ColorRed)
	s.SetColored(0, 4, 'X', ColorRed)

	if s.Get(-1, 0) != ' ' || s.Get(10, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(6, 3)
	s.FillRect(NewRect(0, 0, 6, 3), '#', ColorGreen)
	s.Clear()

	for y := 0; y < 3; y++ {
		for x := 0; x < 6; x++ {
			if c := s.GetCell(x, y); c != blankCell {
				t.Errorf("after Clear, cell (%d, %d) = %+v", x, y, c)
			}
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextColored(2, 1, "Score", ColorYellow)

	for i, ch := range "Score" {
		c := s.GetCell(2+i, 1)
		if c.Rune != ch || c.Color != ColorYellow {
			t.Errorf("expected %q at (%d, 1), got %+v", ch, 2+i, c)
		}
	}

	// Clipped at the right edge
	s.DrawText(18, 0, "Hello")
	if s.Get(18, 0) != 'H' || s.Get(19, 0) != 'e' {
		t.Error("text should be clipped at right boundary")
	}
}

func TestScreenDrawTextMultibyte(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(0, 0, "♥ x")

	if s.Get(0, 0) != '♥' || s.Get(1, 0) != ' ' || s.Get(2, 0) != 'x' {
		t.Errorf("multibyte text misplaced: %q", s.Row(0))
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	x := (20 - 2) / 2
	if s.Get(x, 2) != 'H' || s.Get(x+1, 2) != 'i' {
		t.Errorf("centered text not at expected position: %q", s.Row(2))
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawBox(NewRect(1, 1, 5, 4), ColorCyan)

	corners := map[[2]int]rune{
		{1, 1}: '╭',
		{5, 1}: '╮',
		{1, 4}: '╰',
		{5, 4}: '╯',
	}
	for pos, want := range corners {
		if got := s.Get(pos[0], pos[1]); got != want {
			t.Errorf("corner at %v = %q, want %q", pos, got, want)
		}
	}

	for x := 2; x < 5; x++ {
		if s.Get(x, 1) != '─' || s.Get(x, 4) != '─' {
			t.Errorf("horizontal edge missing at x=%d", x)
		}
	}
	for y := 2; y < 4; y++ {
		if s.Get(1, y) != '│' || s.Get(5, y) != '│' {
			t.Errorf("vertical edge missing at y=%d", y)
		}
	}
	if s.GetCell(1, 1).Color != ColorCyan {
		t.Error("box should carry its color")
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA")
	s.DrawText(0, 1, "BBBBB")
	s.DrawText(0, 2, "CCCCC")

	if got, want := s.String(), "AAAAA\nBBBBB\nCCCCC"; got != want {
		t.Errorf("String() = %q, expected %q", got, want)
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello")

	s.Resize(8, 4)
	if s.Width() != 8 || s.Height() != 4 {
		t.Errorf("after resize dimensions = %dx%d, expected 8x4", s.Width(), s.Height())
	}
	if strings.TrimSpace(s.Row(0)) != "" {
		t.Errorf("resize should blank the buffer, row 0 = %q", s.Row(0))
	}

	// Same size is a no-op
	s.DrawText(0, 0, "Hi")
	s.Resize(8, 4)
	if !strings.HasPrefix(s.Row(0), "Hi") {
		t.Error("resize to the same size should keep content")
	}
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test")

	row := s.Row(2)
	if !strings.HasPrefix(row, "Test") || len(row) != 10 {
		t.Errorf("Row(2) = %q", row)
	}
	if s.Row(-1) != "          " {
		t.Errorf("out of bounds row should be spaces, got %q", s.Row(-1))
	}
}

package tui

import (
	"testing"

	"github.com/vovakirdan/ztapz/internal/core"
)

func TestRowRunsJoinBlanks(t *testing.T) {
	s := core.NewScreen(9, 1)
	s.SetColored(1, 0, '(', core.ColorBlue)
	s.SetColored(3, 0, '●', core.ColorBlue)
	s.SetColored(5, 0, ')', core.ColorBlue)
	s.SetColored(7, 0, 'x', core.ColorRed)

	got := rowRuns(s, 0)
	want := []styleRun{
		{core.ColorDefault, " "},
		{core.ColorBlue, "( ● ) "},
		{core.ColorRed, "x "},
	}
	if len(got) != len(want) {
		t.Fatalf("runs = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestRowRunsIsolateFlash(t *testing.T) {
	s := core.NewScreen(7, 1)
	s.SetColored(1, 0, '(', core.ColorCyan)
	s.SetColored(3, 0, '✶', core.ColorFlash)
	s.SetColored(5, 0, ')', core.ColorCyan)

	got := rowRuns(s, 0)
	want := []styleRun{
		{core.ColorDefault, " "},
		{core.ColorCyan, "( "},
		{core.ColorFlash, "✶"},
		{core.ColorDefault, " "},
		{core.ColorCyan, ") "},
	}
	if len(got) != len(want) {
		t.Fatalf("runs = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestFlashStyle(t *testing.T) {
	style := styleFor(core.ColorFlash)
	if !style.GetReverse() || !style.GetBold() {
		t.Error("pop flash should render bold and reversed")
	}
	if styleFor(core.Color(200)).GetBold() {
		t.Error("unknown colors should fall back to the plain style")
	}
}

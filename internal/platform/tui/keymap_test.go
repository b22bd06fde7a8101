package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ztapz/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		want     core.Action
		wantQuit bool
	}{
		{"space taps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionTap, false},
		{"enter starts", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp, false},
		{"vim down", runeKey("j"), core.ActionDown, false},
		{"wasd left", runeKey("a"), core.ActionLeft, false},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"plus", runeKey("+"), core.ActionSpeedUp, false},
		{"equals", runeKey("="), core.ActionSpeedUp, false},
		{"minus", runeKey("-"), core.ActionSpeedDown, false},
		{"restart", runeKey("r"), core.ActionRestart, false},
		{"back", runeKey("b"), core.ActionBack, false},
		{"escape", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack, false},
		{"quit", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("z"), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, quit := km.MapKey(tt.msg)
			if got != tt.want || quit != tt.wantQuit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), got, quit, tt.want, tt.wantQuit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyEnter}, &frame) {
		t.Error("enter should not quit")
	}
	if !frame.Has(core.ActionConfirm) {
		t.Error("enter should set ActionConfirm")
	}

	km.MapKeyToFrame(runeKey("z"), &frame)
	if len(frame.Actions) != 1 {
		t.Errorf("unbound key should not add actions, got %v", frame.Actions)
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	press := tea.MouseMsg{X: 12, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	if !km.MapMouseToFrame(press, &frame) {
		t.Fatal("left press should be recorded")
	}

	ignored := []tea.MouseMsg{
		{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{X: 1, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
		{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight},
		{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp},
	}
	for _, msg := range ignored {
		if km.MapMouseToFrame(msg, &frame) {
			t.Errorf("mouse event %+v should be ignored", msg)
		}
	}

	if len(frame.Clicks) != 1 || frame.Clicks[0] != (core.Point{X: 12, Y: 7}) {
		t.Errorf("Clicks = %v", frame.Clicks)
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey("j"), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{tea.KeyMsg{Type: tea.KeyEsc}, MenuActionBack},
		{runeKey("q"), MenuActionQuit},
		{runeKey("x"), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

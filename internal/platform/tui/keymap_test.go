package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionTurnLeft},
		{"a", runeKey('a'), core.ActionTurnLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionTurnRight},
		{"d", runeKey('d'), core.ActionTurnRight},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionThrust},
		{"w", runeKey('w'), core.ActionThrust},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire},
		{"p", runeKey('p'), core.ActionPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('x'), core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestHelpListsEveryBinding(t *testing.T) {
	keys := DefaultKeyMap()

	short := keys.ShortHelp()
	if len(short) != 7 {
		t.Errorf("ShortHelp() has %d bindings, expected 7", len(short))
	}

	var full int
	for _, group := range keys.FullHelp() {
		full += len(group)
	}
	if full != len(short) {
		t.Errorf("FullHelp() has %d bindings, ShortHelp() has %d", full, len(short))
	}
}

func TestIsHeld(t *testing.T) {
	for _, a := range []core.Action{core.ActionTurnLeft, core.ActionTurnRight, core.ActionThrust, core.ActionFire} {
		if !isHeld(a) {
			t.Errorf("%v should be a held action", a)
		}
	}
	for _, a := range []core.Action{core.ActionPause, core.ActionRestart, core.ActionQuit} {
		if isHeld(a) {
			t.Errorf("%v should be a one-shot action", a)
		}
	}
}

package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestKeyMapAction(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFlap},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionFlap},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("w")}, core.ActionFlap},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart},
		{"r", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")}, core.ActionStart},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}, core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, core.ActionNone},
		{"screenshot is not a command", tea.KeyMsg{Type: tea.KeyCtrlS}, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := keys.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%q) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) != 3 {
		t.Errorf("ShortHelp() has %d bindings, expected 3", len(keys.ShortHelp()))
	}
	if len(keys.FullHelp()) != 2 {
		t.Errorf("FullHelp() has %d columns, expected 2", len(keys.FullHelp()))
	}
}

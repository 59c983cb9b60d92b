package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestHUDBest(t *testing.T) {
	h := &HUD{}

	h.GameStarted()
	h.ScoreChanged(1)
	h.ScoreChanged(2)
	h.GameOver(2)
	h.GameStarted()
	h.ScoreChanged(1)
	h.GameOver(1)

	if h.Best() != 2 {
		t.Errorf("Best() = %d, expected 2", h.Best())
	}
	if h.last != 1 {
		t.Errorf("last = %d, expected 1", h.last)
	}
	if h.games != 2 {
		t.Errorf("games = %d, expected 2", h.games)
	}
}

func TestHUDOverlay(t *testing.T) {
	tests := []struct {
		name  string
		state flappy.State
		w, h  int
		want  string
	}{
		{"idle", flappy.StateIdle, 40, 12, "FLAPPY"},
		{"over", flappy.StateOver, 40, 12, "best 3"},
		{"over count", flappy.StateOver, 40, 12, "game 2  score 3"},
		{"running", flappy.StateRunning, 40, 12, " 7 "},
		{"tiny idle", flappy.StateIdle, 8, 3, "FLAPPY"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := &HUD{best: 3, last: 3, games: 2}
			s := core.NewScreen(tc.w, tc.h)

			h.Overlay(s, tc.state, 7)

			if !strings.Contains(s.String(), tc.want) {
				t.Errorf("overlay missing %q:\n%s", tc.want, s.String())
			}
		})
	}
}

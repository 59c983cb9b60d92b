package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

// HUD tracks the best score of the process and draws the score and the
// idle and game over panels on top of the playfield.
type HUD struct {
	best  int
	last  int
	games int
}

// ScoreChanged keeps the best score current while a game is running.
func (h *HUD) ScoreChanged(score int) {
	h.best = core.Max(h.best, score)
}

// GameStarted counts games for the game over panel.
func (h *HUD) GameStarted() {
	h.games++
}

// GameOver remembers the final score for the game over panel.
func (h *HUD) GameOver(finalScore int) {
	h.last = finalScore
	h.best = core.Max(h.best, finalScore)
}

// Best returns the highest score seen since the program started.
func (h *HUD) Best() int {
	return h.best
}

// Overlay draws the HUD for the given state into s.
func (h *HUD) Overlay(s *core.Screen, state flappy.State, score int) {
	switch state {
	case flappy.StateIdle:
		h.panel(s, "FLAPPY", "space to flap", "enter to start")
	case flappy.StateOver:
		h.panel(s, "GAME OVER",
			fmt.Sprintf("game %d  score %d  best %d", h.games, h.last, h.best),
			"space or enter to retry")
	default:
		if s.Height() > 2 {
			s.DrawTextCentered(1, fmt.Sprintf(" %d ", score), core.ColorText)
		}
	}
}

// panel draws a framed box with a title and lines, centered on the screen.
func (h *HUD) panel(s *core.Screen, title string, lines ...string) {
	width := len([]rune(title))
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	width += 4
	height := len(lines) + 4

	if width > s.Width() || height > s.Height() {
		// Too small for a frame; the title alone still tells the state
		s.DrawTextCentered(s.Height()/2, title, core.ColorText)
		return
	}

	box := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	s.DrawRect(box, ' ', core.ColorText)
	s.DrawBox(box, core.ColorText)
	s.DrawTextCentered(box.Y+1, title, core.ColorText)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+3+i, l, core.ColorText)
	}
}

package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	spaceKey = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	tick     = TickMsg(time.Time{})
)

func newTestModel(t *testing.T, cfg config.FlappyConfig) Model {
	t.Helper()
	rt := core.RuntimeConfig{ScreenW: 80, ScreenH: 26, TickRate: 60, Seed: 1}
	m, err := NewModel(cfg, rt, nil)
	if err != nil {
		t.Fatalf("NewModel() failed: %v", err)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestNewModelRejectsInvalidConfig(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.FlapImpulse = 3

	_, err := NewModel(cfg, core.DefaultConfig(), nil)
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestModelStartsIdle(t *testing.T) {
	m := newTestModel(t, config.DefaultFlappyConfig())

	if m.screen.Height() != 24 {
		t.Errorf("play area should leave room for the header and help, got %d rows", m.screen.Height())
	}

	m, cmd := send(t, m, tick)
	if cmd != nil {
		t.Error("an idle session should not keep the clock running")
	}
	if m.Session().Frame() != 0 {
		t.Error("idle session advanced")
	}
}

func TestModelFlapArmsClockOnce(t *testing.T) {
	m := newTestModel(t, config.DefaultFlappyConfig())

	m, cmd := send(t, m, spaceKey)
	if cmd == nil {
		t.Fatal("first flap should start the clock")
	}
	if m.Session().State() != flappy.StateRunning {
		t.Fatalf("State() = %v, expected Running", m.Session().State())
	}

	m, cmd = send(t, m, spaceKey)
	if cmd != nil {
		t.Error("a second flap must not schedule another tick")
	}

	m, cmd = send(t, m, tick)
	if cmd == nil {
		t.Error("a running session should schedule the next tick")
	}
	if m.Session().Frame() != 1 {
		t.Errorf("Frame() = %d, expected 1", m.Session().Frame())
	}

	// Restart while running keeps the single tick chain
	m, cmd = send(t, m, enterKey)
	if cmd != nil {
		t.Error("restart while running must not schedule another tick")
	}
	if m.Session().Frame() != 0 {
		t.Errorf("restart should reset the frame counter, got %d", m.Session().Frame())
	}
}

func TestModelStopsClockOnGameOver(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 40
	m := newTestModel(t, cfg)

	m, cmd := send(t, m, enterKey)
	for i := 0; cmd != nil && i < 100; i++ {
		m, cmd = send(t, m, tick)
	}

	if cmd != nil {
		t.Fatal("clock still running after 100 ticks")
	}
	if m.Session().State() != flappy.StateOver {
		t.Fatalf("State() = %v, expected Over", m.Session().State())
	}
	if !strings.Contains(m.View(), "GAME OVER") {
		t.Error("View should show the game over panel")
	}

	m, cmd = send(t, m, spaceKey)
	if cmd == nil {
		t.Error("flap after game over should restart the clock")
	}
	if m.Session().State() != flappy.StateRunning {
		t.Errorf("State() = %v, expected Running", m.Session().State())
	}
}

func TestModelMouseFlaps(t *testing.T) {
	m := newTestModel(t, config.DefaultFlappyConfig())

	m, cmd := send(t, m, tea.MouseMsg{Action: tea.MouseActionMotion})
	if cmd != nil || m.Session().State() != flappy.StateIdle {
		t.Error("mouse motion should be ignored")
	}

	m, cmd = send(t, m, tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if cmd == nil || m.Session().State() != flappy.StateRunning {
		t.Error("left click should start the session")
	}
}

func TestModelResizeKeepsSession(t *testing.T) {
	m := newTestModel(t, config.DefaultFlappyConfig())
	m, _ = send(t, m, spaceKey)
	m, _ = send(t, m, tick)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 38 {
		t.Errorf("screen is %dx%d, expected 120x38", m.screen.Width(), m.screen.Height())
	}
	if m.Session().Frame() != 1 || m.Session().State() != flappy.StateRunning {
		t.Error("resize should not reset the session")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.DefaultFlappyConfig())

	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if m.View() != "" {
		t.Error("View should be empty after quitting")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, config.DefaultFlappyConfig())

	view := m.View()
	for _, want := range []string{"FLAPPY", "score 0", "enter to start"} {
		if !strings.Contains(view, want) {
			t.Errorf("View missing %q", want)
		}
	}
}

func TestModelViewLeavesScreen(t *testing.T) {
	m := newTestModel(t, config.DefaultFlappyConfig())

	tests := []struct {
		name string
		msg  tea.Msg
		want string
	}{
		{"idle", nil, "enter to start"},
		{"started", enterKey, " 0 "},
		{"ticked", tick, " 0 "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.msg != nil {
				m, _ = send(t, m, tc.msg)
			}
			before := m.screen.String()
			if !strings.Contains(before, tc.want) {
				t.Fatalf("screen should already hold %q before View:\n%s", tc.want, before)
			}

			m.View()

			if after := m.screen.String(); after != before {
				t.Errorf("View changed the screen:\nbefore:\n%s\nafter:\n%s", before, after)
			}
		})
	}
}

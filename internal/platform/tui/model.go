package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/events"
)

// chromeRows is the number of terminal rows used by the header and help line.
const chromeRows = 2

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Model is the Bubble Tea model running one flappy session.
type Model struct {
	session  *flappy.Session
	screen   *core.Screen
	renderer *flappy.ScreenRenderer
	hud      *HUD
	keys     KeyMap
	help     help.Model
	config   core.RuntimeConfig
	ticking  bool // A TickMsg is in flight
	quitting bool
}

// NewModel creates the model and its session. listener, if not nil, also
// receives the session's notifications.
func NewModel(cfg config.FlappyConfig, rt core.RuntimeConfig, listener flappy.Listener) (Model, error) {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = core.DefaultConfig().TickRate
	}

	screen := core.NewScreen(rt.ScreenW, playHeight(rt.ScreenH))
	renderer := flappy.NewScreenRenderer(screen, cfg)
	hud := &HUD{}

	listeners := flappy.Listeners{hud}
	if listener != nil {
		listeners = append(listeners, listener)
	}

	session, err := flappy.NewSession(cfg,
		flappy.WithSeed(rt.Seed),
		flappy.WithRenderer(renderer),
		flappy.WithListener(listeners),
	)
	if err != nil {
		return Model{}, err
	}

	h := help.New()
	h.Width = rt.ScreenW

	m := Model{
		session:  session,
		screen:   screen,
		renderer: renderer,
		hud:      hud,
		keys:     DefaultKeyMap(),
		help:     h,
		config:   rt,
	}
	m.redraw()
	return m, nil
}

func playHeight(termHeight int) int {
	return core.Max(termHeight-chromeRows, 1)
}

// Init sets the window title. The session waits for the first command
// before the clock starts.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("flappy")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			return m.apply(core.ActionFlap)
		}

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action == core.ActionNone {
		return m, nil
	}
	return m.apply(action)
}

// apply delivers a command to the session and starts the clock if the
// session is now running.
func (m Model) apply(action core.Action) (tea.Model, tea.Cmd) {
	m.session.Apply(action)
	m.redraw()
	return m, m.arm()
}

// arm schedules the next tick unless one is already pending. A restart while
// running keeps the existing tick chain.
func (m *Model) arm() tea.Cmd {
	if m.ticking || !m.session.Running() {
		return nil
	}
	m.ticking = true
	return tickCmd(m.config.TickRate)
}

// handleResize processes window resize events. The session keeps its state;
// only the scale changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.renderer.Refit()
	m.help.Width = msg.Width
	m.redraw()
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.ticking = false
	if !m.session.Running() {
		return m, nil
	}
	cont := m.session.Tick()
	m.overlay()
	if !cont {
		return m, nil
	}
	return m, m.arm()
}

// redraw paints the whole frame, HUD included, into the screen buffer.
func (m Model) redraw() {
	m.session.Draw()
	m.overlay()
}

// overlay paints the HUD over the frame the session last drew.
func (m Model) overlay() {
	m.hud.Overlay(m.screen, m.session.State(), m.session.Score())
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("flappy_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	header := headerStyle.Render(fmt.Sprintf("FLAPPY  score %d  best %d  %s",
		m.session.Score(), m.hud.Best(), m.session.State()))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		RenderScreen(m.screen),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// Session returns the session driven by the model.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Run starts the Bubble Tea program for a new session. Session events are
// written to logger.
func Run(cfg config.FlappyConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, rt, events.NewLogListener(logger))
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Left click flaps
	)

	_, err = p.Run()
	return err
}

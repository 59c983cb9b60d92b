// Package flappy implements a Flappy Bird-style game.
// The player controls an avatar that falls under gravity and must pass
// through the gaps of scrolling pipes. The package holds pure simulation
// state; drawing and notifications go through the Renderer and Listener
// interfaces.
package flappy

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// State is the phase of a session.
type State int

const (
	StateIdle    State = iota // Not started yet
	StateRunning              // Started, not over
	StateOver                 // Ended by a collision
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateRunning:
		return "Running"
	case StateOver:
		return "Over"
	default:
		return "Unknown"
	}
}

// Session owns the avatar, the obstacle field and the counters of one game,
// and runs the per-tick update order. It is not safe for concurrent use;
// the goroutine driving the clock also delivers commands.
type Session struct {
	cfg      config.FlappyConfig
	avatar   Avatar
	field    *ObstacleField
	renderer Renderer
	listener Listener

	started bool
	over    bool
	score   int
	frame   int
}

// Option configures a Session.
type Option func(*Session)

// WithSeed makes obstacle heights reproducible.
func WithSeed(seed int64) Option {
	return func(s *Session) {
		s.field.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRenderer sets the draw call target.
func WithRenderer(r Renderer) Option {
	return func(s *Session) {
		s.renderer = r
	}
}

// WithListener sets the notification target.
func WithListener(l Listener) Option {
	return func(s *Session) {
		s.listener = l
	}
}

// NewSession validates cfg and creates an idle session.
func NewSession(cfg config.FlappyConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("flappy: %w", err)
	}

	s := &Session{
		cfg:      cfg,
		avatar:   NewAvatar(cfg),
		field:    NewObstacleField(cfg, rand.New(rand.NewSource(time.Now().UnixNano()))),
		renderer: NopRenderer{},
		listener: NopListener{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SetRenderer replaces the draw call target.
func (s *Session) SetRenderer(r Renderer) {
	if r == nil {
		r = NopRenderer{}
	}
	s.renderer = r
}

// Start begins a new session from any state. Everything is reset, including
// a session that is still running.
func (s *Session) Start() {
	s.score = 0
	s.frame = 0
	s.field.Reset()
	s.avatar.Reset()
	s.started = true
	s.over = false
	s.listener.GameStarted()
}

// Tick advances the simulation by one step and emits the frame's draw calls.
// It returns false when the session is over and no further tick should be
// scheduled.
func (s *Session) Tick() bool {
	s.renderer.DrawBackground(BackgroundGeometry(s.cfg))

	s.field.Update(s.avatar, s.active, func(o Obstacle, r ObstacleResult) {
		if r.Expired {
			return
		}
		if r.Collided {
			s.EndGame()
		}
		if r.Scored {
			s.addPoint()
		}
		s.renderer.DrawObstacle(ObstacleGeometry(o))
	})

	s.renderer.DrawForeground(ForegroundGeometry(s.cfg))

	if s.avatar.Update(s.active()) {
		s.EndGame()
	}
	s.renderer.DrawAvatar(AvatarGeometry(s.avatar))

	if s.active() && s.field.ShouldSpawn(s.frame) {
		s.field.Spawn()
	}
	s.frame++

	return !s.over
}

// Step applies a frame of input and, if the session is running afterwards,
// advances it by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions {
		s.Apply(a)
	}
	if !s.active() {
		return core.StepResult{State: s.Snapshot()}
	}
	cont := s.Tick()
	return core.StepResult{State: s.Snapshot(), Continue: cont}
}

// Apply executes a single command immediately.
func (s *Session) Apply(a core.Action) {
	switch a {
	case core.ActionFlap:
		s.OnFlap()
	case core.ActionStart:
		s.OnStart()
	}
}

// Draw emits the draw calls for the current state without advancing it.
func (s *Session) Draw() {
	s.renderer.DrawBackground(BackgroundGeometry(s.cfg))
	for _, o := range s.field.Obstacles() {
		s.renderer.DrawObstacle(ObstacleGeometry(o))
	}
	s.renderer.DrawForeground(ForegroundGeometry(s.cfg))
	s.renderer.DrawAvatar(AvatarGeometry(s.avatar))
}

// EndGame marks the session over and publishes the final score.
// Further calls in the same session do nothing.
func (s *Session) EndGame() {
	if s.over {
		return
	}
	s.over = true
	s.listener.GameOver(s.score)
}

// Flap gives the avatar its upward impulse unless the session is over.
func (s *Session) Flap() {
	if s.over {
		return
	}
	s.avatar.Flap()
}

// OnFlap handles a flap command: a session that is not running is
// (re)started first, then the avatar flaps.
func (s *Session) OnFlap() {
	if !s.active() {
		s.Start()
	}
	s.Flap()
}

// OnStart handles the start and restart buttons.
func (s *Session) OnStart() {
	s.Start()
}

func (s *Session) addPoint() {
	s.score++
	s.listener.ScoreChanged(s.score)
}

func (s *Session) active() bool {
	return s.started && !s.over
}

// State returns the current phase.
func (s *Session) State() State {
	switch {
	case !s.started:
		return StateIdle
	case s.over:
		return StateOver
	default:
		return StateRunning
	}
}

// Running reports whether the clock should be delivering ticks.
func (s *Session) Running() bool {
	return s.active()
}

// Snapshot returns the counters and flags.
func (s *Session) Snapshot() core.GameState {
	return core.GameState{
		Started: s.started,
		Over:    s.over,
		Score:   s.score,
		Frame:   s.frame,
	}
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Frame returns the number of ticks since the last start.
func (s *Session) Frame() int {
	return s.frame
}

// Avatar returns a copy of the avatar.
func (s *Session) Avatar() Avatar {
	return s.avatar
}

// Obstacles returns the live obstacles in screen order.
// The slice must not be modified.
func (s *Session) Obstacles() []Obstacle {
	return s.field.Obstacles()
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

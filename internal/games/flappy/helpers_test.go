package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// recorder captures notifications in arrival order.
type recorder struct {
	scores  []int
	started int
	overs   []int
}

func (r *recorder) ScoreChanged(score int) { r.scores = append(r.scores, score) }
func (r *recorder) GameStarted()           { r.started++ }
func (r *recorder) GameOver(final int)     { r.overs = append(r.overs, final) }

// drawLog captures draw calls by kind.
type drawLog struct {
	calls     []string
	obstacles []ObstacleShape
}

func (d *drawLog) DrawBackground(BackgroundShape) { d.calls = append(d.calls, "background") }
func (d *drawLog) DrawForeground(ForegroundShape) { d.calls = append(d.calls, "foreground") }
func (d *drawLog) DrawAvatar(AvatarShape)         { d.calls = append(d.calls, "avatar") }
func (d *drawLog) DrawObstacle(o ObstacleShape) {
	d.calls = append(d.calls, "obstacle")
	d.obstacles = append(d.obstacles, o)
}

// floatingConfig disables gravity so the avatar hovers at its start height.
func floatingConfig() config.FlappyConfig {
	cfg := config.DefaultFlappyConfig()
	cfg.Physics.Gravity = 0
	return cfg
}

func newTestSession(t *testing.T, cfg config.FlappyConfig, opts ...Option) (*Session, *recorder) {
	t.Helper()
	rec := &recorder{}
	opts = append([]Option{WithSeed(1), WithListener(rec)}, opts...)
	s, err := NewSession(cfg, opts...)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s, rec
}

// place puts an obstacle with the given left edge and top height in the field.
func place(s *Session, x, topHeight float64) {
	o := newObstacle(s.cfg, topHeight)
	o.X = x
	s.field.obstacles = append(s.field.obstacles, o)
}

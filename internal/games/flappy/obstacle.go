package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Obstacle is a pipe pair with a vertical gap. X is the left edge.
// TopHeight + Gap + BottomHeight + floor height equals the playfield height.
type Obstacle struct {
	X            float64
	Width        float64
	TopHeight    float64
	Gap          float64
	BottomHeight float64
	Passed       bool // Already scored

	speed float64
}

// ObstacleResult reports what a single obstacle update observed.
type ObstacleResult struct {
	Expired  bool // Scrolled fully off the left edge; remove it
	Collided bool // Overlaps the avatar
	Scored   bool // Avatar cleared it during this update
}

// NewObstacle creates an obstacle at the right edge of the playfield with a
// random top segment height.
func NewObstacle(cfg config.FlappyConfig, rng *rand.Rand) Obstacle {
	top := cfg.Obstacles.MinTopHeight + rng.Intn(cfg.TopHeightRange())
	return newObstacle(cfg, float64(top))
}

func newObstacle(cfg config.FlappyConfig, topHeight float64) Obstacle {
	return Obstacle{
		X:            cfg.Playfield.Width,
		Width:        cfg.Obstacles.Width,
		TopHeight:    topHeight,
		Gap:          cfg.Obstacles.Gap,
		BottomHeight: cfg.Playfield.Height - topHeight - cfg.Obstacles.Gap - cfg.Playfield.FloorHeight,
		speed:        cfg.Physics.ScrollSpeed,
	}
}

// Right returns the x-coordinate of the right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// GapBottom returns the y-coordinate where the bottom segment starts.
func (o Obstacle) GapBottom() float64 {
	return o.TopHeight + o.Gap
}

// Update scrolls the obstacle while the session is active, then checks it
// against the avatar. Expired obstacles skip the other checks.
func (o *Obstacle) Update(a Avatar, active bool) ObstacleResult {
	var r ObstacleResult

	if active {
		o.X -= o.speed
	}

	if o.Right() < 0 {
		r.Expired = true
		return r
	}

	overlapsX := a.Right() > o.X && a.Left() < o.Right()
	outsideGap := a.Top() < o.TopHeight || a.Bottom() > o.GapBottom()
	if overlapsX && outsideGap {
		r.Collided = true
	}

	if !o.Passed && a.Left() > o.Right() {
		o.Passed = true
		r.Scored = true
	}

	return r
}

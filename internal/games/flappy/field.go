package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// ObstacleField holds the live obstacles in spawn order, which is also
// left-to-right screen order.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	cfg       config.FlappyConfig
}

// NewObstacleField creates an empty field drawing heights from rng.
func NewObstacleField(cfg config.FlappyConfig, rng *rand.Rand) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		cfg:       cfg,
	}
}

// Reset removes all obstacles. The RNG keeps its sequence so consecutive
// sessions see different layouts.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
}

// Spawn appends a new obstacle at the right edge.
func (f *ObstacleField) Spawn() {
	f.obstacles = append(f.obstacles, NewObstacle(f.cfg, f.rng))
}

// ShouldSpawn reports whether an obstacle is due on the given frame.
func (f *ObstacleField) ShouldSpawn(frame int) bool {
	return frame%f.cfg.Obstacles.SpawnInterval == 0
}

// Update advances every obstacle once against the avatar and drops the
// expired ones, compacting in place. active is consulted before each
// obstacle so a collision stops the scroll for the rest of the pass.
// visit, if set, sees every obstacle right after its update.
func (f *ObstacleField) Update(a Avatar, active func() bool, visit func(Obstacle, ObstacleResult)) {
	kept := f.obstacles[:0]
	for i := range f.obstacles {
		o := f.obstacles[i]
		r := o.Update(a, active())
		if visit != nil {
			visit(o, r)
		}
		if !r.Expired {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// Obstacles returns the live obstacles. The slice is owned by the field.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Next returns the first obstacle the avatar has not fully cleared.
func (f *ObstacleField) Next(a Avatar) (Obstacle, bool) {
	for _, o := range f.obstacles {
		if o.Right() >= a.Left() {
			return o, true
		}
	}
	return Obstacle{}, false
}

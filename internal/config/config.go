// Package config provides YAML-based game configuration loading and
// validation. Values are fixed for the lifetime of the process.
package config

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error returned from Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// FlappyConfig contains all tunable constants of the game.
// Distances are playfield units (the renderer scales them to the screen), speeds are
// units per tick.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Playfield FlappyPlayfield `yaml:"playfield"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Avatar    FlappyAvatar    `yaml:"avatar"`
}

// FlappyPhysics defines motion parameters.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Added to velocity every tick
	FlapImpulse float64 `yaml:"flap_impulse"` // Velocity set by a flap (negative = up)
	ScrollSpeed float64 `yaml:"scroll_speed"` // Obstacle movement to the left per tick
}

// FlappyPlayfield defines the simulated area.
type FlappyPlayfield struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	FloorHeight float64 `yaml:"floor_height"` // Ground strip at the bottom
}

// FlappyObstacles defines obstacle geometry and cadence.
type FlappyObstacles struct {
	Width          float64 `yaml:"width"`
	Gap            float64 `yaml:"gap"`             // Vertical opening between segments
	SpawnInterval  int     `yaml:"spawn_interval"`  // Ticks between spawns
	MinTopHeight   int     `yaml:"min_top_height"`  // Smallest top segment
	VerticalMargin int     `yaml:"vertical_margin"` // Room kept for the bottom segment
}

// FlappyAvatar defines the player body. X is the fixed horizontal center.
type FlappyAvatar struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FloorLine returns the y coordinate of the top of the ground strip.
func (c FlappyConfig) FloorLine() float64 {
	return c.Playfield.Height - c.Playfield.FloorHeight
}

// TopHeightRange returns the number of distinct top segment heights an
// obstacle can draw, starting at MinTopHeight.
func (c FlappyConfig) TopHeightRange() int {
	return int(c.Playfield.Height - c.Obstacles.Gap - c.Playfield.FloorHeight - float64(c.Obstacles.VerticalMargin))
}

// Validate checks that the configuration describes a playable field.
// A failure means a setup bug, so nothing is clamped or repaired.
func (c FlappyConfig) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.gap", c.Obstacles.Gap},
		{"avatar.width", c.Avatar.Width},
		{"avatar.height", c.Avatar.Height},
		{"physics.scroll_speed", c.Physics.ScrollSpeed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("config: %s must be positive, got %v: %w", p.name, p.value, ErrInvalidConfig)
		}
	}

	if c.Playfield.FloorHeight < 0 {
		return fmt.Errorf("config: playfield.floor_height must not be negative, got %v: %w", c.Playfield.FloorHeight, ErrInvalidConfig)
	}
	if c.Physics.Gravity < 0 {
		return fmt.Errorf("config: physics.gravity must not be negative, got %v: %w", c.Physics.Gravity, ErrInvalidConfig)
	}
	if c.Physics.FlapImpulse >= 0 {
		return fmt.Errorf("config: physics.flap_impulse must be negative (upward), got %v: %w", c.Physics.FlapImpulse, ErrInvalidConfig)
	}
	if c.Obstacles.SpawnInterval <= 0 {
		return fmt.Errorf("config: obstacles.spawn_interval must be positive, got %d: %w", c.Obstacles.SpawnInterval, ErrInvalidConfig)
	}
	if c.Obstacles.MinTopHeight < 0 || c.Obstacles.VerticalMargin < 0 {
		return fmt.Errorf("config: obstacles.min_top_height and vertical_margin must not be negative: %w", ErrInvalidConfig)
	}
	if c.TopHeightRange() <= 0 {
		return fmt.Errorf("config: playfield height %v leaves no room for gap %v, floor %v and margin %d: %w",
			c.Playfield.Height, c.Obstacles.Gap, c.Playfield.FloorHeight, c.Obstacles.VerticalMargin, ErrInvalidConfig)
	}
	// The tallest top segment must still leave a bottom segment
	if maxTop := float64(c.Obstacles.MinTopHeight + c.TopHeightRange() - 1); maxTop+c.Obstacles.Gap >= c.FloorLine() {
		return fmt.Errorf("config: obstacles.min_top_height %d exceeds vertical_margin %d and leaves no bottom segment: %w",
			c.Obstacles.MinTopHeight, c.Obstacles.VerticalMargin, ErrInvalidConfig)
	}
	if c.Avatar.Height >= c.FloorLine() {
		return fmt.Errorf("config: avatar height %v does not fit above the floor line %v: %w", c.Avatar.Height, c.FloorLine(), ErrInvalidConfig)
	}
	if c.Avatar.X-c.Avatar.Width/2 < 0 || c.Avatar.X+c.Avatar.Width/2 > c.Playfield.Width {
		return fmt.Errorf("config: avatar at x=%v does not fit the playfield width %v: %w", c.Avatar.X, c.Playfield.Width, ErrInvalidConfig)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c FlappyConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Shape geometry is in playfield units. The functions here are stateless:
// they read entity data and never modify it.

// Decoration sizes, in playfield units.
const (
	capHeight     = 10
	capOverhang   = 2
	stripeEvery   = 30
	stripeWidth   = 15
	stripeHeight  = 5
	stripeOffsetY = 15
)

// BackgroundShape is the sky with its clouds.
type BackgroundShape struct {
	Sky    core.Box
	Clouds []core.Circle
}

// ObstacleShape is a pipe pair with a cap on each segment's gap side.
type ObstacleShape struct {
	Top       core.Box
	TopCap    core.Box
	Bottom    core.Box
	BottomCap core.Box
}

// ForegroundShape is the ground strip and its texture stripes.
type ForegroundShape struct {
	Ground  core.Box
	Stripes []core.Box
}

// AvatarShape is the round body with its eye, beak and wing.
type AvatarShape struct {
	Body core.Circle
	Eye  core.Circle
	Wing core.Circle
	Beak core.Box
}

// clouds are two puffs of three circles each, at fixed positions.
var clouds = []core.Circle{
	{CX: 80, CY: 80, RX: 20, RY: 20},
	{CX: 100, CY: 70, RX: 25, RY: 25},
	{CX: 120, CY: 85, RX: 15, RY: 15},
	{CX: 250, CY: 100, RX: 20, RY: 20},
	{CX: 270, CY: 90, RX: 25, RY: 25},
	{CX: 290, CY: 105, RX: 15, RY: 15},
}

// BackgroundGeometry returns the background for the configured playfield.
func BackgroundGeometry(cfg config.FlappyConfig) BackgroundShape {
	return BackgroundShape{
		Sky:    core.Box{W: cfg.Playfield.Width, H: cfg.Playfield.Height},
		Clouds: clouds,
	}
}

// ObstacleGeometry returns the pipe pair for an obstacle.
func ObstacleGeometry(o Obstacle) ObstacleShape {
	gapBottom := o.GapBottom()
	return ObstacleShape{
		Top:       core.Box{X: o.X, Y: 0, W: o.Width, H: o.TopHeight},
		TopCap:    core.Box{X: o.X - capOverhang, Y: o.TopHeight - capHeight, W: o.Width + 2*capOverhang, H: capHeight},
		Bottom:    core.Box{X: o.X, Y: gapBottom, W: o.Width, H: o.BottomHeight},
		BottomCap: core.Box{X: o.X - capOverhang, Y: gapBottom, W: o.Width + 2*capOverhang, H: capHeight},
	}
}

// ForegroundGeometry returns the ground strip for the configured playfield.
func ForegroundGeometry(cfg config.FlappyConfig) ForegroundShape {
	top := cfg.FloorLine()
	fg := ForegroundShape{
		Ground: core.Box{X: 0, Y: top, W: cfg.Playfield.Width, H: cfg.Playfield.FloorHeight},
	}
	if cfg.Playfield.FloorHeight <= stripeOffsetY {
		return fg
	}
	for x := 0.0; x < cfg.Playfield.Width; x += stripeEvery {
		fg.Stripes = append(fg.Stripes, core.Box{X: x, Y: top + stripeOffsetY, W: stripeWidth, H: stripeHeight})
	}
	return fg
}

// AvatarGeometry returns the drawing of the avatar at its current position.
func AvatarGeometry(a Avatar) AvatarShape {
	r := a.Height / 2
	return AvatarShape{
		Body: core.Circle{CX: a.X, CY: a.Y, RX: r, RY: r},
		Eye:  core.Circle{CX: a.X + 10, CY: a.Y - 5, RX: 3, RY: 3},
		Wing: core.Circle{CX: a.X - 5, CY: a.Y + 5, RX: 8, RY: 5},
		Beak: core.Box{X: a.X + 12, Y: a.Y, W: 8, H: 5},
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration.
// Kept in sync with defaults/flappy.yaml.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     0.15,
			FlapImpulse: -5,
			ScrollSpeed: 2,
		},
		Playfield: FlappyPlayfield{
			Width:       400,
			Height:      500,
			FloorHeight: 80,
		},
		Obstacles: FlappyObstacles{
			Width:          52,
			Gap:            130,
			SpawnInterval:  100,
			MinTopHeight:   20,
			VerticalMargin: 60,
		},
		Avatar: FlappyAvatar{
			X:      50,
			Width:  34,
			Height: 24,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}

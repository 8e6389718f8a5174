package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It mirrors
// defaults/flappy.yaml and is the last fallback of Load.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: Physics{
			Gravity:   0.25,
			JumpSpeed: -4.5,
		},
		Field: Field{
			FlyAreaHeight: 420,
			ViewWidth:     640,
			GapHeight:     90,
			ObstacleWidth: 50,
			ScrollSpeed:   2,
			SpawnInterval: 80,
			SpawnX:        900,
			RemovalEdge:   -30,
			SplitMin:      110,
			SplitMax:      220,
		},
		Avatar: Avatar{
			X:      60,
			Y:      210, // Half of the fly area
			Width:  34,
			Height: 24,
		},
		Timing: Timing{
			TickInterval: 15 * time.Millisecond,
		},
	}
}

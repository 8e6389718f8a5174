// Package config provides YAML-based configuration loading and validation
// for the simulation constants.
package config

import "time"

// FlappyConfig contains all tunable constants of the simulation.
// Physics values are calibrated against Timing.TickInterval and must be
// scaled together if the interval changes.
type FlappyConfig struct {
	Physics Physics `yaml:"physics"`
	Field   Field   `yaml:"field"`
	Avatar  Avatar  `yaml:"avatar"`
	Timing  Timing  `yaml:"timing"`
}

// Physics defines avatar physics parameters.
type Physics struct {
	Gravity   float64 `yaml:"gravity"`    // Added to vertical speed once per tick
	JumpSpeed float64 `yaml:"jump_speed"` // Vertical speed set by a jump (negative = up)
}

// Field defines the play field and obstacle parameters, in world units.
type Field struct {
	FlyAreaHeight float64 `yaml:"fly_area_height"` // Distance from ceiling to floor
	ViewWidth     float64 `yaml:"view_width"`      // Visible width, used only by rendering
	GapHeight     float64 `yaml:"gap_height"`      // Vertical gap between upper and lower box
	ObstacleWidth float64 `yaml:"obstacle_width"`
	ScrollSpeed   float64 `yaml:"scroll_speed"`   // Leftward shift per tick
	SpawnInterval int     `yaml:"spawn_interval"` // Ticks between spawns
	SpawnX        float64 `yaml:"spawn_x"`        // Off-screen spawn coordinate
	RemovalEdge   float64 `yaml:"removal_edge"`   // Obstacle retired once its right edge is <= this
	SplitMin      int     `yaml:"split_min"`      // Inclusive range for the upper box height
	SplitMax      int     `yaml:"split_max"`
}

// Avatar defines the avatar start position and hitbox.
type Avatar struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Timing defines the tick period the physics constants were tuned for.
type Timing struct {
	TickInterval time.Duration `yaml:"tick_interval"`
}

package core

import "time"

// RuntimeConfig contains the platform parameters a session runs with.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Period between simulation ticks
	Seed         uint64        // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 15 * time.Millisecond,
		Seed:         0, // 0 means use current time in platform layer
	}
}

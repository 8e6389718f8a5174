package flappy

// GameState is the phase of a Simulation.
type GameState int

const (
	StateStart   GameState = iota // Waiting for the play command
	StatePlaying                  // Ticks advance physics, obstacles and score
	StateOver                     // Avatar died; waiting for reset
)

// String returns a human-readable name for the state.
func (s GameState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}

package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPrimary        // Space, Up, Enter - the single game action (play, flap, restart)
	ActionPause          // P - stop/resume the tick timer
	ActionScores         // Tab - toggle the leaderboard overlay
	ActionHelp           // ? - toggle the full key legend
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPrimary:
		return "Primary"
	case ActionPause:
		return "Pause"
	case ActionScores:
		return "Scores"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

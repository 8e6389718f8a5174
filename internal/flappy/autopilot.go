package flappy

// Autopilot decides when to jump so the avatar hovers just above the
// bottom of the next gap. It drives headless runs.
type Autopilot struct {
	Margin float64 // Distance kept between the avatar and the gap's lower edge
}

// DefaultAutopilot returns an autopilot tuned for the default constants.
func DefaultAutopilot() Autopilot {
	return Autopilot{Margin: 8}
}

// ShouldJump reports whether the avatar should jump before the next tick.
// It only fires while falling, so one jump is never cancelled by another.
func (p Autopilot) ShouldJump(snap Snapshot) bool {
	if snap.Speed < 0 {
		return false
	}

	target := snap.Field.FlyAreaHeight/2 + snap.Field.GapHeight/2
	for _, o := range snap.Obstacles {
		if !o.Passed && o.Upper.Right() >= snap.Avatar.Left() {
			target = o.Lower.Top()
			break
		}
	}

	return snap.Avatar.Bottom() > target-p.Margin
}

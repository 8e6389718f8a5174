package config

import "fmt"

// ValidationError describes a configuration that cannot run.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration can drive a simulation.
// Checks:
//   - Sizes and rates are positive
//   - The split range keeps both obstacle boxes at non-negative height
//   - The avatar starts inside the fly area
//   - A jump moves the avatar up
func (c FlappyConfig) Validate() error {
	f := c.Field
	if f.FlyAreaHeight <= 0 || f.ViewWidth <= 0 || f.GapHeight <= 0 || f.ObstacleWidth <= 0 {
		return ValidationError{
			Code:    "FIELD_SIZE",
			Message: "fly_area_height, view_width, gap_height and obstacle_width must be positive",
		}
	}
	if f.GapHeight >= f.FlyAreaHeight {
		return ValidationError{
			Code:    "GAP_TOO_TALL",
			Message: fmt.Sprintf("gap_height %.1f must be smaller than fly_area_height %.1f", f.GapHeight, f.FlyAreaHeight),
		}
	}
	if f.ScrollSpeed <= 0 {
		return ValidationError{Code: "SCROLL_SPEED", Message: "scroll_speed must be positive"}
	}
	if f.SpawnInterval <= 0 {
		return ValidationError{Code: "SPAWN_INTERVAL", Message: "spawn_interval must be positive"}
	}
	if f.RemovalEdge > 0 {
		return ValidationError{
			Code:    "REMOVAL_EDGE",
			Message: fmt.Sprintf("removal_edge %.1f must not be right of the screen's left edge", f.RemovalEdge),
		}
	}
	if err := c.validateSplit(); err != nil {
		return err
	}

	a := c.Avatar
	if a.Width <= 0 || a.Height <= 0 {
		return ValidationError{Code: "AVATAR_SIZE", Message: "avatar width and height must be positive"}
	}
	if a.Y < 0 || a.Y+a.Height > f.FlyAreaHeight {
		return ValidationError{
			Code:    "AVATAR_OUT_OF_FIELD",
			Message: fmt.Sprintf("avatar spans y=[%.1f, %.1f], outside fly area [0, %.1f]", a.Y, a.Y+a.Height, f.FlyAreaHeight),
		}
	}

	if c.Physics.JumpSpeed >= 0 {
		return ValidationError{Code: "JUMP_SPEED", Message: "jump_speed must be negative (y grows downward)"}
	}
	if c.Physics.Gravity <= 0 {
		return ValidationError{Code: "GRAVITY", Message: "gravity must be positive"}
	}
	if c.Timing.TickInterval <= 0 {
		return ValidationError{Code: "TICK_INTERVAL", Message: "tick_interval must be positive"}
	}
	return nil
}

// validateSplit checks that every height drawn from [SplitMin, SplitMax]
// leaves a non-negative lower box.
func (c FlappyConfig) validateSplit() error {
	f := c.Field
	if f.SplitMin < 0 {
		return ValidationError{Code: "SPLIT_RANGE", Message: fmt.Sprintf("split_min %d must not be negative", f.SplitMin)}
	}
	if f.SplitMax < f.SplitMin {
		return ValidationError{
			Code:    "SPLIT_RANGE",
			Message: fmt.Sprintf("split_max %d is below split_min %d", f.SplitMax, f.SplitMin),
		}
	}
	if lower := f.FlyAreaHeight - f.GapHeight - float64(f.SplitMax); lower < 0 {
		return ValidationError{
			Code:    "SPLIT_RANGE",
			Message: fmt.Sprintf("split_max %d leaves a lower box of %.1f", f.SplitMax, lower),
		}
	}
	return nil
}

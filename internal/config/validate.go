package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid runner config")

// ValidationError contains details about a validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap lets callers match any validation failure with errors.Is.
func (e ValidationError) Unwrap() error {
	return ErrInvalidConfig
}

// maxJumpTicks bounds the arc simulation; any sane arc lands long before.
const maxJumpTicks = 10000

// Validate checks that the config describes a playable game:
// positive sizes, ordered ranges, and a jump that can clear one obstacle.
func (c RunnerConfig) Validate() error {
	if err := c.validatePositive(); err != nil {
		return err
	}
	if err := c.validateRanges(); err != nil {
		return err
	}
	return c.validateJumpClearance()
}

func (c RunnerConfig) validatePositive() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"physics.gravity", c.Physics.Gravity},
		{"physics.jump_power", c.Physics.JumpPower},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"world.floor_height", c.World.FloorHeight},
		{"world.win_score", float64(c.World.WinScore)},
		{"obstacles.width", c.Obstacles.Width},
		{"obstacles.height", c.Obstacles.Height},
		{"obstacles.speed", c.Obstacles.Speed},
		{"obstacles.first_interval", float64(c.Obstacles.FirstInterval)},
		{"obstacles.min_interval", float64(c.Obstacles.MinInterval)},
		{"decorations.interval", float64(c.Decorations.Interval)},
		{"decorations.min_size", c.Decorations.MinSize},
		{"decorations.min_speed", c.Decorations.MinSpeed},
		{"decorations.prune_factor", c.Decorations.PruneFactor},
		{"display.cell_width", c.Display.CellWidth},
		{"display.cell_height", c.Display.CellHeight},
	}
	for _, chk := range checks {
		if !(chk.value > 0) {
			return ValidationError{
				Code:    "NOT_POSITIVE",
				Message: fmt.Sprintf("%s must be positive, got %v", chk.name, chk.value),
			}
		}
	}
	if c.Player.X < 0 || c.Decorations.TopOffset < 0 {
		return ValidationError{
			Code:    "NEGATIVE_OFFSET",
			Message: "player.x and decorations.top_offset must not be negative",
		}
	}
	return nil
}

func (c RunnerConfig) validateRanges() error {
	if c.Obstacles.MaxInterval < c.Obstacles.MinInterval {
		return ValidationError{
			Code: "BAD_RANGE",
			Message: fmt.Sprintf("obstacles.max_interval (%d) < obstacles.min_interval (%d)",
				c.Obstacles.MaxInterval, c.Obstacles.MinInterval),
		}
	}
	if c.Decorations.MaxSize < c.Decorations.MinSize {
		return ValidationError{
			Code:    "BAD_RANGE",
			Message: fmt.Sprintf("decorations.max_size (%v) < decorations.min_size (%v)", c.Decorations.MaxSize, c.Decorations.MinSize),
		}
	}
	if c.Decorations.MaxSpeed < c.Decorations.MinSpeed {
		return ValidationError{
			Code:    "BAD_RANGE",
			Message: fmt.Sprintf("decorations.max_speed (%v) < decorations.min_speed (%v)", c.Decorations.MaxSpeed, c.Decorations.MinSpeed),
		}
	}
	return nil
}

// validateJumpClearance replays the discrete jump arc and requires the
// player's bottom edge to stay above the obstacle top for at least as many
// ticks as an obstacle needs to slide fully past the player.
func (c RunnerConfig) validateJumpClearance() error {
	apex := c.Physics.JumpPower * c.Physics.JumpPower / (2 * c.Physics.Gravity)
	if apex <= c.Obstacles.Height {
		return ValidationError{
			Code:    "JUMP_TOO_LOW",
			Message: fmt.Sprintf("jump apex %.1f does not clear obstacle height %.1f", apex, c.Obstacles.Height),
		}
	}

	above := ClearanceTicks(c.Physics, c.Obstacles.Height)
	need := int(math.Ceil((c.Player.Width + c.Obstacles.Width) / c.Obstacles.Speed))
	if above < need {
		return ValidationError{
			Code: "JUMP_TOO_SHORT",
			Message: fmt.Sprintf("jump stays above obstacles for %d ticks, crossing one takes %d",
				above, need),
		}
	}
	return nil
}

// ClearanceTicks returns the longest run of ticks during which a jump
// keeps the player's bottom edge strictly above height.
func ClearanceTicks(p RunnerPhysics, height float64) int {
	y, v := 0.0, -p.JumpPower
	best, run := 0, 0
	for i := 0; i < maxJumpTicks; i++ {
		y += v
		v += p.Gravity
		if y >= 0 {
			break
		}
		if -y > height {
			run++
			best = max(best, run)
		} else {
			run = 0
		}
	}
	return best
}

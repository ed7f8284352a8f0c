package game

import "github.com/vovakirdan/dodgey/internal/core"

// AxisThreshold is how far a stick must be pushed to count as a command.
const AxisThreshold = 0.5

// Command is a single ship instruction.
type Command int

const (
	CmdRotateClockwise Command = iota + 1
	CmdRotateCounterClockwise
	CmdThrust
	CmdFire
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdRotateClockwise:
		return "rotate_cw"
	case CmdRotateCounterClockwise:
		return "rotate_ccw"
	case CmdThrust:
		return "thrust"
	case CmdFire:
		return "fire"
	default:
		return "unknown"
	}
}

// MapInput turns one input frame into ship commands, in the order they are
// applied: stick turn, stick thrust, fire, then the steering keys.
// Stick and keys are independent, so both may turn the ship in one tick.
// Fire appears at most once.
func MapInput(in core.InputFrame) []Command {
	var cmds []Command

	switch {
	case in.Axes.Turn > AxisThreshold:
		cmds = append(cmds, CmdRotateClockwise)
	case in.Axes.Turn < -AxisThreshold:
		cmds = append(cmds, CmdRotateCounterClockwise)
	}
	if in.Axes.Thrust > AxisThreshold {
		cmds = append(cmds, CmdThrust)
	}

	if in.Has(core.ActionFire) {
		cmds = append(cmds, CmdFire)
	}

	if in.Has(core.ActionRotateRight) {
		cmds = append(cmds, CmdRotateClockwise)
	}
	if in.Has(core.ActionRotateLeft) {
		cmds = append(cmds, CmdRotateCounterClockwise)
	}
	if in.Has(core.ActionThrust) {
		cmds = append(cmds, CmdThrust)
	}
	return cmds
}

// Apply executes commands on the ship and returns the projectile fired, if any.
func Apply(ship *Ship, cmds []Command) *Projectile {
	var shot *Projectile
	for _, c := range cmds {
		switch c {
		case CmdRotateClockwise:
			ship.Rotate(true)
		case CmdRotateCounterClockwise:
			ship.Rotate(false)
		case CmdThrust:
			ship.Accelerate()
		case CmdFire:
			if shot == nil {
				shot = ship.Fire()
			}
		}
	}
	return shot
}

package headless

import (
	"math"

	"github.com/vovakirdan/dodgey/internal/core"
	"github.com/vovakirdan/dodgey/internal/game"
)

// Script produces the input for each tick of a headless run.
type Script interface {
	Frame(tick int, s *game.Session) core.InputFrame
}

// ScriptFunc adapts a function to Script.
type ScriptFunc func(tick int, s *game.Session) core.InputFrame

// Frame calls f.
func (f ScriptFunc) Frame(tick int, s *game.Session) core.InputFrame {
	return f(tick, s)
}

// Idle presses start once and then does nothing.
var Idle = ScriptFunc(func(tick int, s *game.Session) core.InputFrame {
	f := core.NewInputFrame()
	if s.Status() == core.StatusMenu {
		f.Set(core.ActionStart)
	}
	return f
})

// Autopilot turns toward the nearest obstacle and fires at a fixed cadence.
type Autopilot struct {
	FireEvery int     // Ticks between shots, default 10
	Tolerance float64 // Degrees off target that still count as aimed, default 8
}

// Frame implements Script.
func (a Autopilot) Frame(tick int, s *game.Session) core.InputFrame {
	f := core.NewInputFrame()
	if s.Status() == core.StatusMenu {
		f.Set(core.ActionStart)
		return f
	}
	ship := s.Ship()
	if ship == nil {
		return f
	}

	every := a.FireEvery
	if every <= 0 {
		every = 10
	}
	tol := a.Tolerance
	if tol <= 0 {
		tol = 8
	}

	target, ok := nearest(ship.Pos, s.Obstacles())
	if ok {
		delta := headingDelta(ship.Facing.Angle(), target.Sub(ship.Pos).Angle())
		switch {
		case delta > tol:
			f.Axes.Turn = 1
		case delta < -tol:
			f.Axes.Turn = -1
		}
	}
	if tick%every == 0 {
		f.Set(core.ActionFire)
	}
	return f
}

// nearest returns the position of the closest obstacle.
func nearest(from core.Vec2, obstacles []*game.Obstacle) (core.Vec2, bool) {
	best, bestDist := core.Vec2{}, math.Inf(1)
	for _, o := range obstacles {
		if d := o.Pos.Dist(from); d < bestDist {
			best, bestDist = o.Pos, d
		}
	}
	return best, !math.IsInf(bestDist, 1)
}

// headingDelta returns the clockwise turn from one heading to another
// in (-180, 180].
func headingDelta(from, to float64) float64 {
	d := math.Mod(to-from, 360)
	if d > 180 {
		d -= 360
	} else if d <= -180 {
		d += 360
	}
	return d
}

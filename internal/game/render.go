package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/dodgey/internal/core"
)

// Menu texts.
const (
	Title       = "Dodgey"
	StartPrompt = "Press any button to start."
	ControlHint = "Shoot = buttons   Move = joystick."
)

// Visual characters for rendering
const (
	ProjectileChar = '•'
)

// shipArrows are indexed by facing angle in 45 degree steps from +X, clockwise.
var shipArrows = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// obstacleGlyphs by tier.
var obstacleGlyphs = map[int]rune{
	3: '▓',
	2: '▒',
	1: 'o',
}

// ShipGlyph returns the arrow closest to the facing direction.
func ShipGlyph(facing core.Vec2) rune {
	idx := int(math.Round(facing.Angle()/45)) % len(shipArrows)
	return shipArrows[idx]
}

// Render draws the session into a cell buffer, scaling the play area to fit.
// The screen is expected to be cleared.
func (s *Session) Render(dst *core.Screen) {
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}

	if s.status == core.StatusMenu {
		s.renderMenu(dst)
		return
	}

	v := viewport{bounds: s.bounds, w: dst.Width(), h: dst.Height()}

	for _, o := range s.world.obstacles {
		v.fillCircle(dst, o.Pos, o.Radius, obstacleGlyphs[o.Tier], core.ColorGray)
	}
	for _, p := range s.world.projectiles {
		x, y := v.cell(p.Pos)
		dst.SetColor(x, y, ProjectileChar, core.ColorYellow)
	}
	if ship := s.world.ship; ship != nil {
		x, y := v.cell(ship.Pos)
		dst.SetColor(x, y, ShipGlyph(ship.Facing), core.ColorCyan)
	}

	dst.DrawTextCentered(0, fmt.Sprintf("Score: %d", s.score), core.ColorTomato)
	if s.message != "" {
		dst.DrawTextCentered(dst.Height()/2, s.message, core.ColorRed)
	}
}

func (s *Session) renderMenu(dst *core.Screen) {
	v := viewport{bounds: s.bounds, w: dst.Width(), h: dst.Height()}
	_, titleY := v.cell(core.V(0, 100))
	_, hintY := v.cell(core.V(0, s.bounds.H-70))

	dst.DrawTextCentered(titleY, Title, core.ColorPurple)
	dst.DrawTextCentered(dst.Height()/2, StartPrompt, core.ColorTomato)
	dst.DrawTextCentered(min(hintY, dst.Height()-1), ControlHint, core.ColorBlue)
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	bounds core.Bounds
	w, h   int
}

func (v viewport) cell(p core.Vec2) (int, int) {
	x := int(p.X * float64(v.w) / v.bounds.W)
	y := int(p.Y * float64(v.h) / v.bounds.H)
	return core.Clamp(x, 0, v.w-1), core.Clamp(y, 0, v.h-1)
}

// fillCircle marks every cell whose center lies inside the circle, and at
// least the cell holding the center.
func (v viewport) fillCircle(dst *core.Screen, center core.Vec2, r float64, glyph rune, c core.Color) {
	cw := v.bounds.W / float64(v.w)
	ch := v.bounds.H / float64(v.h)

	x0 := int(math.Floor((center.X - r) / cw))
	x1 := int(math.Floor((center.X + r) / cw))
	y0 := int(math.Floor((center.Y - r) / ch))
	y1 := int(math.Floor((center.Y + r) / ch))

	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			mid := core.V((float64(x)+0.5)*cw, (float64(y)+0.5)*ch)
			if mid.Dist(center) < r {
				dst.SetColor(x, y, glyph, c)
			}
		}
	}

	cx, cy := v.cell(center)
	dst.SetColor(cx, cy, glyph, c)
}

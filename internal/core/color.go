package core

// Color is a foreground color for a screen cell. Platforms map it to
// terminal or RGB colors.
type Color uint8

// Palette used by the renderers.
const (
	ColorDefault Color = iota
	ColorTomato        // score and HUD text
	ColorPurple        // title
	ColorBlue          // control hints
	ColorCyan          // ship
	ColorGray          // obstacles
	ColorYellow        // projectiles
	ColorRed           // death message
	ColorWhite
)

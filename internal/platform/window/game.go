// Package window runs Dodgey in a desktop window with Ebitengine,
// with keyboard and gamepad input and sound cues.
package window

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/dodgey/internal/audio"
	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
	"github.com/vovakirdan/dodgey/internal/game"
	"github.com/vovakirdan/dodgey/internal/storage"
)

// Debug font cell size in pixels.
const (
	glyphW = 6
	glyphH = 16
)

var palette = map[core.Color]color.RGBA{
	core.ColorDefault: {0xff, 0xff, 0xff, 0xff},
	core.ColorTomato:  {0xff, 0x63, 0x47, 0xff},
	core.ColorPurple:  {0xa0, 0x20, 0xf0, 0xff},
	core.ColorBlue:    {0x1e, 0x90, 0xff, 0xff},
	core.ColorCyan:    {0x00, 0xff, 0xff, 0xff},
	core.ColorGray:    {0x80, 0x80, 0x80, 0xff},
	core.ColorYellow:  {0xff, 0xff, 0x00, 0xff},
	core.ColorRed:     {0xff, 0x00, 0x00, 0xff},
	core.ColorWhite:   {0xff, 0xff, 0xff, 0xff},
}

// Options configures a window session.
type Options struct {
	Game     config.DodgeyConfig
	Seed     int64
	TickRate int
	Scale    float64        // Window size relative to the world, default 0.75
	Audio    audio.Player   // nil plays nothing
	Store    *storage.Store // nil disables run history
	Logger   *log.Logger
	Player   string
}

// Game implements ebiten.Game around a session.
type Game struct {
	session *game.Session
	opts    Options
	state   core.GameState
	saved   bool

	keys    []ebiten.Key
	padIDs  []ebiten.GamepadID
	buttons []ebiten.GamepadButton
}

// New creates a window game.
func New(opts Options) *Game {
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	s := game.New(opts.Game, opts.Seed)
	return &Game{session: s, opts: opts, state: s.State()}
}

// Update advances the simulation by one tick.
func (g *Game) Update() error {
	var k keyState
	var pads []padState
	k, g.keys = pollKeys(g.keys)
	pads, g.padIDs, g.buttons = pollPads(g.padIDs, g.buttons)
	return g.step(buildFrame(k, pads))
}

// step runs one tick and returns ebiten.Termination once the session ends.
func (g *Game) step(in core.InputFrame) error {
	if g.state.Over() {
		return ebiten.Termination
	}
	result := g.session.Step(in)
	g.state = result.State
	for _, e := range result.Events {
		if e.Cue != core.CueNone {
			g.opts.Audio.Play(e.Cue)
		}
		g.opts.Logger.Debug("event", "kind", e.Kind, "tier", e.Tier)
	}
	if g.state.Over() {
		g.saveRun()
		return ebiten.Termination
	}
	return nil
}

func (g *Game) saveRun() {
	if g.saved || g.opts.Store == nil || g.state.Tick == 0 {
		return
	}
	g.saved = true
	run := storage.NewRun(g.state, g.session.Seed(), "window", g.opts.Player)
	if _, err := g.opts.Store.SaveRun(run); err != nil {
		g.opts.Logger.Warn("failed to save run", "err", err)
	}
}

// Draw renders the session in world coordinates.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	s := g.session
	b := s.Bounds()

	if s.Status() == core.StatusMenu {
		drawCentered(screen, b, 100, game.Title)
		drawCentered(screen, b, b.H/2, game.StartPrompt)
		drawCentered(screen, b, b.H-70, game.ControlHint)
		return
	}

	for _, o := range s.Obstacles() {
		vector.DrawFilledCircle(screen, float32(o.Pos.X), float32(o.Pos.Y), float32(o.Radius), palette[core.ColorGray], true)
	}
	for _, p := range s.Projectiles() {
		vector.DrawFilledCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), palette[core.ColorYellow], true)
	}
	if ship := s.Ship(); ship != nil {
		drawShip(screen, ship)
	}

	drawCentered(screen, b, 10, fmt.Sprintf("Score: %d", s.Score()))
	if msg := s.Message(); msg != "" {
		drawCentered(screen, b, b.H/2, msg)
		secs := (s.LingerRemaining() + 59) / 60
		drawCentered(screen, b, b.H/2+2*glyphH, fmt.Sprintf("Closing in %ds", secs))
	}
}

// drawShip draws the hull and a nose line along the facing.
func drawShip(screen *ebiten.Image, ship *game.Ship) {
	x, y, r := float32(ship.Pos.X), float32(ship.Pos.Y), float32(ship.Radius)
	vector.StrokeCircle(screen, x, y, r, 2, palette[core.ColorCyan], true)
	nose := ship.Pos.Add(ship.Facing.Scale(ship.Radius * 1.5))
	vector.StrokeLine(screen, x, y, float32(nose.X), float32(nose.Y), 3, palette[core.ColorCyan], true)
}

// drawCentered prints text horizontally centered with its top at y.
func drawCentered(screen *ebiten.Image, b core.Bounds, y float64, text string) {
	x := (int(b.W) - len(text)*glyphW) / 2
	ebitenutil.DebugPrintAt(screen, text, max(x, 0), int(y)-glyphH/2)
}

// Layout keeps the logical screen at world size; Ebitengine scales it.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.session.Bounds()
	return int(b.W), int(b.H)
}

// State returns the latest session summary.
func (g *Game) State() core.GameState {
	return g.state
}

// Run opens the window and blocks until the session ends.
func Run(opts Options) (core.GameState, error) {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.Scale <= 0 {
		opts.Scale = 0.75
	}

	g := New(opts)
	b := g.session.Bounds()
	ebiten.SetWindowSize(int(b.W*opts.Scale), int(b.H*opts.Scale))
	ebiten.SetWindowTitle(game.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(opts.TickRate)

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		err = nil
	}
	return g.state, err
}

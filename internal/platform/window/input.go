package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dodgey/internal/core"
)

// keyState is the keyboard as seen by one Update call.
type keyState struct {
	Left, Right, Up bool // Held
	Fire            bool // Pressed this tick
	Quit            bool
	Pressed         int // Keys that went down this tick
}

// padState is one gamepad as seen by one Update call.
type padState struct {
	Turn    float64 // Axis 0
	Thrust  float64 // Axis 1, negated so pushing up is positive
	Pressed int     // Buttons that went down this tick
}

// buildFrame merges keyboard and gamepad state into one input frame.
// Sticks of several pads add up and are clamped; every button press fires.
func buildFrame(k keyState, pads []padState) core.InputFrame {
	f := core.NewInputFrame()
	if k.Quit {
		f.Set(core.ActionQuit)
	}
	if k.Pressed > 0 {
		f.Set(core.ActionStart)
	}
	if k.Left {
		f.Set(core.ActionRotateLeft)
	}
	if k.Right {
		f.Set(core.ActionRotateRight)
	}
	if k.Up {
		f.Set(core.ActionThrust)
	}
	if k.Fire {
		f.Set(core.ActionFire)
	}

	for _, p := range pads {
		f.Axes.Turn += p.Turn
		f.Axes.Thrust += p.Thrust
		if p.Pressed > 0 {
			f.Set(core.ActionFire)
			f.Set(core.ActionStart)
		}
	}
	f.Axes.Turn = core.ClampF(f.Axes.Turn, -1, 1)
	f.Axes.Thrust = core.ClampF(f.Axes.Thrust, -1, 1)
	return f
}

// pollKeys reads the keyboard.
func pollKeys(buf []ebiten.Key) (keyState, []ebiten.Key) {
	buf = inpututil.AppendJustPressedKeys(buf[:0])
	return keyState{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Fire:    inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Quit:    inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed(),
		Pressed: len(buf),
	}, buf
}

// pollPads reads every connected gamepad.
func pollPads(ids []ebiten.GamepadID, buttons []ebiten.GamepadButton) ([]padState, []ebiten.GamepadID, []ebiten.GamepadButton) {
	ids = ebiten.AppendGamepadIDs(ids[:0])
	pads := make([]padState, 0, len(ids))
	for _, id := range ids {
		var p padState
		if ebiten.GamepadAxisCount(id) >= 2 {
			p.Turn = ebiten.GamepadAxisValue(id, 0)
			p.Thrust = -ebiten.GamepadAxisValue(id, 1)
		}
		buttons = inpututil.AppendJustPressedGamepadButtons(id, buttons[:0])
		p.Pressed = len(buttons)
		pads = append(pads, p)
	}
	return pads, ids, buttons
}

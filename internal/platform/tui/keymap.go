package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dodgey/internal/core"
)

// DefaultHoldTicks is how long a steering key press stays active.
// Terminal auto-repeat (~30/s) refreshes it before it runs out.
const DefaultHoldTicks = 6

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.ActionQuit, true
	case "left", "a":
		return core.ActionRotateLeft, false
	case "right", "d":
		return core.ActionRotateRight, false
	case "up", "w":
		return core.ActionThrust, false
	case " ", "enter":
		return core.ActionFire, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Every key except quit also counts as a start press.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if isQuit {
		frame.Set(core.ActionQuit)
		return true
	}
	frame.Set(core.ActionStart)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return false
}

// KeyHold emulates held keys on terminals, which only report presses.
// A steering press stays active for a fixed number of ticks.
type KeyHold struct {
	ticks     int
	remaining map[core.Action]int
}

// NewKeyHold creates a tracker. ticks <= 0 uses DefaultHoldTicks.
func NewKeyHold(ticks int) *KeyHold {
	if ticks <= 0 {
		ticks = DefaultHoldTicks
	}
	return &KeyHold{ticks: ticks, remaining: make(map[core.Action]int)}
}

// holdable reports whether an action models a held key.
func holdable(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft, core.ActionRotateRight, core.ActionThrust:
		return true
	}
	return false
}

// Press starts or refreshes the hold for a steering action.
// Turning one way releases the other.
func (h *KeyHold) Press(a core.Action) {
	if !holdable(a) {
		return
	}
	switch a {
	case core.ActionRotateLeft:
		delete(h.remaining, core.ActionRotateRight)
	case core.ActionRotateRight:
		delete(h.remaining, core.ActionRotateLeft)
	}
	h.remaining[a] = h.ticks
}

// Apply sets every held action on frame and counts down one tick.
func (h *KeyHold) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		frame.Set(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
}

// Release drops all holds.
func (h *KeyHold) Release() {
	clear(h.remaining)
}

// Held reports whether an action is currently held.
func (h *KeyHold) Held(a core.Action) bool {
	return h.remaining[a] > 0
}

package core

// Action represents a semantic game action, abstracted from physical keys,
// gamepad buttons and sticks.
type Action int

const (
	ActionNone        Action = iota
	ActionRotateLeft         // Left arrow, A
	ActionRotateRight        // Right arrow, D
	ActionThrust             // Up arrow, W
	ActionFire               // Space, any gamepad button
	ActionStart              // Any key or button press (leaves the menu)
	ActionQuit               // Escape, Q, Ctrl+C, window close
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotateLeft:
		return "RotateLeft"
	case ActionRotateRight:
		return "RotateRight"
	case ActionThrust:
		return "Thrust"
	case ActionFire:
		return "Fire"
	case ActionStart:
		return "Start"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Axes holds continuous directional input, each component in [-1, 1].
// A host without an analog device leaves both at zero.
type Axes struct {
	Turn   float64 // Positive turns clockwise
	Thrust float64 // Positive pushes forward
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	Axes    Axes
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions and axes for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Axes = Axes{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Axes = f.Axes
	return clone
}

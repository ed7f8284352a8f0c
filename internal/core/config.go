package core

// RuntimeConfig contains host parameters passed to the game at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal hosts only)
	ScreenH  int   // Screen height in characters (terminal hosts only)
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// Status is the session state machine position.
type Status int

const (
	StatusMenu Status = iota
	StatusPlaying
	StatusLingering
	StatusTerminated
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusMenu:
		return "menu"
	case StatusPlaying:
		return "playing"
	case StatusLingering:
		return "lingering"
	case StatusTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// GameState is the externally visible summary of a session.
type GameState struct {
	Status    Status
	Score     int
	Tick      int // Ticks simulated since leaving the menu
	Destroyed int // Obstacles destroyed by projectiles
	Shots     int // Projectiles fired
}

// Over reports whether the session has reached its final state.
func (s GameState) Over() bool {
	return s.Status == StatusTerminated
}

// StepResult is returned by Step after each simulation tick.
// Contains the updated state and the events that occurred during the tick.
type StepResult struct {
	State  GameState
	Events []Event
}

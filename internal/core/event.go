package core

// Cue names a short sound the host plays fire-and-forget.
type Cue string

const (
	CueNone      Cue = ""
	CueLaser     Cue = "laser"
	CueExplosion Cue = "explosion"
)

// EventKind identifies what happened during a tick.
type EventKind int

const (
	EventStarted EventKind = iota + 1
	EventFired
	EventObstacleDestroyed
	EventShipDestroyed
	EventTerminated
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFired:
		return "fired"
	case EventObstacleDestroyed:
		return "obstacle_destroyed"
	case EventShipDestroyed:
		return "ship_destroyed"
	case EventTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Event is emitted by the session instead of calling back into the host.
// Hosts play the cue (if any) and may log the event.
type Event struct {
	Kind EventKind
	Cue  Cue
	Pos  Vec2 // Where it happened (fired / destroyed events)
	Tier int  // Obstacle tier for EventObstacleDestroyed
}

package game

import (
	"math/rand"

	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
)

// Session runs one game from the title menu to termination.
type Session struct {
	cfg    config.DodgeyConfig
	bounds core.Bounds
	seed   int64
	rng    *rand.Rand

	world World

	status    core.Status
	score     int
	tick      int
	linger    int
	destroyed int
	shots     int
	message   string
}

// New creates a session in the menu state. The obstacle field is seeded
// immediately so the first playing tick already has obstacles.
func New(cfg config.DodgeyConfig, seed int64) *Session {
	s := &Session{cfg: cfg}
	s.Reset(seed)
	return s
}

// Reset discards all state and starts over at the menu with a new seed.
func (s *Session) Reset(seed int64) {
	s.seed = seed
	s.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
	s.bounds = core.Bounds{W: s.cfg.World.Width, H: s.cfg.World.Height}

	ship := NewShip(s.bounds.Center(), s.cfg.Ship, s.cfg.Projectile.Radius)
	pop := NewPopulation(s.rng, s.bounds, s.cfg.Obstacles, s.cfg.Population)
	s.world = World{
		bounds:     s.bounds,
		ship:       ship,
		obstacles:  pop.Seed(ship.Pos),
		population: pop,
	}

	s.status = core.StatusMenu
	s.score = 0
	s.tick = 0
	s.linger = 0
	s.destroyed = 0
	s.shots = 0
	s.message = ""
}

// Step advances the session by one tick.
func (s *Session) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	if s.status != core.StatusTerminated && in.Has(core.ActionQuit) {
		s.status = core.StatusTerminated
		events = append(events, core.Event{Kind: core.EventTerminated})
		return s.result(events)
	}

	switch s.status {
	case core.StatusMenu:
		if anyPress(in) {
			s.status = core.StatusPlaying
			events = append(events, core.Event{Kind: core.EventStarted})
		}

	case core.StatusPlaying:
		s.tick++
		if shot := Apply(s.world.ship, MapInput(in)); shot != nil {
			s.world.AddProjectile(shot)
			s.shots++
			events = append(events, core.Event{Kind: core.EventFired, Cue: core.CueLaser, Pos: shot.Pos})
		}
		events = s.simulate(events)
		if s.status == core.StatusLingering && s.cfg.Session.LingerTicks <= 0 {
			s.status = core.StatusTerminated
			events = append(events, core.Event{Kind: core.EventTerminated})
		}

	case core.StatusLingering:
		s.tick++
		events = s.simulate(events)
		s.linger++
		if s.linger >= s.cfg.Session.LingerTicks {
			s.status = core.StatusTerminated
			events = append(events, core.Event{Kind: core.EventTerminated})
		}
	}

	return s.result(events)
}

// simulate moves everything and applies collision rules.
func (s *Session) simulate(events []core.Event) []core.Event {
	s.world.Move()
	out := s.world.Resolve()

	for _, k := range out.Kills {
		s.score += s.cfg.Scoring.DestroyAward
		s.destroyed++
		events = append(events, core.Event{Kind: core.EventObstacleDestroyed, Pos: k.Pos, Tier: k.Tier})
	}

	if out.ShipDestroyed {
		s.status = core.StatusLingering
		s.message = s.cfg.Session.DeathMessage
		events = append(events, core.Event{Kind: core.EventShipDestroyed, Cue: core.CueExplosion, Pos: out.ShipPos})
	}
	return events
}

func (s *Session) result(events []core.Event) core.StepResult {
	return core.StepResult{State: s.State(), Events: events}
}

// anyPress reports whether a button or key other than quit was pressed.
func anyPress(in core.InputFrame) bool {
	for a, on := range in.Actions {
		if on && a != core.ActionNone && a != core.ActionQuit {
			return true
		}
	}
	return false
}

// State returns the externally visible summary.
func (s *Session) State() core.GameState {
	return core.GameState{
		Status:    s.status,
		Score:     s.score,
		Tick:      s.tick,
		Destroyed: s.destroyed,
		Shots:     s.shots,
	}
}

// Status returns the state machine position.
func (s *Session) Status() core.Status { return s.status }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Seed returns the seed the session was created with.
func (s *Session) Seed() int64 { return s.seed }

// Message returns the death message, empty while the ship is alive.
func (s *Session) Message() string { return s.message }

// Bounds returns the play area.
func (s *Session) Bounds() core.Bounds { return s.bounds }

// Ship returns the ship, or nil once it has been destroyed.
func (s *Session) Ship() *Ship { return s.world.ship }

// Obstacles returns the live obstacles. Callers must not modify the slice.
func (s *Session) Obstacles() []*Obstacle { return s.world.obstacles }

// Projectiles returns the live projectiles. Callers must not modify the slice.
func (s *Session) Projectiles() []*Projectile { return s.world.projectiles }

// LingerRemaining returns the ticks left before a dead session terminates.
func (s *Session) LingerRemaining() int {
	if s.status != core.StatusLingering {
		return 0
	}
	return s.cfg.Session.LingerTicks - s.linger
}

package game

import "math"

// Snapshot contains the complete session state in primitive types,
// for replay checks and determinism tests.
type Snapshot struct {
	Tick      int
	Status    int
	Score     int
	Destroyed int
	Shots     int
	Linger    int

	// Ship is 7 values: X, Y, VX, VY, FacingX, FacingY, Present
	Ship [7]float64

	// Each obstacle is 5 values: X, Y, VX, VY, Tier
	ObstacleData []float64

	// Each projectile is 4 values: X, Y, VX, VY
	ProjectileData []float64
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:      s.tick,
		Status:    int(s.status),
		Score:     s.score,
		Destroyed: s.destroyed,
		Shots:     s.shots,
		Linger:    s.linger,
	}

	if ship := s.world.ship; ship != nil {
		snap.Ship = [7]float64{ship.Pos.X, ship.Pos.Y, ship.Vel.X, ship.Vel.Y, ship.Facing.X, ship.Facing.Y, 1}
	}

	snap.ObstacleData = make([]float64, 0, len(s.world.obstacles)*5)
	for _, o := range s.world.obstacles {
		snap.ObstacleData = append(snap.ObstacleData, o.Pos.X, o.Pos.Y, o.Vel.X, o.Vel.Y, float64(o.Tier))
	}

	snap.ProjectileData = make([]float64, 0, len(s.world.projectiles)*4)
	for _, p := range s.world.projectiles {
		snap.ProjectileData = append(snap.ProjectileData, p.Pos.X, p.Pos.Y, p.Vel.X, p.Vel.Y)
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)                //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Status)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Destroyed)     //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Shots)         //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Linger)        //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.ObstacleData))
	h = h*31 + uint64(len(snap.ProjectileData))

	for _, v := range snap.Ship {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ObstacleData {
		h = h*31 + math.Float64bits(v)
	}
	for _, v := range snap.ProjectileData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}

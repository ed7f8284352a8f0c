package headless

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
	"github.com/vovakirdan/dodgey/internal/game"
	"github.com/vovakirdan/dodgey/internal/storage"
)

// fakeClock advances only when slept on.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

func TestRunTickLimit(t *testing.T) {
	res, err := Run(context.Background(), Options{
		Game:     config.Default(),
		Seed:     5,
		MaxTicks: 50,
		Script:   Idle,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.State.Over() {
		t.Fatalf("status = %v, expected terminated", res.State.Status)
	}
	if res.Steps != 51 {
		t.Errorf("steps = %d, expected 50 scripted plus the quit", res.Steps)
	}
	// The start tick does not simulate.
	if res.State.Tick != 49 {
		t.Errorf("tick = %d, expected 49", res.State.Tick)
	}
	if res.RunID != 0 {
		t.Error("no store, nothing saved")
	}
}

func TestRunDeterministic(t *testing.T) {
	run := func() Result {
		res, err := Run(context.Background(), Options{Game: config.Default(), Seed: 1234, MaxTicks: 600})
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return res
	}
	a, b := run(), run()
	if a.Hash != b.Hash || a.State != b.State {
		t.Errorf("runs differ: %+v vs %+v", a, b)
	}
	if a.State.Shots == 0 {
		t.Error("autopilot should have fired")
	}
}

func TestRunRealtimePacing(t *testing.T) {
	clock := &fakeClock{now: time.Unix(0, 0)}
	res, err := Run(context.Background(), Options{
		Game:     config.Default(),
		Seed:     1,
		MaxTicks: 5,
		Script:   Idle,
		Realtime: true,
		TickRate: 50,
		Clock:    clock,
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(clock.slept) != 5 {
		t.Errorf("slept %d times, expected once per scripted step", len(clock.slept))
	}
	if res.Elapsed != 100*time.Millisecond {
		t.Errorf("elapsed = %v, expected 100ms", res.Elapsed)
	}
}

func TestRunCancelled(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := Run(ctx, Options{Game: config.Default(), Seed: 1, Store: store})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Steps != 1 || res.State.Tick != 0 || !res.State.Over() {
		t.Errorf("result = %+v, expected an immediate quit", res)
	}
	if res.RunID != 0 {
		t.Error("a run that never started should not be saved")
	}
}

func TestRunSaves(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	res, err := Run(context.Background(), Options{Game: config.Default(), Seed: 8, MaxTicks: 30, Store: store, Player: "bot"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.RunID == 0 {
		t.Fatal("run should be saved")
	}
	runs, err := store.RecentRuns(1)
	if err != nil || len(runs) != 1 {
		t.Fatalf("RecentRuns: %v, %v", runs, err)
	}
	if r := runs[0]; r.Host != "sim" || r.Player != "bot" || r.Seed != 8 || r.Ticks != res.State.Tick {
		t.Errorf("saved run = %+v", r)
	}
}

func TestRunSoak(t *testing.T) {
	if testing.Short() {
		t.Skip("soak test")
	}
	cfg := config.Default()
	for seed := int64(1); seed <= 5; seed++ {
		res, err := Run(context.Background(), Options{Game: cfg, Seed: seed, MaxTicks: 5000})
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}
		st := res.State
		if st.Score != st.Destroyed*cfg.Scoring.DestroyAward {
			t.Errorf("seed %d: score %d for %d destroyed", seed, st.Score, st.Destroyed)
		}
		if st.Destroyed > st.Shots {
			t.Errorf("seed %d: destroyed %d with %d shots", seed, st.Destroyed, st.Shots)
		}
	}
}

func TestHeadingDelta(t *testing.T) {
	tests := []struct {
		from, to, expected float64
	}{
		{0, 90, 90},
		{90, 0, -90},
		{350, 10, 20},
		{10, 350, -20},
		{0, 180, 180},
		{270, 270, 0},
	}
	for _, tc := range tests {
		if got := headingDelta(tc.from, tc.to); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("headingDelta(%v, %v) = %v, expected %v", tc.from, tc.to, got, tc.expected)
		}
	}
}

func TestNearest(t *testing.T) {
	if _, ok := nearest(core.V(0, 0), nil); ok {
		t.Error("no obstacles, no target")
	}
	obstacles := []*game.Obstacle{
		game.NewObstacle(core.V(500, 0), core.Vec2{}, 3, 48),
		game.NewObstacle(core.V(0, 100), core.Vec2{}, 3, 48),
		game.NewObstacle(core.V(300, 300), core.Vec2{}, 3, 48),
	}
	if got, ok := nearest(core.V(0, 0), obstacles); !ok || got != core.V(0, 100) {
		t.Errorf("nearest = %v, %v", got, ok)
	}
}

func TestAutopilotStartsFromMenu(t *testing.T) {
	s := game.New(config.Default(), 1)
	f := Autopilot{}.Frame(0, s)
	if !f.Has(core.ActionStart) || f.Has(core.ActionFire) {
		t.Errorf("menu frame = %v, expected start only", f.Actions)
	}

	s.Step(f)
	f = Autopilot{FireEvery: 3}.Frame(3, s)
	if !f.Has(core.ActionFire) {
		t.Error("autopilot should fire on its cadence")
	}
}

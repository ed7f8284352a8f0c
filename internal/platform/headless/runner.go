// Package headless runs Dodgey sessions without a display, driven by a
// script. It backs the sim command and soak tests.
package headless

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodgey/internal/config"
	"github.com/vovakirdan/dodgey/internal/core"
	"github.com/vovakirdan/dodgey/internal/game"
	"github.com/vovakirdan/dodgey/internal/storage"
)

// Options configures a headless run.
type Options struct {
	Game     config.DodgeyConfig
	Seed     int64
	MaxTicks int    // Quit after this many steps, 0 runs until the session ends
	Script   Script // nil uses Autopilot{}
	Realtime bool   // Pace steps at TickRate instead of running flat out
	TickRate int
	Clock    core.Clock // nil uses the system clock
	Store    *storage.Store
	Logger   *log.Logger
	Player   string
}

// Result summarizes a finished headless run.
type Result struct {
	State   core.GameState
	Seed    int64
	Steps   int    // Calls to Step, menu ticks included
	Hash    uint64 // Snapshot hash of the final state
	Elapsed time.Duration
	RunID   int64 // 0 when not saved
}

// Run drives a session until it terminates, MaxTicks is reached or ctx is
// cancelled. The last two end the session with a quit input.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Script == nil {
		opts.Script = Autopilot{}
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	s := game.New(opts.Game, opts.Seed)
	var pacer *core.Pacer
	if opts.Realtime {
		pacer = core.NewPacer(opts.Clock, opts.TickRate)
	}

	start := opts.Clock.Now()
	res := Result{Seed: opts.Seed}
	for !s.State().Over() {
		var in core.InputFrame
		switch {
		case ctx.Err() != nil:
			logger.Info("run cancelled", "steps", res.Steps)
			in = quitFrame()
		case opts.MaxTicks > 0 && res.Steps >= opts.MaxTicks:
			logger.Info("tick limit reached", "steps", res.Steps)
			in = quitFrame()
		default:
			in = opts.Script.Frame(res.Steps, s)
		}

		step := s.Step(in)
		res.Steps++
		for _, e := range step.Events {
			logger.Debug("event", "step", res.Steps, "kind", e.Kind, "tier", e.Tier, "score", step.State.Score)
		}
		if pacer != nil && !step.State.Over() {
			pacer.Wait()
		}
	}

	res.State = s.State()
	snap := s.Snapshot()
	res.Hash = snap.Hash()
	res.Elapsed = opts.Clock.Now().Sub(start)

	if opts.Store != nil && res.State.Tick > 0 {
		id, err := opts.Store.SaveRun(storage.NewRun(res.State, opts.Seed, "sim", opts.Player))
		if err != nil {
			return res, err
		}
		res.RunID = id
	}
	return res, nil
}

func quitFrame() core.InputFrame {
	f := core.NewInputFrame()
	f.Set(core.ActionQuit)
	return f
}

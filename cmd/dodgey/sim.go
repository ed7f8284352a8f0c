package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodgey/internal/platform/headless"
)

var (
	flagTicks     int
	flagRealtime  bool
	flagFireEvery int
	flagIdle      bool
	flagNoSave    bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless session",
	Long: `Run a session without a display. The autopilot turns toward the nearest
obstacle and fires on a fixed cadence. The run ends when the ship has been
destroyed and the linger time is over, or after --ticks steps.

The final state hash identifies the run: equal seeds, tuning and tick
limits always give the same hash.

Examples:
  dodgey sim --seed 42
  dodgey sim --ticks 3600 --realtime
  dodgey sim --idle --ticks 600 --no-save`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagTicks, "ticks", 0, "Stop after this many steps (0 = until the session ends)")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace steps at --fps")
	simCmd.Flags().IntVar(&flagFireEvery, "fire-every", 10, "Autopilot ticks between shots")
	simCmd.Flags().BoolVar(&flagIdle, "idle", false, "Start and do nothing instead of flying the autopilot")
	simCmd.Flags().BoolVar(&flagNoSave, "no-save", false, "Do not record the run")
}

func runSim(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := headless.Options{
		Game:     cfg,
		Seed:     resolveSeed(),
		MaxTicks: flagTicks,
		Script:   headless.Autopilot{FireEvery: flagFireEvery},
		Realtime: flagRealtime,
		TickRate: flagFPS,
		Logger:   logger,
		Player:   playerName(),
	}
	if flagIdle {
		opts.Script = headless.Idle
	}
	if !flagNoSave {
		if store := openStore(logger); store != nil {
			defer store.Close()
			opts.Store = store
		}
	}

	res, err := headless.Run(ctx, opts)
	if err != nil {
		// The session itself finished; only the save failed.
		logger.Warn("could not save run", "err", err)
	}

	st := res.State
	fmt.Printf("Seed: %d\n", res.Seed)
	fmt.Printf("Ticks: %d  Destroyed: %d  Shots: %d\n", st.Tick, st.Destroyed, st.Shots)
	fmt.Printf("Hash: %016x\n", res.Hash)
	printResult(st.Score)
}

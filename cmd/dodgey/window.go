package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodgey/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 1680x1050 world in a desktop window.

Controls:
  Left/A, Right/D   - Rotate (held)
  Up/W              - Thrust (held)
  Space             - Fire
  Gamepad stick     - Rotate (left/right) and thrust (up)
  Gamepad buttons   - Fire
  Any key or button - Start
  Esc               - Quit

Examples:
  dodgey window
  dodgey window --sounds ./sounds
  dodgey window --scale 0.5 --mute`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory with laser.wav and explosion.wav")
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	windowCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (0-1)")
	windowCmd.Flags().Float64Var(&flagScale, "scale", 0.75, "Window size relative to the world")
}

func runWindow(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog, err := newLogger(false)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	player, err := openAudio(flagSounds, flagMute, flagVolume, logger)
	if err != nil {
		fatalf("%v", err)
	}
	defer player.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	seed := resolveSeed()
	logger.Info("opening window", "seed", seed)
	state, err := window.Run(window.Options{
		Game:     cfg,
		Seed:     seed,
		TickRate: flagFPS,
		Scale:    flagScale,
		Audio:    player,
		Store:    store,
		Logger:   logger,
		Player:   playerName(),
	})
	if err != nil {
		fatalf("running window: %v", err)
	}
	printResult(state.Score)
}

package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodgey/internal/core"
	"github.com/vovakirdan/dodgey/internal/platform/tui"
)

var (
	flagSounds string
	flagMute   bool
	flagVolume float64
	flagHold   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a Dodgey session in the terminal.

Controls:
  Left/A, Right/D  - Rotate
  Up/W             - Thrust
  Space/Enter      - Fire
  Ctrl+S           - Save a screenshot
  Esc/Q/Ctrl+C     - Quit

Terminals only report key presses, so a steering key stays active for a few
ticks after each press (--hold). Keyboard auto-repeat keeps it going.

Examples:
  dodgey play
  dodgey play --seed 42 --mute
  dodgey play --difficulty easy --hold 10`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory with laser.wav and explosion.wav")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (0-1)")
	playCmd.Flags().IntVar(&flagHold, "hold", tui.DefaultHoldTicks, "Ticks a steering key press stays active")
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%v", err)
	}

	logger, closeLog, err := newLogger(true)
	if err != nil {
		fatalf("%v", err)
	}
	defer closeLog()

	player, err := openAudio(flagSounds, flagMute, flagVolume, logger)
	if err != nil {
		fatalf("%v", err)
	}
	defer player.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	state, err := tui.Run(tui.Options{
		Game: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     resolveSeed(),
		},
		Store:     store,
		Audio:     player,
		Logger:    logger,
		Host:      "play",
		Player:    playerName(),
		HoldTicks: flagHold,
	})
	if err != nil {
		fatalf("running game: %v", err)
	}
	printResult(state.Score)
}

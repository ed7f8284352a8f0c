// dodgey is an asteroids-like survival game: steer a ship through a field
// of drifting obstacles and shoot them apart before they hit you.
//
// Usage:
//
//	dodgey play              - Play in the terminal
//	dodgey window            - Play in a desktop window (keyboard or gamepad)
//	dodgey sim               - Run a headless session with the autopilot
//	dodgey serve             - Start SSH server for remote play
//	dodgey scores            - Show the top runs
//	dodgey board             - Browse run history interactively
//	dodgey config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.dodgey/scores.db)
//	--config <path>       - Use a custom tuning file
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dodgey",
	Short: "Dodgey - dodge and shoot drifting obstacles",
	Long: `Dodgey is an asteroids-like survival game. Your ship sits in a wrapping
field of obstacles. Shoot them: large ones split into two smaller ones,
the smallest vanish. Each hit is worth 100 points. One touch and the run
is over.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Headless autopilot run
  serve    - Start SSH server for remote play
  scores   - Show the top runs
  board    - Interactive run history
  config   - Print the effective configuration

Examples:
  dodgey play
  dodgey window --mute
  dodgey sim --ticks 3600 --seed 42
  dodgey serve --ssh :2222
  dodgey play --difficulty hard`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.dodgey/scores.db", "Path to run history database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(configCmd)
}

// fatalf prints an error and exits non-zero.
func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// printResult prints the final score line every session command ends with.
func printResult(score int) {
	fmt.Printf("Score: %d\n", score)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/dodgey/internal/platform/tui"
	"github.com/vovakirdan/dodgey/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the top runs",
	Long: `Display the best runs recorded in the run history.

Examples:
  dodgey scores
  dodgey scores --limit 25
  dodgey scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Browse run history",
	Long: `Interactive run history with top, recent and personal views and
aggregate statistics. Tab switches views, q quits.`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening run history: %v", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fatalf("clearing runs: %v", err)
		}
		fmt.Println("Run history cleared.")
		return
	}

	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		fatalf("retrieving runs: %v", err)
	}

	fmt.Println("High Scores - Dodgey")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'dodgey play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-12s  %s\n", "Rank", "Score", "Destroyed", "Host", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %-12s  %s\n", "----", "-----", "---------", "----", "------", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-9d  %-6s  %-12s  %s\n",
			i+1, r.Score, r.Destroyed, r.Host, r.Player, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Best: %d  Runs: %d  Accuracy: %.0f%%\n", stats.HighScore, stats.Runs, stats.Accuracy()*100)
	}
}

func runBoard(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatalf("opening run history: %v", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}

	if err := tui.RunScoreboard(store, playerName(), width, height); err != nil {
		fatalf("%v", err)
	}
}

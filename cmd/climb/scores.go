package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tapclimb/climb/internal/core"
	"github.com/tapclimb/climb/internal/platform/tui"
	"github.com/tapclimb/climb/internal/storage"
)

var flagBoard bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show best runs",
	Long: `Display the top 10 runs and aggregate stats.

Examples:
  climb scores
  climb scores --board   # interactive scoreboard`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		cfg := core.DefaultConfig()
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			cfg.ScreenW = w
			cfg.ScreenH = h
		}
		if boardErr := tui.RunScoreboard(store, cfg); boardErr != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", boardErr)
			os.Exit(1)
		}
		return
	}

	runs, err := store.TopRuns(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Best Runs - Tap Climb")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'climb play' to set the first score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-30s  %s\n", "Rank", "Score", "End", "Date")
	fmt.Printf("  %-4s  %-8s  %-30s  %s\n", "----", "-----", "---", "----")

	// Print runs
	for i, entry := range runs {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-8d  %-30s  %s\n", i+1, entry.Score, entry.EndReason, dateStr)
	}

	fmt.Println()
	stats, err := store.Stats()
	if err == nil && stats.RunsCount > 0 {
		fmt.Printf("Best: %d   Runs: %d   Avg: %.1f\n", stats.BestScore, stats.RunsCount, stats.AvgScore)
	}
}

// climb is a TUI arcade climbing game: scale a procedurally generated rock
// wall with alternating left/right reaches before the stamina bar drains.
//
// Usage:
//
//	climb play               - Play in the local terminal
//	climb scores             - Show best runs
//	climb serve              - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible walls
//	--db <path>     - Set database path (default: ~/.climb/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "climb",
	Short: "Tap Climb - Race up the wall in your terminal",
	Long: `Tap Climb is a terminal arcade game. Alternate left and right reaches
to scale a procedurally generated wall, dodge the overhangs, and keep
the stamina bar from running dry.

Available commands:
  play     - Play in the local terminal
  scores   - View best runs and stats
  serve    - Start SSH server for remote play

Examples:
  climb play
  climb play --difficulty hard
  climb scores --board
  climb serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.climb/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

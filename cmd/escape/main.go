// escape is a terminal escape-room campaign: four mini-game trials played
// back to back, from the maze to the final climb.
//
// Usage:
//
//	escape play              - Play the campaign in the current terminal
//	escape list              - List the campaign levels
//	escape serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS  int
	flagSeed int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "escape",
	Short: "Escape Room - a four-trial arcade campaign in your terminal",
	Long: `Escape Room chains four mini-games into one campaign: clear the
maze, down the invader swarm, flap through the gauntlet, and climb to
the exit door. Lose any trial and the run is over.

Available commands:
  play     - Play the campaign in the current terminal
  list     - Show the campaign levels in order
  serve    - Start SSH server for remote play

Examples:
  escape play
  escape play --difficulty hard
  escape play --config ./my-campaign.yaml --seed 7
  escape serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(serveCmd)
}

// ballpit is a terminal simulator of balls bouncing inside a circular
// arena with an escape gap.
//
// Usage:
//
//	ballpit run [rule]       - Run a simulation in the terminal viewer
//	ballpit rules            - List available rule sets
//	ballpit serve            - Start SSH server for remote viewing
//	ballpit scores [rule]    - Show recorded run results
//
// Global flags:
//
//	--fps <rate>    - Render frame rate (default: 30)
//	--seed <value>  - RNG seed for reproducible runs
//	--db <path>     - Database path (default: ~/.ballpit/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import rules to register them
	_ "github.com/arcadelab/ballpit/internal/rules"
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
	Use:   "ballpit",
	Short: "Ballpit - Bouncing-ball arena simulator for your terminal",
	Long: `Ballpit simulates a population of balls confined to a circular arena
with a single escape gap, rendered live in your terminal. Physics
variants are switchable at runtime and every run can be rewound
frame by frame.

Available commands:
  run      - Run a simulation in the live viewer
  rules    - Show all registered rule sets
  serve    - Start SSH server for remote viewing
  scores   - View recorded run results

Examples:
  ballpit run
  ballpit run splitter --engine realistic
  ballpit serve --ssh :2222
  ballpit scores score-exit`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Render frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ballpit/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

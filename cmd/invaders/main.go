// invaders is a terminal space shooter: hold off waves of enemy ships,
// collect power-ups and chase a high score.
//
// Usage:
//
//	invaders                 - Play in this terminal (same as "invaders play")
//	invaders headless        - Run the simulation with no renderer
//	invaders scores          - Show the high score table
//	invaders waves           - Print the configured waves
//	invaders serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.invaders/scores.db)
//	--config <path>      - Use a custom game config YAML
//	--difficulty <name>  - easy, normal, hard or fixed
//	--timeout <seconds>  - Exit after this long (0 = never)
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
	flagNoReports  bool
	flagTimeout    float64
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `A terminal space shooter. Move with the arrow keys or A/D, fire with
Space and pause with Escape. Enemies arrive in waves that grow with your
score.

Available commands:
  play      - Play in this terminal (default)
  headless  - Run the simulation without a renderer
  scores    - View high scores
  waves     - Print the configured waves
  serve     - Start SSH server for remote play

Examples:
  invaders
  invaders --difficulty hard
  invaders headless --seed 42 --timeout 30
  invaders serve --ssh :2222`,
	SilenceUsage: true,
	Run:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.BoolVar(&flagNoReports, "no-reports", false, "Do not write CRASH_<time>.txt reports")
	pf.Float64Var(&flagTimeout, "timeout", 0, "Exit after this many seconds (0 = never)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wavesCmd)
	rootCmd.AddCommand(serveCmd)
}

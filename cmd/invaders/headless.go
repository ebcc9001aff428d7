package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/crash"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
	"github.com/vovakirdan/tui-invaders/internal/loop"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var flagSave bool

var headlessCmd = &cobra.Command{
	Use:   "headless",
	Short: "Run the simulation without a renderer",
	Long: `Run a scripted game with no terminal output until the ship dies or the
timeout passes. The autopilot sweeps the ship across the screen and fires
on a fixed cadence, so a given seed always plays the same run.

Examples:
  invaders headless --seed 42
  invaders headless --seed 7 --timeout 60 --difficulty hard
  invaders headless --fps 240 --save`,
	Args: cobra.NoArgs,
	Run:  runHeadless,
}

func init() {
	headlessCmd.Flags().BoolVar(&flagSave, "save", false, "Save the finished run to the scores database")
}

func runHeadless(cmd *cobra.Command, args []string) {
	if code := headless(); code != 0 {
		os.Exit(code)
	}
}

// headless runs the autopilot and returns the exit code.
func headless() int {
	logger := newLogger(os.Stderr, "invaders")
	cfg, table, err := setup(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return 1
	}

	rc := runtimeConfig(0, 0)
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	game := invaders.New(cfg, table, logger)
	game.Reset(rc)

	var summary *invaders.RunSummary
	game.OnDeath(func(r invaders.RunSummary) { summary = &r })

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	timeout := time.Duration(flagTimeout * float64(time.Second))
	runner := loop.NewRunner(rc.TickRate, timeout, logger)
	res, err := runner.Run(ctx, invaders.NewAutopilot(game))

	var rep *crash.Report
	if errors.As(err, &rep) {
		if path := crash.Handle(rep, logger, ".", !flagNoReports); path != "" {
			fmt.Fprintf(os.Stderr, "Simulation crashed. Report written to %s\n", path)
		}
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running simulation: %v\n", err)
		return 1
	}

	st := game.State()
	fmt.Printf("Stopped:  %s\n", res.Reason)
	fmt.Printf("Seed:     %d\n", rc.Seed)
	fmt.Printf("Ticks:    %d\n", res.Ticks)
	fmt.Printf("Elapsed:  %s\n", res.Elapsed.Round(time.Millisecond))
	fmt.Printf("Score:    %d\n", st.Score)
	fmt.Printf("Wave:     %d\n", st.Wave)
	fmt.Printf("Kills:    %d\n", st.Kills)

	if !flagSave || summary == nil {
		return 0
	}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		return 1
	}
	defer store.Close()
	if _, err := store.SaveRun(storage.RunRecord{
		Player:     "autopilot",
		Score:      summary.Score,
		Wave:       summary.Wave,
		Kills:      summary.Kills,
		Duration:   summary.Duration,
		Seed:       rc.Seed,
		Difficulty: difficultyName(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving run: %v\n", err)
		return 1
	}
	fmt.Println("Run saved.")
	return 0
}

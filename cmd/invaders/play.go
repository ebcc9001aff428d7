package main

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/crash"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var flagHold time.Duration

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Left/A, Right/D  - Move
  Space            - Fire
  Esc              - Pause / resume
  Enter            - Start from the welcome screen
  R                - Restart after death
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Fewer enemies, slower fire
  normal - The config's own difficulty scales
  hard   - More enemies, faster fire
  fixed  - Wave curves as written, ignoring the config's difficulty scales

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --seed 42
  invaders play --config ./my-waves.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().DurationVar(&flagHold, "hold", tui.DefaultHoldWindow, "How long a key counts as held after its last repeat")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, args []string) {
	if code := play(); code != 0 {
		os.Exit(code)
	}
}

// play runs the interactive game and returns the exit code. Deferred
// cleanup runs before the caller exits.
func play() int {
	logFile, err := openLogFile()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		return 1
	}
	defer logFile.Close()
	logger := newLogger(logFile, "invaders")

	cfg, table, err := setup(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error %v\n", err)
		return 1
	}
	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	opts := tui.Options{
		Config:     cfg,
		Assets:     table,
		Store:      store,
		Logger:     logger,
		Runtime:    runtimeConfig(width, height),
		Player:     playerName(),
		Difficulty: difficultyName(),
		HoldWindow: flagHold,
		Timeout:    time.Duration(flagTimeout * float64(time.Second)),
	}

	err = tui.Run(opts)
	var rep *crash.Report
	if errors.As(err, &rep) {
		if path := crash.Handle(rep, logger, ".", !flagNoReports); path != "" {
			fmt.Fprintf(os.Stderr, "The game crashed. Report written to %s\n", path)
		} else {
			fmt.Fprintf(os.Stderr, "The game crashed: %v\n", rep.Value)
		}
		return 1
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		return 1
	}
	return 0
}

// playerName is the name saved with local runs.
func playerName() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "player"
}

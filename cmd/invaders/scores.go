package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the best recorded runs.

In a terminal this opens an interactive table; with --plain (or when
stdout is not a terminal) the top runs are printed.

Examples:
  invaders scores
  invaders scores --plain --limit 5
  invaders scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print scores instead of opening the table")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, args []string) {
	if code := scores(); code != 0 {
		os.Exit(code)
	}
}

// scores shows the score table and returns the exit code.
func scores() int {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		return 1
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return 1
		}
		fmt.Println("All runs deleted.")
		return 0
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	if err := printScores(store); err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return 1
	}
	return 0
}

func printScores(store *storage.Store) error {
	runs, err := store.TopRuns(flagLimit)
	if err != nil {
		return err
	}

	fmt.Println("High Scores - Space Invaders")
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'invaders' to set the first high score!")
		return nil
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-4s  %-5s  %s\n", "Rank", "Player", "Score", "Wave", "Kills", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-4s  %-5s  %s\n", "----", "------", "-----", "----", "-----", "----")
	for i, r := range runs {
		fmt.Printf("  %-4d  %-12s  %-8d  %-4d  %-5d  %s\n",
			i+1, r.Player, r.Score, r.Wave, r.Kills, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.Stats(); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best wave: %d  Total kills: %d\n", stats.Runs, stats.BestWave, stats.TotalKills)
	}
	return nil
}

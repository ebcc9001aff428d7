package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Print the configured waves",
	Long: `Print each wave's composition and population cap curve, after the
--config and --difficulty flags are applied. Waves past the end of the
list repeat the final wave.

Examples:
  invaders waves
  invaders waves --difficulty easy
  invaders waves --config ./my-waves.yaml`,
	Args: cobra.NoArgs,
	Run:  runWaves,
}

func runWaves(cmd *cobra.Command, args []string) {
	cfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	scale := cfg.Difficulty.CapScale
	if scale <= 0 {
		scale = 1
	}
	fmt.Printf("Cap scale: %.2f  Shoot interval scale: %.2f\n\n", scale, cfg.Difficulty.IntervalScale)

	for i, w := range cfg.Waves {
		printWave(fmt.Sprintf("Wave %d", i+1), w, scale)
	}
	printWave("Final wave (repeats)", cfg.FinalWave, scale)
}

func printWave(title string, w config.WaveConfig, scale float64) {
	total := 0
	parts := make([]string, 0, len(w.Ships))
	for _, s := range w.Ships {
		parts = append(parts, fmt.Sprintf("%d %s", s.Count, s.Kind))
		total += s.Count
	}

	capAt := w.Cap.Scaled(scale)
	fmt.Printf("%s: %d ships (%s)\n", title, total, strings.Join(parts, ", "))
	fmt.Printf("  cap %-9s at score 0: %.1f  50: %.1f  100: %.1f\n",
		w.Cap.Kind, capAt(0), capAt(50), capAt(100))
}

// chase-window runs Square Chase in a desktop window.
//
// Usage:
//
//	chase-window [--scale 1] [--difficulty hard] [--config path] [--db path]
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-chase/internal/config"
	"github.com/vovakirdan/square-chase/internal/core"
	"github.com/vovakirdan/square-chase/internal/games/chase"
	"github.com/vovakirdan/square-chase/internal/platform/window"
	"github.com/vovakirdan/square-chase/internal/storage"
)

var (
	flagScale      float64
	flagTPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase-window",
	Short: "Square Chase in a desktop window",
	Long: `Play Square Chase in an 800x700 window.

Controls:
  Left/Right  - Choose your color (menu)
  Enter/Space - Start
  Arrows/WASD - Steer (the last direction is kept)
  R           - Restart (after game over)
  M           - Back to the color menu (after game over)
  Esc/Q       - Quit`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size multiplier")
	rootCmd.Flags().IntVar(&flagTPS, "tps", 60, "Ticks per second")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log to stderr")
}

func run(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadChase(flagConfig); err != nil {
			return err
		}
	}

	logger := log.New(io.Discard)
	if flagVerbose {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "chase-window",
			Level:           log.DebugLevel,
		})
	}
	chase.SetLogger(logger)
	chase.SetConfigPath(flagConfig)
	chase.SetDifficultyPreset(flagDifficulty)

	var records core.RecordSlot = &core.MemorySlot{}
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("playing without score storage", "err", err)
		store = nil
	} else {
		defer store.Close()
		records = store.Slot(storage.HighScoreRecord)
	}

	runtime := core.RuntimeConfig{
		TickRate: flagTPS,
		Seed:     flagSeed,
		Records:  records,
	}
	logger.Info("opening window", "scale", flagScale, "tps", flagTPS, "difficulty", flagDifficulty)
	return window.Run(chase.New(), runtime, window.Options{
		Scale:  flagScale,
		Store:  store,
		Logger: logger,
	})
}

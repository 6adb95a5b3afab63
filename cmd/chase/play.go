package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/square-chase/internal/config"
	"github.com/vovakirdan/square-chase/internal/core"
	"github.com/vovakirdan/square-chase/internal/games/chase"
	"github.com/vovakirdan/square-chase/internal/platform/tui"
	"github.com/vovakirdan/square-chase/internal/registry"
	"github.com/vovakirdan/square-chase/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecordFile string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Square Chase",
	Long: `Start Square Chase in this terminal.

Controls:
  Left/Right  - Choose your color (menu)
  Enter/Space - Start
  Arrows/WASD - Steer (the last direction is kept)
  R           - Restart (after game over)
  M           - Back to the color menu (after game over)
  Tab         - Score history (menu)
  Ctrl+S      - Save a text screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - A new enemy every 15 points, enemies at most speed 2
  normal - The config as loaded
  hard   - A new enemy every 5 points, enemies re-aim more often
  fixed  - Only the first enemy, no spawning

The high score is kept in the scores database unless --record-file names
a plain text file to keep it in instead.

Examples:
  chase play
  chase play --difficulty hard
  chase play --config ./my-chase.yaml
  chase play --record-file ./highscore.txt`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

// addPlayFlags registers the flags that shape a game.
func addPlayFlags(c *cobra.Command) {
	c.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	c.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	c.Flags().StringVar(&flagRecordFile, "record-file", "", "Keep the high score in this text file instead of the database")
}

// applyGameFlags validates the game flags and hands them to the game.
func applyGameFlags() error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if flagConfig != "" {
		if _, err := config.LoadChase(flagConfig); err != nil {
			return err
		}
	}
	chase.SetConfigPath(flagConfig)
	chase.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runPlay plays in this terminal until the player quits.
func runPlay(cmd *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}
	cmd.SilenceUsage = true

	logger, logCloser, err := newLogger(flagLogFile, "chase")
	if err != nil {
		return err
	}
	defer logCloser.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(chase.GameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("playing without score storage", "err", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	records, err := recordSlot(store)
	if err != nil {
		return err
	}

	logger.Info("starting game", "game", game.ID(), "fps", flagFPS, "difficulty", flagDifficulty)
	if err := tui.Run(game, store, logger, runtimeConfig(width, height, records)); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// recordSlot picks where the high score lives: the --record-file, the
// database, or memory when neither is available.
func recordSlot(store *storage.Store) (core.RecordSlot, error) {
	switch {
	case flagRecordFile != "":
		return storage.NewFileSlot(flagRecordFile)
	case store != nil:
		return store.Slot(storage.HighScoreRecord), nil
	default:
		return &core.MemorySlot{}, nil
	}
}

// chase runs Square Chase in the terminal: dodge the squares that chase you
// around a wrapping field for as long as you can.
//
// Usage:
//
//	chase                 - Play (same as "chase play")
//	chase play            - Play in this terminal
//	chase scores          - Show high scores
//	chase serve           - Start SSH server for remote play
//	chase list            - List available games
//	chase config          - Print the effective game config
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-file <path>   - Write logs to a file
//	--wall-clock        - Time game logic by the wall clock instead of ticks
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/square-chase/internal/core"
	"github.com/vovakirdan/square-chase/internal/games/chase"
)

var (
	// Global flags
	flagFPS       int
	flagSeed      int64
	flagDBPath    string
	flagLogFile   string
	flagWallClock bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chase",
	Short: "Square Chase - dodge the chasing squares in your terminal",
	Long: `Square Chase is an arcade game: steer your square around a wrapping
field while enemy squares spawn over time and chase you. Every second
survived scores a point; every tenth point brings a new enemy.

Available commands:
  play     - Play in this terminal (default)
  scores   - View high scores
  serve    - Start SSH server for remote play
  list     - Show all available games
  config   - Print the effective game config

Examples:
  chase
  chase play --difficulty hard
  chase serve --ssh :2222
  chase scores`,
	RunE: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (discarded if empty)")
	rootCmd.PersistentFlags().BoolVar(&flagWallClock, "wall-clock", false, "Time game logic by the wall clock instead of the tick count")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger returns a logger writing to path, or one that discards when
// path is empty. The returned closer must be called on exit.
func newLogger(path, prefix string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           log.DebugLevel,
	})
	chase.SetLogger(logger)
	return logger, f, nil
}

// runtimeConfig builds the runtime config shared by the play modes.
func runtimeConfig(width, height int, records core.RecordSlot) core.RuntimeConfig {
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Records:  records,
	}
	if flagWallClock {
		cfg.Clock = core.NewWallClock()
	}
	return cfg
}

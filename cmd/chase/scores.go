package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/square-chase/internal/games/chase"
	"github.com/vovakirdan/square-chase/internal/platform/tui"
	"github.com/vovakirdan/square-chase/internal/registry"
	"github.com/vovakirdan/square-chase/internal/storage"
)

var (
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top 10 rounds and the best score.

The best score is kept apart from the history: clearing the history
leaves it in place.

Examples:
  chase scores
  chase scores --tui
  chase scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse the full history interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the score history (the best score is kept)")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := chase.GameID
	if len(args) == 1 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'chase list' to see available games.")
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Score history for %s cleared.\n", title)

	case flagScoresTUI:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, gameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	default:
		scores, err := store.TopScores(gameID, 10)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		best := store.Slot(storage.HighScoreRecord).Load()
		if history, err := store.HighScore(gameID); err == nil {
			best = max(best, history)
		}
		printScores(os.Stdout, title, scores, best)
	}
}

func printScores(w io.Writer, title string, scores []storage.ScoreEntry, best int) {
	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
	} else {
		t := newTable("Rank", "Score", "Date")
		for i, e := range scores {
			t.Row(strconv.Itoa(i+1), strconv.Itoa(e.Score), e.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(w, t.Render())
	}

	if best > 0 {
		fmt.Fprintf(w, "Best: %d\n", best)
	} else {
		fmt.Fprintln(w, "Play 'chase play' to set the first high score!")
	}
}

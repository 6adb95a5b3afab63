package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-chase/internal/core"
)

// RoundLog appends every finished round of one game to the score history,
// once per game over. Rounds scoring 0 are not kept.
type RoundLog struct {
	store  *Store // May be nil
	gameID string
	logger *log.Logger
	saved  bool
}

// NewRoundLog returns a log for gameID. store and logger may be nil.
func NewRoundLog(store *Store, gameID string, logger *log.Logger) *RoundLog {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &RoundLog{store: store, gameID: gameID, logger: logger}
}

// Observe takes the game state after a tick and saves the round the first
// time it is seen over. It reports whether a score was written.
func (r *RoundLog) Observe(st core.GameState) bool {
	if !st.GameOver {
		r.saved = false
		return false
	}
	if r.saved {
		return false
	}
	r.saved = true

	if r.store == nil || st.Score <= 0 {
		return false
	}
	if _, err := r.store.SaveScore(r.gameID, st.Score); err != nil {
		r.logger.Warn("cannot save score", "game", r.gameID, "score", st.Score, "err", err)
		return false
	}
	r.logger.Debug("score saved", "game", r.gameID, "score", st.Score)
	return true
}

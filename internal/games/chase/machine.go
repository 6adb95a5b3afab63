package chase

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-chase/internal/config"
	"github.com/vovakirdan/square-chase/internal/core"
)

// Palette holds the player colors offered in the menu.
var Palette = []core.Color{
	core.ColorBrightCyan,
	core.ColorBrightRed,
	core.ColorBrightGreen,
	core.ColorBrightYellow,
	core.ColorMagenta,
}

// Phase is the top-level game state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Machine drives the Menu, Playing and GameOver phases and owns the
// current session and the high score.
type Machine struct {
	cfg      config.ChaseConfig
	rng      *rand.Rand
	director *Director
	records  core.RecordSlot
	logger   *log.Logger

	phase      Phase
	colorIndex int
	session    *Session
	highScore  int
}

// NewMachine creates a machine in the menu. The high score is read from
// records; a nil records keeps it in memory only. A nil logger discards.
func NewMachine(cfg config.ChaseConfig, rng *rand.Rand, records core.RecordSlot, logger *log.Logger) *Machine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Machine{
		cfg:      cfg,
		rng:      rng,
		director: NewDirector(cfg, rng),
		records:  records,
		logger:   logger,
		phase:    PhaseMenu,
	}
	m.syncHighScore()
	return m
}

// Tick advances the machine by one frame at time now.
func (m *Machine) Tick(in core.InputFrame, now time.Duration) {
	switch m.phase {
	case PhaseMenu:
		m.tickMenu(in, now)
	case PhasePlaying:
		if m.session.Step(in, now, m.director, m.cfg.Field.Width, m.cfg.Field.Height) {
			m.finish()
		}
	case PhaseGameOver:
		switch {
		case in.Has(core.ActionRestart):
			m.start(now)
		case in.Has(core.ActionMenu):
			m.session = nil
			m.phase = PhaseMenu
		}
	}
}

func (m *Machine) tickMenu(in core.InputFrame, now time.Duration) {
	n := len(Palette)
	if in.Has(core.ActionLeft) {
		m.colorIndex = (m.colorIndex - 1 + n) % n
	}
	if in.Has(core.ActionRight) {
		m.colorIndex = (m.colorIndex + 1) % n
	}
	if in.Has(core.ActionConfirm) || in.Has(core.ActionJump) {
		m.start(now)
	}
}

func (m *Machine) start(now time.Duration) {
	m.syncHighScore()
	m.session = NewSession(m.cfg, m.colorIndex, m.rng, now)
	m.phase = PhasePlaying
}

// finish ends the session and persists a new high score once.
// A failed save keeps the in-memory high score.
func (m *Machine) finish() {
	m.phase = PhaseGameOver
	m.syncHighScore()
	score := m.session.Score
	if score <= m.highScore {
		return
	}
	m.highScore = score
	if m.records == nil {
		return
	}
	if err := m.records.Save(score); err != nil {
		m.logger.Warn("cannot save high score", "score", score, "err", err)
		return
	}
	m.syncHighScore()
}

// syncHighScore raises the in-memory high score to the stored one, which
// other machines sharing the slot may have raised.
func (m *Machine) syncHighScore() {
	if m.records != nil {
		m.highScore = max(m.highScore, m.records.Load())
	}
}

// Phase returns the current phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// ColorIndex returns the selected palette index.
func (m *Machine) ColorIndex() int {
	return m.colorIndex
}

// Session returns the current session, or nil in the menu.
func (m *Machine) Session() *Session {
	return m.session
}

// HighScore returns the best score known to the machine.
func (m *Machine) HighScore() int {
	return m.highScore
}

// Score returns the current session score, or 0 in the menu.
func (m *Machine) Score() int {
	if m.session == nil {
		return 0
	}
	return m.session.Score
}

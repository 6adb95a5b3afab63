package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/square-chase/internal/core"
	"github.com/vovakirdan/square-chase/internal/storage"
)

// fakeGame is a scripted registry.Game.
type fakeGame struct {
	state  core.GameState
	resets int
	inputs []core.InputFrame
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{InMenu: true}
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	return core.StepResult{State: g.state}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState { return g.state }

func newTestModel(t *testing.T, g *fakeGame, store *storage.Store) Model {
	t.Helper()
	m := NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelForwardsKeysOnTick(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	if len(g.inputs) != 2 {
		t.Fatalf("game stepped %d times, expected 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) {
		t.Error("first tick should carry Left")
	}
	if !g.inputs[1].Empty() {
		t.Error("input should be cleared after a tick")
	}
	if m.quitting {
		t.Error("model should still be running")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !next.(Model).quitting || cmd == nil {
		t.Error("q should quit")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelSavesScoreOncePerRound(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(t, g, store)

	g.state = core.GameState{Score: 12, GameOver: true}
	for range 5 {
		m = update(t, m, TickMsg(time.Now()))
	}

	// Restarted round, then a second game over
	g.state = core.GameState{Score: 0}
	m = update(t, m, TickMsg(time.Now()))
	g.state = core.GameState{Score: 4, GameOver: true}
	m = update(t, m, TickMsg(time.Now()))
	update(t, m, TickMsg(time.Now()))

	scores, err := store.TopScores("fake", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 2 || scores[0].Score != 12 || scores[1].Score != 4 {
		t.Errorf("saved scores = %+v, expected 12 and 4 once each", scores)
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	g := &fakeGame{}
	m := newTestModel(t, g, store)
	g.state = core.GameState{GameOver: true}
	update(t, m, TickMsg(time.Now()))

	if scores, _ := store.TopScores("fake", 10); len(scores) != 0 {
		t.Errorf("zero score was saved: %+v", scores)
	}
}

func TestModelScoreboardOverlay(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board == nil {
		t.Fatal("tab in the menu should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Fake") {
		t.Errorf("overlay view missing title:\n%s", m.View())
	}

	// Game keys do not reach the game while the board is open
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, TickMsg(time.Now()))
	if g.inputs[len(g.inputs)-1].Has(core.ActionConfirm) {
		t.Error("enter leaked through the scoreboard")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.board != nil {
		t.Fatal("esc should close the scoreboard")
	}
	if m.quitting {
		t.Error("closing the scoreboard should not quit")
	}
	if !strings.Contains(m.View(), "fake game") {
		t.Error("game view should be back after closing the scoreboard")
	}
}

func TestModelScoreboardOnlyInMenu(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	g.state = core.GameState{Score: 3}
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.board != nil {
		t.Error("tab during play should not open the scoreboard")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(t, g, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Errorf("game reset %d times, expected only the initial reset", g.resets)
	}
	if m.screen.Width() != 100 || m.screen.Height() != 30 {
		t.Errorf("screen = %dx%d, expected 100x30", m.screen.Width(), m.screen.Height())
	}
}

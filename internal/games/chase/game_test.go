package chase

import (
	"strings"
	"testing"

	"github.com/vovakirdan/square-chase/internal/config"
	"github.com/vovakirdan/square-chase/internal/core"
	"github.com/vovakirdan/square-chase/internal/registry"
)

func testRuntime(seed int64, records core.RecordSlot) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
		Records:  records,
	}
}

func newTestGame(seed int64, records core.RecordSlot) *Game {
	g := NewWithConfig(config.DefaultChaseConfig())
	g.Reset(testRuntime(seed, records))
	return g
}

func TestGameRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("chase should be registered")
	}
	g, err := registry.Create(GameID)
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "chase" || g.Title() != "Square Chase" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestGameEndToEnd(t *testing.T) {
	slot := &core.MemorySlot{}
	g := newTestGame(42, slot)

	if st := g.State(); !st.InMenu || st.Score != 0 || st.GameOver {
		t.Fatalf("initial state = %+v, expected menu", st)
	}

	g.Step(core.InputOf(core.ActionRight))
	g.Step(core.InputOf(core.ActionRight))
	st := g.Step(core.InputOf(core.ActionConfirm)).State
	if st.InMenu || st.GameOver || st.Score != 0 {
		t.Fatalf("state after start = %+v, expected playing from zero", st)
	}

	s := g.Machine().Session()
	if s.ColorIndex != 2 || s.Player.Color != Palette[2] {
		t.Errorf("session color = %d, expected 2", s.ColorIndex)
	}
	if len(s.Enemies) != 1 {
		t.Fatalf("Enemies = %d, expected 1", len(s.Enemies))
	}

	// Park the first enemy away from the player's row
	first := s.Enemies[0]
	first.Speed = 0
	first.Box = core.Square(400, 600, first.Box.W)

	for range 600 {
		g.Step(core.NewInputFrame())
	}
	if s.Score != 10 {
		t.Errorf("Score after 10s = %d, expected 10", s.Score)
	}
	if len(s.Enemies) != 2 {
		t.Errorf("Enemies after 10s = %d, expected 2", len(s.Enemies))
	}

	// The second enemy may have landed on the player already
	if !g.State().GameOver {
		catch(g.Machine())
		g.Step(core.NewInputFrame())
	}

	st = g.State()
	if !st.GameOver {
		t.Fatal("expected game over after collision")
	}
	if st.Score != 10 {
		t.Errorf("final score = %d, expected 10", st.Score)
	}
	if st.HighScore != 10 || slot.Value != 10 || slot.Saves != 1 {
		t.Errorf("high score = %d, slot = %+v, expected 10 saved once", st.HighScore, slot)
	}

	// Returning to the menu resets the visible score
	st = g.Step(core.InputOf(core.ActionMenu)).State
	if !st.InMenu || st.Score != 0 || st.HighScore != 10 {
		t.Errorf("state after menu = %+v", st)
	}
}

func TestGameLoadsHighScore(t *testing.T) {
	g := newTestGame(1, &core.MemorySlot{Value: 33})
	if g.State().HighScore != 33 {
		t.Errorf("HighScore = %d, expected 33", g.State().HighScore)
	}

	// Without records the high score starts at zero
	g = newTestGame(1, nil)
	if g.State().HighScore != 0 {
		t.Errorf("HighScore = %d, expected 0", g.State().HighScore)
	}
}

func TestGameUsesInjectedClock(t *testing.T) {
	clock := core.NewTickClock(60)
	rt := testRuntime(1, nil)
	rt.Clock = clock

	g := NewWithConfig(config.DefaultChaseConfig())
	g.Reset(rt)
	g.Step(core.InputOf(core.ActionConfirm))

	// The game does not advance a clock it does not own
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != 0 {
		t.Errorf("Score = %d with a frozen clock, expected 0", g.State().Score)
	}

	for range 120 {
		clock.Advance()
	}
	g.Step(core.NewInputFrame())
	if g.State().Score != 1 && !g.State().GameOver {
		t.Errorf("Score = %d after 2s of external clock, expected 1", g.State().Score)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 1500)
	dirs := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 2:
			inputs[i].Set(core.ActionConfirm)
		case i > 2 && i%45 == 0:
			inputs[i].Set(dirs[(i/45)%len(dirs)])
		}
	}

	run := func() Snapshot {
		g := newTestGame(12345, nil)
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	if snap1.Score != snap2.Score || snap1.EnemyCount != snap2.EnemyCount {
		t.Errorf("Determinism failed: score %d/%d enemies %d/%d",
			snap1.Score, snap2.Score, snap1.EnemyCount, snap2.EnemyCount)
	}
	if snap1.Phase == int(PhaseMenu) {
		t.Error("game never left the menu")
	}
}

func TestSnapshotInMenu(t *testing.T) {
	g := newTestGame(1, &core.MemorySlot{Value: 4})
	g.Step(core.InputOf(core.ActionLeft))

	snap := g.Snapshot()
	if snap.Phase != int(PhaseMenu) || snap.ColorIndex != 4 || snap.HighScore != 4 {
		t.Errorf("menu snapshot = %+v", snap)
	}
	if snap.EnemyCount != 0 || snap.EnemyData != nil {
		t.Error("menu snapshot should carry no session data")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(1, &core.MemorySlot{Value: 7})
	scr := core.NewScreen(80, 24)

	g.Render(scr)
	out := scr.String()
	for _, want := range []string{"Choose Your Color", "← → to choose, ENTER to start"} {
		if !strings.Contains(out, want) {
			t.Errorf("menu render missing %q:\n%s", want, out)
		}
	}

	g.Step(core.InputOf(core.ActionConfirm))
	scr.Clear()
	g.Render(scr)
	out = scr.String()
	for _, want := range []string{"Score: 0", "High Score: 7"} {
		if !strings.Contains(out, want) {
			t.Errorf("playing render missing %q:\n%s", want, out)
		}
	}

	catch(g.Machine())
	g.Step(core.NewInputFrame())
	scr.Clear()
	g.Render(scr)
	out = scr.String()
	for _, want := range []string{"GAME OVER!", "Final Score: 0", "Press R to Restart", "Press M for Menu"} {
		if !strings.Contains(out, want) {
			t.Errorf("game over render missing %q:\n%s", want, out)
		}
	}
}

package window

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/square-chase/internal/core"
	"github.com/vovakirdan/square-chase/internal/games/chase"
	"github.com/vovakirdan/square-chase/internal/storage"
)

// Options configures a window run.
type Options struct {
	Scale  float64        // Window pixels per field unit
	Store  *storage.Store // Score history; may be nil
	Logger *log.Logger    // May be nil
}

// Game adapts a chase game to ebiten.Game.
type Game struct {
	game   *chase.Game
	keys   Keys
	rounds *storage.RoundLog
	state  core.GameState
}

// NewGame resets game with runtime and wraps it for Ebiten.
func NewGame(game *chase.Game, runtime core.RuntimeConfig, opts Options) *Game {
	game.Reset(runtime)
	return &Game{
		game:   game,
		keys:   ebitenKeys{},
		rounds: storage.NewRoundLog(opts.Store, game.ID(), opts.Logger),
		state:  game.State(),
	}
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	if QuitRequested(g.keys) {
		return ebiten.Termination
	}

	playing := !g.state.InMenu && !g.state.GameOver
	g.state = g.game.Step(Frame(g.keys, playing)).State
	g.rounds.Observe(g.state)
	return nil
}

// Draw renders the game over the background.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.game.Background().RGB())
	g.game.Draw(NewImageSurface(screen))
}

// Layout fixes the logical screen to the field size.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.game.Config()
	return cfg.Field.Width, cfg.Field.Height
}

// Run opens the window and blocks until it is closed.
func Run(game *chase.Game, runtime core.RuntimeConfig, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	g := NewGame(game, runtime, opts)

	cfg := game.Config()
	ebiten.SetWindowSize(int(float64(cfg.Field.Width)*opts.Scale), int(float64(cfg.Field.Height)*opts.Scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

package chase

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/square-chase/internal/config"
	"github.com/vovakirdan/square-chase/internal/core"
	"github.com/vovakirdan/square-chase/internal/registry"
)

// GameID is the registry identifier of Square Chase.
const GameID = "chase"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives persistence warnings; it discards until SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the path to a custom config file.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts the chase state machine to the arcade platform.
type Game struct {
	fixed   *config.ChaseConfig // Config used instead of loading, if set
	cfg     config.ChaseConfig
	clock   core.Clock
	ticks   *core.TickClock // Non-nil when the game owns its clock
	machine *Machine
}

// New creates a game that loads its config on Reset.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always plays with cfg.
func NewWithConfig(cfg config.ChaseConfig) *Game {
	return &Game{fixed: &cfg}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Square Chase"
}

// Reset loads the configuration and returns to the menu.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.cfg = g.loadConfig()

	g.ticks = nil
	g.clock = runtime.Clock
	if g.clock == nil {
		g.ticks = core.NewTickClock(runtime.TickRate)
		g.clock = g.ticks
	}

	seed := runtime.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	g.machine = NewMachine(g.cfg, rng, runtime.Records, logger)
}

func (g *Game) loadConfig() config.ChaseConfig {
	if g.fixed != nil {
		return *g.fixed
	}

	cfg, source, err := config.LoadChaseSource(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "err", err)
		cfg, source = config.DefaultChaseConfig(), config.BuiltIn
	}
	logger.Debug("config loaded", "source", source, "difficulty", difficultyPreset)

	if difficultyPreset != "" {
		config.ApplyChasePreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.ticks != nil {
		g.ticks.Advance()
	}
	g.machine.Tick(in, g.clock.Now())
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.machine.Score(),
		HighScore: g.machine.HighScore(),
		GameOver:  g.machine.Phase() == PhaseGameOver,
		InMenu:    g.machine.Phase() == PhaseMenu,
	}
}

// Render draws the game onto a terminal screen.
func (g *Game) Render(dst *core.Screen) {
	g.Draw(NewScreenSurface(dst, g.cfg.Field.Width, g.cfg.Field.Height))
}

// Draw renders the game onto any surface.
func (g *Game) Draw(s Surface) {
	g.machine.Draw(s)
}

// Background is the color of the playing field.
func (g *Game) Background() core.Color {
	return core.ColorGreen
}

// Config returns the configuration in use since the last Reset.
func (g *Game) Config() config.ChaseConfig {
	return g.cfg
}

// Machine exposes the state machine.
func (g *Game) Machine() *Machine {
	return g.machine
}

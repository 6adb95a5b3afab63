package chase

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/square-chase/internal/config"
	"github.com/vovakirdan/square-chase/internal/core"
)

// Director turns elapsed play time into score and spawns enemies as the
// score grows.
type Director struct {
	interval   time.Duration
	spawnEvery int
	maxEnemies int
	enemy      config.ChaseEnemy
	fieldW     int
	fieldH     int
	rng        *rand.Rand
}

// NewDirector creates a director for the given configuration.
func NewDirector(cfg config.ChaseConfig, rng *rand.Rand) *Director {
	return &Director{
		interval:   cfg.Spawn.ScoreInterval(),
		spawnEvery: cfg.Spawn.SpawnEvery,
		maxEnemies: cfg.Spawn.MaxEnemies,
		enemy:      cfg.Enemy,
		fieldW:     cfg.Field.Width,
		fieldH:     cfg.Field.Height,
		rng:        rng,
	}
}

// Tick awards at most one point per call once the score interval has
// elapsed, and spawns an enemy on every spawnEvery-th point.
// Returns the spawned enemy, if any.
func (d *Director) Tick(s *Session, now time.Duration) *Enemy {
	if now-s.LastScore < d.interval {
		return nil
	}
	s.Score++
	s.LastScore = now

	if d.spawnEvery <= 0 || s.Score%d.spawnEvery != 0 {
		return nil
	}
	if d.maxEnemies > 0 && len(s.Enemies) >= d.maxEnemies {
		return nil
	}

	x := d.rng.Intn(d.fieldW - d.enemy.Size + 1)
	y := d.rng.Intn(d.fieldH - d.enemy.Size + 1)
	e := NewEnemy(x, y, d.enemy, d.rng, now)
	s.Enemies = append(s.Enemies, e)
	return e
}

// Session is one round of play, from start to collision.
type Session struct {
	Player     *Player
	Enemies    []*Enemy
	Score      int
	LastScore  time.Duration // Time of the last score increment
	Over       bool
	ColorIndex int
}

// NewSession starts a round with the player in the palette color at
// colorIndex and a single enemy at its start position.
func NewSession(cfg config.ChaseConfig, colorIndex int, rng *rand.Rand, now time.Duration) *Session {
	return &Session{
		Player:     NewPlayer(cfg.Player, Palette[colorIndex]),
		Enemies:    []*Enemy{NewEnemy(cfg.Enemy.StartX, cfg.Enemy.StartY, cfg.Enemy, rng, now)},
		LastScore:  now,
		ColorIndex: colorIndex,
	}
}

// Step runs one tick of play: director, player, then each enemy in spawn
// order. It returns true if an enemy caught the player, which ends the
// session; enemies after the catching one do not move that tick.
func (s *Session) Step(in core.InputFrame, now time.Duration, d *Director, fieldW, fieldH int) bool {
	if s.Over {
		return false
	}

	d.Tick(s, now)
	s.Player.Update(in, fieldW, fieldH)

	target := s.Player.Box.Pos()
	for _, e := range s.Enemies {
		e.Update(target, now, fieldW, fieldH)
		if e.Box.Overlaps(s.Player.Box) {
			s.Over = true
			return true
		}
	}
	return false
}

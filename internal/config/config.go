// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ChaseConfig contains all configuration for the Square Chase game.
// Distances are in field units; speeds are field units per tick.
type ChaseConfig struct {
	Field  ChaseField  `yaml:"field"`
	Player ChasePlayer `yaml:"player"`
	Enemy  ChaseEnemy  `yaml:"enemy"`
	Spawn  ChaseSpawn  `yaml:"spawn"`
}

// ChaseField defines the playing field dimensions.
type ChaseField struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ChasePlayer defines player parameters.
type ChasePlayer struct {
	Size   int `yaml:"size"`
	Speed  int `yaml:"speed"`
	StartX int `yaml:"start_x"`
	StartY int `yaml:"start_y"`
}

// ChaseEnemy defines enemy parameters. Speed and re-decision interval are
// drawn uniformly from the inclusive ranges when an enemy is created.
type ChaseEnemy struct {
	Size          int `yaml:"size"`
	MinSpeed      int `yaml:"min_speed"`
	MaxSpeed      int `yaml:"max_speed"`
	MinDecisionMs int `yaml:"min_decision_ms"`
	MaxDecisionMs int `yaml:"max_decision_ms"`
	StartX        int `yaml:"start_x"`
	StartY        int `yaml:"start_y"`
}

// ChaseSpawn defines scoring and spawn cadence.
type ChaseSpawn struct {
	ScoreIntervalMs int `yaml:"score_interval_ms"` // Time per score point
	SpawnEvery      int `yaml:"spawn_every"`       // Spawn an enemy every N points (0 = never)
	MaxEnemies      int `yaml:"max_enemies"`       // Enemy cap (0 = unlimited)
}

// ScoreInterval returns the score interval as a duration.
func (s ChaseSpawn) ScoreInterval() time.Duration {
	return time.Duration(s.ScoreIntervalMs) * time.Millisecond
}

// MinDecision returns the shortest re-decision interval.
func (e ChaseEnemy) MinDecision() time.Duration {
	return time.Duration(e.MinDecisionMs) * time.Millisecond
}

// MaxDecision returns the longest re-decision interval.
func (e ChaseEnemy) MaxDecision() time.Duration {
	return time.Duration(e.MaxDecisionMs) * time.Millisecond
}

// Validate checks that the configuration describes a playable game.
func (c ChaseConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Field.Width > 0 && c.Field.Height > 0,
		"field: width and height must be positive, got %dx%d", c.Field.Width, c.Field.Height)
	check(c.Player.Size > 0, "player.size must be positive, got %d", c.Player.Size)
	check(c.Player.Speed >= 0, "player.speed must not be negative, got %d", c.Player.Speed)
	check(c.Enemy.Size > 0, "enemy.size must be positive, got %d", c.Enemy.Size)
	check(c.Enemy.Size <= c.Field.Width && c.Enemy.Size <= c.Field.Height,
		"enemy.size %d does not fit in the field", c.Enemy.Size)
	check(c.Enemy.MinSpeed >= 0 && c.Enemy.MinSpeed <= c.Enemy.MaxSpeed,
		"enemy speed range [%d, %d] is invalid", c.Enemy.MinSpeed, c.Enemy.MaxSpeed)
	check(c.Enemy.MinDecisionMs >= 0 && c.Enemy.MinDecisionMs <= c.Enemy.MaxDecisionMs,
		"enemy decision range [%d, %d]ms is invalid", c.Enemy.MinDecisionMs, c.Enemy.MaxDecisionMs)
	check(c.Spawn.ScoreIntervalMs > 0, "spawn.score_interval_ms must be positive, got %d", c.Spawn.ScoreIntervalMs)
	check(c.Spawn.SpawnEvery >= 0, "spawn.spawn_every must not be negative, got %d", c.Spawn.SpawnEvery)
	check(c.Spawn.MaxEnemies >= 0, "spawn.max_enemies must not be negative, got %d", c.Spawn.MaxEnemies)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid chase config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset.
// An empty string means "use the config as loaded".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyChasePreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyChasePreset(cfg *ChaseConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.SpawnEvery = 15
		cfg.Enemy.MaxSpeed = max(cfg.Enemy.MinSpeed, 2)
	case DifficultyHard:
		cfg.Spawn.SpawnEvery = 5
		cfg.Enemy.MinDecisionMs = 150
		cfg.Enemy.MaxDecisionMs = 400
	case DifficultyFixed:
		cfg.Spawn.SpawnEvery = 0
	}
}

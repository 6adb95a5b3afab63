package config

import _ "embed"

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte // Kept in sync with DefaultChaseConfig

// DefaultChaseConfig returns the default Square Chase configuration.
func DefaultChaseConfig() ChaseConfig {
	return ChaseConfig{
		Field: ChaseField{
			Width:  800,
			Height: 700,
		},
		Player: ChasePlayer{
			Size:   20,
			Speed:  3,
			StartX: 200,
			StartY: 200,
		},
		Enemy: ChaseEnemy{
			Size:          25,
			MinSpeed:      1,
			MaxSpeed:      3,
			MinDecisionMs: 200,
			MaxDecisionMs: 600,
			StartX:        400,
			StartY:        400,
		},
		Spawn: ChaseSpawn{
			ScoreIntervalMs: 1000,
			SpawnEvery:      10,
			MaxEnemies:      0,
		},
	}
}

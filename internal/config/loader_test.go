package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseChase(defaultChaseYAML)
	if err != nil {
		t.Fatalf("embedded default YAML failed to parse: %v", err)
	}
	if cfg != DefaultChaseConfig() {
		t.Errorf("embedded defaults %+v differ from DefaultChaseConfig() %+v", cfg, DefaultChaseConfig())
	}
}

func TestLoadChaseCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chase.yaml")
	yaml := `
field:
  width: 400
spawn:
  spawn_every: 5
  max_enemies: 8
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadChase(path)
	if err != nil {
		t.Fatalf("LoadChase() failed: %v", err)
	}

	if cfg.Field.Width != 400 {
		t.Errorf("Field.Width = %d, expected 400", cfg.Field.Width)
	}
	// Keys missing from the file keep their defaults
	if cfg.Field.Height != 700 {
		t.Errorf("Field.Height = %d, expected default 700", cfg.Field.Height)
	}
	if cfg.Spawn.SpawnEvery != 5 || cfg.Spawn.MaxEnemies != 8 {
		t.Errorf("Spawn = %+v, expected every 5 capped at 8", cfg.Spawn)
	}
	if cfg.Player.Speed != 3 {
		t.Errorf("Player.Speed = %d, expected default 3", cfg.Player.Speed)
	}
}

func TestLoadChaseCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadChase(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("field: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadChase(bad); err == nil {
		t.Error("expected error for malformed YAML")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("enemy:\n  min_speed: 5\n  max_speed: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	_, err := LoadChase(invalid)
	if err == nil {
		t.Fatal("expected validation error for inverted speed range")
	}
	if !strings.Contains(err.Error(), "speed range") {
		t.Errorf("error should name the speed range, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ChaseConfig)
		ok     bool
	}{
		{"defaults", func(*ChaseConfig) {}, true},
		{"zero field", func(c *ChaseConfig) { c.Field.Width = 0 }, false},
		{"negative player speed", func(c *ChaseConfig) { c.Player.Speed = -1 }, false},
		{"enemy bigger than field", func(c *ChaseConfig) { c.Enemy.Size = 900 }, false},
		{"inverted decision range", func(c *ChaseConfig) { c.Enemy.MinDecisionMs = 700 }, false},
		{"zero score interval", func(c *ChaseConfig) { c.Spawn.ScoreIntervalMs = 0 }, false},
		{"spawning disabled", func(c *ChaseConfig) { c.Spawn.SpawnEvery = 0 }, true},
		{"stationary enemies", func(c *ChaseConfig) { c.Enemy.MinSpeed, c.Enemy.MaxSpeed = 0, 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultChaseConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
			if !tc.ok && err == nil {
				t.Error("Validate() expected error")
			}
		})
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		spawnEvery int
	}{
		{"", 10},
		{DifficultyNormal, 10},
		{DifficultyEasy, 15},
		{DifficultyHard, 5},
		{DifficultyFixed, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultChaseConfig()
			ApplyChasePreset(&cfg, tc.preset)
			if cfg.Spawn.SpawnEvery != tc.spawnEvery {
				t.Errorf("SpawnEvery = %d, expected %d", cfg.Spawn.SpawnEvery, tc.spawnEvery)
			}
			if err := cfg.Validate(); err != nil {
				t.Errorf("preset produced invalid config: %v", err)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if p, err := ParsePreset(""); err != nil || p != "" {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("ParsePreset(insane) should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultChaseConfig()
	cfg.Spawn.MaxEnemies = 12

	data, err := MarshalChase(cfg)
	if err != nil {
		t.Fatalf("MarshalChase() failed: %v", err)
	}
	if !strings.Contains(string(data), "max_enemies: 12") {
		t.Errorf("encoded YAML missing max_enemies:\n%s", data)
	}
	back, err := ParseChase(data)
	if err != nil {
		t.Fatalf("ParseChase() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config: %+v vs %+v", back, cfg)
	}
}

func TestLoadChaseSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, source, err := LoadChaseSource(path)
	if err != nil {
		t.Fatalf("LoadChaseSource() failed: %v", err)
	}
	if source != path || cfg.Player.Speed != 4 {
		t.Errorf("source = %q, speed = %d", source, cfg.Player.Speed)
	}

	// Nothing is found from an empty working directory and home.
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	cfg, source, err = LoadChaseSource("")
	if err != nil {
		t.Fatalf("LoadChaseSource() failed: %v", err)
	}
	if source != BuiltIn || cfg != DefaultChaseConfig() {
		t.Errorf("source = %q, cfg = %+v, expected built-in defaults", source, cfg)
	}

	// ./configs/chase.yaml is picked up.
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "chase.yaml"), []byte("spawn:\n  spawn_every: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, source, _ = LoadChaseSource("")
	if source != filepath.Join("configs", "chase.yaml") || cfg.Spawn.SpawnEvery != 3 {
		t.Errorf("source = %q, spawn_every = %d", source, cfg.Spawn.SpawnEvery)
	}
}

func TestSearchPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	paths := SearchPaths()
	want := []string{filepath.Join(home, ".arcade", "configs", "chase.yaml"), filepath.Join("configs", "chase.yaml")}
	if len(paths) != 2 || paths[0] != want[0] || paths[1] != want[1] {
		t.Errorf("SearchPaths() = %v, expected %v", paths, want)
	}
}

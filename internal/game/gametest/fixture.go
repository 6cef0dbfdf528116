// Package gametest provides a canned world and dependency bundle for
// system and factory tests.
package gametest

import (
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/voidfall/voidfall/internal/config"
	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/core/event"
	"github.com/voidfall/voidfall/internal/data"
	"github.com/voidfall/voidfall/internal/game"
)

const templatesYAML = `
templates:
  - name: ship
    team: player
    radius: 8
    health: 100
    damage: 1
    speed: 180
    weapon:
      cooldown: 0.25
      damage: 10
      projectile_speed: 400
      spread: 1
  - name: asteroid_small
    team: hostile
    radius: 6
    health: 10
    damage: 5
    speed: 60
    score: 25
  - name: asteroid_big
    team: hostile
    radius: 14
    health: 30
    damage: 15
    speed: 35
    score: 60
    debris: 5
  - name: drone
    team: hostile
    radius: 7
    health: 20
    damage: 10
    speed: 90
    score: 80
    weapon:
      cooldown: 1.2
      damage: 5
      projectile_speed: 220
      spread: 1
  - name: dreadnought
    team: hostile
    radius: 26
    health: 400
    damage: 30
    speed: 20
    score: 1000
    debris: 12
    boss: true
    weapon:
      cooldown: 2.0
      damage: 12
      projectile_speed: 180
      spread: 6
  - name: powerup_repair
    team: neutral
    radius: 5
    health: 1
    lifetime: 8
    heal: 25
`

const wavesYAML = `
waves:
  - number: 1
    entries:
      - template: asteroid_small
        count: 3
  - number: 2
    speed_scale: 1.25
    entries:
      - template: asteroid_small
        count: 4
      - template: drone
        count: 2
  - number: 3
    boss: true
    entries:
      - template: dreadnought
        count: 1
`

// Fixture is a ready-to-tick game state with deterministic randomness.
type Fixture struct {
	World *ecs.World
	Deps  *game.Deps
}

// NewFixture builds a world with registered stores, loaded tables, a nop
// logger and a fixed random seed. Scripting is off; tests that need it
// construct an engine and assign it to Deps.Script.
func NewFixture(t *testing.T) *Fixture {
	t.Helper()

	dir := t.TempDir()
	templatesPath := filepath.Join(dir, "templates.yaml")
	wavesPath := filepath.Join(dir, "waves.yaml")
	if err := os.WriteFile(templatesPath, []byte(templatesYAML), 0o644); err != nil {
		t.Fatalf("write templates: %v", err)
	}
	if err := os.WriteFile(wavesPath, []byte(wavesYAML), 0o644); err != nil {
		t.Fatalf("write waves: %v", err)
	}

	templates, err := data.LoadTemplateTable(templatesPath)
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}
	waves, err := data.LoadWaveTable(wavesPath)
	if err != nil {
		t.Fatalf("load waves: %v", err)
	}

	cfg := DefaultConfig(t)
	w := ecs.NewWorld(cfg.World.InitialCapacity)
	return &Fixture{
		World: w,
		Deps: &game.Deps{
			Config:    cfg,
			Log:       zap.NewNop(),
			Bus:       event.NewBus(),
			Stores:    game.RegisterStores(w),
			Session:   game.NewSession(),
			Templates: templates,
			Waves:     waves,
			Rand:      rand.New(rand.NewSource(1)),
		},
	}
}

// DefaultConfig loads the stock configuration. Exposed so tests can tweak
// it before building systems.
func DefaultConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "empty.toml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	return cfg
}

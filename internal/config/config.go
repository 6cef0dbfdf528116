package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Loop    LoopConfig    `toml:"loop"`
	World   WorldConfig   `toml:"world"`
	Spawn   SpawnConfig   `toml:"spawn"`
	Player  PlayerConfig  `toml:"player"`
	Diag    DiagConfig    `toml:"diag"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	Name string `toml:"name"`
	Seed int64  `toml:"seed"` // 0 picks a time-based seed at boot
}

type LoopConfig struct {
	TickRate time.Duration `toml:"tick_rate"`
	MaxTicks int           `toml:"max_ticks"` // 0 runs until the session ends
}

type WorldConfig struct {
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	InitialCapacity int     `toml:"initial_capacity"`
}

type SpawnConfig struct {
	TemplatesPath string        `toml:"templates_path"`
	WavesPath     string        `toml:"waves_path"`
	ScriptPath    string        `toml:"script_path"` // "" disables Lua wave tuning
	WaveDelay     time.Duration `toml:"wave_delay"`
	MaxHostiles   int           `toml:"max_hostiles"`
	SafeRadius    float64       `toml:"safe_radius"`   // no hostile spawns closer to the ship
	Drop          string        `toml:"drop_template"` // spawned when a kill rolls a power-up
}

type PlayerConfig struct {
	Template string `toml:"template"`
}

type DiagConfig struct {
	Enabled      bool          `toml:"enabled"`
	Interval     time.Duration `toml:"interval"`
	SnapshotPath string        `toml:"snapshot_path"` // "" disables snapshot writes
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			Name: "Voidfall",
		},
		Loop: LoopConfig{
			TickRate: 50 * time.Millisecond,
			MaxTicks: 0,
		},
		World: WorldConfig{
			Width:           800,
			Height:          600,
			InitialCapacity: 1024,
		},
		Spawn: SpawnConfig{
			TemplatesPath: "data/templates.yaml",
			WavesPath:     "data/waves.yaml",
			ScriptPath:    "scripts/waves.lua",
			WaveDelay:     2 * time.Second,
			MaxHostiles:   128,
			SafeRadius:    150,
			Drop:          "powerup_repair",
		},
		Player: PlayerConfig{
			Template: "ship",
		},
		Diag: DiagConfig{
			Enabled:  true,
			Interval: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

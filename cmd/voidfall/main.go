package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/voidfall/voidfall/internal/config"
	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/core/event"
	coresys "github.com/voidfall/voidfall/internal/core/system"
	"github.com/voidfall/voidfall/internal/data"
	"github.com/voidfall/voidfall/internal/diag"
	"github.com/voidfall/voidfall/internal/factory"
	"github.com/voidfall/voidfall/internal/game"
	"github.com/voidfall/voidfall/internal/scripting"
	"github.com/voidfall/voidfall/internal/system"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

// ── Startup display helpers ────────────────────────────────────────

func printBanner(name string) {
	fmt.Println()
	fmt.Println("\033[36;1m  ┌───────────────────────────────────────────┐\033[0m")
	fmt.Println("\033[36;1m  │\033[0m            Voidfall  v0.1.0               \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  │\033[0m      wave survival · headless arcade      \033[36;1m│\033[0m")
	fmt.Println("\033[36;1m  └───────────────────────────────────────────┘\033[0m")
	fmt.Println()
	fmt.Printf("  \033[1mSession:\033[0m %s\n\n", name)
}

func printSection(title string) {
	lineLen := 46 - len(title) - 1
	if lineLen < 3 {
		lineLen = 3
	}
	fmt.Printf("  \033[33m── %s %s\033[0m\n", title, strings.Repeat("─", lineLen))
}

func printStat(label string, count int) {
	numStr := fmt.Sprintf("%d", count)
	dotsLen := 42 - len(label) - len(numStr)
	if dotsLen < 3 {
		dotsLen = 3
	}
	fmt.Printf("  %s \033[90m%s\033[0m \033[32m%s\033[0m\n", label, strings.Repeat("·", dotsLen), numStr)
}

func printOK(msg string) {
	fmt.Printf("  \033[32m✓\033[0m %s\n", msg)
}

func printReady(msg string) {
	fmt.Printf("  \033[32m▶\033[0m %s\n", msg)
}

// ── Main game logic ────────────────────────────────────────────────

func run() error {
	// 1. Load config
	cfgPath := "config/voidfall.toml"
	if p := os.Getenv("VOIDFALL_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger
	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	printBanner(cfg.Game.Name)

	// 3. Load data tables
	printSection("Data")

	templates, err := data.LoadTemplateTable(cfg.Spawn.TemplatesPath)
	if err != nil {
		return fmt.Errorf("load templates: %w", err)
	}
	printStat("Entity templates", templates.Count())

	waves, err := data.LoadWaveTable(cfg.Spawn.WavesPath)
	if err != nil {
		return fmt.Errorf("load waves: %w", err)
	}
	if waves.Count() == 0 {
		return fmt.Errorf("wave table %s defines no waves", cfg.Spawn.WavesPath)
	}
	printStat("Waves", waves.Count())

	if templates.Get(cfg.Player.Template) == nil {
		return fmt.Errorf("player template %q not in %s", cfg.Player.Template, cfg.Spawn.TemplatesPath)
	}

	// 4. Initialize Lua scripting engine (optional)
	var script *scripting.Engine
	if cfg.Spawn.ScriptPath != "" {
		script, err = scripting.NewEngine(cfg.Spawn.ScriptPath, log)
		if err != nil {
			return fmt.Errorf("lua engine: %w", err)
		}
		defer script.Close()
		printOK("Lua wave script loaded")
	}
	fmt.Println()

	// 5. Create world, stores, and session
	w := ecs.NewWorld(cfg.World.InitialCapacity)
	deps := &game.Deps{
		Config:    cfg,
		Log:       log,
		Bus:       event.NewBus(),
		Stores:    game.RegisterStores(w),
		Session:   game.NewSession(),
		Templates: templates,
		Waves:     waves,
		Script:    script,
		Rand:      rand.New(rand.NewSource(cfg.Game.Seed)),
	}

	// 6. Put the player ship on the field
	ship, ok := factory.Spawn(w, deps, cfg.Player.Template, cfg.World.Width/2, cfg.World.Height/2)
	if !ok {
		return fmt.Errorf("spawn player template %q", cfg.Player.Template)
	}
	deps.Session.Ship = ship

	// 7. Create systems and register with runner
	system.NewScoreKeeper(deps)

	runner := coresys.NewRunner()
	runner.Register(system.NewEventDispatchSystem(deps.Bus))
	runner.Register(system.NewPilotSystem(deps))
	runner.Register(system.NewMovementSystem(deps))
	runner.Register(system.NewWeaponSystem(deps))
	runner.Register(system.NewCollisionSystem(deps))
	runner.Register(system.NewLifetimeSystem(deps))
	runner.Register(system.NewBoundsSystem(deps))
	runner.Register(system.NewSpawnSystem(deps))
	if cfg.Diag.Enabled {
		runner.Register(system.NewDiagSystem(deps))
	}
	runner.Register(system.NewCleanupSystem())

	// 8. Start game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Loop.TickRate)
	defer ticker.Stop()

	printSection("Ready")
	printReady(fmt.Sprintf("Session %s", deps.Session.ID))
	printReady(fmt.Sprintf("Game loop running (tick: %s)", cfg.Loop.TickRate))
	fmt.Println()

	ticks := 0
	for {
		select {
		case <-ticker.C:
			runner.Tick(w, cfg.Loop.TickRate)
			ticks++
			if deps.Session.Over {
				finish(w, deps, runner, ticks, "ship destroyed")
				return nil
			}
			if cfg.Loop.MaxTicks > 0 && ticks >= cfg.Loop.MaxTicks {
				finish(w, deps, runner, ticks, "tick budget reached")
				return nil
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			finish(w, deps, runner, ticks, "interrupted")
			return nil
		}
	}
}

// finish drains the destroy queue, reports the session, and writes the
// exit snapshot when one is configured.
func finish(w *ecs.World, deps *game.Deps, runner *coresys.Runner, ticks int, reason string) {
	runner.TickPhase(w, coresys.PhaseCleanup, 0)

	sess := deps.Session
	fmt.Println()
	printSection("Session summary")
	printStat("Waves survived", sess.Wave)
	printStat("Kills", sess.Kills)
	printStat("Score", sess.Score)
	printStat("Ticks", ticks)
	fmt.Println()

	deps.Log.Info("session complete",
		zap.String("session", sess.ID),
		zap.String("reason", reason),
		zap.Int("wave", sess.Wave),
		zap.Int("score", sess.Score),
		zap.Int("kills", sess.Kills),
		zap.Int("spawned", sess.Spawned),
		zap.Duration("played", sess.Elapsed()))

	if path := deps.Config.Diag.SnapshotPath; path != "" {
		if err := diag.Capture(w, deps).WriteFile(path); err != nil {
			deps.Log.Warn("write exit snapshot", zap.Error(err))
			return
		}
		printOK(fmt.Sprintf("Snapshot written to %s", path))
	}
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}

package scripting

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Engine wraps a single gopher-lua VM for wave tuning hooks.
// Single-goroutine access only (game loop).
type Engine struct {
	vm  *lua.LState
	log *zap.Logger
}

// NewEngine creates a Lua engine and loads the given script. Every hook is
// optional: a script that defines none of them leaves the table-driven
// defaults untouched.
func NewEngine(scriptPath string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{
		SkipOpenLibs: false,
	})

	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{vm: vm, log: log}
	if err := vm.DoFile(scriptPath); err != nil {
		vm.Close()
		return nil, fmt.Errorf("load script %s: %w", scriptPath, err)
	}
	return e, nil
}

// WaveContext holds pre-packed data for a wave tuning decision.
type WaveContext struct {
	Number    int
	BaseCount int     // enemy count from the wave table
	BaseSpeed float64 // speed scale from the wave table, 0 means 1
	Boss      bool    // boss flag from the wave table
	Score     int     // player score entering the wave
	HealthPct int     // player health percentage, 0-100
}

// WavePlan is returned by the Lua tune_wave function. Fields the script
// leaves out keep the table values.
type WavePlan struct {
	Count      int
	SpeedScale float64
	Boss       bool
}

// TuneWave calls the Lua tune_wave function. The script sees the wave the
// table would produce and may resize it, scale hostile speed, or flip the
// boss flag. Any script failure falls back to the table values so a broken
// script degrades the game instead of stopping it.
func (e *Engine) TuneWave(ctx WaveContext) WavePlan {
	base := ctx.BaseSpeed
	if base <= 0 {
		base = 1
	}
	plan := WavePlan{Count: ctx.BaseCount, SpeedScale: base, Boss: ctx.Boss}

	fn := e.vm.GetGlobal("tune_wave")
	if fn == lua.LNil {
		return plan
	}

	t := e.vm.NewTable()
	t.RawSetString("number", lua.LNumber(ctx.Number))
	t.RawSetString("base_count", lua.LNumber(ctx.BaseCount))
	t.RawSetString("base_speed", lua.LNumber(base))
	t.RawSetString("boss", lua.LBool(ctx.Boss))
	t.RawSetString("score", lua.LNumber(ctx.Score))
	t.RawSetString("health_pct", lua.LNumber(ctx.HealthPct))

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, t); err != nil {
		e.log.Error("lua tune_wave error", zap.Error(err), zap.Int("wave", ctx.Number))
		return plan
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		e.log.Error("lua tune_wave returned non-table", zap.Int("wave", ctx.Number))
		return plan
	}

	if v := rt.RawGetString("count"); v != lua.LNil {
		if n := int(lua.LVAsNumber(v)); n > 0 {
			plan.Count = n
		}
	}
	if v := rt.RawGetString("speed_scale"); v != lua.LNil {
		if s := float64(lua.LVAsNumber(v)); s > 0 {
			plan.SpeedScale = s
		}
	}
	if v := rt.RawGetString("boss"); v != lua.LNil {
		plan.Boss = v == lua.LTrue
	}
	return plan
}

// KillBonus calls Lua kill_bonus(wave, base_score) and returns extra points
// for a kill at the given wave. Missing hook or any failure means no bonus.
func (e *Engine) KillBonus(wave, baseScore int) int {
	fn := e.vm.GetGlobal("kill_bonus")
	if fn == lua.LNil {
		return 0
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(wave), lua.LNumber(baseScore)); err != nil {
		e.log.Error("lua kill_bonus error", zap.Error(err))
		return 0
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	bonus := int(lua.LVAsNumber(result))
	if bonus < 0 {
		return 0
	}
	return bonus
}

// PowerUpChance calls Lua powerup_chance(wave) and returns the probability
// (0.0-1.0) that a destroyed hostile drops a pickup. The default without a
// hook is 0, meaning drops are disabled unless scripted.
func (e *Engine) PowerUpChance(wave int) float64 {
	fn := e.vm.GetGlobal("powerup_chance")
	if fn == lua.LNil {
		return 0
	}

	if err := e.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lua.LNumber(wave)); err != nil {
		e.log.Error("lua powerup_chance error", zap.Error(err))
		return 0
	}

	result := e.vm.Get(-1)
	e.vm.Pop(1)

	p := float64(lua.LVAsNumber(result))
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Close shuts down the Lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

package system_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/factory"
	"github.com/voidfall/voidfall/internal/game/gametest"
	"github.com/voidfall/voidfall/internal/scripting"
)

// spawnShip places the player ship and registers it with the session.
func spawnShip(t *testing.T, f *gametest.Fixture, x, y float64) ecs.Handle {
	t.Helper()
	h, ok := factory.Spawn(f.World, f.Deps, "ship", x, y)
	if !ok {
		t.Fatal("spawn ship failed")
	}
	f.Deps.Session.Ship = h
	return h
}

func spawnAt(t *testing.T, f *gametest.Fixture, name string, x, y float64) ecs.Handle {
	t.Helper()
	h, ok := factory.Spawn(f.World, f.Deps, name, x, y)
	if !ok {
		t.Fatalf("spawn %s failed", name)
	}
	return h
}

// countKind counts live entities whose kind matches name.
func countKind(f *gametest.Fixture, name string) int {
	n := 0
	f.Deps.Stores.Kind.Each(func(_ ecs.Handle, k *component.Kind) {
		if k.Name == name {
			n++
		}
	})
	return n
}

// projectileCount counts live projectiles belonging to one team.
func projectileCount(f *gametest.Fixture, team component.Team) int {
	n := 0
	f.Deps.Stores.Kind.Each(func(h ecs.Handle, k *component.Kind) {
		if k.Name != "projectile" {
			return
		}
		if col, ok := f.Deps.Stores.Collider.Get(h); ok && col.Team == team {
			n++
		}
	})
	return n
}

// deliver rotates the bus and hands queued events to subscribers, the
// way EventDispatchSystem does at the top of a tick.
func deliver(f *gametest.Fixture) {
	f.Deps.Bus.SwapBuffers()
	f.Deps.Bus.DispatchAll()
}

// luaEngine compiles an inline script and tears it down with the test.
func luaEngine(t *testing.T, src string) *scripting.Engine {
	t.Helper()
	path := filepath.Join(t.TempDir(), "waves.lua")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	eng, err := scripting.NewEngine(path, zap.NewNop())
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	t.Cleanup(eng.Close)
	return eng
}

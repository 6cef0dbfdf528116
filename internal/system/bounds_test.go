package system_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/factory"
	"github.com/voidfall/voidfall/internal/game/gametest"
	"github.com/voidfall/voidfall/internal/system"
)

func TestBoundsRetiresEscapedHostile(t *testing.T) {
	f := gametest.NewFixture(t)
	bounds := system.NewBoundsSystem(f.Deps)
	cleanup := system.NewCleanupSystem()

	gone := spawnAt(t, f, "asteroid_small", -130, 300)
	near := spawnAt(t, f, "asteroid_small", -100, 300)

	bounds.Update(f.World, 50*time.Millisecond)
	assert.True(t, f.World.Alive(gone), "removal waits for the cleanup phase")

	cleanup.Update(f.World, 50*time.Millisecond)
	assert.False(t, f.World.Alive(gone))
	assert.True(t, f.World.Alive(near), "still inside the escape margin")
}

func TestBoundsSparesPlayerShip(t *testing.T) {
	f := gametest.NewFixture(t)
	bounds := system.NewBoundsSystem(f.Deps)
	cleanup := system.NewCleanupSystem()

	ship := spawnShip(t, f, -500, 900)

	bounds.Update(f.World, 50*time.Millisecond)
	cleanup.Update(f.World, 50*time.Millisecond)

	assert.True(t, f.World.Alive(ship))
}

func TestBoundsRetiresStrayProjectile(t *testing.T) {
	f := gametest.NewFixture(t)
	bounds := system.NewBoundsSystem(f.Deps)
	cleanup := system.NewCleanupSystem()

	ship := spawnShip(t, f, 400, 300)
	wpn, ok := f.Deps.Stores.Weapon.Get(ship)
	require.True(t, ok)
	p := factory.Projectile(f.World, f.Deps, 930, 300, 0, component.TeamPlayer, wpn)

	bounds.Update(f.World, 50*time.Millisecond)
	cleanup.Update(f.World, 50*time.Millisecond)

	assert.False(t, f.World.Alive(p))
	assert.True(t, f.World.Alive(ship))
}

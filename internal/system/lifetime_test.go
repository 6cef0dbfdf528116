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

func TestLifetimeExpiryIsDeferred(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewLifetimeSystem(f.Deps)
	cleanup := system.NewCleanupSystem()

	pu := spawnAt(t, f, "powerup_repair", 400, 300)

	sys.Update(f.World, 8*time.Second)
	assert.True(t, f.World.Alive(pu), "expiry waits for the cleanup phase")

	cleanup.Update(f.World, 0)
	assert.False(t, f.World.Alive(pu))
}

func TestLifetimePartialDecaySurvives(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewLifetimeSystem(f.Deps)
	cleanup := system.NewCleanupSystem()

	pu := spawnAt(t, f, "powerup_repair", 400, 300)

	sys.Update(f.World, 3*time.Second)
	cleanup.Update(f.World, 0)

	require.True(t, f.World.Alive(pu))
	lt, ok := f.Deps.Stores.Lifetime.Get(pu)
	require.True(t, ok)
	assert.Equal(t, 5*time.Second, lt.Remaining)
}

func TestLifetimeExpiresProjectiles(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewLifetimeSystem(f.Deps)
	cleanup := system.NewCleanupSystem()

	proj := factory.Projectile(f.World, f.Deps, 100, 100, 0, component.TeamPlayer,
		&component.Weapon{Damage: 10, ProjectileSpeed: 400})

	sys.Update(f.World, 1600*time.Millisecond)
	cleanup.Update(f.World, 0)

	assert.False(t, f.World.Alive(proj), "rounds burn out after 1.5s")
}

func TestLifetimeIgnoresPermanentEntities(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewLifetimeSystem(f.Deps)
	cleanup := system.NewCleanupSystem()

	ship := spawnShip(t, f, 400, 300)
	ast := spawnAt(t, f, "asteroid_small", 100, 100)

	sys.Update(f.World, time.Hour)
	cleanup.Update(f.World, 0)

	assert.True(t, f.World.Alive(ship))
	assert.True(t, f.World.Alive(ast))
}

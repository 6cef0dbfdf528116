package system_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/event"
	"github.com/voidfall/voidfall/internal/factory"
	"github.com/voidfall/voidfall/internal/game/gametest"
	"github.com/voidfall/voidfall/internal/system"
)

func TestCollisionContactDamageExchange(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	ship := spawnShip(t, f, 400, 300)
	ast := spawnAt(t, f, "asteroid_small", 405, 300)

	sys.Update(f.World, 50*time.Millisecond)

	shipHP, _ := f.Deps.Stores.Health.Get(ship)
	astHP, _ := f.Deps.Stores.Health.Get(ast)
	assert.Equal(t, 95, shipHP.Current, "asteroid contact damage is 5")
	assert.Equal(t, 9, astHP.Current, "ship contact damage is 1")
}

func TestCollisionNoOverlapNoDamage(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	ship := spawnShip(t, f, 400, 300)
	spawnAt(t, f, "asteroid_small", 420, 300)

	sys.Update(f.World, 50*time.Millisecond)

	shipHP, _ := f.Deps.Stores.Health.Get(ship)
	assert.Equal(t, 100, shipHP.Current)
}

func TestCollisionSameTeamIgnored(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	a := spawnAt(t, f, "asteroid_small", 400, 300)
	b := spawnAt(t, f, "asteroid_small", 404, 300)

	sys.Update(f.World, 50*time.Millisecond)

	hpA, _ := f.Deps.Stores.Health.Get(a)
	hpB, _ := f.Deps.Stores.Health.Get(b)
	assert.Equal(t, 10, hpA.Current)
	assert.Equal(t, 10, hpB.Current)
}

func TestCollisionNeutralIgnored(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	pu := spawnAt(t, f, "powerup_repair", 400, 300)
	ast := spawnAt(t, f, "asteroid_big", 405, 300)

	sys.Update(f.World, 50*time.Millisecond)

	assert.True(t, f.World.Alive(pu), "hostiles cannot shoot down power-ups")
	astHP, _ := f.Deps.Stores.Health.Get(ast)
	assert.Equal(t, 30, astHP.Current)
}

func TestProjectileKillsAsteroid(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	var killed []event.EntityDestroyed
	event.Subscribe(f.Deps.Bus, func(ev event.EntityDestroyed) {
		killed = append(killed, ev)
	})

	ast := spawnAt(t, f, "asteroid_small", 503, 300)
	proj := factory.Projectile(f.World, f.Deps, 500, 300, 0, component.TeamPlayer,
		&component.Weapon{Damage: 10, ProjectileSpeed: 400})

	sys.Update(f.World, 50*time.Millisecond)

	assert.False(t, f.World.Alive(ast))
	assert.False(t, f.World.Alive(proj), "the round is spent on impact")
	assert.Equal(t, 3, countKind(f, "debris"))

	deliver(f)
	require.Len(t, killed, 1, "projectile deaths are not announced")
	assert.Equal(t, "asteroid_small", killed[0].Name)
	assert.Equal(t, 25, killed[0].Points)
}

func TestBossKillScattersConfiguredDebris(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	var killed []event.EntityDestroyed
	event.Subscribe(f.Deps.Bus, func(ev event.EntityDestroyed) {
		killed = append(killed, ev)
	})

	boss := spawnAt(t, f, "dreadnought", 200, 200)
	hp, _ := f.Deps.Stores.Health.Get(boss)
	hp.Current = 10
	factory.Projectile(f.World, f.Deps, 215, 200, 0, component.TeamPlayer,
		&component.Weapon{Damage: 10, ProjectileSpeed: 400})

	sys.Update(f.World, 50*time.Millisecond)

	assert.False(t, f.World.Alive(boss))
	assert.Equal(t, 12, countKind(f, "debris"), "dreadnought template sets its own debris count")

	deliver(f)
	require.Len(t, killed, 1)
	assert.Equal(t, 1000, killed[0].Points)
}

func TestRamKillCreditsPlayer(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	var killed []event.EntityDestroyed
	event.Subscribe(f.Deps.Bus, func(ev event.EntityDestroyed) {
		killed = append(killed, ev)
	})

	ship := spawnShip(t, f, 400, 300)
	ast := spawnAt(t, f, "asteroid_small", 405, 300)
	astHP, _ := f.Deps.Stores.Health.Get(ast)
	astHP.Current = 1

	sys.Update(f.World, 50*time.Millisecond)

	assert.False(t, f.World.Alive(ast))
	shipHP, _ := f.Deps.Stores.Health.Get(ship)
	assert.Equal(t, 95, shipHP.Current, "ramming still hurts")

	deliver(f)
	require.Len(t, killed, 1)
	assert.Equal(t, 25, killed[0].Points)
}

func TestMutualRamKillsBoth(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	var died []event.PlayerDied
	var killed []event.EntityDestroyed
	event.Subscribe(f.Deps.Bus, func(ev event.PlayerDied) { died = append(died, ev) })
	event.Subscribe(f.Deps.Bus, func(ev event.EntityDestroyed) { killed = append(killed, ev) })

	ship := spawnShip(t, f, 400, 300)
	ast := spawnAt(t, f, "asteroid_small", 405, 300)
	shipHP, _ := f.Deps.Stores.Health.Get(ship)
	shipHP.Current = 1
	astHP, _ := f.Deps.Stores.Health.Get(ast)
	astHP.Current = 1

	sys.Update(f.World, 50*time.Millisecond)

	assert.False(t, f.World.Alive(ship))
	assert.False(t, f.World.Alive(ast))

	deliver(f)
	require.Len(t, died, 1)
	require.Len(t, killed, 1)
}

func TestPlayerDeathAnnounced(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	var died []event.PlayerDied
	event.Subscribe(f.Deps.Bus, func(ev event.PlayerDied) { died = append(died, ev) })

	ship := spawnShip(t, f, 400, 300)
	ast := spawnAt(t, f, "asteroid_small", 405, 300)
	shipHP, _ := f.Deps.Stores.Health.Get(ship)
	shipHP.Current = 1

	sys.Update(f.World, 50*time.Millisecond)

	assert.False(t, f.World.Alive(ship))
	assert.True(t, f.World.Alive(ast), "asteroid limps away")

	deliver(f)
	require.Len(t, died, 1)
	assert.Equal(t, ship, died[0].Handle)
}

func TestPickupHealsShip(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	ship := spawnShip(t, f, 400, 300)
	pu := spawnAt(t, f, "powerup_repair", 410, 300)
	shipHP, _ := f.Deps.Stores.Health.Get(ship)
	shipHP.Current = 50

	sys.Update(f.World, 50*time.Millisecond)

	assert.Equal(t, 75, shipHP.Current)
	assert.False(t, f.World.Alive(pu))
}

func TestPickupCapsAtMaxHealth(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	ship := spawnShip(t, f, 400, 300)
	spawnAt(t, f, "powerup_repair", 410, 300)
	shipHP, _ := f.Deps.Stores.Health.Get(ship)
	shipHP.Current = 90

	sys.Update(f.World, 50*time.Millisecond)

	assert.Equal(t, 100, shipHP.Current)
}

func TestBossEnrageTightensWeapon(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewCollisionSystem(f.Deps)

	boss := spawnAt(t, f, "dreadnought", 200, 200)
	hp, _ := f.Deps.Stores.Health.Get(boss)
	hp.Current = 205

	factory.Projectile(f.World, f.Deps, 215, 200, 0, component.TeamPlayer,
		&component.Weapon{Damage: 10, ProjectileSpeed: 400})
	sys.Update(f.World, 50*time.Millisecond)

	st, _ := f.Deps.Stores.Boss.Get(boss)
	require.Equal(t, 1, st.Stage, "dropping under half health enrages")
	assert.InDelta(t, 0.25, st.NextEnrage, 1e-9)
	wpn, _ := f.Deps.Stores.Weapon.Get(boss)
	assert.Equal(t, 1600*time.Millisecond, wpn.Cooldown)
	assert.Equal(t, 7, wpn.Spread)

	// The next hit stays above the new threshold, no second stage.
	factory.Projectile(f.World, f.Deps, 215, 200, 0, component.TeamPlayer,
		&component.Weapon{Damage: 10, ProjectileSpeed: 400})
	sys.Update(f.World, 50*time.Millisecond)
	assert.Equal(t, 1, st.Stage)
}

func TestKillDropRollsPowerUp(t *testing.T) {
	f := gametest.NewFixture(t)
	f.Deps.Script = luaEngine(t, `
function powerup_chance(wave)
  return 1.0
end
`)
	sys := system.NewCollisionSystem(f.Deps)

	spawnShip(t, f, 400, 300)
	ast := spawnAt(t, f, "asteroid_small", 405, 300)
	astHP, _ := f.Deps.Stores.Health.Get(ast)
	astHP.Current = 1

	sys.Update(f.World, 50*time.Millisecond)

	assert.False(t, f.World.Alive(ast))
	assert.Equal(t, 1, f.Deps.Stores.PowerUp.Len(), "guaranteed drop chance")
}

package system_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/game/gametest"
	"github.com/voidfall/voidfall/internal/system"
)

func TestMovementIntegratesVelocity(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewMovementSystem(f.Deps)

	h := spawnShip(t, f, 100, 100)
	mot, ok := f.Deps.Stores.Motion.Get(h)
	require.True(t, ok)
	mot.VX = 60
	mot.VY = -20

	sys.Update(f.World, 500*time.Millisecond)

	tf, ok := f.Deps.Stores.Transform.Get(h)
	require.True(t, ok)
	assert.InDelta(t, 130, tf.X, 1e-9)
	assert.InDelta(t, 90, tf.Y, 1e-9)
}

func TestMovementMovesEntitiesIndependently(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewMovementSystem(f.Deps)

	ship := spawnShip(t, f, 100, 100)
	rock := spawnAt(t, f, "asteroid_small", 500, 200)
	drone := spawnAt(t, f, "drone", 300, 500)
	for h, v := range map[ecs.Handle][2]float64{
		ship:  {40, 0},
		rock:  {-20, 10},
		drone: {0, -80},
	} {
		mot, ok := f.Deps.Stores.Motion.Get(h)
		require.True(t, ok)
		mot.VX, mot.VY = v[0], v[1]
	}

	sys.Update(f.World, 500*time.Millisecond)

	tf, _ := f.Deps.Stores.Transform.Get(ship)
	assert.InDelta(t, 120, tf.X, 1e-9)
	assert.InDelta(t, 100, tf.Y, 1e-9)
	tf, _ = f.Deps.Stores.Transform.Get(rock)
	assert.InDelta(t, 490, tf.X, 1e-9)
	assert.InDelta(t, 205, tf.Y, 1e-9)
	tf, _ = f.Deps.Stores.Transform.Get(drone)
	assert.InDelta(t, 300, tf.X, 1e-9)
	assert.InDelta(t, 460, tf.Y, 1e-9)
}

func TestMovementHeadingFollowsVelocity(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewMovementSystem(f.Deps)

	h := spawnShip(t, f, 400, 300)
	mot, _ := f.Deps.Stores.Motion.Get(h)
	mot.VX = 0
	mot.VY = 100

	sys.Update(f.World, 10*time.Millisecond)

	tf, _ := f.Deps.Stores.Transform.Get(h)
	assert.InDelta(t, math.Pi/2, tf.Heading, 1e-9)
}

func TestMovementCrossesPlayfieldEdgeUnimpeded(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewMovementSystem(f.Deps)

	// The integrator knows nothing about the playfield; edge policing
	// belongs to the bounds system.
	h := spawnAt(t, f, "asteroid_small", 799, 300)
	mot, _ := f.Deps.Stores.Motion.Get(h)
	mot.VX = 60

	sys.Update(f.World, time.Second)

	tf, _ := f.Deps.Stores.Transform.Get(h)
	assert.InDelta(t, 859, tf.X, 1e-9)
}

func TestMovementToleratesMissingTransform(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewMovementSystem(f.Deps)

	h := f.World.CreateEntity()
	require.True(t, f.Deps.Stores.Motion.Add(h, &component.Motion{VX: 50, VY: 50}))

	sys.Update(f.World, time.Second)

	assert.True(t, f.World.Alive(h))
	assert.False(t, f.Deps.Stores.Transform.Has(h))
}

func TestMovementStationaryKeepsHeading(t *testing.T) {
	f := gametest.NewFixture(t)
	sys := system.NewMovementSystem(f.Deps)

	h := spawnAt(t, f, "asteroid_small", 200, 200)
	tf, _ := f.Deps.Stores.Transform.Get(h)
	tf.Heading = 1.25

	sys.Update(f.World, time.Second)

	assert.InDelta(t, 1.25, tf.Heading, 1e-9)
	assert.InDelta(t, 200, tf.X, 1e-9)
}

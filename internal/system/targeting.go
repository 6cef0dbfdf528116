package system

import (
	"math"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/game"
)

// nearestOnTeam returns the closest live entity carrying a collider on
// the given team, excluding self. The bool is false when no such entity
// exists.
func nearestOnTeam(w *ecs.World, st *game.Stores, self ecs.Handle, x, y float64, team component.Team) (ecs.Handle, *component.Transform, bool) {
	var (
		best   ecs.Handle
		bestTF *component.Transform
		bestD  = math.MaxFloat64
	)
	for _, h := range w.Query(st.Transform, st.Collider) {
		if h == self {
			continue
		}
		col, ok := st.Collider.Get(h)
		if !ok || col.Team != team {
			continue
		}
		tf, ok := st.Transform.Get(h)
		if !ok {
			continue
		}
		d := dist2(x, y, tf.X, tf.Y)
		if d < bestD {
			best, bestTF, bestD = h, tf, d
		}
	}
	return best, bestTF, bestD < math.MaxFloat64
}

// nearestPickup returns the closest live power-up, if any.
func nearestPickup(w *ecs.World, st *game.Stores, x, y float64) (ecs.Handle, *component.Transform, bool) {
	var (
		best   ecs.Handle
		bestTF *component.Transform
		bestD  = math.MaxFloat64
	)
	for _, h := range w.Query(st.Transform, st.PowerUp) {
		tf, ok := st.Transform.Get(h)
		if !ok {
			continue
		}
		d := dist2(x, y, tf.X, tf.Y)
		if d < bestD {
			best, bestTF, bestD = h, tf, d
		}
	}
	return best, bestTF, bestD < math.MaxFloat64
}

// playerShip returns the session's ship handle when that entity is
// still alive and still the player. Slot reuse can hand the stored
// handle to a different entity, so a bare liveness check is not enough;
// the Player store probe covers both.
func playerShip(d *game.Deps) (ecs.Handle, bool) {
	h := d.Session.Ship
	return h, d.Stores.Player.Has(h)
}

// hostileCount tallies live entities on the hostile team.
func hostileCount(st *game.Stores) int {
	n := 0
	st.Collider.Each(func(_ ecs.Handle, c *component.Collider) {
		if c.Team == component.TeamHostile {
			n++
		}
	})
	return n
}

func dist2(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

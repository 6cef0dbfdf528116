package system

import (
	"math"
	"time"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/ecs"
	coresys "github.com/voidfall/voidfall/internal/core/system"
	"github.com/voidfall/voidfall/internal/game"
)

// Steering thresholds for the autopilot, in playfield units.
const (
	dodgeRange  = 140.0
	centerSlack = 40.0
)

// PilotSystem steers the player ship. The autopilot dodges the nearest
// hostile when it gets close, otherwise flies toward the nearest
// power-up, otherwise drifts back to the center of the playfield.
// Phase 0 (Input).
type PilotSystem struct {
	deps *game.Deps
}

func NewPilotSystem(d *game.Deps) *PilotSystem { return &PilotSystem{deps: d} }

func (s *PilotSystem) Phase() coresys.Phase { return coresys.PhaseInput }

func (s *PilotSystem) Update(w *ecs.World, _ time.Duration) {
	d := s.deps
	ship, ok := playerShip(d)
	if !ok {
		return
	}
	tf, ok := d.Stores.Transform.Get(ship)
	if !ok {
		return
	}
	mot, ok := d.Stores.Motion.Get(ship)
	if !ok {
		return
	}

	cx := d.Config.World.Width / 2
	cy := d.Config.World.Height / 2

	if _, threat, found := nearestOnTeam(w, d.Stores, ship, tf.X, tf.Y, component.TeamHostile); found {
		if dist2(tf.X, tf.Y, threat.X, threat.Y) < dodgeRange*dodgeRange {
			steerAway(tf, mot, threat.X, threat.Y)
			return
		}
	}
	if _, pickup, found := nearestPickup(w, d.Stores, tf.X, tf.Y); found {
		steerToward(tf, mot, pickup.X, pickup.Y)
		return
	}
	if dist2(tf.X, tf.Y, cx, cy) > centerSlack*centerSlack {
		steerToward(tf, mot, cx, cy)
		return
	}
	mot.VX = 0
	mot.VY = 0
}

func steerToward(tf *component.Transform, mot *component.Motion, x, y float64) {
	ang := math.Atan2(y-tf.Y, x-tf.X)
	mot.VX = math.Cos(ang) * mot.Cruise
	mot.VY = math.Sin(ang) * mot.Cruise
}

func steerAway(tf *component.Transform, mot *component.Motion, x, y float64) {
	ang := math.Atan2(tf.Y-y, tf.X-x)
	mot.VX = math.Cos(ang) * mot.Cruise
	mot.VY = math.Sin(ang) * mot.Cruise
}

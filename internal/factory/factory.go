package factory

import (
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/game"
)

// projectileLifetime bounds how long a shot flies before despawning.
const projectileLifetime = 1500 * time.Millisecond

// debrisLifetime bounds the cosmetic wreckage left by kills.
const debrisLifetime = 700 * time.Millisecond

// defaultDebrisPieces is used by templates that do not set their own
// debris count.
const defaultDebrisPieces = 3

// Spawn instantiates a template at the given position and returns the new
// entity. The entity starts at rest; the caller aims it. An unknown
// template name is a data bug: it is logged and nothing is spawned.
func Spawn(w *ecs.World, d *game.Deps, name string, x, y float64) (ecs.Handle, bool) {
	tpl := d.Templates.Get(name)
	if tpl == nil {
		d.Log.Error("spawn of unknown template", zap.String("template", name))
		return 0, false
	}
	team, ok := parseTeam(tpl.Team)
	if !ok {
		d.Log.Error("template has unknown team",
			zap.String("template", name), zap.String("team", tpl.Team))
		return 0, false
	}

	h := w.CreateEntity()
	d.Stores.Transform.Add(h, &component.Transform{X: x, Y: y})
	d.Stores.Motion.Add(h, &component.Motion{Cruise: tpl.Speed})
	d.Stores.Health.Add(h, &component.Health{Current: tpl.Health, Max: tpl.Health})
	d.Stores.Collider.Add(h, &component.Collider{
		Radius: tpl.Radius,
		Team:   team,
		Damage: tpl.Damage,
	})
	debris := tpl.Debris
	if debris <= 0 {
		debris = defaultDebrisPieces
	}
	d.Stores.Kind.Add(h, &component.Kind{Name: tpl.Name, Score: tpl.Score, Debris: debris})

	if tpl.Weapon != nil {
		spread := tpl.Weapon.Spread
		if spread < 1 {
			spread = 1
		}
		d.Stores.Weapon.Add(h, &component.Weapon{
			Cooldown:        secs(tpl.Weapon.Cooldown),
			Damage:          tpl.Weapon.Damage,
			ProjectileSpeed: tpl.Weapon.ProjectileSpeed,
			Spread:          spread,
		})
	}
	if tpl.Lifetime > 0 {
		d.Stores.Lifetime.Add(h, &component.Lifetime{Remaining: secs(tpl.Lifetime)})
	}
	if tpl.Heal > 0 {
		d.Stores.PowerUp.Add(h, &component.PowerUp{Heal: tpl.Heal})
	}
	if tpl.Boss {
		d.Stores.Boss.Add(h, &component.Boss{NextEnrage: 0.5})
	}
	if team == component.TeamPlayer {
		d.Stores.Player.Add(h, &component.Player{})
	}

	d.Session.Spawned++
	return h, true
}

// Projectile fires one shot from the given position along heading, owned by
// the given team. Projectiles are plain entities: a collider that damages
// the other side, motion, and a short lifetime.
func Projectile(w *ecs.World, d *game.Deps, x, y, heading float64, team component.Team, wpn *component.Weapon) ecs.Handle {
	h := w.CreateEntity()
	d.Stores.Transform.Add(h, &component.Transform{X: x, Y: y, Heading: heading})
	d.Stores.Motion.Add(h, &component.Motion{
		VX: math.Cos(heading) * wpn.ProjectileSpeed,
		VY: math.Sin(heading) * wpn.ProjectileSpeed,
	})
	d.Stores.Health.Add(h, &component.Health{Current: 1, Max: 1})
	d.Stores.Collider.Add(h, &component.Collider{
		Radius: 2,
		Team:   team,
		Damage: wpn.Damage,
	})
	d.Stores.Lifetime.Add(h, &component.Lifetime{Remaining: projectileLifetime})
	d.Stores.Kind.Add(h, &component.Kind{Name: "projectile"})

	d.Session.Spawned++
	return h
}

// Debris scatters short-lived cosmetic fragments where something died.
// Debris has no collider, so it drifts through everything.
func Debris(w *ecs.World, d *game.Deps, x, y float64, count int) {
	for i := 0; i < count; i++ {
		heading := d.Rand.Float64() * 2 * math.Pi
		speed := 30 + d.Rand.Float64()*60
		h := w.CreateEntity()
		d.Stores.Transform.Add(h, &component.Transform{X: x, Y: y, Heading: heading})
		d.Stores.Motion.Add(h, &component.Motion{
			VX: math.Cos(heading) * speed,
			VY: math.Sin(heading) * speed,
		})
		d.Stores.Lifetime.Add(h, &component.Lifetime{Remaining: debrisLifetime})
		d.Stores.Kind.Add(h, &component.Kind{Name: "debris"})
		d.Session.Spawned++
	}
}

func parseTeam(s string) (component.Team, bool) {
	switch s {
	case "player":
		return component.TeamPlayer, true
	case "hostile":
		return component.TeamHostile, true
	case "neutral", "":
		return component.TeamNeutral, true
	default:
		return component.TeamNeutral, false
	}
}

func secs(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

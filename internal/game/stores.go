package game

import (
	"github.com/voidfall/voidfall/internal/component"
	"github.com/voidfall/voidfall/internal/core/ecs"
)

// Stores bundles the typed component stores so systems and factories can
// share one registration.
type Stores struct {
	Transform *ecs.Store[component.Transform]
	Motion    *ecs.Store[component.Motion]
	Health    *ecs.Store[component.Health]
	Collider  *ecs.Store[component.Collider]
	Weapon    *ecs.Store[component.Weapon]
	Lifetime  *ecs.Store[component.Lifetime]
	Kind      *ecs.Store[component.Kind]
	Player    *ecs.Store[component.Player]
	Boss      *ecs.Store[component.Boss]
	PowerUp   *ecs.Store[component.PowerUp]
}

// RegisterStores registers every component type with the world. Called once
// at boot, before any system runs.
func RegisterStores(w *ecs.World) *Stores {
	return &Stores{
		Transform: ecs.RegisterStore[component.Transform](w),
		Motion:    ecs.RegisterStore[component.Motion](w),
		Health:    ecs.RegisterStore[component.Health](w),
		Collider:  ecs.RegisterStore[component.Collider](w),
		Weapon:    ecs.RegisterStore[component.Weapon](w),
		Lifetime:  ecs.RegisterStore[component.Lifetime](w),
		Kind:      ecs.RegisterStore[component.Kind](w),
		Player:    ecs.RegisterStore[component.Player](w),
		Boss:      ecs.RegisterStore[component.Boss](w),
		PowerUp:   ecs.RegisterStore[component.PowerUp](w),
	}
}

package component

import "time"

// Lifetime marks an entity for destruction once Remaining runs out.
// Projectiles, debris and powerups carry one.
type Lifetime struct {
	Remaining time.Duration
}

package component

import "time"

// Weapon fires projectiles whenever its cooldown elapses. Spread is the
// number of projectiles per volley, fanned evenly around the heading; 1
// fires straight ahead.
type Weapon struct {
	Cooldown        time.Duration
	Elapsed         time.Duration
	Damage          int
	ProjectileSpeed float64
	Spread          int
}

package component

// Team partitions colliders. Same-team contacts are ignored; neutral
// collides with everyone.
type Team uint8

const (
	TeamNeutral Team = iota
	TeamPlayer
	TeamHostile
)

// Collider is a circle hitbox. Damage is dealt to whatever it touches on
// an opposing team.
type Collider struct {
	Radius float64
	Team   Team
	Damage int
}

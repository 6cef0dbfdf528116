package component

// Boss marks a boss entity. Stage counts up as the boss loses health;
// the collision system advances it at each health fraction threshold and
// the weapon grows an extra projectile per stage.
type Boss struct {
	Stage      int
	NextEnrage float64 // health fraction that triggers the next stage
}

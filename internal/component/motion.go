package component

// Motion stores an entity's velocity in world units per second. Cruise is
// the speed steering and spawn aiming use when they set the velocity; the
// integrator itself never reads it.
type Motion struct {
	VX     float64
	VY     float64
	Cruise float64
}

package component

// Transform stores an entity's position and heading in world units.
// Pure data, zero methods. All mutations happen in system functions.
type Transform struct {
	X       float64
	Y       float64
	Heading float64 // radians, 0 points along +X
}

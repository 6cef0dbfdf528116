package component

// Kind records which template an entity was spawned from, how many
// points destroying it is worth, and how many wreckage pieces it
// scatters when a scoring kill destroys it.
type Kind struct {
	Name   string
	Score  int
	Debris int
}

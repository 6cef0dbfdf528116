package component

// Health stores hit points. Entities reach zero and are destroyed by the
// collision system, which also emits the corresponding event.
type Health struct {
	Current int
	Max     int
}

package component

// Player marks the player-controlled ship. Exactly one entity carries it
// during a session.
type Player struct{}

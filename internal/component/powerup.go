package component

// PowerUp heals the player on pickup. The collision system applies it and
// removes the carrier instead of exchanging damage.
type PowerUp struct {
	Heal int
}

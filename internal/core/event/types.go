package event

import "github.com/voidfall/voidfall/internal/core/ecs"

// Gameplay events. All of them travel one tick behind the action that
// caused them, per the bus contract.

// EntityDestroyed is emitted when combat destroys a scoring entity.
// Points carries the kill value with script bonuses applied.
type EntityDestroyed struct {
	Handle ecs.Handle
	Name   string
	Points int
}

// WaveStarted announces a freshly spawned wave.
type WaveStarted struct {
	Number  int
	Enemies int
	Boss    bool
}

// WaveCleared is emitted when the last hostile of a wave is gone.
type WaveCleared struct {
	Number int
}

// BossSpawned is emitted alongside WaveStarted for boss waves.
type BossSpawned struct {
	Handle ecs.Handle
	Name   string
	Wave   int
}

// PlayerDied ends the session: the score system flips the session to over
// and the main loop winds down.
type PlayerDied struct {
	Handle ecs.Handle
	Wave   int
}

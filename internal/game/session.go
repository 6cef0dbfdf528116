package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/voidfall/voidfall/internal/core/ecs"
)

// Session holds the running state of one game: score, wave progress and the
// player's ship. Accessed only from the game loop goroutine, no locks.
// Pure data except for the constructor; systems do the mutating.
type Session struct {
	ID        string
	StartedAt time.Time

	Ship  ecs.Handle
	Score int
	Wave  int // last wave started, 0 before the first

	Kills   int // hostiles destroyed by the player
	Spawned int // entities created by the spawn director

	Over bool // set when the player dies; the loop winds down
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Elapsed returns how long the session has been running.
func (s *Session) Elapsed() time.Duration {
	return time.Since(s.StartedAt)
}

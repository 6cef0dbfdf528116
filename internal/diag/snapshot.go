package diag

import (
	"fmt"
	"io"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/game"
)

// Snapshot is a point-in-time view of a session for offline inspection.
// It is written as indented JSON so it can be diffed between runs.
type Snapshot struct {
	SessionID string    `json:"session_id"`
	TakenAt   time.Time `json:"taken_at"`

	Score   int  `json:"score"`
	Wave    int  `json:"wave"`
	Kills   int  `json:"kills"`
	Spawned int  `json:"spawned"`
	Over    bool `json:"over"`

	Entities      int            `json:"entities"`
	Components    map[string]int `json:"components"`
	PendingEvents int            `json:"pending_events"`
}

// Capture assembles a snapshot of the current world and session state.
func Capture(w *ecs.World, d *game.Deps) *Snapshot {
	st := d.Stores
	return &Snapshot{
		SessionID: d.Session.ID,
		TakenAt:   time.Now().UTC(),
		Score:     d.Session.Score,
		Wave:      d.Session.Wave,
		Kills:     d.Session.Kills,
		Spawned:   d.Session.Spawned,
		Over:      d.Session.Over,
		Entities:  w.EntityCount(),
		Components: map[string]int{
			st.Transform.Name(): st.Transform.Len(),
			st.Motion.Name():    st.Motion.Len(),
			st.Health.Name():    st.Health.Len(),
			st.Collider.Name():  st.Collider.Len(),
			st.Weapon.Name():    st.Weapon.Len(),
			st.Lifetime.Name():  st.Lifetime.Len(),
			st.Kind.Name():      st.Kind.Len(),
			st.Player.Name():    st.Player.Len(),
			st.Boss.Name():      st.Boss.Len(),
			st.PowerUp.Name():   st.PowerUp.Len(),
		},
		PendingEvents: d.Bus.Pending(),
	}
}

// Write renders the snapshot as indented JSON.
func (s *Snapshot) Write(out io.Writer) error {
	raw, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	raw = append(raw, '\n')
	if _, err := out.Write(raw); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

// WriteFile writes the snapshot to path, replacing any previous one.
func (s *Snapshot) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create snapshot %s: %w", path, err)
	}
	if err := s.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

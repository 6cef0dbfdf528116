package system_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voidfall/voidfall/internal/core/ecs"
	"github.com/voidfall/voidfall/internal/core/system"
)

type recordingSystem struct {
	name  string
	phase system.Phase
	log   *[]string
}

func (s *recordingSystem) Phase() system.Phase { return s.phase }

func (s *recordingSystem) Update(_ *ecs.World, _ time.Duration) {
	*s.log = append(*s.log, s.name)
}

func TestRunnerTickRunsInPhaseOrder(t *testing.T) {
	var log []string
	r := system.NewRunner()
	r.Register(&recordingSystem{"cleanup", system.PhaseCleanup, &log})
	r.Register(&recordingSystem{"update", system.PhaseUpdate, &log})
	r.Register(&recordingSystem{"input", system.PhaseInput, &log})

	r.Tick(ecs.NewWorld(0), time.Millisecond)
	assert.Equal(t, []string{"input", "update", "cleanup"}, log)
}

func TestRunnerStableWithinPhase(t *testing.T) {
	var log []string
	r := system.NewRunner()
	r.Register(&recordingSystem{"first", system.PhaseUpdate, &log})
	r.Register(&recordingSystem{"second", system.PhaseUpdate, &log})
	r.Register(&recordingSystem{"third", system.PhaseUpdate, &log})

	w := ecs.NewWorld(0)
	for i := 0; i < 3; i++ {
		log = log[:0]
		r.Tick(w, time.Millisecond)
		assert.Equal(t, []string{"first", "second", "third"}, log)
	}
}

func TestRunnerRegisterAfterTick(t *testing.T) {
	var log []string
	r := system.NewRunner()
	r.Register(&recordingSystem{"update", system.PhaseUpdate, &log})

	w := ecs.NewWorld(0)
	r.Tick(w, time.Millisecond)

	// Late registration re-sorts on the next tick.
	r.Register(&recordingSystem{"events", system.PhasePreUpdate, &log})
	log = log[:0]
	r.Tick(w, time.Millisecond)
	assert.Equal(t, []string{"events", "update"}, log)
}

func TestRunnerTickPhase(t *testing.T) {
	var log []string
	r := system.NewRunner()
	r.Register(&recordingSystem{"update", system.PhaseUpdate, &log})
	r.Register(&recordingSystem{"cleanup", system.PhaseCleanup, &log})

	r.TickPhase(ecs.NewWorld(0), system.PhaseCleanup, time.Millisecond)
	assert.Equal(t, []string{"cleanup"}, log)
}

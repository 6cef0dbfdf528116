package game

import (
	"math/rand"

	"go.uber.org/zap"

	"github.com/voidfall/voidfall/internal/config"
	"github.com/voidfall/voidfall/internal/core/event"
	"github.com/voidfall/voidfall/internal/data"
	"github.com/voidfall/voidfall/internal/scripting"
)

// Deps holds shared dependencies injected into all game systems and
// factories. The world is deliberately not here: systems receive it on
// every Update call, so nothing keeps a second path to entity state.
type Deps struct {
	Config    *config.Config
	Log       *zap.Logger
	Bus       *event.Bus
	Stores    *Stores
	Session   *Session
	Templates *data.TemplateTable
	Waves     *data.WaveTable
	Script    *scripting.Engine // nil when wave scripting is disabled
	Rand      *rand.Rand        // seeded from config for reproducible runs
}

package scheduler

import (
	"context"
	"fmt"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/npc"
	"github.com/zeusync/arenabot/internal/core/observability/log"
)

// Liveness polls the bot's own state and raises the stop signal the first
// time it reads Dead. It is the only writer of the signal.
type Liveness struct {
	arena   arena.Arena
	stop    *StopSignal
	logger  log.Log
	onDeath func(arena.SelfState)
}

func NewLiveness(a arena.Arena, stop *StopSignal, logger log.Log, onDeath func(arena.SelfState)) *Liveness {
	return &Liveness{arena: a, stop: stop, logger: logger, onDeath: onDeath}
}

// Check is one liveness cycle.
func (l *Liveness) Check(ctx context.Context) error {
	self, err := l.arena.FetchSelfState(ctx)
	if err != nil {
		return fmt.Errorf("%w: fetch self state: %w", npc.ErrSense, err)
	}
	if !self.Dead {
		return nil
	}

	if l.stop.Raise() {
		l.logger.Info("bot died, stopping",
			log.Uint64("id", uint64(self.ID)),
			log.Uint64("score", uint64(self.Score)),
		)
		if l.onDeath != nil {
			l.onDeath(self)
		}
	}
	return nil
}

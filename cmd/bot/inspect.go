package main

import (
	"context"

	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/observability/log"
)

// inspect logs the bot's own state and every radar contact once.
func inspect(ctx context.Context, a arena.Arena, logger log.Log) error {
	self, err := a.FetchSelfState(ctx)
	if err != nil {
		return err
	}
	logger.Info("self",
		log.Uint64("id", uint64(self.ID)),
		log.Float64("x", self.Position.X),
		log.Float64("y", self.Position.Y),
		log.Float64("z", self.Position.Z),
		log.Float64("vx", self.Velocity.X),
		log.Float64("vy", self.Velocity.Y),
		log.Float64("vz", self.Velocity.Z),
		log.Uint64("health", uint64(self.Health)),
		log.Uint64("score", uint64(self.Score)),
		log.Uint64("armor", uint64(self.Armor)),
		log.Bool("dead", self.Dead),
	)

	scan, err := a.ScanEnvironment(ctx)
	if err != nil {
		return err
	}
	contacts := 0
	for obj := range scan {
		logger.Info("radar contact",
			log.Uint64("id", uint64(obj.ID)),
			log.String("kind", obj.Kind.String()),
			log.Float64("x", obj.Position.X),
			log.Float64("y", obj.Position.Y),
			log.Float64("z", obj.Position.Z),
		)
		contacts++
	}
	logger.Info("radar scan complete", log.Int("contacts", contacts))
	return nil
}

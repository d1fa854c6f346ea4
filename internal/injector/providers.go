package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/arenabot/internal/config"
	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/arena/sim"
	"github.com/zeusync/arenabot/internal/core/events/bus"
	"github.com/zeusync/arenabot/internal/core/npc"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/scheduler"
	"github.com/zeusync/arenabot/internal/server"
)

// Bot is a fully wired agent with its run statistics.
type Bot struct {
	Agent  *scheduler.Agent
	Stats  *scheduler.Stats
	Logger log.Log
}

var (
	LoggerSet = wire.NewSet(ProvideLogger)

	BotSet = wire.NewSet(
		ProvideEventBus,
		ProvideSteering,
		ProvideTargeting,
		ProvideAgent,
		ProvideStats,
		wire.Struct(new(Bot), "*"),
	)

	ArenaSet = wire.NewSet(
		LoggerSet,
		ProvideWorld,
		ProvideServer,
	)
)

func ProvideLogger(cfg config.Config) log.Log {
	return log.NewWithOptions(cfg.LogOptions())
}

func ProvideEventBus() bus.EventBus {
	return bus.New()
}

// ProvideSteering seeds exploration from the bot name so runs are repeatable.
func ProvideSteering(cfg config.Config) *npc.Steering {
	return npc.NewSteering(cfg.Steering, npc.SeedFromName(cfg.Bot.Name))
}

func ProvideTargeting(cfg config.Config) *npc.Targeting {
	return npc.NewTargeting(cfg.Targeting)
}

func ProvideAgent(
	cfg config.Config,
	a arena.Arena,
	steering *npc.Steering,
	targeting *npc.Targeting,
	events bus.EventBus,
	logger log.Log,
) *scheduler.Agent {
	return scheduler.NewAgent(cfg.Bot.Name, a, steering, targeting, cfg.Schedule, events, logger)
}

func ProvideStats(events bus.EventBus) (*scheduler.Stats, func(), error) {
	stats, err := scheduler.NewStats(events)
	if err != nil {
		return nil, nil, err
	}
	return stats, func() { _ = stats.Close() }, nil
}

func ProvideWorld(cfg config.Config, logger log.Log) *sim.World {
	return sim.NewWorld(cfg.Arena.World, logger)
}

func ProvideServer(cfg config.Config, world *sim.World, logger log.Log) *server.Server {
	return server.New(cfg.Arena.Server, world, logger)
}

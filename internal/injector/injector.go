//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/arenabot/internal/config"
	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/server"
)

func InitializeBot(cfg config.Config, a arena.Arena, logger log.Log) (*Bot, func(), error) {
	wire.Build(BotSet)
	return nil, nil, nil
}

func InitializeArena(cfg config.Config) (*server.Server, error) {
	wire.Build(ArenaSet)
	return nil, nil
}

package injector

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/arenabot/internal/config"
	"github.com/zeusync/arenabot/internal/core/arena/sim"
	"github.com/zeusync/arenabot/internal/core/observability/log"
)

func testConfig() config.Config {
	cfg := config.Default()
	cfg.Log.Level = "error"
	cfg.Schedule.MovementInterval = 5 * time.Millisecond
	cfg.Schedule.ShootingInterval = 5 * time.Millisecond
	cfg.Schedule.LivenessInterval = 5 * time.Millisecond
	cfg.Arena.World.Boosts = 0
	cfg.Arena.World.Obstacles = 0
	return cfg
}

func TestInitializeBot_RunsAgainstSimulatedArena(t *testing.T) {
	cfg := testConfig()
	world := sim.NewWorld(cfg.Arena.World, log.NewNop())
	session := world.Join(cfg.Bot.Name)

	bot, cleanup, err := InitializeBot(cfg, session, log.NewNop())
	require.NoError(t, err)
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	require.NoError(t, bot.Agent.Run(ctx))

	sum := bot.Stats.Summary()
	assert.Positive(t, sum.VelocityCommands)
	assert.False(t, sum.Died)
	assert.Len(t, sum.TaskCycles, 3)

	self, err := session.FetchSelfState(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 1, self.Velocity.Length2(), 1e-9, "the bot should be exploring at base speed")
}

func TestInitializeArena(t *testing.T) {
	srv, err := InitializeArena(testConfig())

	require.NoError(t, err)
	assert.NotNil(t, srv.Handler())
	assert.Empty(t, srv.WebSocketURL())
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zeusync/arenabot/internal/core/npc"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/scheduler"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, scheduler.DefaultInterval, cfg.Schedule.MovementInterval)
	assert.Equal(t, 30.0, cfg.Steering.EngageRange)
}

func TestLoadYAML_OverridesDefaults(t *testing.T) {
	doc := `
bot:
  name: hunter
  server: quic://10.0.0.1:4242
schedule:
  shooting_interval: 100ms
log:
  level: debug
`
	cfg, err := LoadYAML(strings.NewReader(doc))

	require.NoError(t, err)
	assert.Equal(t, "hunter", cfg.Bot.Name)
	assert.Equal(t, "quic://10.0.0.1:4242", cfg.Bot.Server)
	assert.Equal(t, 100*time.Millisecond, cfg.Schedule.ShootingInterval)
	assert.Equal(t, scheduler.DefaultInterval, cfg.Schedule.MovementInterval)
	assert.Equal(t, log.LevelDebug, cfg.LogOptions().Level)
	assert.Equal(t, npc.DefaultWallRadius, cfg.Steering.WallRadius)
}

func TestLoadYAML_EngageRangeFollowsWeaponRange(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader("targeting:\n  max_shoot_range: 20\n"))
	require.NoError(t, err)
	assert.Equal(t, 60.0, cfg.Steering.EngageRange)

	cfg, err = LoadYAML(strings.NewReader("targeting:\n  max_shoot_range: 20\nsteering:\n  engage_range: 25\n"))
	require.NoError(t, err)
	assert.Equal(t, 25.0, cfg.Steering.EngageRange)
}

func TestLoadYAML_EmptyDocumentGivesDefaults(t *testing.T) {
	cfg, err := LoadYAML(strings.NewReader(""))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadJSON(t *testing.T) {
	cfg, err := LoadJSON(strings.NewReader(`{"bot": {"name": "json-bot"}, "targeting": {"max_shoot_range": 12}}`))

	require.NoError(t, err)
	assert.Equal(t, "json-bot", cfg.Bot.Name)
	assert.Equal(t, 36.0, cfg.Steering.EngageRange)
}

func TestValidate_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty name":       "bot:\n  name: \"\"\n",
		"bad scheme":       "bot:\n  server: tcp://x:1\n",
		"bad level":        "log:\n  level: loud\n",
		"bad encoding":     "log:\n  encoding: xml\n",
		"zero interval":    "schedule:\n  liveness_interval: 0s\n",
		"zero standoff":    "steering:\n  enemy_standoff: 0\n",
		"negative timeout": "bot:\n  request_timeout: -1s\n",
		"zero world tick":  "arena:\n  world:\n    tick: 0s\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(doc))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	cfg, err := LoadFile(filepath.Join("..", "..", "configs", "arenabot.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, "127.0.0.1:4242", cfg.Arena.Server.QUICAddr)

	dir := t.TempDir()
	toml := filepath.Join(dir, "bot.toml")
	require.NoError(t, os.WriteFile(toml, []byte("name = 'x'"), 0o600))
	_, err = LoadFile(toml)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

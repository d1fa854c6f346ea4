// Package config loads bot and arena settings from YAML or JSON files.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/arenabot/internal/core/arena/sim"
	"github.com/zeusync/arenabot/internal/core/npc"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/protocol"
	"github.com/zeusync/arenabot/internal/core/scheduler"
	"github.com/zeusync/arenabot/internal/server"
)

var (
	ErrInvalidConfig     = errors.New("invalid config")
	ErrUnsupportedFormat = errors.New("unsupported config format")
)

type Config struct {
	Bot       BotConfig           `json:"bot" yaml:"bot"`
	Steering  npc.SteeringConfig  `json:"steering" yaml:"steering"`
	Targeting npc.TargetingConfig `json:"targeting" yaml:"targeting"`
	Schedule  scheduler.Config    `json:"schedule" yaml:"schedule"`
	Log       LogConfig           `json:"log" yaml:"log"`
	Arena     ArenaConfig         `json:"arena" yaml:"arena"`
}

type BotConfig struct {
	Name string `json:"name" yaml:"name"`
	// Server is a ws://, wss:// or quic:// URL.
	Server         string        `json:"server" yaml:"server"`
	RequestTimeout time.Duration `json:"request_timeout" yaml:"request_timeout"`
}

type LogConfig struct {
	Level    string `json:"level" yaml:"level"`
	Encoding string `json:"encoding" yaml:"encoding"`
}

// ArenaConfig configures the simulated arena used by cmd/arena and offline
// runs.
type ArenaConfig struct {
	Server server.Config `json:"server" yaml:"server"`
	World  sim.Config    `json:"world" yaml:"world"`
}

func Default() Config {
	return Config{
		Bot: BotConfig{
			Name:           "arenabot",
			Server:         "ws://127.0.0.1:8080/arena",
			RequestTimeout: protocol.DefaultRequestTimeout,
		},
		Steering:  npc.DefaultSteeringConfig(),
		Targeting: npc.DefaultTargetingConfig(),
		Schedule:  scheduler.DefaultConfig(),
		Log:       LogConfig{Level: "info", Encoding: "json"},
		Arena: ArenaConfig{
			Server: server.DefaultConfig(),
			World:  sim.DefaultConfig(),
		},
	}
}

// LoadYAML decodes r over the defaults.
func LoadYAML(r io.Reader) (Config, error) {
	cfg := base()
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode yaml: %w", err)
	}
	return finish(cfg)
}

// LoadJSON decodes r over the defaults. Durations are nanoseconds.
func LoadJSON(r io.Reader) (Config, error) {
	cfg := base()
	if err := json.NewDecoder(r).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode json: %w", err)
	}
	return finish(cfg)
}

// LoadFile picks the decoder from the file extension.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return LoadYAML(f)
	case ".json":
		return LoadJSON(f)
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// base is Default with the engage range left unset so it can follow a
// configured weapon range.
func base() Config {
	cfg := Default()
	cfg.Steering.EngageRange = 0
	return cfg
}

func finish(cfg Config) (Config, error) {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Normalize fills derived values.
func (c *Config) Normalize() {
	if c.Steering.EngageRange == 0 {
		c.Steering.EngageRange = npc.DefaultEngageFactor * c.Targeting.MaxShootRange
	}
}

func (c Config) Validate() error {
	if c.Bot.Name == "" {
		return fmt.Errorf("%w: bot.name is empty", ErrInvalidConfig)
	}
	u, err := url.Parse(c.Bot.Server)
	if err != nil {
		return fmt.Errorf("%w: bot.server: %w", ErrInvalidConfig, err)
	}
	switch u.Scheme {
	case "ws", "wss", "quic":
	default:
		return fmt.Errorf("%w: bot.server scheme %q, want ws, wss or quic", ErrInvalidConfig, u.Scheme)
	}
	if c.Bot.RequestTimeout < 0 {
		return fmt.Errorf("%w: bot.request_timeout is negative", ErrInvalidConfig)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("%w: log.level %q", ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Encoding {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log.encoding %q", ErrInvalidConfig, c.Log.Encoding)
	}

	sections := []struct {
		name string
		err  error
	}{
		{"steering", c.Steering.Validate()},
		{"targeting", c.Targeting.Validate()},
		{"schedule", c.Schedule.Validate()},
		{"arena.world", c.Arena.World.Validate()},
	}
	for _, s := range sections {
		if s.err != nil {
			return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, s.name, s.err)
		}
	}
	return nil
}

// LogOptions converts the log section for log.NewWithOptions.
func (c Config) LogOptions() log.Options {
	return log.Options{Level: log.ParseLevel(c.Log.Level), Encoding: c.Log.Encoding}
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/arenabot/internal/config"
	"github.com/zeusync/arenabot/internal/core/arena"
	"github.com/zeusync/arenabot/internal/core/arena/sim"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/protocol"
	"github.com/zeusync/arenabot/internal/core/scheduler"
	"github.com/zeusync/arenabot/internal/injector"
)

type options struct {
	inspect   bool
	offline   bool
	opponents int
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML or JSON config file")
		name       = flag.String("name", "", "bot name (overrides config)")
		serverURL  = flag.String("server", "", "arena URL, ws://host:port/path or quic://host:port (overrides config)")
		logLevel   = flag.String("log-level", "", "debug, info, warn or error (overrides config)")
		opts       options
	)
	flag.BoolVar(&opts.inspect, "inspect", false, "log own state and radar contacts once, then exit")
	flag.BoolVar(&opts.offline, "offline", false, "play in an in-process simulated arena")
	flag.IntVar(&opts.opponents, "opponents", 3, "sparring bots in offline mode")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(2)
		}
	}
	if *name != "" {
		cfg.Bot.Name = *name
	}
	if *serverURL != "" {
		cfg.Bot.Server = *serverURL
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := log.NewWithOptions(cfg.LogOptions())
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, opts, logger); err != nil {
		logger.Error("bot failed", log.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, opts options, logger log.Log) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a, closeArena, err := openArena(ctx, cfg, opts, logger)
	if err != nil {
		return err
	}
	defer closeArena()

	if opts.inspect {
		return inspect(ctx, a, logger)
	}

	bot, cleanup, err := injector.InitializeBot(cfg, a, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	err = bot.Agent.Run(ctx)
	logSummary(logger, bot.Stats.Summary())
	return err
}

// openArena connects to the configured server, or builds a local world with
// sparring bots when offline.
func openArena(ctx context.Context, cfg config.Config, opts options, logger log.Log) (arena.Arena, func(), error) {
	if !opts.offline {
		client, self, err := protocol.Connect(ctx, cfg.Bot.Server, cfg.Bot.Name, cfg.Bot.RequestTimeout, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("connected", log.String("server", cfg.Bot.Server), log.Uint64("id", uint64(self.ID)))
		return client, func() { _ = client.Close() }, nil
	}

	world := sim.NewWorld(cfg.Arena.World, logger)
	go world.Run(ctx)

	quiet := log.NewWithOptions(log.Options{Level: log.LevelWarn, Encoding: cfg.Log.Encoding}).
		With(log.String("role", "sparring"))
	for i := range opts.opponents {
		sparring := cfg
		sparring.Bot.Name = fmt.Sprintf("sparring-%d", i+1)
		session := world.Join(sparring.Bot.Name)
		bot, cleanup, err := injector.InitializeBot(sparring, session, quiet)
		if err != nil {
			return nil, nil, err
		}
		go func() {
			defer cleanup()
			_ = bot.Agent.Run(ctx)
		}()
	}

	session := world.Join(cfg.Bot.Name)
	logger.Info("offline arena ready", log.Int("opponents", opts.opponents), log.Uint64("id", uint64(session.ID())))
	return session, func() { _ = session.Close() }, nil
}

func logSummary(logger log.Log, sum scheduler.Summary) {
	fields := []log.Field{
		log.Bool("died", sum.Died),
		log.Uint64("score", uint64(sum.FinalScore)),
		log.Uint64("velocity_commands", sum.VelocityCommands),
		log.Uint64("shots_fired", sum.ShotsFired),
		log.Uint64("hits", sum.Hits),
		log.Uint64("damage", sum.Damage),
	}
	for reason, n := range sum.Failures {
		fields = append(fields, log.Uint64("failed_"+reason.String(), n))
	}
	for task, n := range sum.TaskCycles {
		fields = append(fields, log.Uint64(task+"_cycles", n))
	}
	logger.Info("run summary", fields...)
}

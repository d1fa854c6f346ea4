package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/arenabot/internal/config"
	"github.com/zeusync/arenabot/internal/injector"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML or JSON config file")
		httpAddr   = flag.String("http", "", "websocket listen address (overrides config)")
		quicAddr   = flag.String("quic", "", "QUIC listen address (overrides config)")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(2)
		}
	}
	if *httpAddr != "" {
		cfg.Arena.Server.HTTPAddr = *httpAddr
	}
	if *quicAddr != "" {
		cfg.Arena.Server.QUICAddr = *quicAddr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := injector.InitializeArena(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "initialize arena:", err)
		os.Exit(1)
	}
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "start arena:", err)
		os.Exit(1)
	}

	<-ctx.Done()
	if err := srv.Stop(); err != nil {
		fmt.Fprintln(os.Stderr, "stop arena:", err)
	}
}

// Package server exposes a simulated arena to remote bots over websocket and
// QUIC.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	quicgo "github.com/quic-go/quic-go"

	"github.com/zeusync/arenabot/internal/core/arena/sim"
	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/protocol/quic"
)

const shutdownTimeout = 5 * time.Second

// Config holds listener settings. An empty QUICAddr disables QUIC.
type Config struct {
	HTTPAddr string `json:"http_addr" yaml:"http_addr"`
	Path     string `json:"path" yaml:"path"`
	QUICAddr string `json:"quic_addr" yaml:"quic_addr"`
}

func DefaultConfig() Config {
	return Config{
		HTTPAddr: "127.0.0.1:8080",
		Path:     "/arena",
		QUICAddr: "127.0.0.1:4242",
	}
}

type Server struct {
	cfg    Config
	world  *sim.World
	logger log.Log

	ctx    context.Context
	cancel context.CancelFunc

	running  atomic.Bool
	http     *http.Server
	httpAddr net.Addr
	quic     *quicgo.Listener

	// connection and accept goroutines
	workers sync.WaitGroup
}

func New(cfg Config, world *sim.World, logger log.Log) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		cfg:    cfg,
		world:  world,
		logger: logger.With(log.String("component", "arena_server")),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler serves the websocket endpoint and the player listing.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.cfg.Path, s.handleWebSocket)
	mux.HandleFunc("/players", s.handlePlayers)
	return mux
}

// Start opens the listeners and begins ticking the world. It returns once
// everything is listening; ctx cancellation stops the server.
func (s *Server) Start(ctx context.Context) error {
	if !s.running.CompareAndSwap(false, true) {
		return ErrServerAlreadyRunning
	}
	context.AfterFunc(ctx, s.cancel)

	ln, err := net.Listen("tcp", s.cfg.HTTPAddr)
	if err != nil {
		s.running.Store(false)
		return fmt.Errorf("%w: http %s: %w", ErrListenerFailed, s.cfg.HTTPAddr, err)
	}
	s.httpAddr = ln.Addr()
	s.http = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}

	if s.cfg.QUICAddr != "" {
		s.quic, err = quic.Listen(s.cfg.QUICAddr)
		if err != nil {
			_ = ln.Close()
			s.running.Store(false)
			return fmt.Errorf("%w: quic %s: %w", ErrListenerFailed, s.cfg.QUICAddr, err)
		}
		s.workers.Add(1)
		go s.acceptQUIC()
	}

	s.workers.Add(2)
	go func() {
		defer s.workers.Done()
		if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("http server failed", log.Error(err))
		}
	}()
	go func() {
		defer s.workers.Done()
		s.world.Run(s.ctx)
	}()

	s.logger.Info("arena listening",
		log.String("ws", s.WebSocketURL()),
		log.String("quic", s.QUICURL()),
	)
	return nil
}

// Stop closes the listeners and every open connection, then waits for them.
func (s *Server) Stop() error {
	if !s.running.CompareAndSwap(true, false) {
		return ErrServerNotRunning
	}
	s.cancel()

	var errs error
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(ctx); err != nil {
		errs = errors.Join(errs, err)
	}
	if s.quic != nil {
		if err := s.quic.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}
	s.workers.Wait()
	s.logger.Info("arena stopped")
	return errs
}

// WebSocketURL is the ws:// URL bots dial. Empty until Start.
func (s *Server) WebSocketURL() string {
	if s.httpAddr == nil {
		return ""
	}
	return "ws://" + s.httpAddr.String() + s.cfg.Path
}

// QUICURL is the quic:// URL bots dial. Empty when QUIC is disabled.
func (s *Server) QUICURL() string {
	if s.quic == nil {
		return ""
	}
	return "quic://" + s.quic.Addr().String()
}

func (s *Server) acceptQUIC() {
	defer s.workers.Done()
	for {
		qc, err := s.quic.Accept(s.ctx)
		if err != nil {
			if s.ctx.Err() == nil {
				s.logger.Warn("quic accept failed", log.Error(err))
			}
			return
		}

		s.workers.Add(1)
		go func() {
			defer s.workers.Done()
			conn, err := quic.Accept(s.ctx, qc)
			if err != nil {
				s.logger.Debug("quic stream not opened", log.Error(err))
				_ = qc.CloseWithError(1, "no request stream")
				return
			}
			s.ServeConn(s.ctx, conn, qc.RemoteAddr().String())
		}()
	}
}

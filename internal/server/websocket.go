package server

import (
	"net/http"

	"github.com/zeusync/arenabot/internal/core/observability/log"
	"github.com/zeusync/arenabot/internal/core/protocol/websocket"
)

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r)
	if err != nil {
		s.logger.Debug("websocket upgrade failed", log.String("remote", r.RemoteAddr), log.Error(err))
		return
	}

	s.workers.Add(1)
	defer s.workers.Done()
	s.ServeConn(s.ctx, conn, r.RemoteAddr)
}

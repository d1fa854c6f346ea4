package server

import (
	"encoding/json"
	"net/http"

	"github.com/zeusync/arenabot/internal/core/observability/log"
)

// handlePlayers lists every player's state as JSON.
func (s *Server) handlePlayers(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.world.Players()); err != nil {
		s.logger.Debug("write players failed", log.Error(err))
	}
}

package api

import (
	"net/http"

	"github.com/arnav/studyflow/internal/logger"
)

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	log.Debug("assembling dashboard for profile %d", ownerID(r))

	dashboard, err := s.Dashboard.Overview(r.Context(), ownerID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, dashboard)
}

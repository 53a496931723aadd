package api

import (
	"net/http"

	"github.com/arnav/studyflow/internal/models"
)

func (s *Server) handleListTargets(w http.ResponseWriter, r *http.Request) {
	targets, err := s.Targets.ListWithProgress(r.Context(), ownerID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"targets": targets})
}

func (s *Server) handleCreateTarget(w http.ResponseWriter, r *http.Request) {
	var target models.PracticeTarget
	if err := decodeJSON(r, &target); err != nil {
		handleError(w, r, err)
		return
	}
	target.ID = 0
	target.OwnerID = ownerID(r)

	created, err := s.Targets.Create(r.Context(), target)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleDeleteTarget(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Targets.Delete(r.Context(), ownerID(r), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

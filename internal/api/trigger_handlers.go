package api

import (
	"net/http"

	"github.com/arnav/studyflow/internal/models"
)

func (s *Server) handleListTriggers(w http.ResponseWriter, r *http.Request) {
	triggers, err := s.Triggers.ListByOwner(r.Context(), ownerID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"triggers": triggers})
}

func (s *Server) handleCreateTrigger(w http.ResponseWriter, r *http.Request) {
	var trigger models.CelebrationTrigger
	if err := decodeJSON(r, &trigger); err != nil {
		handleError(w, r, err)
		return
	}
	trigger.ID = 0
	trigger.OwnerID = ownerID(r)

	created, err := s.Triggers.Create(r.Context(), trigger)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateTrigger(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var trigger models.CelebrationTrigger
	if err := decodeJSON(r, &trigger); err != nil {
		handleError(w, r, err)
		return
	}
	trigger.ID = id
	trigger.OwnerID = ownerID(r)

	updated, err := s.Triggers.Update(r.Context(), trigger)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteTrigger(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Triggers.Delete(r.Context(), ownerID(r), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

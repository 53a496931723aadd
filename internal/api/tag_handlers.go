package api

import (
	"net/http"

	"github.com/arnav/studyflow/internal/models"
)

func (s *Server) handleListTags(w http.ResponseWriter, r *http.Request) {
	tags, err := s.Tags.ListByOwner(r.Context(), ownerID(r))
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"tags": tags})
}

func (s *Server) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var tag models.QuickTag
	if err := decodeJSON(r, &tag); err != nil {
		handleError(w, r, err)
		return
	}
	tag.ID = 0
	tag.OwnerID = ownerID(r)
	tag.IsDefault = false

	created, err := s.Tags.Create(r.Context(), tag)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateTag(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var tag models.QuickTag
	if err := decodeJSON(r, &tag); err != nil {
		handleError(w, r, err)
		return
	}
	tag.ID = id
	tag.OwnerID = ownerID(r)

	updated, err := s.Tags.Update(r.Context(), tag)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Tags.Delete(r.Context(), ownerID(r), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

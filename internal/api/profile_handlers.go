package api

import (
	"net/http"

	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/logger"
)

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := s.Profiles.ListProfiles(r.Context())
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"profiles": profiles})
}

func (s *Server) handleCreateProfile(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	profile, err := s.Profiles.CreateProfile(r.Context(), req.Name)
	if err != nil {
		handleError(w, r, err)
		return
	}

	setProfileCookie(w, profile.ID)
	respondJSON(w, r, http.StatusCreated, profile)
}

func (s *Server) handleSelectProfile(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	profile, err := s.Profiles.GetProfile(r.Context(), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	if profile == nil {
		handleError(w, r, errors.NewNotFoundError("profile", id))
		return
	}

	setProfileCookie(w, profile.ID)
	respondJSON(w, r, http.StatusOK, profile)
}

func (s *Server) handleDeleteProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Profiles.DeleteProfile(r.Context(), id); err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("profile %d deleted", id)
	clearProfileCookie(w)
	respondJSON(w, r, http.StatusNoContent, nil)
}

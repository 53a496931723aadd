package api

import (
	"net/http"
	"strconv"

	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/models"
)

func (s *Server) handleListSessions(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.SessionFilter{
		OwnerID:  ownerID(r),
		Subject:  q.Get("subject"),
		Chapter:  q.Get("chapter"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
		OrderDir: q.Get("order_dir"),
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	sessions, err := s.Sessions.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"sessions": sessions})
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	session, err := s.Sessions.Get(r.Context(), ownerID(r), id)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, session)
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var session models.PracticeSession
	if err := decodeJSON(r, &session); err != nil {
		handleError(w, r, err)
		return
	}
	session.ID = 0
	session.OwnerID = ownerID(r)

	created, decision, err := s.Sessions.Create(r.Context(), session)
	if err != nil {
		handleError(w, r, err)
		return
	}

	log.Info("session %d created (%s %s, %d questions)",
		created.ID, created.Subject, created.Chapter, created.QuestionsSolved)

	resp := map[string]any{"session": created}
	if decision != nil && decision.Fire {
		resp["celebration"] = decision
	}
	respondJSON(w, r, http.StatusCreated, resp)
}

func (s *Server) handleUpdateSession(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var session models.PracticeSession
	if err := decodeJSON(r, &session); err != nil {
		handleError(w, r, err)
		return
	}
	session.ID = id
	session.OwnerID = ownerID(r)

	updated, err := s.Sessions.Update(r.Context(), session)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Sessions.Delete(r.Context(), ownerID(r), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

func (s *Server) handleRefreshInsights(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if err := s.Queue.EnqueueInsightRefresh(ownerID(r)); err != nil {
		handleError(w, r, errors.NewInternalError(err))
		return
	}

	log.Info("insight refresh queued for profile %d", ownerID(r))
	respondJSON(w, r, http.StatusAccepted, map[string]any{"status": "queued"})
}

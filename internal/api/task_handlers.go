package api

import (
	"net/http"
	"strconv"

	"github.com/arnav/studyflow/internal/models"
)

func (s *Server) handleListTasks(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.TaskFilter{
		OwnerID:  ownerID(r),
		Subject:  q.Get("subject"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
	}
	if c := q.Get("completed"); c != "" {
		completed := c == "true" || c == "1"
		filter.Completed = &completed
	}
	if limit, err := strconv.Atoi(q.Get("limit")); err == nil && limit > 0 {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(q.Get("offset")); err == nil && offset > 0 {
		filter.Offset = offset
	}

	tasks, err := s.Tasks.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, map[string]any{"tasks": tasks})
}

func (s *Server) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var task models.Task
	if err := decodeJSON(r, &task); err != nil {
		handleError(w, r, err)
		return
	}
	task.ID = 0
	task.OwnerID = ownerID(r)

	created, err := s.Tasks.Create(r.Context(), task)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusCreated, created)
}

func (s *Server) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var task models.Task
	if err := decodeJSON(r, &task); err != nil {
		handleError(w, r, err)
		return
	}
	task.ID = id
	task.OwnerID = ownerID(r)

	updated, err := s.Tasks.Update(r.Context(), task)
	if err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusOK, updated)
}

func (s *Server) handleCompleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	var req struct {
		Completed bool `json:"completed"`
	}
	if err := decodeJSON(r, &req); err != nil {
		handleError(w, r, err)
		return
	}

	task, decision, err := s.Tasks.SetCompleted(r.Context(), ownerID(r), id, req.Completed)
	if err != nil {
		handleError(w, r, err)
		return
	}

	resp := map[string]any{"task": task}
	if decision != nil && decision.Fire {
		resp["celebration"] = decision
	}
	respondJSON(w, r, http.StatusOK, resp)
}

func (s *Server) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		handleError(w, r, err)
		return
	}

	if err := s.Tasks.Delete(r.Context(), ownerID(r), id); err != nil {
		handleError(w, r, err)
		return
	}
	respondJSON(w, r, http.StatusNoContent, nil)
}

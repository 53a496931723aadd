package api

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/arnav/studyflow/internal/errors"
	"github.com/arnav/studyflow/internal/jobs"
	"github.com/arnav/studyflow/internal/logger"
	"github.com/arnav/studyflow/internal/services"
)

type Server struct {
	Profiles  services.ProfileService
	Sessions  services.SessionService
	Tasks     services.TaskService
	Targets   services.TargetService
	Tags      services.TagService
	Triggers  services.TriggerService
	Dashboard services.DashboardService
	Insights  services.InsightService
	Queue     jobs.JobQueue
}

const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.FromContext(r.Context()).Error("failed to encode response: %v", err)
	}
}

func decodeJSON(r *http.Request, dst any) error {
	body := io.LimitReader(r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewBadRequestError("invalid request body: " + err.Error())
	}
	return nil
}

func idParam(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.NewBadRequestError("invalid id: " + idStr)
	}
	return id, nil
}

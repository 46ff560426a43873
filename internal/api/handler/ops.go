package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/airward/airward/internal/api/response"
	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/scheduler"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	scheduler *scheduler.Scheduler
	service   *pollution.Service
	version   string
	buildTime string
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(sched *scheduler.Scheduler, service *pollution.Service, version, buildTime string) *OpsHandler {
	return &OpsHandler{
		scheduler: sched,
		service:   service,
		version:   version,
		buildTime: buildTime,
	}
}

// healthResponse is the envelope for GET /v1/ops/health.
type healthResponse struct {
	Status    string           `json:"status"`
	Time      time.Time        `json:"time"`
	Version   string           `json:"version"`
	BuildTime string           `json:"build_time"`
	Scheduler scheduler.Health `json:"scheduler"`
}

// TriggerRefresh handles POST /v1/ops/refresh - run a refresh cycle now.
// Returns 503 while the scheduler is stopped and 502-class problems as 503
// so callers can retry; a successful cycle returns its outcome.
func (h *OpsHandler) TriggerRefresh(w http.ResponseWriter, r *http.Request) {
	outcome, err := h.scheduler.TriggerDataUpdate(r.Context())
	switch {
	case errors.Is(err, scheduler.ErrSchedulerStopped):
		response.ServiceUnavailable(w, r, "scheduler is stopped, refresh cannot be triggered")
		return
	case errors.Is(err, pollution.ErrUpstreamUnavailable):
		response.ServiceUnavailable(w, r, "station data provider unavailable, serving cached data")
		return
	case err != nil:
		response.InternalError(w, r, "refresh cycle failed")
		return
	}

	response.JSON(w, r, http.StatusOK, outcome)
}

// HealthCheck handles GET /v1/ops/health - liveness plus scheduler state.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := h.scheduler.HealthCheck(r.Context())

	status := "ok"
	if health.DataStale || health.Upstream != "ok" {
		status = "degraded"
	}

	response.JSON(w, r, http.StatusOK, healthResponse{
		Status:    status,
		Time:      time.Now(),
		Version:   h.version,
		BuildTime: h.buildTime,
		Scheduler: health,
	})
}

// ReadinessCheck handles GET /v1/ops/ready - ready once the cache holds data.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	status := h.service.Status()
	if !status.HasData {
		response.ServiceUnavailable(w, r, "pollution cache is empty, first refresh pending")
		return
	}

	response.JSON(w, r, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"ward_count":   status.WardCount,
		"refreshed_at": status.RefreshedAt,
		"stale":        status.Stale,
	})
}

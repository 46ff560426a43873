package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/airward/airward/internal/api/response"
	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/report"
	"github.com/airward/airward/internal/ward"
)

const (
	defaultHotspotLimit = 5
	maxHotspotLimit     = 50
)

// ReportHandler serves zone summaries, hotspot rankings and daily reports.
type ReportHandler struct {
	service    *pollution.Service
	registry   *ward.Registry
	repository report.SummaryRepository
	location   *time.Location
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *pollution.Service, registry *ward.Registry, repository report.SummaryRepository, location *time.Location) *ReportHandler {
	if location == nil {
		location = time.UTC
	}
	return &ReportHandler{
		service:    service,
		registry:   registry,
		repository: repository,
		location:   location,
	}
}

// zoneSummariesResponse is the envelope for GET /v1/zones.
type zoneSummariesResponse struct {
	Zones       map[string]report.ZoneSummary `json:"zones"`
	GeneratedAt time.Time                     `json:"generated_at"`
}

// ListZones handles GET /v1/zones - per-zone aggregate summaries.
// Serves the last persisted summary set when one exists, otherwise
// aggregates the live cache.
func (h *ReportHandler) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, generatedAt, err := h.repository.LatestZoneSummaries(r.Context())
	if err != nil {
		if !errors.Is(err, report.ErrNoSummaries) {
			response.InternalError(w, r, "failed to load zone summaries")
			return
		}

		snapshots := h.service.GetAll()
		if len(snapshots) == 0 {
			response.ServiceUnavailable(w, r, "no pollution data computed yet, retry shortly")
			return
		}
		zones = report.SummarizeZones(snapshots, h.registry)
		generatedAt = time.Now()
	}

	response.JSON(w, r, http.StatusOK, zoneSummariesResponse{
		Zones:       zones,
		GeneratedAt: generatedAt,
	})
}

// ListHotspots handles GET /v1/hotspots?limit= - worst wards by AQI.
func (h *ReportHandler) ListHotspots(w http.ResponseWriter, r *http.Request) {
	limit := defaultHotspotLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > maxHotspotLimit {
			response.BadRequest(w, r, "limit must be an integer between 1 and "+strconv.Itoa(maxHotspotLimit))
			return
		}
		limit = parsed
	}

	snapshots := h.service.GetAll()
	if len(snapshots) == 0 {
		response.ServiceUnavailable(w, r, "no pollution data computed yet, retry shortly")
		return
	}

	analysis := report.RankHotspots(snapshots, h.registry, limit)
	response.JSON(w, r, http.StatusOK, analysis)
}

// GetDailyReport handles GET /v1/reports/daily?date= - a persisted daily
// report. Defaults to today's date in the configured timezone.
func (h *ReportHandler) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().In(h.location).Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		response.BadRequest(w, r, "date must be formatted as YYYY-MM-DD")
		return
	}

	rep, err := h.repository.DailyReportByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, report.ErrReportNotFound) {
			response.NotFound(w, r, "no daily report generated for "+date)
			return
		}
		response.InternalError(w, r, "failed to load daily report")
		return
	}

	response.JSON(w, r, http.StatusOK, rep)
}

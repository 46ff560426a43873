// Package handler provides HTTP handlers for the AirWard API.
package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/airward/airward/internal/api/response"
	"github.com/airward/airward/internal/pollution"
	"github.com/airward/airward/internal/ward"
)

// PollutionHandler serves computed ward pollution snapshots.
type PollutionHandler struct {
	service  *pollution.Service
	registry *ward.Registry
}

// NewPollutionHandler creates a new PollutionHandler.
func NewPollutionHandler(service *pollution.Service, registry *ward.Registry) *PollutionHandler {
	return &PollutionHandler{service: service, registry: registry}
}

// wardListResponse is the envelope for GET /v1/pollution.
type wardListResponse struct {
	Wards []pollution.WardSnapshot `json:"wards"`
	Count int                      `json:"count"`
	Stale bool                     `json:"stale"`
}

// ListWards handles GET /v1/pollution - all ward snapshots in registry order.
func (h *PollutionHandler) ListWards(w http.ResponseWriter, r *http.Request) {
	snapshots := h.service.GetAll()
	if len(snapshots) == 0 {
		response.ServiceUnavailable(w, r, "no pollution data computed yet, retry shortly")
		return
	}

	wards := make([]pollution.WardSnapshot, 0, len(snapshots))
	for _, snap := range snapshots {
		wards = append(wards, snap)
	}
	sort.Slice(wards, func(i, j int) bool {
		return h.registry.Order(wards[i].WardID) < h.registry.Order(wards[j].WardID)
	})

	status := h.service.Status()
	response.JSON(w, r, http.StatusOK, wardListResponse{
		Wards: wards,
		Count: len(wards),
		Stale: status.Stale,
	})
}

// GetWard handles GET /v1/pollution/wards/{wardId} - one ward's snapshot.
func (h *PollutionHandler) GetWard(w http.ResponseWriter, r *http.Request) {
	wardID, err := strconv.Atoi(chi.URLParam(r, "wardId"))
	if err != nil {
		response.BadRequest(w, r, "wardId must be an integer")
		return
	}

	snap, err := h.service.GetForWard(wardID)
	switch {
	case errors.Is(err, pollution.ErrUnknownWard):
		response.NotFound(w, r, "ward "+strconv.Itoa(wardID)+" is not in the registry")
		return
	case errors.Is(err, pollution.ErrNoData):
		response.ServiceUnavailable(w, r, "no pollution data computed yet, retry shortly")
		return
	case err != nil:
		response.InternalError(w, r, "failed to load ward snapshot")
		return
	}

	response.JSON(w, r, http.StatusOK, snap)
}

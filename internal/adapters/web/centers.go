package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"warehouse-server/internal/app"
	"warehouse-server/internal/core"

	"github.com/go-chi/chi/v5"
)

// listCenters returns all distribution centers in summary form. An
// unreachable upstream renders as an empty list rather than an error page;
// the failure is logged server-side.
func (h *Handler) listCenters(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.ListCenters(r.Context())
	if errors.Is(err, core.ErrServiceUnavailable) {
		log.Printf("center listing unavailable: %v", err)
		writeJSON(w, http.StatusOK, app.CenterListResult{Centers: []core.DistributionCenter{}})
		return
	}
	if err != nil {
		writeError(w, r, "failed to list distribution centers", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) getCenter(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, "invalid center id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.GetCenter(r.Context(), id)
	switch {
	case errors.Is(err, core.ErrCenterNotFound):
		writeError(w, r, "distribution center not found", "NOT_FOUND", http.StatusNotFound)
		return
	case errors.Is(err, core.ErrServiceUnavailable):
		writeError(w, r, "distribution center service unavailable", "UPSTREAM_UNAVAILABLE", http.StatusBadGateway)
		return
	case err != nil:
		writeError(w, r, "failed to fetch distribution center", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// catalog returns the brand availability view. Upstream unavailability
// renders as an empty catalog, matching listCenters.
func (h *Handler) catalog(w http.ResponseWriter, r *http.Request) {
	result, err := h.svc.AvailableByBrand(r.Context())
	if errors.Is(err, core.ErrServiceUnavailable) {
		log.Printf("catalog unavailable: %v", err)
		writeJSON(w, http.StatusOK, app.CatalogResult{
			Brands:       []string{},
			ItemsByBrand: map[string]map[string]int{},
		})
		return
	}
	if err != nil {
		writeError(w, r, "failed to build catalog", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) replenish(w http.ResponseWriter, r *http.Request) {
	var req app.ReplenishRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	result, err := h.svc.Replenish(r.Context(), req)
	if err != nil {
		writeError(w, r, "replenishment failed", "INTERNAL_ERROR", http.StatusInternalServerError)
		return
	}
	writeJSON(w, replenishStatus(result), result)
}

// replenishStatus maps the orchestrator's outcome classification onto HTTP
// status codes. The reconciliation inconsistency gets its own 500 so
// operators can alert on it separately from ordinary upstream failures.
func replenishStatus(result *app.ReplenishResult) int {
	if result.Succeeded {
		return http.StatusOK
	}
	switch result.Reason {
	case core.ReasonInvalidInput:
		return http.StatusBadRequest
	case core.ReasonNotAvailable:
		return http.StatusNotFound
	case core.ReasonServiceUnavailable, core.ReasonRequestFailed:
		return http.StatusBadGateway
	case core.ReasonInconsistent:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) addCenterItem(w http.ResponseWriter, r *http.Request) {
	centerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, "invalid center id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	var req app.AddCenterItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, "invalid request body", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	req.CenterID = centerID

	err = h.svc.AddCenterItem(r.Context(), req)
	switch {
	case errors.Is(err, app.ErrInvalidInput):
		writeError(w, r, err.Error(), "BAD_REQUEST", http.StatusBadRequest)
		return
	case errors.Is(err, core.ErrServiceUnavailable):
		writeError(w, r, "distribution center service unavailable", "UPSTREAM_UNAVAILABLE", http.StatusBadGateway)
		return
	case err != nil:
		writeError(w, r, "failed to add item to center", "UPSTREAM_REJECTED", http.StatusBadGateway)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "created"})
}

func (h *Handler) deleteCenterItem(w http.ResponseWriter, r *http.Request) {
	centerID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, "invalid center id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}
	itemID, err := strconv.ParseInt(chi.URLParam(r, "itemID"), 10, 64)
	if err != nil {
		writeError(w, r, "invalid item id", "BAD_REQUEST", http.StatusBadRequest)
		return
	}

	err = h.svc.DeleteCenterItem(r.Context(), centerID, itemID)
	switch {
	case errors.Is(err, core.ErrServiceUnavailable):
		writeError(w, r, "distribution center service unavailable", "UPSTREAM_UNAVAILABLE", http.StatusBadGateway)
		return
	case err != nil:
		writeError(w, r, "failed to delete item from center", "UPSTREAM_REJECTED", http.StatusBadGateway)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

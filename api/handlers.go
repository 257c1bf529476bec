/*
handlers.go - HTTP handlers for the rent schedule API

PURPOSE:
  Implements the HTTP endpoints: a stateless schedule preview, lease
  definition CRUD, and on-demand schedule computation for stored leases.
  Computed schedules are never persisted - every schedule response is
  derived fresh from the lease's terms.

VALIDATION:
  DTO conversion validates at the boundary (due day range, positive rent,
  parseable dates) and returns 400. The core computation itself never
  fails; degenerate windows simply produce empty schedules.

SEE ALSO:
  - dto.go: Request/response types and validation
  - server.go: Route wiring
  - rent/engine.go: The computation behind every schedule response
*/
package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/warp/rent-engine/calendar"
	"github.com/warp/rent-engine/rent"
)

// Handler serves the rent schedule API.
type Handler struct {
	Leases rent.LeaseStore
}

// NewHandler creates a new handler over the given lease store.
func NewHandler(leases rent.LeaseStore) *Handler {
	return &Handler{Leases: leases}
}

// =============================================================================
// SCHEDULE ENDPOINTS
// =============================================================================

// ComputeSchedule computes a schedule without storing anything.
// POST /api/schedule
func (h *Handler) ComputeSchedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	terms, err := req.Terms.toTerms()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid terms", err)
		return
	}

	window, err := parseWindow(req.WindowStart, req.WindowEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid window", err)
		return
	}

	records := rent.CalculateMonthlyRent(terms, window)
	writeJSON(w, http.StatusOK, toScheduleDTO(window, records))
}

// GetLeaseSchedule computes a stored lease's schedule for a window.
// GET /api/leases/{id}/schedule?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) GetLeaseSchedule(w http.ResponseWriter, r *http.Request) {
	id := rent.LeaseID(chi.URLParam(r, "id"))

	lease, err := h.Leases.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load lease", err)
		return
	}
	if lease == nil {
		writeError(w, http.StatusNotFound, "Lease not found", nil)
		return
	}

	window, err := parseWindow(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid window", err)
		return
	}

	records := rent.CalculateMonthlyRent(lease.Terms, window)
	writeJSON(w, http.StatusOK, toScheduleDTO(window, records))
}

// =============================================================================
// LEASE ENDPOINTS
// =============================================================================

// CreateLease creates or replaces a lease definition.
// POST /api/leases
func (h *Handler) CreateLease(w http.ResponseWriter, r *http.Request) {
	var req CreateLeaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "Lease id is required", nil)
		return
	}

	terms, err := req.Terms.toTerms()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid terms", err)
		return
	}

	lease := rent.Lease{
		ID:       rent.LeaseID(req.ID),
		UnitName: req.UnitName,
		Terms:    terms,
	}
	if err := h.Leases.Save(r.Context(), lease); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save lease", err)
		return
	}

	writeJSON(w, http.StatusCreated, toLeaseDTO(lease))
}

// ListLeases returns all lease definitions.
// GET /api/leases
func (h *Handler) ListLeases(w http.ResponseWriter, r *http.Request) {
	leases, err := h.Leases.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list leases", err)
		return
	}

	dtos := make([]LeaseDTO, 0, len(leases))
	for _, lease := range leases {
		dtos = append(dtos, toLeaseDTO(lease))
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetLease returns one lease definition.
// GET /api/leases/{id}
func (h *Handler) GetLease(w http.ResponseWriter, r *http.Request) {
	id := rent.LeaseID(chi.URLParam(r, "id"))

	lease, err := h.Leases.Get(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load lease", err)
		return
	}
	if lease == nil {
		writeError(w, http.StatusNotFound, "Lease not found", nil)
		return
	}

	writeJSON(w, http.StatusOK, toLeaseDTO(*lease))
}

// DeleteLease removes a lease definition.
// DELETE /api/leases/{id}
func (h *Handler) DeleteLease(w http.ResponseWriter, r *http.Request) {
	id := rent.LeaseID(chi.URLParam(r, "id"))

	if err := h.Leases.Delete(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete lease", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// HELPERS
// =============================================================================

func parseWindow(from, to string) (calendar.Period, error) {
	start, err := calendar.Parse(from)
	if err != nil {
		return calendar.Period{}, fmt.Errorf("invalid window start: %w", err)
	}
	end, err := calendar.Parse(to)
	if err != nil {
		return calendar.Period{}, fmt.Errorf("invalid window end: %w", err)
	}
	return calendar.Period{Start: start, End: end}, nil
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/you-humble/mobile-mechanic/internal/catalog"
	"github.com/you-humble/mobile-mechanic/internal/converter"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

const dateLayout = "2006-01-02"

// GetMaintenanceDue answers 204 for service types that have no maintenance schedule.
func (h *handler) GetMaintenanceDue(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	st := model.ServiceType(query.Get("service_type"))
	if _, ok := catalog.Pricing(st); !ok {
		writeError(w, r, fmt.Errorf("%w %q", model.ErrUnknownServiceType, st))
		return
	}

	lastService, err := parseDate(query.Get("last_service_date"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: last_service_date: %v", model.ErrValidation, err))
		return
	}

	var lastMileage *int
	if raw := query.Get("last_mileage"); raw != "" {
		miles, err := strconv.Atoi(raw)
		if err != nil || miles < 0 {
			writeError(w, r, fmt.Errorf("%w: last_mileage must be a non-negative integer", model.ErrValidation))
			return
		}
		lastMileage = &miles
	}

	due, ok := h.maintenance.Due(lastService, lastMileage, st)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.MaintenanceDueToAPI(due))
}

func (h *handler) ListMaintenanceIntervals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, converter.MaintenanceIntervalsToAPI(h.maintenance.Intervals()))
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("is required")
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

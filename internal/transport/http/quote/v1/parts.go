package http

import (
	"fmt"
	"net/http"
	"strings"

	quotev1 "github.com/you-humble/mobile-mechanic/internal/api/quote/v1"
	"github.com/you-humble/mobile-mechanic/internal/converter"
	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/internal/service/parts"
)

const maxBatchParts = 50

func (h *handler) GetPartEstimate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	est, err := h.parts.EstimateFor(converter.VehicleTypeToModel(query.Get("vehicle_type")), query.Get("name"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartEstimateToAPI(est))
}

func (h *handler) GetPartEstimates(w http.ResponseWriter, r *http.Request) {
	var req quotev1.PartEstimatesRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if len(req.PartNames) == 0 || len(req.PartNames) > maxBatchParts {
		writeError(w, r, fmt.Errorf("%w: part_names must hold 1 to %d names", model.ErrValidation, maxBatchParts))
		return
	}
	for _, name := range req.PartNames {
		if strings.TrimSpace(name) == "" {
			writeError(w, r, fmt.Errorf("%w: part_names must not contain blank names", model.ErrValidation))
			return
		}
	}

	estimates, err := h.parts.EstimateMany(r.Context(), converter.VehicleTypeToModel(req.VehicleType), req.PartNames)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.PartEstimatesToAPI(estimates, parts.Total(estimates)))
}

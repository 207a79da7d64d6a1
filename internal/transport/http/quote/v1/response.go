package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	quotev1 "github.com/you-humble/mobile-mechanic/internal/api/quote/v1"
	"github.com/you-humble/mobile-mechanic/internal/model"
	"github.com/you-humble/mobile-mechanic/platform/logger"
)

const maxBodyBytes = 1 << 20

func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body: %v", model.ErrValidation, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error(r.Context(), "encode response", logger.ErrorF(err))
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed",
			logger.String("method", r.Method),
			logger.String("path", r.URL.Path),
			logger.ErrorF(err),
		)
		msg = http.StatusText(status)
	}

	writeJSON(w, r, status, quotev1.Error{Code: status, Message: msg})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, model.ErrValidation),
		errors.Is(err, model.ErrUnknownServiceType),
		errors.Is(err, model.ErrUnknownStatus):
		return http.StatusBadRequest // 400
	case errors.Is(err, model.ErrPartNotFound),
		errors.Is(err, model.ErrQuoteNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, model.ErrQuoteConflict):
		return http.StatusConflict // 409
	case errors.Is(err, model.ErrQuoteExpired):
		return http.StatusGone // 410
	case errors.Is(err, model.ErrUnknownPart):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, model.ErrRateLimited):
		return http.StatusTooManyRequests // 429
	default:
		return http.StatusInternalServerError // 500
	}
}

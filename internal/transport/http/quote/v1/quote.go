package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	quotev1 "github.com/you-humble/mobile-mechanic/internal/api/quote/v1"
	"github.com/you-humble/mobile-mechanic/internal/converter"
	"github.com/you-humble/mobile-mechanic/internal/model"
)

func (h *handler) CreateQuote(w http.ResponseWriter, r *http.Request) {
	var req quotev1.CreateQuoteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	q, err := h.quotes.Create(r.Context(), converter.CreateQuoteRequestToParams(&req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, converter.QuoteToAPI(q))
}

func (h *handler) LiveEstimate(w http.ResponseWriter, r *http.Request) {
	var req quotev1.LiveEstimateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	est, err := h.live.LiveEstimate(converter.LiveEstimateRequestToParams(&req))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.LiveEstimateToAPI(est))
}

func (h *handler) GetQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := quoteIDParam(w, r)
	if !ok {
		return
	}

	q, err := h.quotes.QuoteByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.QuoteToAPI(q))
}

func (h *handler) UpdateQuoteStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := quoteIDParam(w, r)
	if !ok {
		return
	}

	var req quotev1.UpdateQuoteStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	status, err := model.ParseQuoteStatus(req.Status)
	if err != nil {
		writeError(w, r, err)
		return
	}

	q, err := h.quotes.UpdateStatus(r.Context(), model.UpdateQuoteStatusParams{ID: id, Status: status})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.QuoteToAPI(q))
}

func (h *handler) ApproveQuote(w http.ResponseWriter, r *http.Request) {
	id, ok := quoteIDParam(w, r)
	if !ok {
		return
	}

	q, err := h.quotes.Approve(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.QuoteToAPI(q))
}

func (h *handler) ListServiceRequestQuotes(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quotes.ListByServiceRequest(r.Context(), chi.URLParam(r, "requestID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, converter.QuotesToAPI(quotes))
}

func quoteIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "quoteID"))
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, quotev1.Error{ // 400
			Code:    http.StatusBadRequest,
			Message: "invalid quote id",
		})
		return uuid.Nil, false
	}
	return id, true
}

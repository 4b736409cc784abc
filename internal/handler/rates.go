package handler

import (
	"net/http"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/logger"
)

// RateStore reads and changes the live loot multipliers
type RateStore interface {
	Snapshot() domain.Rates
	Set(key string, value float64) error
}

// SetRateRequest changes one multiplier
type SetRateRequest struct {
	Key   string   `json:"key" validate:"required,ratekey"`
	Value *float64 `json:"value" validate:"required,gte=0"`
}

// RatesHandler shows and changes loot rates. Changes are not persisted.
type RatesHandler struct {
	store RateStore
}

// NewRatesHandler creates a new rates handler
func NewRatesHandler(store RateStore) *RatesHandler {
	return &RatesHandler{store: store}
}

// HandleGetRates returns the current multipliers
// GET /api/v1/admin/rates
func (h *RatesHandler) HandleGetRates(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.store.Snapshot())
}

// HandleSetRate changes one multiplier and returns the new snapshot
// POST /api/v1/admin/rates
func (h *RatesHandler) HandleSetRate(w http.ResponseWriter, r *http.Request) {
	var req SetRateRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionSetRate); err != nil {
		return
	}

	if err := h.store.Set(req.Key, *req.Value); err != nil {
		respondServiceError(w, r, ActionSetRate, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgRateChanged, "key", req.Key, "value", *req.Value)
	respondJSON(w, http.StatusOK, h.store.Snapshot())
}

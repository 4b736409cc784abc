package handler

import (
	"fmt"
	"net/http"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/droplog"
)

// DropLogResponse lists persisted drop records
type DropLogResponse struct {
	Records []domain.DropRecord `json:"records"`
}

// HandleListDrops returns the latest drop records of a character.
// A nil reader means the drop log is disabled.
// GET /api/v1/admin/droplog?character_id=42&limit=20
func HandleListDrops(reader droplog.Reader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if reader == nil {
			respondError(w, http.StatusServiceUnavailable, ErrMsgDropLogDisabled)
			return
		}

		if _, ok := GetQueryParam(r, w, QueryParamCharacterID); !ok {
			return
		}
		characterID, ok := GetIntQueryParam(r, w, QueryParamCharacterID, 0)
		if !ok {
			return
		}
		limit, ok := GetIntQueryParam(r, w, QueryParamLimit, DefaultListLimit)
		if !ok {
			return
		}

		records, err := reader.ListDrops(r.Context(), characterID, int(limit))
		if err != nil {
			respondServiceError(w, r, ActionListDrops, fmt.Errorf("%w: %w", domain.ErrDatabaseError, err))
			return
		}
		if records == nil {
			records = []domain.DropRecord{}
		}
		respondJSON(w, http.StatusOK, DropLogResponse{Records: records})
	}
}

package handler

import (
	"context"
	"net/http"
)

// GameDataReloader reloads the game tables from disk
type GameDataReloader interface {
	Reload(ctx context.Context) error
}

// HandleReloadGameData swaps in freshly loaded tables. A failed reload keeps the old ones.
// POST /api/v1/admin/gamedata/reload
func HandleReloadGameData(reloader GameDataReloader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := reloader.Reload(r.Context()); err != nil {
			respondServiceError(w, r, ActionReloadGameData, err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgGameDataReloaded})
	}
}

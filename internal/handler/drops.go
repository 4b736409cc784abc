package handler

import (
	"net/http"

	"github.com/osse101/WorldLoot_Go/internal/domain"
	"github.com/osse101/WorldLoot_Go/internal/droplog"
	"github.com/osse101/WorldLoot_Go/internal/itemdrop"
	"github.com/osse101/WorldLoot_Go/internal/logger"
)

// BoxCatalog answers whether a box id exists
type BoxCatalog interface {
	GlobalDropBox(boxID int) (*domain.GlobalDropBox, bool)
	IndividualDropBox(boxID int) (*domain.IndividualDropBox, bool)
}

// GlobalDropRequest resolves a global box
type GlobalDropRequest struct {
	BoxID  int          `json:"box_id" validate:"required,min=1"`
	Level  int          `json:"level" validate:"min=0,max=999"`
	IsBoss bool         `json:"is_boss"`
	Field  domain.Field `json:"field"`
}

// CharacterRequest is the requesting character as sent by a game server
type CharacterRequest struct {
	ID     int64  `json:"id" validate:"min=0"`
	Name   string `json:"name" validate:"max=64,excludesall=\x00\n\r\t"`
	Job    int    `json:"job" validate:"min=0"`
	Gender int    `json:"gender" validate:"min=0,max=2"`
	// Quests lists the ids of quests currently in progress
	Quests []int `json:"quests" validate:"max=512"`
}

// IndividualDropRequest resolves an individual box for one character.
// Index and GroupID default to -1 (no pre-selected entry).
type IndividualDropRequest struct {
	Character CharacterRequest `json:"character"`
	Field     domain.Field     `json:"field"`
	Level     int              `json:"level" validate:"min=0,max=999"`
	BoxID     int              `json:"box_id" validate:"required,min=1"`
	Index     *int             `json:"index" validate:"omitempty,gte=-1"`
	GroupID   *int             `json:"group_id" validate:"omitempty,gte=-1"`
	IsBoss    bool             `json:"is_boss"`
}

// RarityDropRequest instantiates every eligible entry of a box at a fixed rarity
type RarityDropRequest struct {
	BoxID  int          `json:"box_id" validate:"required,min=1"`
	Rarity int          `json:"rarity" validate:"required,min=1,max=6"`
	Field  domain.Field `json:"field"`
}

// DropHandler exposes the drop resolver to sibling server processes
type DropHandler struct {
	service  itemdrop.Service
	boxes    BoxCatalog
	recorder droplog.Recorder
}

// NewDropHandler creates a new drop handler
func NewDropHandler(service itemdrop.Service, boxes BoxCatalog, recorder droplog.Recorder) *DropHandler {
	if recorder == nil {
		recorder = droplog.NewNopRecorder()
	}
	return &DropHandler{
		service:  service,
		boxes:    boxes,
		recorder: recorder,
	}
}

// HandleResolveGlobal resolves a global box
// POST /api/v1/drops/global
func (h *DropHandler) HandleResolveGlobal(w http.ResponseWriter, r *http.Request) {
	var req GlobalDropRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionResolveGlobal); err != nil {
		return
	}
	if _, ok := h.boxes.GlobalDropBox(req.BoxID); !ok {
		respondServiceError(w, r, ActionResolveGlobal, domain.ErrBoxNotFound)
		return
	}

	items := h.service.ResolveGlobalBox(r.Context(), req.Field, req.BoxID, req.Level, req.IsBoss)
	h.finish(w, r, domain.BoxKindGlobal, req.BoxID, 0, items)
}

// HandleResolveIndividual resolves an individual box for one character
// POST /api/v1/drops/individual
func (h *DropHandler) HandleResolveIndividual(w http.ResponseWriter, r *http.Request) {
	var req IndividualDropRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionResolveIndividual); err != nil {
		return
	}
	if _, ok := h.boxes.IndividualDropBox(req.BoxID); !ok {
		respondServiceError(w, r, ActionResolveIndividual, domain.ErrBoxNotFound)
		return
	}

	requester := domain.Requester{
		Character: domain.Character{
			ID:     req.Character.ID,
			Name:   req.Character.Name,
			Job:    domain.JobCode(req.Character.Job),
			Gender: domain.Gender(req.Character.Gender),
		},
		Field:  req.Field,
		Quests: domain.NewActiveQuests(req.Character.Quests...),
	}

	items := h.service.ResolveIndividualBox(r.Context(), requester, req.Level, req.BoxID,
		intOr(req.Index, NoSelection), intOr(req.GroupID, NoSelection), req.IsBoss)
	h.finish(w, r, domain.BoxKindIndividual, req.BoxID, req.Character.ID, items)
}

// HandleResolveByRarity instantiates every eligible entry of an individual box at a fixed rarity
// POST /api/v1/drops/individual/rarity
func (h *DropHandler) HandleResolveByRarity(w http.ResponseWriter, r *http.Request) {
	var req RarityDropRequest
	if err := DecodeAndValidateRequest(r, w, &req, ActionResolveByRarity); err != nil {
		return
	}
	if _, ok := h.boxes.IndividualDropBox(req.BoxID); !ok {
		respondServiceError(w, r, ActionResolveByRarity, domain.ErrBoxNotFound)
		return
	}

	items := h.service.ResolveIndividualBoxByRarity(r.Context(), req.Field, req.BoxID, req.Rarity)
	h.finish(w, r, domain.BoxKindRarity, req.BoxID, 0, items)
}

// finish records the drop and writes the response. An empty result is a normal 200.
func (h *DropHandler) finish(w http.ResponseWriter, r *http.Request, kind domain.BoxKind, boxID int, characterID int64, items []*domain.ResolvedItem) {
	if items == nil {
		items = []*domain.ResolvedItem{}
	}

	LogRequestFields(logger.FromContext(r.Context()), "kind", kind, "box", boxID, "items", len(items))
	h.recorder.Record(r.Context(), kind, boxID, characterID, items)
	respondJSON(w, http.StatusOK, DropResponse{Items: items})
}

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

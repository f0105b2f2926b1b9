package handlers

import (
	"context"
	"net/http"

	"github.com/tylacb11-spec/lienquan-sub000/middleware"
	"github.com/tylacb11-spec/lienquan-sub000/models"
	"github.com/tylacb11-spec/lienquan-sub000/services"
)

type GameHandler struct {
	game  services.GameService
	saves services.SaveService
}

func NewGameHandler(game services.GameService, saves services.SaveService) *GameHandler {
	return &GameHandler{game: game, saves: saves}
}

func (h *GameHandler) ids(r *http.Request) (userID, slot int, err error) {
	userID, err = middleware.UserIDFromContext(r.Context())
	if err != nil {
		return 0, 0, err
	}
	slot, err = urlParamInt(r, "slot")
	return userID, slot, err
}

type newGameInput struct {
	Region   string `json:"region"`
	TeamName string `json:"team_name"`
}

func (h *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	userID, slot, err := h.ids(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid save slot"})
		return
	}
	var input newGameInput
	if err := decodeJSON(r, &input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	world, err := h.game.NewGame(r.Context(), userID, slot, input.Region, input.TeamName)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, world)
}

func (h *GameHandler) State(w http.ResponseWriter, r *http.Request) {
	userID, slot, err := h.ids(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid save slot"})
		return
	}
	world, err := h.game.State(r.Context(), userID, slot)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, world)
}

type advanceResponse struct {
	World   *models.World `json:"world"`
	Pending *models.Match `json:"pending,omitempty"`
	Phase   models.Phase  `json:"phase"`
	Changed bool          `json:"phase_changed"`
}

func (h *GameHandler) Advance(w http.ResponseWriter, r *http.Request) {
	userID, slot, err := h.ids(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid save slot"})
		return
	}
	world, res, err := h.game.Advance(r.Context(), userID, slot)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, advanceResponse{
		World:   world,
		Pending: res.Pending,
		Phase:   res.Phase,
		Changed: res.PhaseChanged,
	})
}

type picksInput struct {
	Picks []int `json:"picks"`
}

func (h *GameHandler) ResolvePending(w http.ResponseWriter, r *http.Request) {
	userID, slot, err := h.ids(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid save slot"})
		return
	}
	var input picksInput
	if err := decodeJSON(r, &input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	world, err := h.game.ResolvePending(r.Context(), userID, slot, input.Picks)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, world)
}

type lineupInput struct {
	PlayerIDs []int `json:"player_ids"`
}

func (h *GameHandler) SetLineup(w http.ResponseWriter, r *http.Request) {
	userID, slot, err := h.ids(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid save slot"})
		return
	}
	var input lineupInput
	if err := decodeJSON(r, &input); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := h.game.SetLineup(r.Context(), userID, slot, input.PlayerIDs); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *GameHandler) ReleasePlayer(w http.ResponseWriter, r *http.Request) {
	h.playerOp(w, r, h.game.ReleasePlayer)
}

func (h *GameHandler) SignPlayer(w http.ResponseWriter, r *http.Request) {
	h.playerOp(w, r, h.game.SignPlayer)
}

func (h *GameHandler) playerOp(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, userID, slot, playerID int) error) {
	userID, slot, err := h.ids(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid save slot"})
		return
	}
	playerID, err := urlParamInt(r, "playerID")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid player id"})
		return
	}
	if err := op(r.Context(), userID, slot, playerID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *GameHandler) UpgradeStaff(w http.ResponseWriter, r *http.Request) {
	userID, slot, err := h.ids(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid save slot"})
		return
	}
	if err := h.game.UpgradeStaff(r.Context(), userID, slot); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

type advanceAllInput struct {
	Slots []int `json:"slots"`
}

// AdvanceAll steps several of the caller's save slots in one request.
func (h *GameHandler) AdvanceAll(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}
	var input advanceAllInput
	if err := decodeJSON(r, &input); err != nil || len(input.Slots) == 0 {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	if err := services.AdvanceAll(r.Context(), h.game, nil, userID, input.Slots); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *GameHandler) ListSaves(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "unauthorized"})
		return
	}
	saves, err := h.saves.List(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, saves)
}

func (h *GameHandler) DeleteSave(w http.ResponseWriter, r *http.Request) {
	userID, slot, err := h.ids(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid save slot"})
		return
	}
	if err := h.saves.Delete(r.Context(), userID, slot); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *GameHandler) ExportSave(w http.ResponseWriter, r *http.Request) {
	userID, slot, err := h.ids(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid save slot"})
		return
	}
	url, err := h.saves.Export(r.Context(), userID, slot)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"url": url})
}

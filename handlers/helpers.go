package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/tylacb11-spec/lienquan-sub000/services"
)

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// respondError maps service sentinel errors to HTTP status codes. Unknown
// errors are internal and never leak details to the client.
func respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	message := "internal server error"
	switch {
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrSaveNotFound):
		status, message = http.StatusNotFound, err.Error()
	case errors.Is(err, services.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, services.ErrEmailTaken):
		status, message = http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrPasswordTooShort),
		errors.Is(err, services.ErrSlotRange),
		errors.Is(err, services.ErrInvalidLineup),
		errors.Is(err, services.ErrInvalidPicks),
		errors.Is(err, services.ErrUnknownRegion):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrNoPendingMatch),
		errors.Is(err, services.ErrTransferWindowShut),
		errors.Is(err, services.ErrRosterMinimum),
		errors.Is(err, services.ErrInsufficientBudget),
		errors.Is(err, services.ErrNotOnYourTeam),
		errors.Is(err, services.ErrNotFreeAgent):
		status, message = http.StatusUnprocessableEntity, err.Error()
	}
	respondJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func urlParamInt(r *http.Request, name string) (int, error) {
	return strconv.Atoi(chi.URLParam(r, name))
}

package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/MikeSquared-Agency/Platter/internal/meals"
	"github.com/MikeSquared-Agency/Platter/internal/planner"
	"github.com/MikeSquared-Agency/Platter/internal/ranking"
)

// maxBodyBytes bounds request bodies; candidate sets are capped well below this.
const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}

func statusFor(err error) int {
	switch {
	case ranking.IsValidationError(err),
		errors.Is(err, planner.ErrTooManyCandidates),
		errors.Is(err, planner.ErrInvalidAnchor),
		errors.Is(err, planner.ErrInvalidID):
		return http.StatusUnprocessableEntity
	case errors.Is(err, meals.ErrProfileTooShort),
		errors.Is(err, meals.ErrNoIngredients),
		errors.Is(err, meals.ErrEmptyMessage),
		errors.Is(err, meals.ErrMessageTooLong),
		errors.Is(err, meals.ErrUnknownPersonality):
		return http.StatusBadRequest
	case errors.Is(err, planner.ErrGeneratorDisabled):
		return http.StatusServiceUnavailable
	case errors.Is(err, meals.ErrGeneratorFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	}
	writeJSON(w, status, errorResponse{Error: err.Error(), Code: planner.ErrorCode(err)})
}

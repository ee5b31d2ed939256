package api

import (
	"log/slog"
	"net/http"

	"github.com/MikeSquared-Agency/Platter/internal/planner"
)

type PlansHandler struct {
	planner *planner.Planner
	logger  *slog.Logger
}

func NewPlansHandler(p *planner.Planner, logger *slog.Logger) *PlansHandler {
	return &PlansHandler{planner: p, logger: logger}
}

type GoalsRequest struct {
	Profile   string `json:"profile"`
	Objective string `json:"objective,omitempty"`
}

func (h *PlansHandler) Goals(w http.ResponseWriter, r *http.Request) {
	var req GoalsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	goals, err := h.planner.Goals(r.Context(), req.Profile, req.Objective)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (h *PlansHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req planner.PlanRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Goals == nil && req.Profile == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "profile or goals required"})
		return
	}

	plan, err := h.planner.Plan(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, plan)
}

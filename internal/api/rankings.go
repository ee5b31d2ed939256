package api

import (
	"log/slog"
	"net/http"

	"github.com/MikeSquared-Agency/Platter/internal/meals"
	"github.com/MikeSquared-Agency/Platter/internal/planner"
)

type RankingsHandler struct {
	planner *planner.Planner
	logger  *slog.Logger
}

func NewRankingsHandler(p *planner.Planner, logger *slog.Logger) *RankingsHandler {
	return &RankingsHandler{planner: p, logger: logger}
}

func (h *RankingsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req planner.RankRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	req.Source = planner.SourceAPI

	res, err := h.planner.Rank(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

type BatchRequest struct {
	Requests []planner.RankRequest `json:"requests"`
}

type BatchResponse struct {
	Results []planner.BatchItem `json:"results"`
}

// maxBatchRequests caps how many rankings one batch call may carry.
const maxBatchRequests = 100

func (h *RankingsHandler) Batch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if len(req.Requests) == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "requests required"})
		return
	}
	if len(req.Requests) > maxBatchRequests {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "too many requests in batch"})
		return
	}
	for i := range req.Requests {
		req.Requests[i].Source = planner.SourceBatch
	}

	writeJSON(w, http.StatusOK, BatchResponse{Results: h.planner.RankBatch(r.Context(), req.Requests)})
}

func (h *RankingsHandler) Dimensions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"dimensions": meals.Dimensions()})
}

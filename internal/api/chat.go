package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Platter/internal/meals"
)

func (h *PlansHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req meals.ChatRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reply, err := h.planner.Chat(r.Context(), req)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, reply)
}

func (h *PlansHandler) Personalities(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"personalities": meals.Personalities(),
		"default":       meals.DefaultPersonality,
	})
}

package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Platter/internal/config"
	"github.com/MikeSquared-Agency/Platter/internal/planner"
)

type AdminHandler struct {
	cfg     *config.Config
	planner *planner.Planner
}

func NewAdminHandler(cfg *config.Config, p *planner.Planner) *AdminHandler {
	return &AdminHandler{cfg: cfg, planner: p}
}

// GeneratorInfo describes the generator backend without its credentials.
type GeneratorInfo struct {
	Backend   string `json:"backend"`
	Model     string `json:"model,omitempty"`
	URL       string `json:"url,omitempty"`
	TimeoutMs int    `json:"timeout_ms"`
	Enabled   bool   `json:"enabled"`
}

type ConfigResponse struct {
	Ranking   config.RankingConfig `json:"ranking"`
	Planner   config.PlannerConfig `json:"planner"`
	Generator GeneratorInfo        `json:"generator"`
}

func (h *AdminHandler) Config(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ConfigResponse{
		Ranking: h.cfg.Ranking,
		Planner: h.cfg.Planner,
		Generator: GeneratorInfo{
			Backend:   h.cfg.Generator.Backend,
			Model:     h.cfg.Generator.Model,
			URL:       h.cfg.Generator.URL,
			TimeoutMs: h.cfg.Generator.TimeoutMs,
			Enabled:   h.planner.GeneratorEnabled(),
		},
	})
}

package meals

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MikeSquared-Agency/Platter/internal/config"
	"github.com/MikeSquared-Agency/Platter/internal/llm"
	"github.com/MikeSquared-Agency/Platter/internal/metrics"
)

var (
	ErrProfileTooShort = errors.New("profile too short")
	ErrNoIngredients   = errors.New("at least one ingredient is required")
	ErrNoDishes        = errors.New("no valid dishes returned from generator")
	ErrGeneratorFailed = errors.New("generator failed")
)

const systemPrompt = "You are a helpful AI nutritionist."

// Generator turns a profile into goals and an ingredient list into dish candidates
// using a text-generation backend.
type Generator struct {
	client llm.Client
	cfg    config.PlannerConfig
	logger *slog.Logger
}

func NewGenerator(client llm.Client, cfg config.PlannerConfig, logger *slog.Logger) *Generator {
	return &Generator{client: client, cfg: cfg, logger: logger}
}

// Goals derives daily nutrition goals from a free-text profile and objective.
// Profiles longer than the configured limit are truncated.
func (g *Generator) Goals(ctx context.Context, profile, objective string) (Goals, error) {
	profile = strings.TrimSpace(profile)
	runes := []rune(profile)
	if len(runes) < g.cfg.MinProfileChars {
		return Goals{}, fmt.Errorf("%w: need at least %d characters", ErrProfileTooShort, g.cfg.MinProfileChars)
	}
	if len(runes) > g.cfg.MaxProfileChars {
		g.logger.Warn("profile truncated", "length", len(runes), "limit", g.cfg.MaxProfileChars)
		profile = string(runes[:g.cfg.MaxProfileChars])
	}
	if strings.TrimSpace(objective) == "" {
		objective = "general health"
	}

	reply, err := g.complete(ctx, "goals", GoalsPrompt(profile, objective))
	if err != nil {
		return Goals{}, err
	}
	goals, err := ParseGoals(reply)
	if err != nil {
		return Goals{}, fmt.Errorf("%w: %w", ErrGeneratorFailed, err)
	}
	g.logger.Debug("goals generated",
		"calories", goals.Calories, "protein", goals.Protein,
		"carbs", goals.Carbs, "fats", goals.Fats)
	return goals, nil
}

// Dishes asks for dish candidates built from ingredients. Blank entries are dropped
// and the list is capped at the configured maximum.
func (g *Generator) Dishes(ctx context.Context, ingredients []string) ([]Dish, error) {
	var cleaned []string
	for _, in := range ingredients {
		if in = strings.TrimSpace(in); in != "" {
			cleaned = append(cleaned, in)
		}
	}
	if len(cleaned) == 0 {
		return nil, ErrNoIngredients
	}
	if len(cleaned) > g.cfg.MaxIngredients {
		cleaned = cleaned[:g.cfg.MaxIngredients]
	}

	reply, err := g.complete(ctx, "dishes", DishesPrompt(cleaned, g.cfg.DishCount))
	if err != nil {
		return nil, err
	}
	dishes := ParseDishes(reply)
	if len(dishes) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrGeneratorFailed, ErrNoDishes)
	}
	g.logger.Debug("dishes generated", "count", len(dishes), "ingredients", len(cleaned))
	return dishes, nil
}

func (g *Generator) complete(ctx context.Context, purpose, prompt string) (string, error) {
	start := time.Now()
	reply, err := g.client.Complete(ctx, systemPrompt, prompt)
	metrics.ObserveGenerator(g.client.Backend(), purpose, err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", ErrGeneratorFailed, purpose, err)
	}
	return reply, nil
}

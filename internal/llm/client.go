package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/MikeSquared-Agency/Platter/internal/config"
)

const defaultSystemPrompt = "You are a helpful AI nutritionist."

// Client produces one completion per call. Implementations make a single attempt;
// retry policy belongs to the caller.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
	Backend() string
}

// New builds the client selected by cfg.Backend. Backend "none" (or empty) yields
// a nil Client and no error: the service runs with generation disabled.
func New(ctx context.Context, cfg config.GeneratorConfig, timeout time.Duration) (Client, error) {
	switch cfg.Backend {
	case "", "none":
		return nil, nil
	case "openai":
		if cfg.URL == "" {
			return nil, fmt.Errorf("openai backend: url is required")
		}
		return NewOpenAIClient(cfg.URL, cfg.APIKey, cfg.Model, cfg.Temperature, timeout), nil
	case "gemini":
		c, err := NewGeminiClient(ctx, cfg.APIKey, cfg.Model, cfg.Temperature, timeout)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, fmt.Errorf("unknown generator backend %q", cfg.Backend)
	}
}

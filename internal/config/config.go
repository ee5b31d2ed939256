package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/Platter/internal/ranking"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Hermes    HermesConfig    `yaml:"hermes"`
	Generator GeneratorConfig `yaml:"generator"`
	Ranking   RankingConfig   `yaml:"ranking"`
	Planner   PlannerConfig   `yaml:"planner"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Port               int    `yaml:"port"`
	MetricsPort        int    `yaml:"metrics_port"`
	AdminToken         string `yaml:"admin_token"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

type HermesConfig struct {
	URL string `yaml:"url"`
}

// GeneratorConfig selects the text-generation backend that produces goals and dishes.
// Backend is one of "openai" (any OpenAI-compatible chat completions endpoint),
// "gemini", or "none".
type GeneratorConfig struct {
	Backend     string  `yaml:"backend"`
	URL         string  `yaml:"url"`
	APIKey      string  `yaml:"api_key"`
	Model       string  `yaml:"model"`
	TimeoutMs   int     `yaml:"timeout_ms"`
	Temperature float64 `yaml:"temperature"`
}

type RankingConfig struct {
	Anchor          string `yaml:"anchor" json:"anchor"`
	FrontierEnabled bool   `yaml:"frontier_enabled" json:"frontier_enabled"`
	MaxCandidates   int    `yaml:"max_candidates" json:"max_candidates"`
}

type PlannerConfig struct {
	MealsPerDay      int `yaml:"meals_per_day" json:"meals_per_day"`
	DishCount        int `yaml:"dish_count" json:"dish_count"`
	MaxIngredients   int `yaml:"max_ingredients" json:"max_ingredients"`
	MinProfileChars  int `yaml:"min_profile_chars" json:"min_profile_chars"`
	MaxProfileChars  int `yaml:"max_profile_chars" json:"max_profile_chars"`
	BatchConcurrency int `yaml:"batch_concurrency" json:"batch_concurrency"`
	MaxMessageChars  int `yaml:"max_message_chars" json:"max_message_chars"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

func (c *Config) GeneratorTimeout() time.Duration {
	return time.Duration(c.Generator.TimeoutMs) * time.Millisecond
}

// Defaults returns the compiled-in configuration.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Port:               8700,
			MetricsPort:        8701,
			RateLimitPerMinute: 120,
		},
		Hermes: HermesConfig{
			URL: "nats://localhost:4222",
		},
		Generator: GeneratorConfig{
			Backend:     "openai",
			URL:         "https://api.groq.com/openai/v1",
			Model:       "openai/gpt-oss-20b",
			TimeoutMs:   60000,
			Temperature: 0.7,
		},
		Ranking: RankingConfig{
			Anchor:          string(ranking.AnchorCandidate),
			FrontierEnabled: false,
			MaxCandidates:   200,
		},
		Planner: PlannerConfig{
			MealsPerDay:      3,
			DishCount:        20,
			MaxIngredients:   10,
			MinProfileChars:  10,
			MaxProfileChars:  500,
			BatchConcurrency: 4,
			MaxMessageChars:  1000,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the service cannot run with.
func (c *Config) Validate() error {
	if _, err := ranking.ParseAnchor(c.Ranking.Anchor); err != nil {
		return fmt.Errorf("ranking.anchor: %w", err)
	}
	switch c.Generator.Backend {
	case "openai", "gemini", "none", "":
	default:
		return fmt.Errorf("generator.backend: unknown backend %q", c.Generator.Backend)
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	checks := []struct {
		name  string
		value int
	}{
		{"ranking.max_candidates", c.Ranking.MaxCandidates},
		{"planner.meals_per_day", c.Planner.MealsPerDay},
		{"planner.dish_count", c.Planner.DishCount},
		{"planner.max_ingredients", c.Planner.MaxIngredients},
		{"planner.max_profile_chars", c.Planner.MaxProfileChars},
		{"planner.batch_concurrency", c.Planner.BatchConcurrency},
		{"planner.max_message_chars", c.Planner.MaxMessageChars},
	}
	for _, chk := range checks {
		if chk.value <= 0 {
			return fmt.Errorf("%s must be positive, got %d", chk.name, chk.value)
		}
	}
	if c.Planner.MinProfileChars > c.Planner.MaxProfileChars {
		return fmt.Errorf("planner.min_profile_chars (%d) exceeds max_profile_chars (%d)",
			c.Planner.MinProfileChars, c.Planner.MaxProfileChars)
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("PLATTER_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = n
		}
	}
	if v := os.Getenv("PLATTER_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Server.MetricsPort = n
		}
	}
	if v := os.Getenv("PLATTER_ADMIN_TOKEN"); v != "" {
		cfg.Server.AdminToken = v
	}
	if v := os.Getenv("PLATTER_HERMES_URL"); v != "" {
		cfg.Hermes.URL = v
	}
	if v := os.Getenv("PLATTER_GENERATOR_BACKEND"); v != "" {
		cfg.Generator.Backend = v
	}
	if v := os.Getenv("PLATTER_GENERATOR_URL"); v != "" {
		cfg.Generator.URL = v
	}
	if v := os.Getenv("PLATTER_GENERATOR_API_KEY"); v != "" {
		cfg.Generator.APIKey = v
	}
	if v := os.Getenv("PLATTER_GENERATOR_MODEL"); v != "" {
		cfg.Generator.Model = v
	}
	if v := os.Getenv("PLATTER_GENERATOR_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Generator.TimeoutMs = n
		}
	}
	if v := os.Getenv("PLATTER_RANKING_ANCHOR"); v != "" {
		cfg.Ranking.Anchor = v
	}
	if v := os.Getenv("PLATTER_FRONTIER_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Ranking.FrontierEnabled = b
		}
	}
	if v := os.Getenv("PLATTER_MEALS_PER_DAY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Planner.MealsPerDay = n
		}
	}
	if v := os.Getenv("PLATTER_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("PLATTER_LOG_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}

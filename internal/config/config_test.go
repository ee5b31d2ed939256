package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

var platterEnvVars = []string{
	"PLATTER_PORT", "PLATTER_METRICS_PORT", "PLATTER_ADMIN_TOKEN", "PLATTER_HERMES_URL",
	"PLATTER_GENERATOR_BACKEND", "PLATTER_GENERATOR_URL", "PLATTER_GENERATOR_API_KEY",
	"PLATTER_GENERATOR_MODEL", "PLATTER_GENERATOR_TIMEOUT_MS", "PLATTER_RANKING_ANCHOR",
	"PLATTER_FRONTIER_ENABLED", "PLATTER_MEALS_PER_DAY", "PLATTER_LOG_LEVEL", "PLATTER_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range platterEnvVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Hermes.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Hermes.URL)
	}
	if cfg.Generator.Backend != "openai" {
		t.Errorf("expected openai backend, got %s", cfg.Generator.Backend)
	}
	if cfg.Generator.URL != "https://api.groq.com/openai/v1" {
		t.Errorf("expected groq URL, got %s", cfg.Generator.URL)
	}
	if cfg.Ranking.Anchor != "candidate" {
		t.Errorf("expected candidate anchor, got %s", cfg.Ranking.Anchor)
	}
	if cfg.Ranking.FrontierEnabled {
		t.Error("expected frontier_enabled=false by default")
	}
	if cfg.Planner.MealsPerDay != 3 {
		t.Errorf("expected 3 meals per day, got %d", cfg.Planner.MealsPerDay)
	}
	if cfg.Planner.DishCount != 20 {
		t.Errorf("expected 20 dishes, got %d", cfg.Planner.DishCount)
	}
	if cfg.Planner.MaxIngredients != 10 {
		t.Errorf("expected 10 ingredients, got %d", cfg.Planner.MaxIngredients)
	}
	if cfg.Planner.MaxProfileChars != 500 {
		t.Errorf("expected 500 profile chars, got %d", cfg.Planner.MaxProfileChars)
	}
	if cfg.Planner.MaxMessageChars != 1000 {
		t.Errorf("expected 1000 message chars, got %d", cfg.Planner.MaxMessageChars)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}
	if cfg.GeneratorTimeout() != time.Minute {
		t.Errorf("expected GeneratorTimeout 1m, got %v", cfg.GeneratorTimeout())
	}
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PLATTER_PORT", "9000")
	t.Setenv("PLATTER_METRICS_PORT", "9001")
	t.Setenv("PLATTER_ADMIN_TOKEN", "secret-token")
	t.Setenv("PLATTER_HERMES_URL", "nats://nats:4222")
	t.Setenv("PLATTER_GENERATOR_BACKEND", "gemini")
	t.Setenv("PLATTER_GENERATOR_API_KEY", "gen-key")
	t.Setenv("PLATTER_GENERATOR_MODEL", "gemini-2.5-flash")
	t.Setenv("PLATTER_GENERATOR_TIMEOUT_MS", "1500")
	t.Setenv("PLATTER_RANKING_ANCHOR", "goal")
	t.Setenv("PLATTER_FRONTIER_ENABLED", "true")
	t.Setenv("PLATTER_MEALS_PER_DAY", "4")
	t.Setenv("PLATTER_LOG_LEVEL", "debug")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Hermes.URL != "nats://nats:4222" {
		t.Errorf("expected hermes URL, got '%s'", cfg.Hermes.URL)
	}
	if cfg.Generator.Backend != "gemini" || cfg.Generator.APIKey != "gen-key" || cfg.Generator.Model != "gemini-2.5-flash" {
		t.Errorf("unexpected generator config: %+v", cfg.Generator)
	}
	if cfg.GeneratorTimeout() != 1500*time.Millisecond {
		t.Errorf("expected 1.5s generator timeout, got %v", cfg.GeneratorTimeout())
	}
	if cfg.Ranking.Anchor != "goal" {
		t.Errorf("expected goal anchor, got '%s'", cfg.Ranking.Anchor)
	}
	if !cfg.Ranking.FrontierEnabled {
		t.Error("expected frontier enabled")
	}
	if cfg.Planner.MealsPerDay != 4 {
		t.Errorf("expected 4 meals per day, got %d", cfg.Planner.MealsPerDay)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "platter.yaml")
	data := []byte(`
server:
  port: 7000
ranking:
  anchor: goal
  frontier_enabled: true
planner:
  dish_count: 12
logging:
  format: text
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7000 {
		t.Errorf("expected port 7000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port to survive, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Ranking.Anchor != "goal" || !cfg.Ranking.FrontierEnabled {
		t.Errorf("unexpected ranking config: %+v", cfg.Ranking)
	}
	if cfg.Planner.DishCount != 12 {
		t.Errorf("expected 12 dishes, got %d", cfg.Planner.DishCount)
	}
	if cfg.Planner.MealsPerDay != 3 {
		t.Errorf("expected default meals per day, got %d", cfg.Planner.MealsPerDay)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected text format, got %s", cfg.Logging.Format)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "platter.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PLATTER_PORT", "7100")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 7100 {
		t.Errorf("expected env to win with 7100, got %d", cfg.Server.Port)
	}
}

func TestLoadErrors(t *testing.T) {
	clearEnv(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("server: [not a map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("expected error for malformed yaml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown anchor", func(c *Config) { c.Ranking.Anchor = "median" }},
		{"unknown backend", func(c *Config) { c.Generator.Backend = "carrier-pigeon" }},
		{"unknown log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"zero meals", func(c *Config) { c.Planner.MealsPerDay = 0 }},
		{"negative batch", func(c *Config) { c.Planner.BatchConcurrency = -1 }},
		{"zero max candidates", func(c *Config) { c.Ranking.MaxCandidates = 0 }},
		{"zero message chars", func(c *Config) { c.Planner.MaxMessageChars = 0 }},
		{"min profile above max", func(c *Config) { c.Planner.MinProfileChars = 600 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	if err := Defaults().Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

// Package config loads server configuration from the environment,
// with an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs to start.
type Config struct {
	// HTTP
	Port string

	// Persistence
	DBPath string

	// LLM
	LLMProvider     string // "openai" or "anthropic"
	OpenAIKey       string
	OpenAIModel     string
	AnthropicKey    string
	AnthropicModel  string
	DailyBudgetUSD  float64
	MonthlyBudgetUSD float64
}

// Load reads configuration. A missing .env file is not an error; real
// environment variables always win over file values.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		DBPath:           getEnv("DB_PATH", "data/life.db"),
		LLMProvider:      getEnv("LLM_PROVIDER", "openai"),
		OpenAIKey:        os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:      getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		AnthropicKey:     os.Getenv("ANTHROPIC_API_KEY"),
		AnthropicModel:   getEnv("ANTHROPIC_MODEL", "claude-3-5-sonnet-20241022"),
		DailyBudgetUSD:   getEnvFloat("LLM_DAILY_BUDGET_USD", 5.0),
		MonthlyBudgetUSD: getEnvFloat("LLM_MONTHLY_BUDGET_USD", 50.0),
	}

	switch cfg.LLMProvider {
	case "openai", "anthropic":
	default:
		return nil, fmt.Errorf("config: unknown LLM_PROVIDER %q (want openai or anthropic)", cfg.LLMProvider)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

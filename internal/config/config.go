package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Supported completion providers
const (
	ProviderGroq   = "groq"
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// GroqBaseURL is Groq's OpenAI-compatible endpoint
const GroqBaseURL = "https://api.groq.com/openai/v1"

var (
	ErrMissingAPIKey   = errors.New("missing API key")
	ErrUnknownProvider = errors.New("unknown LLM provider")
)

type Config struct {
	Env       string `env:"ENV" envDefault:"development"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
	Host      string `env:"HOST" envDefault:"0.0.0.0"`
	Port      string `env:"PORT" envDefault:"8000"`

	LLM       LLM
	Breaker   Breaker
	RateLimit RateLimit

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

type LLM struct {
	Provider      string        `env:"LLM_PROVIDER" envDefault:"groq"`
	GroqAPIKey    string        `env:"GROQ_API_KEY"`
	OpenAIAPIKey  string        `env:"OPENAI_API_KEY"`
	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	BaseURL       string        `env:"LLM_BASE_URL"`
	ReviewModel   string        `env:"REVIEW_MODEL"`
	CategoryModel string        `env:"CATEGORY_MODEL"`
	Timeout       time.Duration `env:"LLM_TIMEOUT" envDefault:"30s"`
}

type Breaker struct {
	Enabled  bool          `env:"BREAKER_ENABLED" envDefault:"false"`
	Failures uint32        `env:"BREAKER_FAILURES" envDefault:"5"`
	Cooldown time.Duration `env:"BREAKER_COOLDOWN" envDefault:"30s"`
}

type RateLimit struct {
	RPS        float64 `env:"RATE_LIMIT_RPS" envDefault:"1"`
	Burst      int     `env:"RATE_LIMIT_BURST" envDefault:"5"`
	DailyQuota int64   `env:"DAILY_QUOTA" envDefault:"0"`
}

// defaultModels maps provider -> (review model, category model)
var defaultModels = map[string][2]string{
	ProviderGroq:   {"llama-3.3-70b-versatile", "llama-3.1-8b-instant"},
	ProviderOpenAI: {"gpt-4o", "gpt-4o-mini"},
	ProviderGemini: {"gemini-2.5-flash", "gemini-2.5-flash-lite"},
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")
	return Parse(env.Options{})
}

// Parse builds a Config from the given env options, fills provider defaults and validates it.
func Parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.LLM.Provider = strings.ToLower(strings.TrimSpace(cfg.LLM.Provider))
	if models, ok := defaultModels[cfg.LLM.Provider]; ok {
		if cfg.LLM.ReviewModel == "" {
			cfg.LLM.ReviewModel = models[0]
		}
		if cfg.LLM.CategoryModel == "" {
			cfg.LLM.CategoryModel = models[1]
		}
	}
	if cfg.LLM.Provider == ProviderGroq && cfg.LLM.BaseURL == "" {
		cfg.LLM.BaseURL = GroqBaseURL
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the active provider is usable.
func (c *Config) Validate() error {
	if _, ok := defaultModels[c.LLM.Provider]; !ok {
		return fmt.Errorf("%w: %q", ErrUnknownProvider, c.LLM.Provider)
	}
	if c.APIKey() == "" {
		return fmt.Errorf("%w: set %s", ErrMissingAPIKey, c.APIKeyEnv())
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("LLM_TIMEOUT must be positive, got %s", c.LLM.Timeout)
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}
	if c.RateLimit.DailyQuota < 0 {
		return fmt.Errorf("DAILY_QUOTA must not be negative")
	}
	if c.Breaker.Enabled && c.Breaker.Failures == 0 {
		return fmt.Errorf("BREAKER_FAILURES must be at least 1")
	}
	return nil
}

// APIKey returns the credential of the active provider.
func (c *Config) APIKey() string {
	switch c.LLM.Provider {
	case ProviderGroq:
		return c.LLM.GroqAPIKey
	case ProviderOpenAI:
		return c.LLM.OpenAIAPIKey
	case ProviderGemini:
		return c.LLM.GeminiAPIKey
	}
	return ""
}

// APIKeyEnv names the environment variable holding the active provider's key.
func (c *Config) APIKeyEnv() string {
	switch c.LLM.Provider {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	}
	return "GROQ_API_KEY"
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

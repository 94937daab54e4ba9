package agent

import (
	"context"
	"fmt"
	"net/http"

	"bookscan/internal/agent/deps"
	"bookscan/internal/config"

	"github.com/sashabaranov/go-openai"
	log "github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

// NewReviewerFromConfig builds the provider clients described by cfg and wraps them
// with metrics and, when enabled, a circuit breaker.
func NewReviewerFromConfig(ctx context.Context, cfg *config.Config) (*Reviewer, error) {
	var reviewClient, categoryClient deps.LLMClient

	switch cfg.LLM.Provider {
	case config.ProviderGroq, config.ProviderOpenAI:
		clientConfig := openai.DefaultConfig(cfg.APIKey())
		if cfg.LLM.BaseURL != "" {
			clientConfig.BaseURL = cfg.LLM.BaseURL
		}
		clientConfig.HTTPClient = &http.Client{Timeout: cfg.LLM.Timeout}
		client := openai.NewClientWithConfig(clientConfig)

		reviewClient = NewOpenAILLMClient(client, cfg.LLM.ReviewModel)
		categoryClient = NewOpenAILLMClient(client, cfg.LLM.CategoryModel)

	case config.ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.APIKey(),
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create genai client: %w", err)
		}

		reviewClient = NewGeminiLLMClient(client, cfg.LLM.ReviewModel)
		categoryClient = NewGeminiLLMClient(client, cfg.LLM.CategoryModel)

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.LLM.Provider)
	}

	if cfg.Breaker.Enabled {
		reviewClient = NewBreakerLLMClient("review", reviewClient, cfg.Breaker.Failures, cfg.Breaker.Cooldown)
		categoryClient = NewBreakerLLMClient("category", categoryClient, cfg.Breaker.Failures, cfg.Breaker.Cooldown)
	}

	reviewClient = NewInstrumentedLLMClient(reviewClient, "review", cfg.LLM.ReviewModel)
	categoryClient = NewInstrumentedLLMClient(categoryClient, "category", cfg.LLM.CategoryModel)

	log.WithFields(log.Fields{
		"provider":       cfg.LLM.Provider,
		"review_model":   cfg.LLM.ReviewModel,
		"category_model": cfg.LLM.CategoryModel,
		"timeout":        cfg.LLM.Timeout,
		"breaker":        cfg.Breaker.Enabled,
	}).Info("Reviewer initialized")

	return NewReviewer(reviewClient, categoryClient, cfg.LLM.Timeout), nil
}

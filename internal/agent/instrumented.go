package agent

import (
	"context"
	"time"

	"bookscan/internal/agent/deps"
	"bookscan/internal/observability"
)

// InstrumentedLLMClient records call counts, errors and latency per operation
type InstrumentedLLMClient struct {
	next      deps.LLMClient
	operation string
	model     string
}

func NewInstrumentedLLMClient(next deps.LLMClient, operation, model string) *InstrumentedLLMClient {
	return &InstrumentedLLMClient{
		next:      next,
		operation: operation,
		model:     model,
	}
}

func (c *InstrumentedLLMClient) GenerateContent(ctx context.Context, prompt string, temperature float32, maxOutputTokens int32) (string, error) {
	start := time.Now()
	observability.LLMCalls.WithLabelValues(c.operation, c.model).Inc()

	text, err := c.next.GenerateContent(ctx, prompt, temperature, maxOutputTokens)

	observability.LLMLatency.WithLabelValues(c.operation).Observe(time.Since(start).Seconds())
	if err != nil {
		observability.LLMErrors.WithLabelValues(c.operation, FailureCode(err).String()).Inc()
	}
	return text, err
}

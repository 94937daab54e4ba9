package agent

import (
	"context"
	"errors"
	"time"

	"bookscan/internal/agent/deps"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// BreakerLLMClient fails fast while the upstream keeps failing
type BreakerLLMClient struct {
	next deps.LLMClient
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerLLMClient opens after `failures` consecutive errors and probes again after `cooldown`
func NewBreakerLLMClient(name string, next deps.LLMClient, failures uint32, cooldown time.Duration) *BreakerLLMClient {
	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    0,
		Timeout:     cooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		// A caller that went away says nothing about upstream health
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warnf("[BREAKER] %s: %s -> %s", name, from, to)
		},
	}

	return &BreakerLLMClient{
		next: next,
		cb:   gobreaker.NewCircuitBreaker(settings),
	}
}

func (b *BreakerLLMClient) GenerateContent(ctx context.Context, prompt string, temperature float32, maxOutputTokens int32) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.GenerateContent(ctx, prompt, temperature, maxOutputTokens)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// State exposes the breaker state for diagnostics
func (b *BreakerLLMClient) State() gobreaker.State {
	return b.cb.State()
}

package deps

import (
	"context"
)

// LLMClient abstracts a single-shot completion call against one model
type LLMClient interface {
	GenerateContent(ctx context.Context, prompt string, temperature float32, maxOutputTokens int32) (string, error)
}

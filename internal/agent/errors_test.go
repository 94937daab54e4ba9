package agent

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestFailureCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
	}{
		{"nil", nil, codes.OK},
		{"deadline", fmt.Errorf("call: %w", context.DeadlineExceeded), codes.DeadlineExceeded},
		{"canceled", context.Canceled, codes.Canceled},
		{"breaker open", gobreaker.ErrOpenState, codes.Unavailable},
		{"breaker half-open", gobreaker.ErrTooManyRequests, codes.Unavailable},
		{"empty response", ErrEmptyResponse, codes.Internal},
		{"grpc status", status.Error(codes.ResourceExhausted, "quota"), codes.ResourceExhausted},
		{"openai 401", fmt.Errorf("chat completion failed: %w", &openai.APIError{HTTPStatusCode: http.StatusUnauthorized}), codes.Unauthenticated},
		{"openai 429", &openai.APIError{HTTPStatusCode: http.StatusTooManyRequests}, codes.ResourceExhausted},
		{"openai 503", &openai.RequestError{HTTPStatusCode: http.StatusServiceUnavailable, Err: errors.New("unavailable")}, codes.Unavailable},
		{"openai 404", &openai.APIError{HTTPStatusCode: http.StatusNotFound}, codes.NotFound},
		{"rest quota message", errors.New("Error 429, Message: RESOURCE_EXHAUSTED"), codes.ResourceExhausted},
		{"rest auth message", errors.New("Error 400, Status: API_KEY_INVALID"), codes.Unauthenticated},
		{"anything else", errors.New("dial tcp: connection refused"), codes.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FailureCode(tt.err))
		})
	}
}

func TestOutcome(t *testing.T) {
	ok := Succeeded("text")
	assert.True(t, ok.OK())
	assert.NoError(t, ok.Err())
	assert.Equal(t, "text", ok.Text())
	assert.Empty(t, ok.FailureCode())

	failed := Failed(ErrEmptyResponse)
	assert.False(t, failed.OK())
	assert.ErrorIs(t, failed.Err(), ErrEmptyResponse)
	assert.Equal(t, "Error generating review: empty response from model", failed.Text())
	assert.Equal(t, "Internal", failed.FailureCode())
}

package agent

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrEmptyResponse is returned when the model answers with no text
var ErrEmptyResponse = errors.New("empty response from model")

// FailureCode classifies a completion error into a gRPC status code.
func FailureCode(err error) codes.Code {
	if err == nil {
		return codes.OK
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return codes.Unavailable
	case errors.Is(err, ErrEmptyResponse):
		return codes.Internal
	}

	// gRPC-backed SDKs
	if s, ok := status.FromError(err); ok {
		return s.Code()
	}

	// OpenAI-compatible HTTP APIs (Groq, OpenAI)
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return codeFromHTTPStatus(apiErr.HTTPStatusCode)
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return codeFromHTTPStatus(reqErr.HTTPStatusCode)
	}

	// Fall back to message matching for REST errors of other SDKs
	msg := err.Error()
	switch {
	case strings.Contains(msg, "RESOURCE_EXHAUSTED"),
		strings.Contains(msg, "429"),
		strings.Contains(strings.ToLower(msg), "rate limit"),
		strings.Contains(strings.ToLower(msg), "quota"):
		return codes.ResourceExhausted
	case strings.Contains(msg, "UNAUTHENTICATED"),
		strings.Contains(msg, "401"),
		strings.Contains(msg, "API_KEY_INVALID"):
		return codes.Unauthenticated
	}
	return codes.Unknown
}

func codeFromHTTPStatus(code int) codes.Code {
	switch {
	case code == http.StatusBadRequest:
		return codes.InvalidArgument
	case code == http.StatusUnauthorized:
		return codes.Unauthenticated
	case code == http.StatusForbidden:
		return codes.PermissionDenied
	case code == http.StatusNotFound:
		return codes.NotFound
	case code == http.StatusRequestTimeout || code == http.StatusGatewayTimeout:
		return codes.DeadlineExceeded
	case code == http.StatusTooManyRequests:
		return codes.ResourceExhausted
	case code >= 500:
		return codes.Unavailable
	}
	return codes.Unknown
}

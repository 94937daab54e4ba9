package agent

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
)

type stubCompleter struct {
	lastReq openai.ChatCompletionRequest
	resp    openai.ChatCompletionResponse
	err     error
}

func (s *stubCompleter) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.lastReq = req
	return s.resp, s.err
}

func chatResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content}},
		},
	}
}

func TestOpenAILLMClient_BuildsRequest(t *testing.T) {
	stub := &stubCompleter{resp: chatResponse("Fiction")}
	client := NewOpenAILLMClient(stub, "llama-3.1-8b-instant")

	text, err := client.GenerateContent(context.Background(), "classify", 0.3, 10)

	require.NoError(t, err)
	assert.Equal(t, "Fiction", text)
	assert.Equal(t, "llama-3.1-8b-instant", stub.lastReq.Model)
	assert.Equal(t, float32(0.3), stub.lastReq.Temperature)
	assert.Equal(t, 10, stub.lastReq.MaxTokens)
	require.Len(t, stub.lastReq.Messages, 1)
	assert.Equal(t, openai.ChatMessageRoleUser, stub.lastReq.Messages[0].Role)
	assert.Equal(t, "classify", stub.lastReq.Messages[0].Content)
}

func TestOpenAILLMClient_Errors(t *testing.T) {
	apiErr := errors.New("simulated API error")

	_, err := NewOpenAILLMClient(&stubCompleter{err: apiErr}, "m").GenerateContent(context.Background(), "p", 0.7, 1500)
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	assert.Contains(t, err.Error(), "chat completion failed")

	_, err = NewOpenAILLMClient(&stubCompleter{}, "m").GenerateContent(context.Background(), "p", 0.7, 1500)
	assert.ErrorIs(t, err, ErrEmptyResponse)

	_, err = NewOpenAILLMClient(&stubCompleter{resp: chatResponse("")}, "m").GenerateContent(context.Background(), "p", 0.7, 1500)
	assert.ErrorIs(t, err, ErrEmptyResponse)
}

func TestOpenAILLMClient_AgainstHTTPServer(t *testing.T) {
	var got openai.ChatCompletionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer gsk-test", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(chatResponse("Non-Fiction"))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("gsk-test")
	cfg.BaseURL = srv.URL
	client := NewOpenAILLMClient(openai.NewClientWithConfig(cfg), "llama-3.3-70b-versatile")

	text, err := client.GenerateContent(context.Background(), "prompt", 0.7, 1500)

	require.NoError(t, err)
	assert.Equal(t, "Non-Fiction", text)
	assert.Equal(t, "llama-3.3-70b-versatile", got.Model)
	assert.Equal(t, 1500, got.MaxTokens)
}

func TestOpenAILLMClient_HTTPErrorIsClassified(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Invalid API Key","type":"invalid_request_error","code":"invalid_api_key"}}`))
	}))
	defer srv.Close()

	cfg := openai.DefaultConfig("bad")
	cfg.BaseURL = srv.URL
	client := NewOpenAILLMClient(openai.NewClientWithConfig(cfg), "m")

	_, err := client.GenerateContent(context.Background(), "prompt", 0.3, 10)

	require.Error(t, err)
	assert.Equal(t, codes.Unauthenticated, FailureCode(err))
	assert.Contains(t, err.Error(), "Invalid API Key")
}

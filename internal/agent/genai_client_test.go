package agent

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func newTestGenaiClient(t *testing.T, body string) *genai.Client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"), r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)

	client, err := genai.NewClient(context.Background(), &genai.ClientConfig{
		APIKey:      "test-key",
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: srv.URL},
	})
	require.NoError(t, err)
	return client
}

func TestGeminiLLMClient_GenerateContent(t *testing.T) {
	client := newTestGenaiClient(t, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Fic"},{"text":"tion"}]}}]}`)

	text, err := NewGeminiLLMClient(client, "gemini-2.5-flash-lite").GenerateContent(context.Background(), "prompt", 0.3, 10)

	require.NoError(t, err)
	assert.Equal(t, "Fiction", text)
}

func TestGeminiLLMClient_EmptyCandidates(t *testing.T) {
	client := newTestGenaiClient(t, `{"candidates":[]}`)

	_, err := NewGeminiLLMClient(client, "gemini-2.5-flash").GenerateContent(context.Background(), "prompt", 0.7, 1500)

	assert.ErrorIs(t, err, ErrEmptyResponse)
}

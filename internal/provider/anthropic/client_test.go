package anthropic

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	ai "github.com/spetersoncode/parley"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Model     string `json:"model"`
	MaxTokens int    `json:"max_tokens"`
	Messages  []struct {
		Role    string `json:"role"`
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	} `json:"messages"`
}

func TestChat_SendsFullHistoryVerbatim(t *testing.T) {
	var captured capturedRequest
	var apiKey, version string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("x-api-key")
		version = r.Header.Get("anthropic-version")
		json.NewDecoder(r.Body).Decode(&captured)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"id": "msg_01",
			"type": "message",
			"role": "assistant",
			"model": "claude-sonnet-4-5",
			"content": [{"type": "text", "text": "hi there"}],
			"stop_reason": "end_turn",
			"usage": {"input_tokens": 10, "output_tokens": 5}
		}`))
	}))
	defer srv.Close()

	c := New("sk-ant-x", WithBaseURL(srv.URL))
	reply, err := c.Chat(context.Background(), []ai.Message{
		{Role: ai.RoleAssistant, Content: "Hi! How can I help you today?"},
		{Role: ai.RoleUser, Content: "hello"},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi there", reply)

	assert.Equal(t, "sk-ant-x", apiKey)
	assert.NotEmpty(t, version)
	assert.Equal(t, DefaultModel, captured.Model)
	assert.Equal(t, defaultMaxTokens, captured.MaxTokens)

	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "assistant", captured.Messages[0].Role)
	assert.Equal(t, "Hi! How can I help you today?", captured.Messages[0].Content[0].Text)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.Equal(t, "hello", captured.Messages[1].Content[0].Text)
}

func TestChat_NonOKStatusBecomesProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"type":"error","error":{"type":"authentication_error","message":"bad key"}}`))
	}))
	defer srv.Close()

	c := New("sk-ant-x", WithBaseURL(srv.URL))
	_, err := c.Chat(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hello"}})

	var pe *ai.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, http.StatusUnauthorized, pe.StatusCode)
	assert.Equal(t, "bad key", pe.Message)
}

func TestChat_WithModelOverride(t *testing.T) {
	var captured capturedRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"msg_01","type":"message","role":"assistant","model":"claude-haiku-4-5","content":[{"type":"text","text":"ok"}],"stop_reason":"end_turn","usage":{"input_tokens":1,"output_tokens":1}}`))
	}))
	defer srv.Close()

	c := New("sk-ant-x", WithBaseURL(srv.URL), WithModel("claude-haiku-4-5"), WithMaxTokens(64))
	_, err := c.Chat(context.Background(), []ai.Message{{Role: ai.RoleUser, Content: "hello"}})
	require.NoError(t, err)
	assert.Equal(t, "claude-haiku-4-5", captured.Model)
	assert.Equal(t, 64, captured.MaxTokens)
}

func TestWrapError_TransportFailure(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := wrapError(cause)

	var pe *ai.ProviderError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 0, pe.StatusCode)
	assert.Equal(t, cause.Error(), pe.Error())
}

func TestErrorMessage_MalformedBody(t *testing.T) {
	assert.Empty(t, errorMessage("not json"))
	assert.Empty(t, errorMessage(`{"error":{}}`))
}

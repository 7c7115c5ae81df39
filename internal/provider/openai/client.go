package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	ai "github.com/spetersoncode/parley"
)

// Client wraps the OpenAI SDK to implement ai.ChatProvider.
//
// The SDK sends the key as an Authorization: Bearer header on every
// request.
type Client struct {
	client  *openai.Client
	model   string
	baseURL string
}

// New creates a new OpenAI client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		model: DefaultModel,
	}
	for _, opt := range opts {
		opt(c)
	}
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if c.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(c.baseURL))
	}
	client := openai.NewClient(reqOpts...)
	c.client = &client
	return c
}

// ClientOption configures the OpenAI client.
type ClientOption func(*Client)

// WithModel sets the model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithBaseURL overrides the API endpoint. Used by tests to point the real
// SDK at a local server.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// Chat sends the full conversation in one request and returns the first
// choice's message content.
func (c *Client) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: convertMessages(messages),
	}

	resp, err := c.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", wrapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", ai.NewProviderError(0, "empty response from OpenAI", nil)
	}
	return resp.Choices[0].Message.Content, nil
}

var _ ai.ChatProvider = (*Client)(nil)

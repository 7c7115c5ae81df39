package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	ai "github.com/spetersoncode/parley"
)

// Client wraps the Anthropic SDK to implement ai.ChatProvider.
//
// The SDK carries the raw key in the x-api-key header and a fixed
// anthropic-version header on every request.
type Client struct {
	client    *anthropic.Client
	model     string
	maxTokens int64
	baseURL   string
}

// New creates a new Anthropic client with the given API key.
func New(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		model:     DefaultModel,
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(c)
	}
	reqOpts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if c.baseURL != "" {
		reqOpts = append(reqOpts, option.WithBaseURL(c.baseURL))
	}
	client := anthropic.NewClient(reqOpts...)
	c.client = &client
	return c
}

// ClientOption configures the Anthropic client.
type ClientOption func(*Client)

// WithModel sets the model for requests.
func WithModel(model string) ClientOption {
	return func(c *Client) {
		c.model = model
	}
}

// WithMaxTokens sets the reply size cap for requests.
func WithMaxTokens(n int64) ClientOption {
	return func(c *Client) {
		c.maxTokens = n
	}
}

// WithBaseURL overrides the API endpoint. Used by tests to point the real
// SDK at a local server.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// Chat sends the full conversation in one request and returns the text of
// the first content block of the response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages:  convertMessages(messages),
	}

	resp, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", wrapError(err)
	}

	if len(resp.Content) == 0 {
		return "", ai.NewProviderError(0, "empty response from Anthropic", nil)
	}
	return resp.Content[0].Text, nil
}

var _ ai.ChatProvider = (*Client)(nil)

package parley

import "context"

// ChatProvider defines the interface for LLM chat providers.
//
// Implementations send the full conversation in a single request/response
// round trip and return the assistant's reply as plain text. There is no
// retry, timeout, or streaming behavior at this layer; callers that need a
// deadline pass it through ctx.
type ChatProvider interface {
	// Chat sends a conversation and returns the assistant reply.
	// Failures are reported as *ProviderError.
	Chat(ctx context.Context, messages []Message) (string, error)
}

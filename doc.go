// Package parley provides the core types for a two-provider chat relay.
//
// The root package is wire-neutral: it defines conversation messages, the
// [ChatProvider] interface, the [Provider] identifiers, and the
// [ProviderError] failure type. Provider-specific request and response
// shapes live in internal packages wrapping the official Anthropic and
// OpenAI SDKs; use the [github.com/spetersoncode/parley/client] package to
// construct a provider from a name and API key.
//
// # Basic Usage
//
//	p, err := client.New(parley.ProviderAnthropic, os.Getenv("ANTHROPIC_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	reply, err := p.Chat(ctx, []parley.Message{
//	    {Role: parley.RoleUser, Content: "Hello!"},
//	})
//
// Conversation state, the turn protocol, and the web view build on these
// types in the session and web packages.
package parley

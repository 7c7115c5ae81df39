// Package anthropic provides an Anthropic Claude client implementing
// [parley.ChatProvider].
//
// This package wraps the official Anthropic Go SDK. Every call is a single
// request/response round trip against the Messages API carrying the full
// conversation verbatim (role and content only); the reply is the text of
// the first content block. The model and max_tokens are fixed at
// construction ([DefaultModel], 1024) and overridable via [WithModel] and
// [WithMaxTokens].
package anthropic

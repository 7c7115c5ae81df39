// Package openai provides an OpenAI client implementing
// [parley.ChatProvider].
//
// This package wraps the official OpenAI Go SDK. Every call is a single
// request/response round trip against the Chat Completions API carrying
// the full conversation verbatim (role and content only); the reply is the
// first choice's message content. The model is fixed at construction
// ([DefaultModel]) and overridable via [WithModel].
package openai

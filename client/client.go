// Package client constructs chat providers from a provider identifier and
// an API key.
//
// Selection is a variant lookup: each supported [parley.Provider] maps to
// one adapter implementing [parley.ChatProvider]. Provider-specific wire
// handling stays inside the internal adapter packages.
package client

import (
	"fmt"

	ai "github.com/spetersoncode/parley"
	"github.com/spetersoncode/parley/internal/provider/anthropic"
	"github.com/spetersoncode/parley/internal/provider/openai"
)

// New returns a ChatProvider for the given provider and API key.
// Returns parley.ErrUnknownProvider for providers outside the supported
// set.
func New(provider ai.Provider, apiKey string) (ai.ChatProvider, error) {
	switch provider {
	case ai.ProviderAnthropic:
		return anthropic.New(apiKey), nil
	case ai.ProviderOpenAI:
		return openai.New(apiKey), nil
	}
	return nil, fmt.Errorf("%w: %q", ai.ErrUnknownProvider, provider)
}

package parley

import "fmt"

// Provider identifies an LLM provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// ParseProvider converts a provider name into a Provider, returning
// ErrUnknownProvider for anything outside the supported set.
func ParseProvider(name string) (Provider, error) {
	switch Provider(name) {
	case ProviderAnthropic:
		return ProviderAnthropic, nil
	case ProviderOpenAI:
		return ProviderOpenAI, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, name)
}

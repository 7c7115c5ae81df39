// Package prefs persists the two user preferences: the active provider and
// its API key.
//
// Stores are durable local key-value storage with no expiry and no
// encryption; the key is held raw. [BoltStore] is the durable
// implementation, [MemoryStore] backs tests and ephemeral runs.
package prefs

import (
	"errors"
	"strings"

	ai "github.com/spetersoncode/parley"
)

// ErrBlankAPIKey is returned by Save when the API key is blank or
// whitespace-only. The store is left unchanged.
var ErrBlankAPIKey = errors.New("prefs: blank api key")

// Preferences holds the persisted provider selection and API key.
type Preferences struct {
	Provider ai.Provider `json:"provider"`
	APIKey   string      `json:"apiKey"`
}

// Store is durable storage for Preferences.
type Store interface {
	// Load reads the persisted preferences. ok is false when nothing has
	// ever been saved.
	Load() (p Preferences, ok bool, err error)

	// Save overwrites both fields durably. Rejects blank keys with
	// ErrBlankAPIKey and unknown providers with parley.ErrUnknownProvider,
	// leaving the store unchanged.
	Save(p Preferences) error

	// Clear removes both fields, restoring the never-set state.
	Clear() error
}

// validate checks a Preferences value before it is written.
func validate(p Preferences) error {
	if strings.TrimSpace(p.APIKey) == "" {
		return ErrBlankAPIKey
	}
	if _, err := ai.ParseProvider(p.Provider.String()); err != nil {
		return err
	}
	return nil
}

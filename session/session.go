// Package session holds conversation state and drives the turn protocol:
// one user submission, one provider round trip, one assistant reply.
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	ai "github.com/spetersoncode/parley"
	"github.com/spetersoncode/parley/client"
	"github.com/spetersoncode/parley/prefs"
)

// Guard violations. A send that fails one of these guards is a no-op: the
// conversation is unchanged and no network call is issued.
var (
	// ErrBlankMessage is returned when the submitted text is blank or
	// whitespace-only.
	ErrBlankMessage = errors.New("session: blank message")

	// ErrBusy is returned while a previous turn is still awaiting its
	// response.
	ErrBusy = errors.New("session: request already in flight")

	// ErrNoAPIKey is returned when no API key has been saved.
	ErrNoAPIKey = errors.New("session: no api key configured")
)

// ProviderFactory builds a ChatProvider for a turn from the saved
// preferences.
type ProviderFactory func(provider ai.Provider, apiKey string) (ai.ChatProvider, error)

// Session drives turns against a conversation. It has two states, idle and
// awaiting-response; the busy flag is the mutual-exclusion mechanism, so at
// most one provider call is in flight at a time. There is no cancellation:
// once a turn starts, the only way back to idle is the call settling.
//
// The full history is sent on every call with no truncation. That is fine
// for short sessions and a known scaling limit for long ones.
type Session struct {
	conv    *Conversation
	store   prefs.Store
	factory ProviderFactory
	log     *slog.Logger

	mu   sync.Mutex
	busy bool
}

// Option configures a Session.
type Option func(*Session)

// WithProviderFactory replaces the default provider lookup. Tests use this
// to substitute a stub provider.
func WithProviderFactory(f ProviderFactory) Option {
	return func(s *Session) { s.factory = f }
}

// WithLogger sets the session logger.
func WithLogger(log *slog.Logger) Option {
	return func(s *Session) { s.log = log }
}

// New creates a session over the given conversation and preference store.
func New(conv *Conversation, store prefs.Store, opts ...Option) *Session {
	s := &Session{
		conv:    conv,
		store:   store,
		factory: client.New,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Conversation returns the conversation this session appends to.
func (s *Session) Conversation() *Conversation {
	return s.conv
}

// Busy reports whether a provider call is currently in flight.
func (s *Session) Busy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.busy
}

// Send runs one turn: it appends the user message, issues a single
// provider call with the full history, and appends exactly one assistant
// message — the reply on success, a readable error description on failure.
// Provider failures are converted into conversation content and never
// returned to the caller; the returned error is non-nil only for guard
// violations, which leave the conversation untouched.
func (s *Session) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrBlankMessage
	}

	p, ok, err := s.store.Load()
	if err != nil {
		return err
	}
	if !ok || strings.TrimSpace(p.APIKey) == "" {
		return ErrNoAPIKey
	}

	s.mu.Lock()
	if s.busy {
		s.mu.Unlock()
		return ErrBusy
	}
	s.busy = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.busy = false
		s.mu.Unlock()
	}()

	s.conv.Append(ai.NewUserMessage(text))

	reply, err := s.chat(ctx, p)
	if err != nil {
		pe := ai.AsProviderError(err)
		s.log.Warn("provider call failed",
			"provider", p.Provider,
			"status", pe.StatusCode,
			"error", pe.Error(),
		)
		s.conv.Append(ai.NewAssistantMessage(failureContent(pe)))
		return nil
	}

	s.conv.Append(ai.NewAssistantMessage(reply))
	return nil
}

// chat builds the provider for the turn and issues the single round trip.
func (s *Session) chat(ctx context.Context, p prefs.Preferences) (string, error) {
	provider, err := s.factory(p.Provider, p.APIKey)
	if err != nil {
		return "", err
	}
	return provider.Chat(ctx, s.conv.Messages())
}

// failureContent renders a provider failure as assistant-visible text.
func failureContent(pe *ai.ProviderError) string {
	return fmt.Sprintf("Error: %s. Please check your API key in settings.", pe.Error())
}

package session

import (
	"sync"

	ai "github.com/spetersoncode/parley"
)

// DefaultGreeting is the synthetic assistant message seeding every
// conversation. It is part of the history sent to providers.
const DefaultGreeting = "Hi! How can I help you today?"

// Subscriber receives a snapshot of the conversation after every change.
type Subscriber func(messages []ai.Message)

// Conversation is an ordered, append-only sequence of messages. It starts
// with one synthetic assistant greeting, never shrinks, and is never
// reordered. Lifetime is the process session; nothing is persisted.
type Conversation struct {
	mu       sync.RWMutex
	greeting string
	messages []ai.Message
	subs     []Subscriber
}

// NewConversation creates a conversation seeded with the greeting.
// An empty greeting falls back to DefaultGreeting.
func NewConversation(greeting string) *Conversation {
	if greeting == "" {
		greeting = DefaultGreeting
	}
	return &Conversation{
		greeting: greeting,
		messages: []ai.Message{ai.NewAssistantMessage(greeting)},
	}
}

// Messages returns a copy of the full history in chronological order.
func (c *Conversation) Messages() []ai.Message {
	c.mu.RLock()
	defer c.mu.RUnlock()
	result := make([]ai.Message, len(c.messages))
	copy(result, c.messages)
	return result
}

// Len returns the number of messages.
func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.messages)
}

// Append adds messages to the end of the conversation and notifies
// subscribers.
func (c *Conversation) Append(msgs ...ai.Message) {
	if len(msgs) == 0 {
		return
	}
	c.mu.Lock()
	c.messages = append(c.messages, msgs...)
	c.mu.Unlock()
	c.notify()
}

// Reset discards the history and re-seeds the greeting, then notifies
// subscribers. This is the only way a conversation ever shrinks.
func (c *Conversation) Reset() {
	c.mu.Lock()
	c.messages = []ai.Message{ai.NewAssistantMessage(c.greeting)}
	c.mu.Unlock()
	c.notify()
}

// Subscribe registers fn to be called with a history snapshot after every
// change. Callbacks run synchronously on the mutating goroutine and must
// not call back into the conversation's mutating methods.
func (c *Conversation) Subscribe(fn Subscriber) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}

func (c *Conversation) notify() {
	c.mu.RLock()
	snapshot := make([]ai.Message, len(c.messages))
	copy(snapshot, c.messages)
	subs := make([]Subscriber, len(c.subs))
	copy(subs, c.subs)
	c.mu.RUnlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

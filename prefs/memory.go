package prefs

import "sync"

// MemoryStore is an in-memory Store. It satisfies the same contract as
// BoltStore minus durability.
type MemoryStore struct {
	mu  sync.RWMutex
	p   Preferences
	set bool
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Load reads the stored preferences.
func (s *MemoryStore) Load() (Preferences, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.p, s.set, nil
}

// Save overwrites both fields after validation.
func (s *MemoryStore) Save(p Preferences) error {
	if err := validate(p); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = p
	s.set = true
	return nil
}

// Clear removes both fields.
func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = Preferences{}
	s.set = false
	return nil
}

var _ Store = (*MemoryStore)(nil)

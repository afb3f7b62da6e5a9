package receivers

import (
	"context"
	"slices"
	"sync"
)

// MemoryStore is an in-memory implementation of the Store interface.
// Suitable for development and testing.
type MemoryStore struct {
	mu     sync.RWMutex
	emails []string
}

// NewMemoryStore creates an empty in-memory receiver store.
func NewMemoryStore(emails ...string) *MemoryStore {
	return &MemoryStore{emails: dedupe(emails)}
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.emails), nil
}

func (s *MemoryStore) Add(ctx context.Context, email string) error {
	if err := validateEmail(email); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.emails, email) {
		return nil
	}
	s.emails = append(s.emails, email)
	return nil
}

func (s *MemoryStore) Remove(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.emails = slices.DeleteFunc(s.emails, func(e string) bool {
		return e == email
	})
	return nil
}

package lostitem

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory implementation of the Store interface.
// Suitable for development and testing.
type MemoryStore struct {
	mu    sync.RWMutex
	items map[string]LostItem
}

// NewMemoryStore creates an empty in-memory lost item store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]LostItem)}
}

func (s *MemoryStore) Create(ctx context.Context, description string, contact, imageRef *string) (string, error) {
	if err := validateDescription(description); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := LostItem{
		ID:          uuid.NewString(),
		Description: description,
		Status:      StatusUnclaimed,
		Contact:     contact,
		ImageRef:    imageRef,
		CreatedAt:   time.Now().UTC(),
	}
	s.items[item.ID] = item
	return item.ID, nil
}

func (s *MemoryStore) GetByID(ctx context.Context, id string) (*LostItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return nil, ErrItemNotFound
	}
	// Copy so callers cannot mutate stored state.
	return &item, nil
}

func (s *MemoryStore) List(ctx context.Context, statusFilter *Status) ([]LostItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]LostItem, 0, len(s.items))
	for _, item := range s.items {
		if statusFilter != nil && item.Status != *statusFilter {
			continue
		}
		items = append(items, item)
	}

	// Newest first, same contract as the mongo store.
	slices.SortStableFunc(items, func(a, b LostItem) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return items, nil
}

func (s *MemoryStore) UpdateFields(ctx context.Context, id, description string, contact, imageRef *string) error {
	if err := validateDescription(description); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return ErrItemNotFound
	}
	item.Description = description
	item.Contact = contact
	item.ImageRef = imageRef
	s.items[id] = item
	return nil
}

func (s *MemoryStore) UpdateStatus(ctx context.Context, id string, status Status) error {
	if err := validateStatus(status); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return ErrItemNotFound
	}
	item.Status = status
	s.items[id] = item
	return nil
}

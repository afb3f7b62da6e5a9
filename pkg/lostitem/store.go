package lostitem

import (
	"context"
	"errors"

	"github.com/foundlab/lostfound/pkg/validator"
)

// ErrItemNotFound is returned when an item id is unknown to the store.
var ErrItemNotFound = errors.New("lost item not found")

// Store is the persistence contract for lost items. List always returns
// newest-first by creation time; consumers rely on that ordering.
type Store interface {
	// Create persists a new item with status unclaimed and returns its id.
	Create(ctx context.Context, description string, contact, imageRef *string) (string, error)

	// GetByID returns the item or ErrItemNotFound.
	GetByID(ctx context.Context, id string) (*LostItem, error)

	// List returns all items ordered by CreatedAt descending, optionally
	// restricted to a status.
	List(ctx context.Context, statusFilter *Status) ([]LostItem, error)

	// UpdateFields overwrites description, contact, and imageRef. Status and
	// CreatedAt are left untouched.
	UpdateFields(ctx context.Context, id, description string, contact, imageRef *string) error

	// UpdateStatus overwrites only the status.
	UpdateStatus(ctx context.Context, id string, status Status) error
}

// validateDescription guards every write path: a validation failure aborts
// before any mutation is attempted.
func validateDescription(description string) error {
	return validator.Apply(validator.NonEmpty("description", description))
}

// validateStatus rejects anything outside the two-state enum.
func validateStatus(status Status) error {
	return validator.Apply(validator.OneOf("status", string(status),
		string(StatusUnclaimed), string(StatusClaimed)))
}

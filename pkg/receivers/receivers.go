package receivers

import (
	"context"

	"github.com/foundlab/lostfound/pkg/validator"
)

// Store is the persistence contract for the notification receiver set. The
// backing store may shard receivers across multiple fragments, but the
// logical model exposed here is a single deduplicated set of email
// addresses. Add and Remove are idempotent: adding a present email or
// removing an absent one is a no-op, not an error.
type Store interface {
	// List returns the deduplicated union of all receiver fragments.
	List(ctx context.Context) ([]string, error)

	// Add inserts an email into the set. Malformed addresses are rejected
	// with a validation error before any write.
	Add(ctx context.Context, email string) error

	// Remove deletes an email from the set.
	Remove(ctx context.Context, email string) error
}

func validateEmail(email string) error {
	return validator.Apply(validator.ValidEmail("email", email))
}

// dedupe keeps the first occurrence of each email, preserving order.
func dedupe(emails []string) []string {
	seen := make(map[string]struct{}, len(emails))
	out := make([]string, 0, len(emails))
	for _, e := range emails {
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

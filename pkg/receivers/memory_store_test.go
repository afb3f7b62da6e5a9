package receivers_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundlab/lostfound/pkg/receivers"
	"github.com/foundlab/lostfound/pkg/validator"
)

func TestMemoryStore_Add(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("adds and lists", func(t *testing.T) {
		t.Parallel()

		store := receivers.NewMemoryStore()
		require.NoError(t, store.Add(ctx, "a@example.com"))
		require.NoError(t, store.Add(ctx, "b@example.com"))

		emails, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a@example.com", "b@example.com"}, emails)
	})

	t.Run("idempotent", func(t *testing.T) {
		t.Parallel()

		store := receivers.NewMemoryStore()
		require.NoError(t, store.Add(ctx, "a@example.com"))
		require.NoError(t, store.Add(ctx, "a@example.com"))

		emails, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a@example.com"}, emails)
	})

	t.Run("case-sensitive equality", func(t *testing.T) {
		t.Parallel()

		store := receivers.NewMemoryStore()
		require.NoError(t, store.Add(ctx, "a@example.com"))
		require.NoError(t, store.Add(ctx, "A@example.com"))

		emails, err := store.List(ctx)
		require.NoError(t, err)
		assert.Len(t, emails, 2)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		t.Parallel()

		store := receivers.NewMemoryStore()
		for _, email := range []string{"", "   ", "no-at-sign", "@example.com", "user@", "user@localhost"} {
			err := store.Add(ctx, email)
			require.Error(t, err, "email %q", email)

			var verrs validator.ValidationErrors
			require.True(t, errors.As(err, &verrs))
			assert.True(t, verrs.Has("email"))
		}

		emails, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, emails)
	})
}

func TestMemoryStore_Remove(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("removes present email", func(t *testing.T) {
		t.Parallel()

		store := receivers.NewMemoryStore("a@example.com", "b@example.com")
		require.NoError(t, store.Remove(ctx, "a@example.com"))

		emails, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"b@example.com"}, emails)
	})

	t.Run("absent email is a no-op", func(t *testing.T) {
		t.Parallel()

		store := receivers.NewMemoryStore("a@example.com")
		require.NoError(t, store.Remove(ctx, "missing@example.com"))

		emails, err := store.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"a@example.com"}, emails)
	})

	t.Run("remove from empty set", func(t *testing.T) {
		t.Parallel()

		store := receivers.NewMemoryStore()
		require.NoError(t, store.Remove(ctx, "a@example.com"))

		emails, err := store.List(ctx)
		require.NoError(t, err)
		assert.Empty(t, emails)
	})
}

func TestNewMemoryStore_DedupesSeed(t *testing.T) {
	t.Parallel()

	store := receivers.NewMemoryStore("a@example.com", "b@example.com", "a@example.com")
	emails, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, emails)
}

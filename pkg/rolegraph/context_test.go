package rolegraph_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authzkit/authzkit/pkg/rolegraph"
)

func TestSubjectContext(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()

		ctx := rolegraph.SetSubjectToContext(context.Background(), "alice")
		subject, ok := rolegraph.GetSubjectFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, "alice", subject)
	})

	t.Run("missing subject", func(t *testing.T) {
		t.Parallel()

		subject, ok := rolegraph.GetSubjectFromContext(context.Background())
		assert.False(t, ok)
		assert.Empty(t, subject)
	})
}

func TestManager_HasLinkFromContext(t *testing.T) {
	t.Parallel()

	m := rolegraph.New(rolegraph.WithMaxDepth(2))
	m.AddLink("alice", "editor")
	m.AddLink("bob", "admin", "tenant1")

	t.Run("subject in context", func(t *testing.T) {
		t.Parallel()

		ctx := rolegraph.SetSubjectToContext(context.Background(), "alice")
		ok, err := m.HasLinkFromContext(ctx, "editor")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = m.HasLinkFromContext(ctx, "admin")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("domain scoped", func(t *testing.T) {
		t.Parallel()

		ctx := rolegraph.SetSubjectToContext(context.Background(), "bob")
		ok, err := m.HasLinkFromContext(ctx, "admin", "tenant1")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = m.HasLinkFromContext(ctx, "admin", "tenant2")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("no subject", func(t *testing.T) {
		t.Parallel()

		ok, err := m.HasLinkFromContext(context.Background(), "editor")
		assert.ErrorIs(t, err, rolegraph.ErrSubjectNotInContext)
		assert.False(t, ok)
	})
}

package session

import (
	"context"
	"testing"

	"github.com/aaywp/portal/internal/client/storage"
	"github.com/stretchr/testify/require"
)

func storesUnderTest(t *testing.T) map[string]Store {
	t.Helper()
	db, err := storage.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Store{
		"memory":     NewMemoryStore(),
		"persistent": NewPersistentStore(db),
	}
}

func TestStore_Lifecycle(t *testing.T) {
	for name, s := range storesUnderTest(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			tok, err := s.Token(ctx)
			require.NoError(t, err)
			require.Empty(t, tok)

			require.NoError(t, s.Save(ctx, "abc", "admin@example.org"))

			tok, err = s.Token(ctx)
			require.NoError(t, err)
			require.Equal(t, "abc", tok)

			sub, err := s.Subject(ctx)
			require.NoError(t, err)
			require.Equal(t, "admin@example.org", sub)

			require.NoError(t, s.Save(ctx, "def", "other@example.org"))
			tok, _ = s.Token(ctx)
			require.Equal(t, "def", tok)

			require.NoError(t, s.Clear(ctx))
			tok, err = s.Token(ctx)
			require.NoError(t, err)
			require.Empty(t, tok)
			sub, _ = s.Subject(ctx)
			require.Empty(t, sub)

			require.NoError(t, s.Clear(ctx))
		})
	}
}

func TestMemoryStores_AreIsolated(t *testing.T) {
	ctx := context.Background()
	a, b := NewMemoryStore(), NewMemoryStore()

	require.NoError(t, a.Save(ctx, "abc", "x"))
	tok, _ := b.Token(ctx)
	require.Empty(t, tok)
}

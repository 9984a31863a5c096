package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/storefront/internal/infra/persistence/kv"
)

func openTestStore(t *testing.T) (*KVStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "store.db")
	s, err := Open(context.Background(), path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s, path
}

func TestKVStore_SetGet(t *testing.T) {
	s, _ := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Ping(ctx))

	_, err := s.Get(ctx, "cart:1")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, "cart:1", []byte(`[]`)))
	require.NoError(t, s.Set(ctx, "cart:1", []byte(`[{"id":1,"quantity":1}]`)))

	v, err := s.Get(ctx, "cart:1")
	require.NoError(t, err)
	require.Equal(t, `[{"id":1,"quantity":1}]`, string(v))
}

func TestKVStore_SurvivesReopen(t *testing.T) {
	s, path := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Set(ctx, "cart:persist", []byte(`[7]`)))
	require.NoError(t, s.Close())

	reopened, err := Open(ctx, path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(ctx, "cart:persist")
	require.NoError(t, err)
	require.Equal(t, `[7]`, string(v))
}

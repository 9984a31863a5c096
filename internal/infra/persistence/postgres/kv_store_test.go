package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"example.com/storefront/internal/infra/persistence/kv"
)

// Runs against a live server only when PG_DSN is set.
func TestKVStore(t *testing.T) {
	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		t.Skip("PG_DSN not set")
	}
	ctx := context.Background()
	s, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	require.NoError(t, s.Ping(ctx))

	key := "cart:" + uuid.NewString()
	_, err = s.Get(ctx, key)
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, key, []byte(`[]`)))
	require.NoError(t, s.Set(ctx, key, []byte(`[{"id":4,"quantity":1}]`)))
	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":4,"quantity":1}]`, string(got))
}

package redisstore

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"example.com/storefront/internal/infra/persistence/kv"
)

// Runs against a live server only when REDIS_ADDR is set.
func TestKVStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	s := NewKVStore(addr)
	t.Cleanup(func() { _ = s.Close() })
	ctx := context.Background()
	require.NoError(t, s.Ping(ctx))

	key := "cart:" + uuid.NewString()
	_, err := s.Get(ctx, key)
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, key, []byte(`[{"id":1,"quantity":2}]`)))
	got, err := s.Get(ctx, key)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":1,"quantity":2}]`, string(got))
}

package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"example.com/storefront/internal/infra/persistence/kv"
)

func TestKVStore_SetGetOverwrite(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	_, err := s.Get(ctx, "cart")
	require.ErrorIs(t, err, kv.ErrNotFound)

	require.NoError(t, s.Set(ctx, "cart", []byte(`[1]`)))
	require.NoError(t, s.Set(ctx, "cart", []byte(`[2]`)))

	v, err := s.Get(ctx, "cart")
	require.NoError(t, err)
	require.Equal(t, `[2]`, string(v))
}

func TestKVStore_ValuesAreCopied(t *testing.T) {
	s := NewKVStore()
	ctx := context.Background()

	buf := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", buf))
	buf[0] = 'z'

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(v))

	v[1] = 'z'
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "abc", string(again))
}

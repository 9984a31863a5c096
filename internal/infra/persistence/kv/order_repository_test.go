package kv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	domcart "example.com/storefront/internal/domain/cart"
	domorder "example.com/storefront/internal/domain/order"
)

func TestOrderRepository_CreateAndGet(t *testing.T) {
	store := newFakeStore()
	repo := NewOrderRepository(store)
	ctx := context.Background()

	items := sampleEntries()
	placed := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	o := &domorder.Order{
		ID:       "0b9f1d6e-5c1a-4b7e-9d0e-1f2a3b4c5d6e",
		Session:  "s1",
		Items:    items,
		Totals:   domcart.ComputeTotals(items),
		PlacedAt: placed,
	}
	require.NoError(t, repo.Create(ctx, o))
	require.Contains(t, store.data, "order:"+o.ID)

	got, err := repo.GetByID(ctx, o.ID)
	require.NoError(t, err)
	require.Equal(t, o.ID, got.ID)
	require.Equal(t, "s1", got.Session)
	require.True(t, placed.Equal(got.PlacedAt))
	require.Equal(t, o.ItemCount(), got.ItemCount())
	require.Equal(t, o.Totals.Total.StringFixed(2), got.Totals.Total.StringFixed(2))

	ids := func(entries []domcart.Entry) []int64 {
		out := make([]int64, 0, len(entries))
		for _, e := range entries {
			out = append(out, e.ID)
		}
		return out
	}
	if diff := cmp.Diff(ids(items), ids(got.Items)); diff != "" {
		t.Fatalf("items mismatch (-want +got):\n%s", diff)
	}
}

func TestOrderRepository_GetMissing(t *testing.T) {
	repo := NewOrderRepository(newFakeStore())

	_, err := repo.GetByID(context.Background(), "nope")
	require.ErrorIs(t, err, domorder.ErrOrderNotFound)
}

func TestOrderRepository_StoreFailure(t *testing.T) {
	store := newFakeStore()
	store.setErr = errors.New("disk full")
	repo := NewOrderRepository(store)

	err := repo.Create(context.Background(), &domorder.Order{ID: "x"})
	require.ErrorIs(t, err, store.setErr)
}

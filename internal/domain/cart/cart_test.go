package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domproduct "example.com/storefront/internal/domain/product"
)

func entry(id int64, price string, qty int64) Entry {
	return Entry{
		Product:  domproduct.Product{ID: id, Name: "p", Price: decimal.RequireFromString(price)},
		Quantity: qty,
	}
}

func TestComputeTotals_EmptyCartShowsShippingOnly(t *testing.T) {
	totals := ComputeTotals(nil)

	require.True(t, totals.Subtotal.IsZero())
	require.True(t, totals.Tax.IsZero())
	require.Equal(t, "1200.00", totals.Total.StringFixed(2))
	require.Equal(t, "1200.00", totals.Shipping.StringFixed(2))
}

func TestComputeTotals(t *testing.T) {
	totals := ComputeTotals([]Entry{
		entry(1, "100.00", 2),
		entry(2, "50.50", 1),
	})

	require.Equal(t, "250.50", totals.Subtotal.StringFixed(2))
	require.Equal(t, "40.08", totals.Tax.StringFixed(2))
	require.Equal(t, "1490.58", totals.Total.StringFixed(2))
}

func TestItemCount(t *testing.T) {
	require.Equal(t, int64(0), ItemCount(nil))
	require.Equal(t, int64(6), ItemCount([]Entry{entry(1, "1", 4), entry(2, "1", 2)}))
}

func TestLineTotal(t *testing.T) {
	require.Equal(t, "4499.97", entry(2, "1499.99", 3).LineTotal().StringFixed(2))
}

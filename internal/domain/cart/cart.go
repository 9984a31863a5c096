package cart

import (
	"github.com/shopspring/decimal"

	domproduct "example.com/storefront/internal/domain/product"
)

var (
	TaxRate     = decimal.RequireFromString("0.16")
	ShippingFee = decimal.RequireFromString("1200.00")
)

// Entry is a copy of the product taken when it was first added, plus the
// quantity held. Quantity is always at least 1 for a stored entry.
type Entry struct {
	domproduct.Product
	Quantity int64
}

func (e Entry) LineTotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(e.Quantity))
}

type Totals struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// ComputeTotals applies the flat tax rate and shipping fee. An empty cart
// still reports the shipping fee as its total.
func ComputeTotals(entries []Entry) Totals {
	if len(entries) == 0 {
		return Totals{
			Subtotal: decimal.Zero,
			Tax:      decimal.Zero,
			Shipping: ShippingFee,
			Total:    ShippingFee,
		}
	}

	subtotal := decimal.Zero
	for _, e := range entries {
		subtotal = subtotal.Add(e.LineTotal())
	}
	tax := subtotal.Mul(TaxRate)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Shipping: ShippingFee,
		Total:    subtotal.Add(tax).Add(ShippingFee),
	}
}

func ItemCount(entries []Entry) int64 {
	var n int64
	for _, e := range entries {
		n += e.Quantity
	}
	return n
}

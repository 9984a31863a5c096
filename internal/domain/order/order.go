package order

import (
	"time"

	domcart "example.com/storefront/internal/domain/cart"
)

// Order is the receipt written when a session checks out. Items are the
// cart entries as they were at checkout.
type Order struct {
	ID       string
	Session  string
	Items    []domcart.Entry
	Totals   domcart.Totals
	PlacedAt time.Time
}

func (o *Order) ItemCount() int64 {
	return domcart.ItemCount(o.Items)
}

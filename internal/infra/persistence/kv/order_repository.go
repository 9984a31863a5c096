package kv

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"

	domcart "example.com/storefront/internal/domain/cart"
	domorder "example.com/storefront/internal/domain/order"
)

const orderKeyPrefix = "order:"

type storedOrder struct {
	ID       string        `json:"id"`
	Session  string        `json:"session"`
	Items    []storedEntry `json:"items"`
	Subtotal json.Number   `json:"subtotal"`
	Tax      json.Number   `json:"tax"`
	Shipping json.Number   `json:"shipping"`
	Total    json.Number   `json:"total"`
	PlacedAt time.Time     `json:"placed_at"`
}

// OrderRepository keeps order receipts next to the carts, one JSON document
// per order under "order:<id>".
type OrderRepository struct {
	store Store
}

func NewOrderRepository(store Store) *OrderRepository {
	return &OrderRepository{store: store}
}

func (r *OrderRepository) Create(ctx context.Context, o *domorder.Order) error {
	raw, err := json.Marshal(storedOrder{
		ID:       o.ID,
		Session:  o.Session,
		Items:    toStored(o.Items),
		Subtotal: json.Number(o.Totals.Subtotal.StringFixed(2)),
		Tax:      json.Number(o.Totals.Tax.StringFixed(2)),
		Shipping: json.Number(o.Totals.Shipping.StringFixed(2)),
		Total:    json.Number(o.Totals.Total.StringFixed(2)),
		PlacedAt: o.PlacedAt.UTC(),
	})
	if err != nil {
		return pkgerrors.Wrap(err, "encode order")
	}
	return pkgerrors.Wrapf(r.store.Set(ctx, orderKeyPrefix+o.ID, raw), "save order %s", o.ID)
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*domorder.Order, error) {
	raw, err := r.store.Get(ctx, orderKeyPrefix+id)
	if errors.Is(err, ErrNotFound) {
		return nil, domorder.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	var s storedOrder
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, pkgerrors.Wrapf(err, "decode order %s", id)
	}
	items, err := fromStored(s.Items)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "decode order %s", id)
	}

	var totals domcart.Totals
	for _, f := range []struct {
		dst *decimal.Decimal
		src json.Number
	}{
		{&totals.Subtotal, s.Subtotal},
		{&totals.Tax, s.Tax},
		{&totals.Shipping, s.Shipping},
		{&totals.Total, s.Total},
	} {
		d, err := decimal.NewFromString(f.src.String())
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "decode order %s totals", id)
		}
		*f.dst = d
	}

	return &domorder.Order{
		ID:       s.ID,
		Session:  s.Session,
		Items:    items,
		Totals:   totals,
		PlacedAt: s.PlacedAt,
	}, nil
}

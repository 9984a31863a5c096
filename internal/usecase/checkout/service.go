package checkout

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	domcart "example.com/storefront/internal/domain/cart"
	domorder "example.com/storefront/internal/domain/order"
	cartuc "example.com/storefront/internal/usecase/cart"
)

type CartCheckout interface {
	Checkout(ctx context.Context, key string, record func(entries []domcart.Entry) error) error
}

type OrderRepository interface {
	Create(ctx context.Context, o *domorder.Order) error
}

type Service struct {
	carts  CartCheckout
	orders OrderRepository
	log    logrus.FieldLogger
	now    func() time.Time
	newID  func() string
}

func NewService(carts CartCheckout, orders OrderRepository, log logrus.FieldLogger) *Service {
	return &Service{
		carts:  carts,
		orders: orders,
		log:    log,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

// Checkout records the session's cart as an order and empties the cart.
// Nothing is charged. An empty cart is domcart.ErrEmptyCart and no order is
// written; if the order cannot be written the cart is left as it was. An
// order whose cart then fails to clear is still recorded.
func (s *Service) Checkout(ctx context.Context, session string) (*domorder.Order, error) {
	var placed *domorder.Order
	err := s.carts.Checkout(ctx, cartuc.Key(session), func(entries []domcart.Entry) error {
		o := &domorder.Order{
			ID:       s.newID(),
			Session:  session,
			Items:    entries,
			Totals:   domcart.ComputeTotals(entries),
			PlacedAt: s.now(),
		}
		if err := s.orders.Create(ctx, o); err != nil {
			return err
		}
		placed = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"order_id": placed.ID,
		"items":    placed.ItemCount(),
		"total":    placed.Totals.Total.StringFixed(2),
	}).Info("order placed")
	return placed, nil
}

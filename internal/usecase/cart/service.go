package cart

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	domcart "example.com/storefront/internal/domain/cart"
	domproduct "example.com/storefront/internal/domain/product"
)

const keyPrefix = "cart:"

// Key is the store key holding a session's cart.
func Key(session string) string {
	return keyPrefix + session
}

type CartRepository interface {
	domcart.Repository
}

type ProductFinder interface {
	FindByID(ctx context.Context, id int64) (*domproduct.Product, error)
}

type Service struct {
	cartRepo CartRepository
	products ProductFinder
	log      logrus.FieldLogger

	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu   sync.Mutex
	refs int
}

func NewService(cartRepo CartRepository, products ProductFinder, log logrus.FieldLogger) *Service {
	return &Service{
		cartRepo: cartRepo,
		products: products,
		log:      log,
		locks:    make(map[string]*keyLock),
	}
}

// Open hydrates the cart stored under key. An unreadable stored value is
// logged and replaced by an empty cart.
func (s *Service) Open(ctx context.Context, key string) (*Cart, error) {
	entries, err := s.cartRepo.Load(ctx, key)
	if errors.Is(err, domcart.ErrUnreadableCart) {
		s.log.WithError(err).WithField("key", key).Warn("discarding unreadable cart")
		entries = []domcart.Entry{}
		err = nil
	}
	if err != nil {
		return nil, err
	}
	return &Cart{
		key:      key,
		entries:  entries,
		repo:     s.cartRepo,
		products: s.products,
		log:      s.log.WithField("key", key),
	}, nil
}

// Update holds the key's lock while fn runs, so a mutation, its write and
// whatever fn renders afterwards are not interleaved with another request
// for the same cart.
func (s *Service) Update(ctx context.Context, key string, fn func(c *Cart) error) error {
	unlock := s.lock(key)
	defer unlock()

	c, err := s.Open(ctx, key)
	if err != nil {
		return err
	}
	return fn(c)
}

// Checkout empties a non-empty cart. record, when not nil, sees the entries
// first under the same lock; if it fails the cart is kept.
func (s *Service) Checkout(ctx context.Context, key string, record func(entries []domcart.Entry) error) error {
	return s.Update(ctx, key, func(c *Cart) error {
		if c.Len() == 0 {
			return domcart.ErrEmptyCart
		}
		if record != nil {
			if err := record(c.Entries()); err != nil {
				return err
			}
		}
		return c.Clear(ctx)
	})
}

func (s *Service) lock(key string) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}

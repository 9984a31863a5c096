package kv

import (
	"context"
	"encoding/json"
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/shopspring/decimal"

	domcart "example.com/storefront/internal/domain/cart"
	domproduct "example.com/storefront/internal/domain/product"
)

// storedEntry is the persisted shape of one cart line. Price is written as a
// plain JSON number.
type storedEntry struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Price       json.Number `json:"price"`
	Category    string      `json:"category"`
	Image       string      `json:"image"`
	Quantity    int64       `json:"quantity"`
}

type CartRepository struct {
	store Store
}

func NewCartRepository(store Store) *CartRepository {
	return &CartRepository{store: store}
}

func (r *CartRepository) Load(ctx context.Context, key string) ([]domcart.Entry, error) {
	raw, err := r.store.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return []domcart.Entry{}, nil
	}
	if err != nil {
		return nil, err
	}
	return DecodeCart(raw)
}

func (r *CartRepository) Save(ctx context.Context, key string, entries []domcart.Entry) error {
	raw, err := EncodeCart(entries)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, key, raw)
}

func EncodeCart(entries []domcart.Entry) ([]byte, error) {
	raw, err := json.Marshal(toStored(entries))
	return raw, pkgerrors.Wrap(err, "encode cart")
}

// DecodeCart accepts a JSON array of entries. A JSON null decodes to an empty
// cart; anything else that is not a valid array, or that holds an entry with
// a non-positive id or quantity, is ErrUnreadableCart.
func DecodeCart(raw []byte) ([]domcart.Entry, error) {
	var stored []storedEntry
	if err := json.Unmarshal(raw, &stored); err != nil {
		return nil, pkgerrors.Wrap(domcart.ErrUnreadableCart, err.Error())
	}
	return fromStored(stored)
}

func toStored(entries []domcart.Entry) []storedEntry {
	stored := make([]storedEntry, 0, len(entries))
	for _, e := range entries {
		stored = append(stored, storedEntry{
			ID:          e.ID,
			Name:        e.Name,
			Description: e.Description,
			Price:       json.Number(e.Price.String()),
			Category:    string(e.Category),
			Image:       e.Image,
			Quantity:    e.Quantity,
		})
	}
	return stored
}

func fromStored(stored []storedEntry) ([]domcart.Entry, error) {
	entries := make([]domcart.Entry, 0, len(stored))
	for _, s := range stored {
		if s.ID <= 0 || s.Quantity <= 0 {
			return nil, pkgerrors.Wrapf(domcart.ErrUnreadableCart, "entry id=%d quantity=%d", s.ID, s.Quantity)
		}
		price := decimal.Zero
		if s.Price != "" {
			p, err := decimal.NewFromString(s.Price.String())
			if err != nil {
				return nil, pkgerrors.Wrapf(domcart.ErrUnreadableCart, "entry %d price: %v", s.ID, err)
			}
			price = p
		}
		entries = append(entries, domcart.Entry{
			Product: domproduct.Product{
				ID:          s.ID,
				Name:        s.Name,
				Description: s.Description,
				Price:       price,
				Category:    domproduct.Category(s.Category),
				Image:       s.Image,
			},
			Quantity: s.Quantity,
		})
	}
	return entries, nil
}

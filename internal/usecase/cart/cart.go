package cart

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"

	domcart "example.com/storefront/internal/domain/cart"
)

// Cart is one visitor's cart. Every mutating method writes the whole cart
// back to the repository before returning; methods that change nothing do
// not write.
type Cart struct {
	key      string
	entries  []domcart.Entry
	repo     domcart.Repository
	products ProductFinder
	log      logrus.FieldLogger
}

func (c *Cart) Key() string {
	return c.key
}

func (c *Cart) Entries() []domcart.Entry {
	return slices.Clone(c.entries)
}

func (c *Cart) Len() int {
	return len(c.entries)
}

func (c *Cart) ItemCount() int64 {
	return domcart.ItemCount(c.entries)
}

func (c *Cart) Totals() domcart.Totals {
	return domcart.ComputeTotals(c.entries)
}

func (c *Cart) Quantity(productID int64) int64 {
	if i := c.index(productID); i >= 0 {
		return c.entries[i].Quantity
	}
	return 0
}

func (c *Cart) index(productID int64) int {
	return slices.IndexFunc(c.entries, func(e domcart.Entry) bool {
		return e.ID == productID
	})
}

// Add copies the product into the cart or bumps its quantity. An unknown
// product is logged and leaves the cart untouched.
func (c *Cart) Add(ctx context.Context, productID int64) error {
	p, err := c.products.FindByID(ctx, productID)
	if err != nil {
		c.log.WithError(err).WithField("product_id", productID).Error("product not found")
		return err
	}

	if i := c.index(productID); i >= 0 {
		c.entries[i].Quantity++
		c.log.Infof("increased quantity for %s to %d", p.Name, c.entries[i].Quantity)
	} else {
		c.entries = append(c.entries, domcart.Entry{Product: *p, Quantity: 1})
		c.log.Infof("added new item to cart: %s", p.Name)
	}
	return c.persist(ctx)
}

func (c *Cart) Increase(ctx context.Context, productID int64) error {
	i := c.index(productID)
	if i < 0 {
		return nil
	}
	c.entries[i].Quantity++
	c.log.Infof("increased quantity for %s to %d", c.entries[i].Name, c.entries[i].Quantity)
	return c.persist(ctx)
}

// Decrease removes the entry instead of letting its quantity reach zero.
func (c *Cart) Decrease(ctx context.Context, productID int64) error {
	i := c.index(productID)
	if i < 0 {
		return nil
	}
	if c.entries[i].Quantity > 1 {
		c.entries[i].Quantity--
		c.log.Infof("decreased quantity for %s to %d", c.entries[i].Name, c.entries[i].Quantity)
	} else {
		c.log.Infof("removed %s from cart", c.entries[i].Name)
		c.entries = slices.Delete(c.entries, i, i+1)
	}
	return c.persist(ctx)
}

func (c *Cart) Remove(ctx context.Context, productID int64) error {
	i := c.index(productID)
	if i < 0 {
		return nil
	}
	c.log.Infof("removed %s from cart", c.entries[i].Name)
	c.entries = slices.Delete(c.entries, i, i+1)
	return c.persist(ctx)
}

func (c *Cart) Clear(ctx context.Context) error {
	c.entries = []domcart.Entry{}
	c.log.Info("cart cleared")
	return c.persist(ctx)
}

func (c *Cart) persist(ctx context.Context) error {
	if err := c.repo.Save(ctx, c.key, c.entries); err != nil {
		return err
	}
	c.log.Debugf("cart updated: %d items", c.ItemCount())
	return nil
}

package http

import (
	"context"

	domcart "example.com/storefront/internal/domain/cart"
	domproduct "example.com/storefront/internal/domain/product"
	"example.com/storefront/internal/usecase/notice"
)

const (
	featuredCount     = 4
	fallbackCardImage = "https://via.placeholder.com/300x200?text=Product+Image"
	fallbackLineImage = "https://via.placeholder.com/100x100?text=Product"
)

type cartView struct {
	Entries []domcart.Entry
	Totals  domcart.Totals
	Count   int64
}

func newCartView(entries []domcart.Entry) cartView {
	return cartView{
		Entries: entries,
		Totals:  domcart.ComputeTotals(entries),
		Count:   domcart.ItemCount(entries),
	}
}

type pageView struct {
	session string
	cart    cartView
	filter  domproduct.ListFilter
}

type pageLoader func(ctx context.Context, targets Targets, view *pageView)

func (a *API) pageLoaders() map[string]pageLoader {
	return map[string]pageLoader{
		"index.html":    a.loadFeaturedProducts,
		"products.html": a.loadAllProducts,
		"cart.html":     a.loadCartItems,
	}
}

// loadPageContent runs the render routine for page. Pages without one get
// the featured products if they have somewhere to put them.
func (a *API) loadPageContent(ctx context.Context, page string, targets Targets, view *pageView) {
	a.log.Debugf("loading content for page: %s", page)
	if load, ok := a.loaders[page]; ok {
		load(ctx, targets, view)
		return
	}

	a.log.Debugf("unknown page path: %s", page)
	if _, ok := targets.Target(TargetFeaturedProducts); ok {
		a.loadFeaturedProducts(ctx, targets, view)
	}
}

func (a *API) loadFeaturedProducts(ctx context.Context, targets Targets, view *pageView) {
	container, ok := targets.Target(TargetFeaturedProducts)
	if !ok {
		a.log.Error("featured products container not found")
		return
	}

	products, err := a.catalogSvc.SampleFeatured(ctx, featuredCount)
	if err != nil {
		a.log.WithError(err).Error("error loading featured products")
		a.setFragment(container, "load-error", nil)
		return
	}
	a.setFragment(container, "product-cards", products)
	a.log.Debugf("loaded %d featured products", len(products))
}

func (a *API) loadAllProducts(ctx context.Context, targets Targets, view *pageView) {
	container, ok := targets.Target(TargetProductsGrid)
	if !ok {
		a.log.Error("products container not found")
		return
	}
	if c, ok := targets.Target(TargetCategory); ok {
		c.SetText(string(view.filter.Category))
	}
	if c, ok := targets.Target(TargetSort); ok {
		c.SetText(string(view.filter.Sort))
	}

	products, err := a.catalogSvc.List(ctx, view.filter)
	if err != nil {
		a.log.WithError(err).Error("error loading products")
		a.setFragment(container, "load-error", nil)
		return
	}
	if len(products) == 0 {
		a.setFragment(container, "no-products", nil)
		return
	}
	a.setFragment(container, "product-cards", products)
	a.log.Debugf("loaded %d products", len(products))
}

func (a *API) loadCartItems(ctx context.Context, targets Targets, view *pageView) {
	container, ok := targets.Target(TargetCartItems)
	if !ok {
		a.log.Error("cart items container not found")
		return
	}

	totals := view.cart.Totals
	a.setText(targets, TargetShipping, FormatPrice(totals.Shipping))
	if len(view.cart.Entries) == 0 {
		a.setFragment(container, "empty-cart", nil)
		a.setText(targets, TargetSubtotal, FormatPrice(totals.Subtotal))
		a.setText(targets, TargetTax, FormatPrice(totals.Tax))
		a.setText(targets, TargetTotal, FormatPrice(totals.Total))
		a.setDisabled(targets, TargetCheckoutButton, true)
		return
	}

	a.setText(targets, TargetSubtotal, FormatPrice(totals.Subtotal))
	a.setText(targets, TargetTax, FormatPrice(totals.Tax))
	a.setText(targets, TargetTotal, FormatPrice(totals.Total))
	a.setDisabled(targets, TargetCheckoutButton, false)
	a.setFragment(container, "cart-lines", view.cart.Entries)
	a.log.Debugf("loaded %d cart items", len(view.cart.Entries))
}

func (a *API) renderCartCount(targets Targets, count int64) {
	if c, ok := targets.Target(TargetCartCount); ok {
		c.SetText(formatCount(count))
	}
}

func (a *API) renderNotices(targets Targets, session string) {
	for _, ch := range []notice.Channel{notice.ChannelNewsletter, notice.ChannelCart, notice.ChannelCheckout} {
		c, ok := targets.Target(string(ch))
		if !ok {
			continue
		}
		n, ok := a.board.Current(session, ch)
		if !ok {
			c.SetText("")
			c.Class = ""
			continue
		}
		c.SetText(n.Message)
		c.Class = n.Class()
		if ch == notice.ChannelCart {
			c.Class = "cart-feedback"
			if n.Fading {
				c.Class += " fade-out"
			}
		}
	}
}

func (a *API) setFragment(c *Container, name string, data any) {
	html, err := a.tmpl.fragment(name, data)
	if err != nil {
		a.log.WithError(err).Error("fragment render failed")
		return
	}
	c.SetHTML(html)
}

func (a *API) setText(targets Targets, id, text string) {
	c, ok := targets.Target(id)
	if !ok {
		a.log.Errorf("%s element not found", id)
		return
	}
	c.SetText(text)
}

func (a *API) setDisabled(targets Targets, id string, disabled bool) {
	c, ok := targets.Target(id)
	if !ok {
		a.log.Errorf("%s element not found", id)
		return
	}
	c.Disabled = disabled
}

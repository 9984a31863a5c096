package http

import "html/template"

const (
	TargetFeaturedProducts   = "featured-products"
	TargetProductsGrid       = "products-grid"
	TargetCategory           = "category"
	TargetSort               = "sort"
	TargetCartItems          = "cart-items"
	TargetSubtotal           = "subtotal"
	TargetTax                = "tax"
	TargetShipping           = "shipping"
	TargetTotal              = "total"
	TargetCheckoutButton     = "checkout-btn"
	TargetCartCount          = "cart-count"
	TargetNewsletterFeedback = "newsletter-feedback"
	TargetCartFeedback       = "cart-feedback"
	TargetCheckoutFeedback   = "checkout-feedback"
)

// Container is a named region of a page whose content is replaced
// wholesale by a render routine.
type Container struct {
	ID       string
	HTML     template.HTML
	Text     string
	Class    string
	Disabled bool
}

func (c *Container) SetHTML(h template.HTML) {
	c.HTML = h
}

func (c *Container) SetText(s string) {
	c.Text = s
}

// Targets hands render routines the containers a page has. Routines must
// cope with a container being absent.
type Targets interface {
	Target(id string) (*Container, bool)
}

type Document struct {
	Page     string
	Title    string
	Menu     MobileMenu
	MenuHref string

	targets map[string]*Container
}

func NewDocument(page, title string, ids ...string) *Document {
	d := &Document{
		Page:    page,
		Title:   title,
		targets: make(map[string]*Container, len(ids)),
	}
	for _, id := range ids {
		d.targets[id] = &Container{ID: id}
	}
	return d
}

func (d *Document) Target(id string) (*Container, bool) {
	c, ok := d.targets[id]
	return c, ok
}

// Get is used by templates; a missing container renders as empty.
func (d *Document) Get(id string) *Container {
	if c, ok := d.targets[id]; ok {
		return c
	}
	return &Container{ID: id}
}

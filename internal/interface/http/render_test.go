package http

import (
	"context"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	domcart "example.com/storefront/internal/domain/cart"
	domproduct "example.com/storefront/internal/domain/product"
)

// sparseTargets exposes only the containers it was built with.
type sparseTargets map[string]*Container

func newSparseTargets(ids ...string) sparseTargets {
	t := sparseTargets{}
	for _, id := range ids {
		t[id] = &Container{ID: id}
	}
	return t
}

func (s sparseTargets) Target(id string) (*Container, bool) {
	c, ok := s[id]
	return c, ok
}

func TestPageID(t *testing.T) {
	tests := map[string]string{
		"":                          "index.html",
		"/":                         "index.html",
		"/index.html":               "index.html",
		"/products.html":            "products.html",
		"/shop/cart.html":           "cart.html",
		"/about.html/":              "about.html",
		"/deep/nested/contact.html": "contact.html",
	}
	for in, want := range tests {
		require.Equal(t, want, PageID(in), in)
	}
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{amount: "1200", want: "KShs. 1,200.00"},
		{amount: "0", want: "KShs. 0.00"},
		{amount: "245999.00", want: "KShs. 245,999.00"},
		{amount: "1499.99", want: "KShs. 1,499.99"},
		{amount: "0.005", want: "KShs. 0.01"},
		{amount: "387799", want: "KShs. 387,799.00"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, FormatPrice(decimal.RequireFromString(tt.amount)), tt.amount)
	}
}

func TestMobileMenu(t *testing.T) {
	u, err := url.Parse("/cart.html?menu=open&x=1")
	require.NoError(t, err)

	m := ParseMobileMenu(u)
	require.True(t, m.Open)
	require.Equal(t, "fa-times", m.Icon())
	require.Equal(t, "main-nav active", m.NavClass())
	require.Equal(t, "/cart.html?x=1", m.ToggleHref(u))

	closed := m.Toggle()
	require.False(t, closed.Open)
	require.Equal(t, "fa-bars", closed.Icon())
	require.Equal(t, "main-nav", closed.NavClass())

	root, err := url.Parse("")
	require.NoError(t, err)
	require.Equal(t, "/?menu=open", ParseMobileMenu(root).ToggleHref(root))
}

func TestDocument_GetMissingTarget(t *testing.T) {
	doc := NewDocument("index.html", "Home", TargetCartCount)

	_, ok := doc.Target(TargetProductsGrid)
	require.False(t, ok)
	require.Equal(t, "", doc.Get(TargetProductsGrid).Text)

	c, ok := doc.Target(TargetCartCount)
	require.True(t, ok)
	c.SetText("4")
	require.Equal(t, "4", doc.Get(TargetCartCount).Text)
}

func TestRenderRoutines_SkipMissingTargets(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	targets := newSparseTargets(TargetSubtotal)
	view := &pageView{cart: newCartView(nil)}

	require.NotPanics(t, func() {
		env.api.loadFeaturedProducts(ctx, targets, view)
		env.api.loadAllProducts(ctx, targets, view)
		env.api.loadCartItems(ctx, targets, view)
		env.api.renderCartCount(targets, 3)
		env.api.renderNotices(targets, "s1")
	})
	require.Empty(t, targets[TargetSubtotal].Text)
}

func TestLoadCartItems_PartialTargets(t *testing.T) {
	env := setupTestEnv(t)
	targets := newSparseTargets(TargetCartItems, TargetTotal)
	entries := []domcart.Entry{{
		Product:  domproduct.Product{ID: 1, Name: "UltraBook Pro", Price: decimal.RequireFromString("100")},
		Quantity: 2,
	}}

	env.api.loadCartItems(context.Background(), targets, &pageView{cart: newCartView(entries)})

	require.Contains(t, string(targets[TargetCartItems].HTML), "UltraBook Pro")
	require.Contains(t, string(targets[TargetCartItems].HTML), fallbackLineImage)
	require.Equal(t, "KShs. 1,432.00", targets[TargetTotal].Text)
}

func TestLoadPageContent_Fallback(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	withFeatured := newSparseTargets(TargetFeaturedProducts)
	env.api.loadPageContent(ctx, "about.html", withFeatured, &pageView{})
	require.Contains(t, string(withFeatured[TargetFeaturedProducts].HTML), `class="product-card"`)

	without := newSparseTargets(TargetProductsGrid)
	env.api.loadPageContent(ctx, "contact.html", without, &pageView{})
	require.Empty(t, without[TargetProductsGrid].HTML)

	grid := newSparseTargets(TargetProductsGrid)
	env.api.loadPageContent(ctx, "products.html", grid, &pageView{filter: parseListFilter("", "")})
	require.Contains(t, string(grid[TargetProductsGrid].HTML), "Ergonomic Keyboard")
}

func TestParseListFilter(t *testing.T) {
	f := parseListFilter("", "bogus")
	require.Equal(t, domproduct.CategoryAll, f.Category)
	require.Equal(t, domproduct.SortDefault, f.Sort)

	f = parseListFilter("phones", "price-desc")
	require.Equal(t, domproduct.Category("phones"), f.Category)
	require.Equal(t, domproduct.SortPriceDesc, f.Sort)
}

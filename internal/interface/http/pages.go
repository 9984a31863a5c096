package http

import (
	"bytes"
	"embed"
	"html/template"
	"path"
	"strings"

	"github.com/pkg/errors"

	domproduct "example.com/storefront/internal/domain/product"
)

//go:embed templates/*.html
var templatesFS embed.FS

const homePage = "index.html"

// commonTargets are present on every page.
var commonTargets = []string{TargetCartCount, TargetNewsletterFeedback, TargetCartFeedback}

type layout struct {
	title   string
	file    string
	targets []string
}

var layouts = map[string]layout{
	"index.html": {
		title:   "Home",
		file:    "templates/index.html",
		targets: []string{TargetFeaturedProducts},
	},
	"products.html": {
		title:   "Products",
		file:    "templates/products.html",
		targets: []string{TargetProductsGrid, TargetCategory, TargetSort},
	},
	"cart.html": {
		title: "Cart",
		file:  "templates/cart.html",
		targets: []string{
			TargetCartItems, TargetSubtotal, TargetTax, TargetShipping, TargetTotal,
			TargetCheckoutButton, TargetCheckoutFeedback,
		},
	},
	"about.html": {
		title:   "About",
		file:    "templates/about.html",
		targets: []string{TargetFeaturedProducts},
	},
	"contact.html": {
		title: "Contact",
		file:  "templates/contact.html",
	},
}

var notFoundLayout = layout{title: "Not Found", file: "templates/404.html"}

// PageID is the last path segment; the site root maps to the home page.
func PageID(p string) string {
	p = strings.TrimRight(p, "/")
	if p == "" {
		return homePage
	}
	base := path.Base(p)
	if base == "." || base == "/" || base == "" {
		return homePage
	}
	return base
}

func (l layout) document(page string) *Document {
	ids := append(append([]string{}, commonTargets...), l.targets...)
	return NewDocument(page, l.title, ids...)
}

type templates struct {
	pages     map[string]*template.Template
	notFound  *template.Template
	fragments *template.Template
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"price":     FormatPrice,
		"cardImage": imageOr(fallbackCardImage),
		"lineImage": imageOr(fallbackLineImage),
	}
}

func imageOr(fallback string) func(string) string {
	return func(src string) string {
		if src == "" {
			return fallback
		}
		return src
	}
}

func loadTemplates() (*templates, error) {
	funcs := templateFuncs()

	base, err := template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse layout")
	}

	parsePage := func(file string) (*template.Template, error) {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		return clone.ParseFS(templatesFS, file)
	}

	t := &templates{pages: make(map[string]*template.Template, len(layouts))}
	for page, l := range layouts {
		tmpl, err := parsePage(l.file)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", page)
		}
		t.pages[page] = tmpl
	}
	if t.notFound, err = parsePage(notFoundLayout.file); err != nil {
		return nil, errors.Wrap(err, "parse 404")
	}

	t.fragments, err = template.New("fragments.html").Funcs(funcs).ParseFS(templatesFS, "templates/fragments.html")
	if err != nil {
		return nil, errors.Wrap(err, "parse fragments")
	}
	return t, nil
}

func (t *templates) fragment(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := t.fragments.ExecuteTemplate(&buf, name, data); err != nil {
		return "", errors.Wrapf(err, "render %s", name)
	}
	return template.HTML(buf.String()), nil
}

func parseListFilter(category, sort string) domproduct.ListFilter {
	if category == "" {
		category = string(domproduct.CategoryAll)
	}
	return domproduct.ListFilter{
		Category: domproduct.Category(category),
		Sort:     domproduct.ParseSortOrder(sort),
	}
}

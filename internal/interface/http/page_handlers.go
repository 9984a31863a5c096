package http

import (
	"bytes"
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	domcart "example.com/storefront/internal/domain/cart"
	cartuc "example.com/storefront/internal/usecase/cart"
)

const healthTimeout = 2 * time.Second

var errStoreUnavailable = errors.New("cart store unavailable")

func (a *API) handlePage(w http.ResponseWriter, r *http.Request) {
	page := PageID(r.URL.Path)
	l, ok := layouts[page]
	if !ok {
		a.handleNotFound(w, r)
		return
	}

	ctx := r.Context()
	session := sessionFrom(ctx)
	q := r.URL.Query()
	view := &pageView{
		session: session,
		cart:    newCartView(a.cartEntries(ctx, session)),
		filter:  parseListFilter(q.Get("category"), q.Get("sort")),
	}

	doc := a.newDocument(r, page, l)
	a.renderCartCount(doc, view.cart.Count)
	a.loadPageContent(ctx, page, doc, view)
	a.renderNotices(doc, session)
	a.renderDocument(w, http.StatusOK, a.tmpl.pages[page], doc)
}

func (a *API) handleNotFound(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())
	doc := a.newDocument(r, PageID(r.URL.Path), notFoundLayout)
	a.renderCartCount(doc, domcart.ItemCount(a.cartEntries(r.Context(), session)))
	a.renderNotices(doc, session)
	a.renderDocument(w, http.StatusNotFound, a.tmpl.notFound, doc)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()
	if err := a.store.Ping(ctx); err != nil {
		a.log.WithError(err).Warn("health check failed")
		respondError(w, http.StatusServiceUnavailable, errStoreUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) newDocument(r *http.Request, page string, l layout) *Document {
	doc := l.document(page)
	doc.Menu = ParseMobileMenu(r.URL)
	doc.MenuHref = doc.Menu.ToggleHref(r.URL)
	return doc
}

// cartEntries reads the visitor's cart for display. A store failure renders
// as an empty cart.
func (a *API) cartEntries(ctx context.Context, session string) []domcart.Entry {
	c, err := a.cartSvc.Open(ctx, cartuc.Key(session))
	if err != nil {
		a.log.WithError(err).Error("error loading cart")
		return nil
	}
	return c.Entries()
}

func (a *API) renderDocument(w http.ResponseWriter, status int, tmpl *template.Template, doc *Document) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, doc); err != nil {
		a.log.WithError(err).WithField("page", doc.Page).Error("render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

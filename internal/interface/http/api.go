package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"example.com/storefront/internal/infra/security"
	cartuc "example.com/storefront/internal/usecase/cart"
	cataloguc "example.com/storefront/internal/usecase/catalog"
	checkoutuc "example.com/storefront/internal/usecase/checkout"
	newsletteruc "example.com/storefront/internal/usecase/newsletter"
	"example.com/storefront/internal/usecase/notice"
)

// Pinger reports whether the cart store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type API struct {
	catalogSvc    *cataloguc.Service
	cartSvc       *cartuc.Service
	checkoutSvc   *checkoutuc.Service
	newsletterSvc *newsletteruc.Service
	board         *notice.Board
	sessions      *security.SessionService
	store         Pinger
	log           logrus.FieldLogger
	validator     *validator.Validate
	tmpl          *templates
	loaders       map[string]pageLoader
}

type Dependencies struct {
	CatalogService    *cataloguc.Service
	CartService       *cartuc.Service
	CheckoutService   *checkoutuc.Service
	NewsletterService *newsletteruc.Service
	Notices           *notice.Board
	Sessions          *security.SessionService
	Store             Pinger
	Logger            logrus.FieldLogger
}

func NewAPI(deps Dependencies) (*API, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return nil, err
	}
	log := deps.Logger
	if log == nil {
		log = logrus.StandardLogger()
	}
	a := &API{
		catalogSvc:    deps.CatalogService,
		cartSvc:       deps.CartService,
		checkoutSvc:   deps.CheckoutService,
		newsletterSvc: deps.NewsletterService,
		board:         deps.Notices,
		sessions:      deps.Sessions,
		store:         deps.Store,
		log:           log,
		validator:     validator.New(),
		tmpl:          tmpl,
	}
	a.loaders = a.pageLoaders()
	return a, nil
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(a.requestLogger)
	r.Use(chimw.Recoverer)

	r.Get("/health", a.handleHealth)

	r.Group(func(sr chi.Router) {
		sr.Use(a.sessionMiddleware)

		sr.Get("/", a.handlePage)
		sr.Get("/*", a.handlePage)

		sr.Post("/cart/items", a.handleAddCartItem)
		sr.Route("/cart/items/{id}", func(rr chi.Router) {
			rr.Post("/increase", a.handleIncreaseCartItem)
			rr.Post("/decrease", a.handleDecreaseCartItem)
			rr.Post("/remove", a.handleRemoveCartItem)
		})
		sr.Post("/checkout", a.handleCheckout)

		sr.Post("/newsletter", a.handleSubscribe)
		sr.Get("/newsletter/feedback", a.handleNewsletterFeedback)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// redirectBack sends the visitor to the page the form was posted from. Only
// the path and query of the Referer are used, so the redirect stays on this
// site.
func redirectBack(w http.ResponseWriter, r *http.Request) {
	target := "/"
	if ref, err := url.Parse(r.Referer()); err == nil && strings.HasPrefix(ref.Path, "/") && !strings.HasPrefix(ref.Path, "//") {
		target = (&url.URL{Path: ref.Path, RawQuery: ref.RawQuery}).String()
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func formatCount(n int64) string {
	return strconv.FormatInt(n, 10)
}

package http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	domcart "example.com/storefront/internal/domain/cart"
	domproduct "example.com/storefront/internal/domain/product"
	cartuc "example.com/storefront/internal/usecase/cart"
	"example.com/storefront/internal/usecase/notice"
)

const (
	msgAddedToCart = "Added to cart!"
	msgCheckedOut  = "Thank you for your purchase! Your order has been placed."

	addedVisible   = 2 * time.Second
	addedFade      = 500 * time.Millisecond
	checkoutNotice = 5 * time.Second
)

type cartItemForm struct {
	ProductID int64 `validate:"required,gt=0"`
}

func (a *API) parseCartItemForm(raw string) (cartItemForm, error) {
	var form cartItemForm
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return form, err
	}
	form.ProductID = id
	return form, a.validator.Struct(form)
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	form, err := a.parseCartItemForm(r.PostFormValue("product_id"))
	if err != nil {
		a.log.WithError(err).Warn("ignoring malformed add to cart")
		redirectBack(w, r)
		return
	}

	session := sessionFrom(r.Context())
	err = a.cartSvc.Update(r.Context(), cartuc.Key(session), func(c *cartuc.Cart) error {
		return c.Add(r.Context(), form.ProductID)
	})
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound):
	case err != nil:
		a.log.WithError(err).Error("add to cart failed")
	default:
		a.board.ShowFading(session, notice.ChannelCart, notice.Notice{
			Message: msgAddedToCart,
			Kind:    notice.KindSuccess,
		}, addedVisible, addedFade)
	}
	redirectBack(w, r)
}

func (a *API) handleIncreaseCartItem(w http.ResponseWriter, r *http.Request) {
	a.mutateCartItem(w, r, (*cartuc.Cart).Increase)
}

func (a *API) handleDecreaseCartItem(w http.ResponseWriter, r *http.Request) {
	a.mutateCartItem(w, r, (*cartuc.Cart).Decrease)
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	a.mutateCartItem(w, r, (*cartuc.Cart).Remove)
}

func (a *API) mutateCartItem(w http.ResponseWriter, r *http.Request, op func(*cartuc.Cart, context.Context, int64) error) {
	form, err := a.parseCartItemForm(chi.URLParam(r, "id"))
	if err != nil {
		a.log.WithError(err).Warn("ignoring malformed cart item id")
		redirectBack(w, r)
		return
	}

	key := cartuc.Key(sessionFrom(r.Context()))
	if err := a.cartSvc.Update(r.Context(), key, func(c *cartuc.Cart) error {
		return op(c, r.Context(), form.ProductID)
	}); err != nil {
		a.log.WithError(err).Error("cart update failed")
	}
	redirectBack(w, r)
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r.Context())
	order, err := a.checkoutSvc.Checkout(r.Context(), session)
	switch {
	case errors.Is(err, domcart.ErrEmptyCart):
		a.log.Debug("checkout of empty cart ignored")
	case err != nil:
		a.log.WithError(err).Error("checkout failed")
	default:
		a.log.WithField("order_id", order.ID).Debug("checkout confirmed")
		a.board.Show(session, notice.ChannelCheckout, notice.Notice{
			Message: msgCheckedOut,
			Kind:    notice.KindSuccess,
		}, checkoutNotice)
	}
	redirectBack(w, r)
}

package cart

import "errors"

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrUnreadableCart = errors.New("stored cart is unreadable")
)

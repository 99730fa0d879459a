package domain

import "errors"

var (
	ErrNoActiveSession       = errors.New("no customer is logged in")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrInvalidDate           = errors.New("invalid reservation date")
	ErrInvalidGuestCount     = errors.New("guest count must be positive")
	ErrInvalidQuantity       = errors.New("quantity must be positive")
	ErrNothingToOrder        = errors.New("cart is empty, nothing to order")
	ErrNoOrder               = errors.New("no order to process")
	ErrPaymentAuthentication = errors.New("payment authentication failed")
	ErrRestaurantNotFound    = errors.New("restaurant not found")
	ErrMenuItemNotFound      = errors.New("menu item not found")
	ErrOrderNotFound         = errors.New("order not found")
)

package main

import (
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/api"
	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
)

const (
	exitOK           = 0
	exitFailure      = 1
	exitUsage        = 2
	exitUnauthorized = 3
)

var errUsage = errors.New("usage")

// notification turns err into the single line shown to the user and the
// process exit code. fallback is used when nothing readable is available.
func notification(err error, fallback string) (string, int) {
	switch {
	case errors.Is(err, errUsage):
		return err.Error(), exitUsage
	case errors.Is(err, checkoutapp.ErrCheckoutInProgress):
		return "A checkout is already running for this account.", exitFailure
	case errors.Is(err, checkoutapp.ErrEmptyCart):
		return "Your cart is empty.", exitFailure
	case errors.Is(err, checkoutapp.ErrPaymentDeclined):
		return "Payment was not completed. Your cart has been kept.", exitFailure
	case errors.Is(err, checkoutapp.ErrItemUnavailable):
		return "An item in your cart is no longer available.", exitFailure
	case errors.Is(err, cartapp.ErrBusy):
		return "That item is still being updated.", exitFailure
	case errors.Is(err, authapp.ErrNoPendingTwoFactor):
		return "No login is waiting for a verification code.", exitFailure
	case errors.Is(err, authapp.ErrInvalidCode):
		return "Invalid verification code.", exitUnauthorized
	case errors.Is(err, catalogapp.ErrInvalidInput):
		return "Please check your input.", exitFailure
	case errors.Is(err, orderapp.ErrNotCancellable):
		return "This order can no longer be cancelled.", exitFailure
	}

	if api.KindOf(err) == api.KindUnauthorized {
		return api.Message(err, "Please log in again."), exitUnauthorized
	}
	return api.Message(err, fallback), exitFailure
}

func usage(line string) error {
	return fmt.Errorf("%w: storefront %s", errUsage, line)
}

package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dwikikusuma/storefront/internal/api"
	authapp "github.com/dwikikusuma/storefront/internal/auth/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

func TestNotification(t *testing.T) {
	t.Run("server payload -> message verbatim", func(t *testing.T) {
		err := api.FromStatus("cart.add_item", 400, []byte(`{"message":"Item out of stock"}`))
		msg, code := notification(err, "Failed to update cart.")
		if msg != "Item out of stock" || code != exitFailure {
			t.Fatalf("got (%q,%d)", msg, code)
		}
	})

	t.Run("empty 500 -> fallback", func(t *testing.T) {
		err := api.FromStatus("orders.create", 500, nil)
		msg, code := notification(err, "Checkout failed. Please try again.")
		if msg != "Checkout failed. Please try again." || code != exitFailure {
			t.Fatalf("got (%q,%d)", msg, code)
		}
	})

	t.Run("401 -> unauthorized exit", func(t *testing.T) {
		err := api.FromStatus("auth.login", 401, []byte(`{"message":"Invalid email or password"}`))
		msg, code := notification(err, "Login failed.")
		if msg != "Invalid email or password" || code != exitUnauthorized {
			t.Fatalf("got (%q,%d)", msg, code)
		}
	})

	t.Run("local validation -> own message", func(t *testing.T) {
		msg, code := notification(api.Invalid("checkout", "delivery address is required"), "Checkout failed.")
		if msg != "delivery address is required" || code != exitFailure {
			t.Fatalf("got (%q,%d)", msg, code)
		}
	})

	t.Run("wrapped declined payment -> friendly line", func(t *testing.T) {
		err := fmt.Errorf("%w: status FAILED", checkoutapp.ErrPaymentDeclined)
		msg, _ := notification(err, "x")
		if msg != "Payment was not completed. Your cart has been kept." {
			t.Fatalf("got %q", msg)
		}
	})

	t.Run("bad 2fa code -> unauthorized exit", func(t *testing.T) {
		_, code := notification(authapp.ErrInvalidCode, "x")
		if code != exitUnauthorized {
			t.Fatalf("got %d", code)
		}
	})

	t.Run("usage -> usage exit", func(t *testing.T) {
		msg, code := notification(usage("cart add <item-id>"), "x")
		if msg != "usage: storefront cart add <item-id>" || code != exitUsage {
			t.Fatalf("got (%q,%d)", msg, code)
		}
	})

	t.Run("plain error -> fallback", func(t *testing.T) {
		msg, code := notification(errors.New("boom"), "Something went wrong.")
		if msg != "Something went wrong." || code != exitFailure {
			t.Fatalf("got (%q,%d)", msg, code)
		}
	})
}

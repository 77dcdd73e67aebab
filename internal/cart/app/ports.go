package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// CartRepo is the backend's view of a customer's cart. Every mutating
// call returns the server-confirmed cart.
type CartRepo interface {
	Get(ctx context.Context, customerID string) (domain.Cart, error)
	Create(ctx context.Context, customerID string) (domain.Cart, error)
	AddItem(ctx context.Context, customerID, itemID string, quantity int) (domain.Cart, error)
	RemoveItem(ctx context.Context, customerID, itemID string, quantity int) (domain.Cart, error)
	DeleteItem(ctx context.Context, customerID, itemID string) (domain.Cart, error)
	Checkout(ctx context.Context, customerID string) error
	Delete(ctx context.Context, cartID string) error
}

package adapter

import (
	"context"
	"errors"

	"github.com/dwikikusuma/storefront/internal/api"
	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

type CartServiceGateway struct {
	svc *cartapp.Service
}

func NewCartServiceGateway(svc *cartapp.Service) *CartServiceGateway {
	return &CartServiceGateway{svc: svc}
}

func (g *CartServiceGateway) GetCart(ctx context.Context, customerID string) ([]checkoutapp.CartLine, error) {
	cart, err := g.svc.GetCart(ctx, customerID)
	if errors.Is(err, api.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	lines := make([]checkoutapp.CartLine, 0, len(cart.Items))
	for _, it := range cart.Items {
		lines = append(lines, checkoutapp.CartLine{
			ItemID:    it.Item.ID,
			Name:      it.Item.Name,
			UnitPrice: it.Item.Price,
			Quantity:  it.Quantity,
		})
	}
	return lines, nil
}

func (g *CartServiceGateway) ClearCart(ctx context.Context, customerID string) error {
	return g.svc.Checkout(ctx, customerID)
}

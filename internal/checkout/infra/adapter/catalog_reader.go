package adapter

import (
	"context"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetItem(ctx context.Context, itemID string) (checkoutapp.Product, error) {
	it, err := r.svc.GetItem(ctx, itemID)
	if err != nil {
		return checkoutapp.Product{}, err
	}

	return checkoutapp.Product{
		ID:        it.ID,
		Name:      it.Name,
		Price:     it.EffectivePrice(),
		Available: it.Available,
	}, nil
}

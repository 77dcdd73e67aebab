package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type ItemRepo interface {
	List(ctx context.Context) ([]domain.Item, error)
	Get(ctx context.Context, id string) (domain.Item, error)
	ByVendor(ctx context.Context, vendorID string) ([]domain.Item, error)
	ByCategory(ctx context.Context, category string) ([]domain.Item, error)
	Search(ctx context.Context, keyword string) ([]domain.Item, error)
	CheaperThan(ctx context.Context, price domain.Money) ([]domain.Item, error)
	Create(ctx context.Context, in domain.ItemInput) (domain.Item, error)
	Update(ctx context.Context, id string, in domain.ItemInput) (domain.Item, error)
	Delete(ctx context.Context, id string) error
}

type VendorRepo interface {
	List(ctx context.Context) ([]domain.Vendor, error)
	Get(ctx context.Context, id string) (domain.Vendor, error)
	Search(ctx context.Context, keyword string) ([]domain.Vendor, error)
	ByStatus(ctx context.Context, status domain.VendorStatus) ([]domain.Vendor, error)
	Rate(ctx context.Context, id string, rating int) error
}

type CategoryRepo interface {
	List(ctx context.Context) ([]domain.Category, error)
}

package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/order/domain"
)

type OrderRepo interface {
	Create(ctx context.Context, order domain.Order) (domain.Order, error)
	Get(ctx context.Context, id string) (domain.Order, error)
	ByCustomer(ctx context.Context, customerID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Order, error)
	Cancel(ctx context.Context, id string) (domain.Order, error)
}

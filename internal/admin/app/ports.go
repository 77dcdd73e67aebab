package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/admin/domain"
)

type AdminRepo interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
	RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error)
	Revenue(ctx context.Context, period string) (domain.RevenueStats, error)
	VendorPerformance(ctx context.Context) ([]domain.VendorPerformance, error)
}

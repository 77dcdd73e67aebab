package rest

import (
	"context"
	"strconv"
	"time"

	"github.com/dwikikusuma/storefront/internal/admin/domain"
	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/shopspring/decimal"
)

type statsDTO struct {
	TotalRevenue    decimal.Decimal `json:"totalRevenue"`
	TotalOrders     int             `json:"totalOrders"`
	ActiveCustomers int             `json:"activeCustomers"`
	ActiveVendors   int             `json:"activeVendors"`
	TopSellingItems []struct {
		Name      string `json:"name"`
		UnitsSold int    `json:"unitsSold"`
	} `json:"topSellingItems"`
}

type recentOrderDTO struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	OrderDate    time.Time       `json:"orderDate"`
}

type revenueDTO struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
	Points []struct {
		Label  string          `json:"label"`
		Amount decimal.Decimal `json:"amount"`
	} `json:"points"`
}

type vendorPerformanceDTO struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalOrders int             `json:"totalOrders"`
	Rating      float64         `json:"rating"`
}

type AdminAPI struct {
	c *api.Client
}

func NewAdminAPI(c *api.Client) *AdminAPI {
	return &AdminAPI{c: c}
}

func (a *AdminAPI) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var dto statsDTO
	if err := a.c.Get(ctx, "admin.stats", "/admin/dashboard/stats", nil, &dto); err != nil {
		return domain.DashboardStats{}, err
	}
	out := domain.DashboardStats{
		TotalRevenue:    dto.TotalRevenue,
		TotalOrders:     dto.TotalOrders,
		ActiveCustomers: dto.ActiveCustomers,
		ActiveVendors:   dto.ActiveVendors,
	}
	for _, it := range dto.TopSellingItems {
		out.TopSellingItems = append(out.TopSellingItems, domain.TopSellingItem{Name: it.Name, UnitsSold: it.UnitsSold})
	}
	return out, nil
}

func (a *AdminAPI) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	var rows []recentOrderDTO
	err := a.c.Do(ctx, "admin.recent_orders", api.Request{
		Method: "GET",
		Path:   "/admin/orders/recent",
		Query:  map[string]string{"limit": strconv.Itoa(limit)},
	}, &rows)
	if err != nil {
		return nil, err
	}
	out := make([]domain.RecentOrder, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.RecentOrder(r))
	}
	return out, nil
}

func (a *AdminAPI) Revenue(ctx context.Context, period string) (domain.RevenueStats, error) {
	var dto revenueDTO
	err := a.c.Do(ctx, "admin.revenue", api.Request{
		Method: "GET",
		Path:   "/admin/revenue",
		Query:  map[string]string{"period": period},
	}, &dto)
	if err != nil {
		return domain.RevenueStats{}, err
	}
	out := domain.RevenueStats{Period: dto.Period, Total: dto.Total}
	if out.Period == "" {
		out.Period = period
	}
	for _, p := range dto.Points {
		out.Points = append(out.Points, domain.RevenuePoint{Label: p.Label, Amount: p.Amount})
	}
	return out, nil
}

func (a *AdminAPI) VendorPerformance(ctx context.Context) ([]domain.VendorPerformance, error) {
	var rows []vendorPerformanceDTO
	if err := a.c.Get(ctx, "admin.vendor_performance", "/admin/vendors/performance", nil, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.VendorPerformance, 0, len(rows))
	for _, r := range rows {
		out = append(out, domain.VendorPerformance(r))
	}
	return out, nil
}

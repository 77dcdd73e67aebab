package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront/internal/admin/domain"
	"github.com/dwikikusuma/storefront/internal/api"
	"golang.org/x/sync/errgroup"
)

const DefaultRecentLimit = 10

type Service struct {
	repo AdminRepo
}

func NewService(repo AdminRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Stats(ctx context.Context) (domain.DashboardStats, error) {
	return s.repo.Stats(ctx)
}

func (s *Service) RecentOrders(ctx context.Context, limit int) ([]domain.RecentOrder, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	return s.repo.RecentOrders(ctx, limit)
}

func (s *Service) Revenue(ctx context.Context, period string) (domain.RevenueStats, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return domain.RevenueStats{}, err
	}
	return s.repo.Revenue(ctx, period)
}

func (s *Service) VendorPerformance(ctx context.Context) ([]domain.VendorPerformance, error) {
	return s.repo.VendorPerformance(ctx)
}

// Dashboard loads the four admin panels concurrently. Any failure fails
// the whole dashboard.
func (s *Service) Dashboard(ctx context.Context, recentLimit int, period string) (domain.Dashboard, error) {
	period, err := normalizePeriod(period)
	if err != nil {
		return domain.Dashboard{}, err
	}
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}

	var d domain.Dashboard
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.repo.Stats(ctx)
		if err != nil {
			return fmt.Errorf("dashboard stats: %w", err)
		}
		d.Stats = stats
		return nil
	})
	g.Go(func() error {
		orders, err := s.repo.RecentOrders(ctx, recentLimit)
		if err != nil {
			return fmt.Errorf("recent orders: %w", err)
		}
		d.RecentOrders = orders
		return nil
	})
	g.Go(func() error {
		rev, err := s.repo.Revenue(ctx, period)
		if err != nil {
			return fmt.Errorf("revenue: %w", err)
		}
		d.Revenue = rev
		return nil
	})
	g.Go(func() error {
		vendors, err := s.repo.VendorPerformance(ctx)
		if err != nil {
			return fmt.Errorf("vendor performance: %w", err)
		}
		d.Vendors = vendors
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, err
	}
	return d, nil
}

func normalizePeriod(p string) (string, error) {
	p = strings.ToLower(strings.TrimSpace(p))
	if p == "" {
		return "month", nil
	}
	if !domain.ValidPeriod(p) {
		return "", api.Invalid("admin.revenue", fmt.Sprintf("period must be one of %s", strings.Join(domain.Periods, ", ")))
	}
	return p, nil
}

package app

import (
	"context"
	"errors"
	"strings"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

type Service struct {
	items      ItemRepo
	vendors    VendorRepo
	categories CategoryRepo
}

func NewService(items ItemRepo, vendors VendorRepo, categories CategoryRepo) *Service {
	return &Service{
		items:      items,
		vendors:    vendors,
		categories: categories,
	}
}

func (s *Service) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}

func (s *Service) GetItem(ctx context.Context, id string) (domain.Item, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Item{}, ErrInvalidInput
	}
	return s.items.Get(ctx, id)
}

func (s *Service) ItemsByVendor(ctx context.Context, vendorID string) ([]domain.Item, error) {
	if strings.TrimSpace(vendorID) == "" {
		return nil, ErrInvalidInput
	}
	return s.items.ByVendor(ctx, vendorID)
}

func (s *Service) ItemsByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrInvalidInput
	}
	return s.items.ByCategory(ctx, category)
}

func (s *Service) SearchItems(ctx context.Context, keyword string) ([]domain.Item, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.items.List(ctx)
	}
	return s.items.Search(ctx, keyword)
}

func (s *Service) ItemsCheaperThan(ctx context.Context, price domain.Money) ([]domain.Item, error) {
	if price.IsNegative() {
		return nil, ErrInvalidInput
	}
	return s.items.CheaperThan(ctx, price)
}

func (s *Service) CreateItem(ctx context.Context, in domain.ItemInput) (domain.Item, error) {
	in, err := normalizeItemInput(in)
	if err != nil {
		return domain.Item{}, err
	}
	if strings.TrimSpace(in.VendorID) == "" {
		return domain.Item{}, ErrInvalidInput
	}
	return s.items.Create(ctx, in)
}

func (s *Service) UpdateItem(ctx context.Context, id string, in domain.ItemInput) (domain.Item, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Item{}, ErrInvalidInput
	}
	in, err := normalizeItemInput(in)
	if err != nil {
		return domain.Item{}, err
	}
	return s.items.Update(ctx, id, in)
}

func (s *Service) DeleteItem(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrInvalidInput
	}
	return s.items.Delete(ctx, id)
}

func (s *Service) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	return s.vendors.List(ctx)
}

func (s *Service) GetVendor(ctx context.Context, id string) (domain.Vendor, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Vendor{}, ErrInvalidInput
	}
	return s.vendors.Get(ctx, id)
}

func (s *Service) SearchVendors(ctx context.Context, keyword string) ([]domain.Vendor, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return s.vendors.List(ctx)
	}
	return s.vendors.Search(ctx, keyword)
}

func (s *Service) VendorsByStatus(ctx context.Context, status string) ([]domain.Vendor, error) {
	st, ok := domain.ParseVendorStatus(status)
	if !ok {
		return nil, ErrInvalidInput
	}
	return s.vendors.ByStatus(ctx, st)
}

// VendorDetail loads a vendor and its items in parallel.
func (s *Service) VendorDetail(ctx context.Context, vendorID string) (domain.VendorDetail, error) {
	if strings.TrimSpace(vendorID) == "" {
		return domain.VendorDetail{}, ErrInvalidInput
	}

	var detail domain.VendorDetail
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		v, err := s.vendors.Get(ctx, vendorID)
		if err != nil {
			return err
		}
		detail.Vendor = v
		return nil
	})
	g.Go(func() error {
		items, err := s.items.ByVendor(ctx, vendorID)
		if err != nil {
			return err
		}
		detail.Items = items
		return nil
	})

	if err := g.Wait(); err != nil {
		return domain.VendorDetail{}, err
	}
	return detail, nil
}

func (s *Service) RateVendor(ctx context.Context, vendorID string, rating int) error {
	if strings.TrimSpace(vendorID) == "" || rating < 1 || rating > 5 {
		return ErrInvalidInput
	}
	return s.vendors.Rate(ctx, vendorID, rating)
}

func (s *Service) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func normalizeItemInput(in domain.ItemInput) (domain.ItemInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" || in.Price.IsNegative() {
		return in, ErrInvalidInput
	}
	if in.DiscountPercentage.IsNegative() || in.DiscountPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return in, ErrInvalidInput
	}
	return in, nil
}

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeItems struct {
	calls  int
	byVend map[string][]domain.Item
}

func (f *fakeItems) List(ctx context.Context) ([]domain.Item, error) { f.calls++; return nil, nil }
func (f *fakeItems) Get(ctx context.Context, id string) (domain.Item, error) {
	f.calls++
	return domain.Item{ID: id}, nil
}
func (f *fakeItems) ByVendor(ctx context.Context, vendorID string) ([]domain.Item, error) {
	f.calls++
	return f.byVend[vendorID], nil
}
func (f *fakeItems) ByCategory(ctx context.Context, category string) ([]domain.Item, error) {
	f.calls++
	return nil, nil
}
func (f *fakeItems) Search(ctx context.Context, keyword string) ([]domain.Item, error) {
	f.calls++
	return nil, nil
}
func (f *fakeItems) CheaperThan(ctx context.Context, price domain.Money) ([]domain.Item, error) {
	f.calls++
	return nil, nil
}
func (f *fakeItems) Create(ctx context.Context, in domain.ItemInput) (domain.Item, error) {
	f.calls++
	return domain.Item{ID: "new", Name: in.Name, Price: in.Price}, nil
}
func (f *fakeItems) Update(ctx context.Context, id string, in domain.ItemInput) (domain.Item, error) {
	f.calls++
	return domain.Item{ID: id, Name: in.Name}, nil
}
func (f *fakeItems) Delete(ctx context.Context, id string) error { f.calls++; return nil }

type fakeVendors struct {
	err error
}

func (f fakeVendors) List(ctx context.Context) ([]domain.Vendor, error) { return nil, nil }
func (f fakeVendors) Get(ctx context.Context, id string) (domain.Vendor, error) {
	if f.err != nil {
		return domain.Vendor{}, f.err
	}
	return domain.Vendor{ID: id, Name: "Chez Lando"}, nil
}
func (f fakeVendors) Search(ctx context.Context, keyword string) ([]domain.Vendor, error) {
	return nil, nil
}
func (f fakeVendors) ByStatus(ctx context.Context, status domain.VendorStatus) ([]domain.Vendor, error) {
	return nil, nil
}
func (f fakeVendors) Rate(ctx context.Context, id string, rating int) error { return nil }

type fakeCategories struct{}

func (fakeCategories) List(ctx context.Context) ([]domain.Category, error) { return nil, nil }

func TestCreateItemValidation(t *testing.T) {
	items := &fakeItems{}
	svc := NewService(items, fakeVendors{}, fakeCategories{})
	ctx := context.Background()

	t.Run("empty name -> invalid", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, domain.ItemInput{VendorID: "v1", Name: "   ", Price: decimal.NewFromInt(100)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("negative price -> invalid", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, domain.ItemInput{VendorID: "v1", Name: "Brochette", Price: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("discount over 100 -> invalid", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, domain.ItemInput{
			VendorID:           "v1",
			Name:               "Brochette",
			Price:              decimal.NewFromInt(1500),
			DiscountPercentage: decimal.NewFromInt(101),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("missing vendor -> invalid", func(t *testing.T) {
		_, err := svc.CreateItem(ctx, domain.ItemInput{Name: "Brochette", Price: decimal.NewFromInt(1500)})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	assert.Zero(t, items.calls, "invalid input must not reach the backend")

	t.Run("valid -> created with trimmed name", func(t *testing.T) {
		it, err := svc.CreateItem(ctx, domain.ItemInput{VendorID: "v1", Name: " Brochette ", Price: decimal.NewFromInt(1500)})
		require.NoError(t, err)
		assert.Equal(t, "Brochette", it.Name)
	})
}

func TestRateVendorBounds(t *testing.T) {
	svc := NewService(&fakeItems{}, fakeVendors{}, fakeCategories{})
	assert.ErrorIs(t, svc.RateVendor(context.Background(), "v1", 0), ErrInvalidInput)
	assert.ErrorIs(t, svc.RateVendor(context.Background(), "v1", 6), ErrInvalidInput)
	assert.NoError(t, svc.RateVendor(context.Background(), "v1", 5))
}

func TestVendorDetail(t *testing.T) {
	items := &fakeItems{byVend: map[string][]domain.Item{"v1": {{ID: "i1"}, {ID: "i2"}}}}

	t.Run("both calls succeed -> combined", func(t *testing.T) {
		svc := NewService(items, fakeVendors{}, fakeCategories{})
		d, err := svc.VendorDetail(context.Background(), "v1")
		require.NoError(t, err)
		assert.Equal(t, "Chez Lando", d.Vendor.Name)
		assert.Len(t, d.Items, 2)
	})

	t.Run("vendor lookup fails -> error", func(t *testing.T) {
		boom := errors.New("boom")
		svc := NewService(items, fakeVendors{err: boom}, fakeCategories{})
		_, err := svc.VendorDetail(context.Background(), "v1")
		assert.ErrorIs(t, err, boom)
	})
}

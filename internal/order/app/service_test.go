package app

import (
	"context"
	"fmt"
	"testing"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	orders    map[string]domain.Order
	lastSaved domain.Order
	calls     []string
	seq       int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{orders: make(map[string]domain.Order)}
}

func (f *fakeRepo) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	f.calls = append(f.calls, "create")
	f.seq++
	o.ID = fmt.Sprintf("order-%d", f.seq)
	f.lastSaved = o
	f.orders[o.ID] = o
	return o, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (domain.Order, error) {
	f.calls = append(f.calls, "get")
	o, ok := f.orders[id]
	if !ok {
		return domain.Order{}, &api.Error{Kind: api.KindNotFound, Status: 404, Op: "order.get"}
	}
	return o, nil
}

func (f *fakeRepo) ByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	f.calls = append(f.calls, "by_customer")
	var out []domain.Order
	for _, o := range f.orders {
		if o.CustomerID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Order, error) {
	f.calls = append(f.calls, "update_status")
	o := f.orders[id]
	o.Status = status
	f.orders[id] = o
	return o, nil
}

func (f *fakeRepo) Cancel(ctx context.Context, id string) (domain.Order, error) {
	f.calls = append(f.calls, "cancel")
	return f.UpdateStatus(ctx, id, domain.StatusCancelledByCustomer)
}

func TestCreateOrderTotals(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	got, err := svc.CreateOrder(context.Background(), domain.PlaceOrderRequest{
		CustomerID:      "cust-1",
		DeliveryAddress: "  KG 11 Ave, Kigali ",
		DeliveryFee:     decimal.NewFromInt(2000),
		Items: []domain.OrderItemRequest{
			{ItemID: "a", UnitPrice: decimal.NewFromInt(2500), Quantity: 2},
			{ItemID: "b", UnitPrice: decimal.RequireFromString("1500.50"), Quantity: 1},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "order-1", got.ID)
	assert.Equal(t, domain.StatusPending, got.Status)
	assert.Equal(t, "KG 11 Ave, Kigali", got.DeliveryAddress)
	assert.Equal(t, "5000", got.Items[0].LineTotal.String())
	assert.Equal(t, "6500.5", got.Subtotal.String())
	assert.Equal(t, "8500.5", got.Total.String())
}

func TestCreateOrderValidation(t *testing.T) {
	valid := func() domain.PlaceOrderRequest {
		return domain.PlaceOrderRequest{
			CustomerID:      "cust-1",
			DeliveryAddress: "Kigali",
			Items:           []domain.OrderItemRequest{{ItemID: "a", UnitPrice: decimal.NewFromInt(1), Quantity: 1}},
		}
	}

	cases := []struct {
		name   string
		mutate func(*domain.PlaceOrderRequest)
	}{
		{"blank address -> invalid", func(r *domain.PlaceOrderRequest) { r.DeliveryAddress = " \t" }},
		{"no items -> invalid", func(r *domain.PlaceOrderRequest) { r.Items = nil }},
		{"zero quantity -> invalid", func(r *domain.PlaceOrderRequest) { r.Items[0].Quantity = 0 }},
		{"negative price -> invalid", func(r *domain.PlaceOrderRequest) { r.Items[0].UnitPrice = decimal.NewFromInt(-1) }},
		{"negative fee -> invalid", func(r *domain.PlaceOrderRequest) { r.DeliveryFee = decimal.NewFromInt(-5) }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			req := valid()
			tc.mutate(&req)
			_, err := NewService(repo).CreateOrder(context.Background(), req)
			assert.ErrorIs(t, err, api.ErrValidation)
			assert.Empty(t, repo.calls)
		})
	}
}

func TestUpdateStatusRejectsUnknown(t *testing.T) {
	repo := newFakeRepo()
	_, err := NewService(repo).UpdateStatus(context.Background(), "order-1", "SHIPPED")
	assert.ErrorIs(t, err, api.ErrValidation)
	assert.Empty(t, repo.calls)
}

func TestCancelOrder(t *testing.T) {
	repo := newFakeRepo()
	repo.orders["pending"] = domain.Order{ID: "pending", Status: domain.StatusPending}
	repo.orders["paid"] = domain.Order{ID: "paid", Status: domain.StatusPaid}
	svc := NewService(repo)

	t.Run("pending -> cancelled by customer", func(t *testing.T) {
		o, err := svc.CancelOrder(context.Background(), "pending")
		require.NoError(t, err)
		assert.Equal(t, domain.StatusCancelledByCustomer, o.Status)
	})

	t.Run("paid -> not cancellable", func(t *testing.T) {
		_, err := svc.CancelOrder(context.Background(), "paid")
		assert.ErrorIs(t, err, ErrNotCancellable)
		assert.Equal(t, domain.StatusPaid, repo.orders["paid"].Status)
	})

	t.Run("missing -> not found", func(t *testing.T) {
		_, err := svc.CancelOrder(context.Background(), "nope")
		assert.ErrorIs(t, err, api.ErrNotFound)
	})
}

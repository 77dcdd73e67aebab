package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

// backend records every call the orchestrator makes, in order.
type backend struct {
	mu    sync.Mutex
	calls []string

	lines        []CartLine
	products     map[string]Product
	orderStatus  map[string]string
	cartCleared  bool
	paymentState string

	cartErr      error
	createErr    error
	payErr       error
	processErr   error
	markPaidErr  error
	compErr      error
	clearErr     error
	cartGate     chan struct{}
	onProcess    func()
	compCtxErr   error
	compCtxSeen  bool
}

func newBackend() *backend {
	return &backend{
		lines: []CartLine{
			{ItemID: "item-a", Name: "Isombe", UnitPrice: decimal.NewFromInt(2500), Quantity: 2},
			{ItemID: "item-b", Name: "Brochette", UnitPrice: decimal.NewFromInt(1500), Quantity: 1},
		},
		products: map[string]Product{
			"item-a": {ID: "item-a", Name: "Isombe", Price: decimal.NewFromInt(2500), Available: true},
			"item-b": {ID: "item-b", Name: "Brochette", Price: decimal.NewFromInt(1500), Available: true},
		},
		orderStatus:  make(map[string]string),
		paymentState: "COMPLETED",
	}
}

func (b *backend) record(call string) {
	b.mu.Lock()
	b.calls = append(b.calls, call)
	b.mu.Unlock()
}

func (b *backend) Calls() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.calls...)
}

func (b *backend) GetCart(ctx context.Context, customerID string) ([]CartLine, error) {
	if b.cartGate != nil {
		<-b.cartGate
	}
	b.record("cart.get")
	if b.cartErr != nil {
		return nil, b.cartErr
	}
	return b.lines, nil
}

func (b *backend) ClearCart(ctx context.Context, customerID string) error {
	b.record("cart.clear")
	if b.clearErr != nil {
		return b.clearErr
	}
	b.cartCleared = true
	return nil
}

func (b *backend) GetItem(ctx context.Context, itemID string) (Product, error) {
	b.record("catalog.get")
	p, ok := b.products[itemID]
	if !ok {
		return Product{}, fmt.Errorf("no item %s", itemID)
	}
	return p, nil
}

func (b *backend) CreateOrder(ctx context.Context, req OrderRequest) (PlacedOrder, error) {
	b.record("order.create")
	if b.createErr != nil {
		return PlacedOrder{}, b.createErr
	}
	total := req.DeliveryFee
	for _, l := range req.Lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	b.orderStatus["order-1"] = "PENDING"
	return PlacedOrder{ID: "order-1", Total: total}, nil
}

func (b *backend) MarkPaid(ctx context.Context, orderID string) error {
	b.record("order.paid")
	if b.markPaidErr != nil {
		return b.markPaidErr
	}
	b.orderStatus[orderID] = "PAID"
	return nil
}

func (b *backend) MarkPaymentFailed(ctx context.Context, orderID string) error {
	b.record("order.payment_failed")
	b.compCtxSeen = true
	b.compCtxErr = ctx.Err()
	if b.compErr != nil {
		return b.compErr
	}
	b.orderStatus[orderID] = "PAYMENT_FAILED"
	return nil
}

func (b *backend) CreatePayment(ctx context.Context, orderID, method string) (PaymentRef, error) {
	b.record("payment.create:" + method)
	if b.payErr != nil {
		return PaymentRef{}, b.payErr
	}
	return PaymentRef{ID: "pay-1", Status: "PENDING"}, nil
}

func (b *backend) ProcessPayment(ctx context.Context, paymentID string) (PaymentRef, error) {
	b.record("payment.process")
	if b.onProcess != nil {
		b.onProcess()
	}
	if b.processErr != nil {
		return PaymentRef{}, b.processErr
	}
	if err := ctx.Err(); err != nil {
		return PaymentRef{}, err
	}
	return PaymentRef{ID: paymentID, Status: b.paymentState, Completed: b.paymentState == "COMPLETED"}, nil
}

var errBoom = errors.New("boom")

package app

import (
	"context"

	"github.com/shopspring/decimal"
)

// CartGateway reads the server cart and clears it once an order is paid.
// A customer without a cart has no lines.
type CartGateway interface {
	GetCart(ctx context.Context, customerID string) ([]CartLine, error)
	ClearCart(ctx context.Context, customerID string) error
}

type CartLine struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

type CatalogReader interface {
	GetItem(ctx context.Context, itemID string) (Product, error)
}

type Product struct {
	ID        string
	Name      string
	Price     decimal.Decimal
	Available bool
}

type OrderInitiator interface {
	CreateOrder(ctx context.Context, req OrderRequest) (PlacedOrder, error)
	MarkPaid(ctx context.Context, orderID string) error
	MarkPaymentFailed(ctx context.Context, orderID string) error
}

type OrderRequest struct {
	CustomerID      string
	DeliveryAddress string
	DeliveryFee     decimal.Decimal
	Lines           []CartLine
}

type PlacedOrder struct {
	ID    string
	Total decimal.Decimal
}

type PaymentInitiator interface {
	CreatePayment(ctx context.Context, orderID, method string) (PaymentRef, error)
	ProcessPayment(ctx context.Context, paymentID string) (PaymentRef, error)
}

type PaymentRef struct {
	ID        string
	Status    string
	Completed bool
}

package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/payment/domain"
)

type PaymentRepo interface {
	Create(ctx context.Context, orderID string, method domain.Method) (domain.Payment, error)
	Process(ctx context.Context, paymentID string) (domain.Payment, error)
	Get(ctx context.Context, paymentID string) (domain.Payment, error)
	Refund(ctx context.Context, paymentID string) (domain.Payment, error)
	Cancel(ctx context.Context, paymentID string) (domain.Payment, error)
}

package adapter

import (
	"context"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	paymentapp "github.com/dwikikusuma/storefront/internal/payment/app"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
)

type PaymentServiceInitiator struct {
	svc *paymentapp.Service
}

func NewPaymentServiceInitiator(svc *paymentapp.Service) *PaymentServiceInitiator {
	return &PaymentServiceInitiator{svc: svc}
}

func (p *PaymentServiceInitiator) CreatePayment(ctx context.Context, orderID, method string) (checkoutapp.PaymentRef, error) {
	pay, err := p.svc.CreatePayment(ctx, orderID, paymentdomain.Method(method))
	if err != nil {
		return checkoutapp.PaymentRef{}, err
	}
	return toRef(pay), nil
}

func (p *PaymentServiceInitiator) ProcessPayment(ctx context.Context, paymentID string) (checkoutapp.PaymentRef, error) {
	pay, err := p.svc.ProcessPayment(ctx, paymentID)
	if err != nil {
		return checkoutapp.PaymentRef{}, err
	}
	return toRef(pay), nil
}

func toRef(p paymentdomain.Payment) checkoutapp.PaymentRef {
	return checkoutapp.PaymentRef{
		ID:        p.ID,
		Status:    string(p.Status),
		Completed: p.Status == paymentdomain.StatusCompleted,
	}
}

package app

import (
	"context"
	"strings"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/payment/domain"
)

// Service is a thin wrapper over the payments endpoints. Backend errors
// are returned unchanged.
type Service struct {
	repo PaymentRepo
}

func NewService(repo PaymentRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreatePayment(ctx context.Context, orderID string, method domain.Method) (domain.Payment, error) {
	const op = "payment.create"
	if err := require(op, "order id", orderID); err != nil {
		return domain.Payment{}, err
	}
	m, ok := domain.ParseMethod(string(method))
	if !ok {
		return domain.Payment{}, api.Invalid(op, "unsupported payment method "+string(method))
	}
	return s.repo.Create(ctx, orderID, m)
}

func (s *Service) ProcessPayment(ctx context.Context, paymentID string) (domain.Payment, error) {
	if err := require("payment.process", "payment id", paymentID); err != nil {
		return domain.Payment{}, err
	}
	return s.repo.Process(ctx, paymentID)
}

func (s *Service) GetPayment(ctx context.Context, paymentID string) (domain.Payment, error) {
	if err := require("payment.get", "payment id", paymentID); err != nil {
		return domain.Payment{}, err
	}
	return s.repo.Get(ctx, paymentID)
}

func (s *Service) RefundPayment(ctx context.Context, paymentID string) (domain.Payment, error) {
	if err := require("payment.refund", "payment id", paymentID); err != nil {
		return domain.Payment{}, err
	}
	return s.repo.Refund(ctx, paymentID)
}

func (s *Service) CancelPayment(ctx context.Context, paymentID string) (domain.Payment, error) {
	if err := require("payment.cancel", "payment id", paymentID); err != nil {
		return domain.Payment{}, err
	}
	return s.repo.Cancel(ctx, paymentID)
}

func require(op, name, v string) error {
	if strings.TrimSpace(v) == "" {
		return api.Invalid(op, name+" is required")
	}
	return nil
}

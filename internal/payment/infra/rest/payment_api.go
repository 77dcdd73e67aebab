package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/shopspring/decimal"
)

type paymentDTO struct {
	ID            string          `json:"id"`
	OrderID       string          `json:"orderId"`
	PaymentMethod string          `json:"paymentMethod"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	PaymentDate   api.Timestamp   `json:"paymentDate"`
}

func (d paymentDTO) toDomain(op string) (domain.Payment, error) {
	if d.ID == "" {
		return domain.Payment{}, malformed(op, "payment without id")
	}
	status, ok := domain.ParseStatus(d.Status)
	if !ok {
		return domain.Payment{}, malformed(op, fmt.Sprintf("payment %s has unknown status %q", d.ID, d.Status))
	}
	method, ok := domain.ParseMethod(d.PaymentMethod)
	if !ok {
		method = domain.Method(strings.TrimSpace(d.PaymentMethod))
	}
	return domain.Payment{
		ID:        d.ID,
		OrderID:   d.OrderID,
		Method:    method,
		Status:    status,
		Amount:    d.Amount,
		CreatedAt: d.PaymentDate.Time,
	}, nil
}

func malformed(op, msg string) error {
	return &api.Error{Kind: api.KindServer, Op: op, Message: "malformed response: " + msg}
}

type PaymentAPI struct {
	c *api.Client
}

func NewPaymentAPI(c *api.Client) *PaymentAPI {
	return &PaymentAPI{c: c}
}

func (a *PaymentAPI) do(ctx context.Context, op string, req api.Request) (domain.Payment, error) {
	var dto paymentDTO
	if err := a.c.Do(ctx, op, req, &dto); err != nil {
		return domain.Payment{}, err
	}
	return dto.toDomain(op)
}

func (a *PaymentAPI) action(ctx context.Context, op, paymentID, action string) (domain.Payment, error) {
	return a.do(ctx, op, api.Request{
		Method:     http.MethodPost,
		Path:       "/payments/{id}/" + action,
		PathParams: map[string]string{"id": paymentID},
	})
}

func (a *PaymentAPI) Create(ctx context.Context, orderID string, method domain.Method) (domain.Payment, error) {
	return a.do(ctx, "payment.create", api.Request{
		Method:     http.MethodPost,
		Path:       "/payments/order/{id}",
		PathParams: map[string]string{"id": orderID},
		Query:      map[string]string{"paymentMethod": string(method)},
	})
}

func (a *PaymentAPI) Process(ctx context.Context, paymentID string) (domain.Payment, error) {
	return a.action(ctx, "payment.process", paymentID, "process")
}

func (a *PaymentAPI) Get(ctx context.Context, paymentID string) (domain.Payment, error) {
	return a.do(ctx, "payment.get", api.Request{
		Method:     http.MethodGet,
		Path:       "/payments/{id}",
		PathParams: map[string]string{"id": paymentID},
	})
}

func (a *PaymentAPI) Refund(ctx context.Context, paymentID string) (domain.Payment, error) {
	return a.action(ctx, "payment.refund", paymentID, "refund")
}

func (a *PaymentAPI) Cancel(ctx context.Context, paymentID string) (domain.Payment, error) {
	return a.action(ctx, "payment.cancel", paymentID, "cancel")
}

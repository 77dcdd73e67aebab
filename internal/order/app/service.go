package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/shopspring/decimal"
)

var ErrNotCancellable = errors.New("order can no longer be cancelled")

type Service struct {
	repo OrderRepo
}

func NewService(repo OrderRepo) *Service {
	return &Service{repo: repo}
}

// CreateOrder prices the request locally and submits it. The backend's
// response is returned as is; it owns the order from here on.
func (s *Service) CreateOrder(ctx context.Context, req domain.PlaceOrderRequest) (domain.Order, error) {
	const op = "order.create"
	if strings.TrimSpace(req.CustomerID) == "" {
		return domain.Order{}, api.Invalid(op, "customer id is required")
	}
	if strings.TrimSpace(req.DeliveryAddress) == "" {
		return domain.Order{}, api.Invalid(op, "delivery address is required")
	}
	if req.DeliveryFee.IsNegative() {
		return domain.Order{}, api.Invalid(op, fmt.Sprintf("delivery fee cannot be negative, got %s", req.DeliveryFee))
	}
	if len(req.Items) == 0 {
		return domain.Order{}, api.Invalid(op, "order has no items")
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	subtotal := decimal.Zero

	for i, it := range req.Items {
		if strings.TrimSpace(it.ItemID) == "" {
			return domain.Order{}, api.Invalid(op, fmt.Sprintf("item %d: id is required", i))
		}
		if it.Quantity <= 0 {
			return domain.Order{}, api.Invalid(op, fmt.Sprintf("item %d: quantity must be positive, got %d", i, it.Quantity))
		}
		if it.UnitPrice.IsNegative() {
			return domain.Order{}, api.Invalid(op, fmt.Sprintf("item %d: unit price cannot be negative, got %s", i, it.UnitPrice))
		}

		line := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, domain.OrderItem{
			ItemID:    it.ItemID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			LineTotal: line,
		})
		subtotal = subtotal.Add(line)
	}

	order := domain.Order{
		CustomerID:      req.CustomerID,
		DeliveryAddress: strings.TrimSpace(req.DeliveryAddress),
		Status:          domain.StatusPending,
		Items:           items,
		Subtotal:        subtotal,
		DeliveryFee:     req.DeliveryFee,
		Total:           subtotal.Add(req.DeliveryFee),
	}

	return s.repo.Create(ctx, order)
}

func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, api.Invalid("order.get", "order id is required")
	}
	return s.repo.Get(ctx, id)
}

func (s *Service) CustomerOrders(ctx context.Context, customerID string) ([]domain.Order, error) {
	if strings.TrimSpace(customerID) == "" {
		return nil, api.Invalid("order.by_customer", "customer id is required")
	}
	return s.repo.ByCustomer(ctx, customerID)
}

func (s *Service) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Order, error) {
	const op = "order.update_status"
	if strings.TrimSpace(id) == "" {
		return domain.Order{}, api.Invalid(op, "order id is required")
	}
	if _, ok := domain.ParseStatus(string(status)); !ok {
		return domain.Order{}, api.Invalid(op, fmt.Sprintf("unknown order status %q", status))
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// CancelOrder cancels on behalf of the customer. Orders that are already
// paid or on their way are refused without calling the cancel endpoint.
func (s *Service) CancelOrder(ctx context.Context, id string) (domain.Order, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	if !order.Status.Cancellable() {
		return domain.Order{}, fmt.Errorf("%w: status is %s", ErrNotCancellable, order.Status)
	}
	return s.repo.Cancel(ctx, id)
}

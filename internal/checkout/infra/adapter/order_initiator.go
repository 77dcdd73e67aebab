package adapter

import (
	"context"

	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	orderapp "github.com/dwikikusuma/storefront/internal/order/app"
	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
)

type OrderServiceInitiator struct {
	svc *orderapp.Service
}

func NewOrderServiceInitiator(svc *orderapp.Service) *OrderServiceInitiator {
	return &OrderServiceInitiator{svc: svc}
}

func (o *OrderServiceInitiator) CreateOrder(ctx context.Context, req checkoutapp.OrderRequest) (checkoutapp.PlacedOrder, error) {
	items := make([]orderdomain.OrderItemRequest, 0, len(req.Lines))
	for _, l := range req.Lines {
		items = append(items, orderdomain.OrderItemRequest{
			ItemID:    l.ItemID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	order, err := o.svc.CreateOrder(ctx, orderdomain.PlaceOrderRequest{
		CustomerID:      req.CustomerID,
		DeliveryAddress: req.DeliveryAddress,
		DeliveryFee:     req.DeliveryFee,
		Items:           items,
	})
	if err != nil {
		return checkoutapp.PlacedOrder{}, err
	}
	return checkoutapp.PlacedOrder{ID: order.ID, Total: order.Total}, nil
}

func (o *OrderServiceInitiator) MarkPaid(ctx context.Context, orderID string) error {
	_, err := o.svc.UpdateStatus(ctx, orderID, orderdomain.StatusPaid)
	return err
}

func (o *OrderServiceInitiator) MarkPaymentFailed(ctx context.Context, orderID string) error {
	_, err := o.svc.UpdateStatus(ctx, orderID, orderdomain.StatusPaymentFailed)
	return err
}

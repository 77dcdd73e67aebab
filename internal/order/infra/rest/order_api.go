package rest

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/order/domain"
	"github.com/shopspring/decimal"
)

type orderDTO struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	DeliveryAddress string          `json:"deliveryAddress"`
	Status          string          `json:"status"`
	Items           []orderItemDTO  `json:"items"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	Total           decimal.Decimal `json:"total"`
	OrderDate       api.Timestamp   `json:"orderDate"`
}

type orderItemDTO struct {
	ItemID    string     `json:"itemId"`
	Name      string     `json:"name,omitempty"`
	UnitPrice api.Amount `json:"unitPrice"`
	Quantity  int        `json:"quantity"`
}

type placeOrderDTO struct {
	CustomerID      string         `json:"customerId"`
	DeliveryAddress string         `json:"deliveryAddress"`
	DeliveryFee     api.Amount     `json:"deliveryFee"`
	Items           []orderItemDTO `json:"items"`
}

func (d orderDTO) toDomain(op string) (domain.Order, error) {
	if d.ID == "" {
		return domain.Order{}, malformed(op, "order without id")
	}
	status, ok := domain.ParseStatus(d.Status)
	if !ok {
		status = domain.Status(strings.ToUpper(strings.TrimSpace(d.Status)))
	}

	o := domain.Order{
		ID:              d.ID,
		CustomerID:      d.CustomerID,
		DeliveryAddress: d.DeliveryAddress,
		Status:          status,
		DeliveryFee:     d.DeliveryFee,
		Total:           d.Total,
		CreatedAt:       d.OrderDate.Time,
		Subtotal:        decimal.Zero,
	}
	for _, it := range d.Items {
		if it.ItemID == "" || it.Quantity <= 0 {
			return domain.Order{}, malformed(op, fmt.Sprintf("order %s has an invalid line", d.ID))
		}
		line := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		o.Items = append(o.Items, domain.OrderItem{
			ItemID:    it.ItemID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice.Decimal,
			Quantity:  it.Quantity,
			LineTotal: line,
		})
		o.Subtotal = o.Subtotal.Add(line)
	}
	return o, nil
}

func malformed(op, msg string) error {
	return &api.Error{Kind: api.KindServer, Op: op, Message: "malformed response: " + msg}
}

type OrderAPI struct {
	c *api.Client
}

func NewOrderAPI(c *api.Client) *OrderAPI {
	return &OrderAPI{c: c}
}

func (a *OrderAPI) one(ctx context.Context, op string, req api.Request) (domain.Order, error) {
	var dto orderDTO
	if err := a.c.Do(ctx, op, req, &dto); err != nil {
		return domain.Order{}, err
	}
	return dto.toDomain(op)
}

func (a *OrderAPI) Create(ctx context.Context, o domain.Order) (domain.Order, error) {
	body := placeOrderDTO{
		CustomerID:      o.CustomerID,
		DeliveryAddress: o.DeliveryAddress,
		DeliveryFee:     api.AmountOf(o.DeliveryFee),
		Items:           make([]orderItemDTO, 0, len(o.Items)),
	}
	for _, it := range o.Items {
		body.Items = append(body.Items, orderItemDTO{
			ItemID:    it.ItemID,
			Name:      it.Name,
			UnitPrice: api.AmountOf(it.UnitPrice),
			Quantity:  it.Quantity,
		})
	}
	return a.one(ctx, "order.create", api.Request{Method: http.MethodPost, Path: "/orders", Body: body})
}

func (a *OrderAPI) Get(ctx context.Context, id string) (domain.Order, error) {
	return a.one(ctx, "order.get", api.Request{
		Method:     http.MethodGet,
		Path:       "/orders/{id}",
		PathParams: map[string]string{"id": id},
	})
}

func (a *OrderAPI) ByCustomer(ctx context.Context, customerID string) ([]domain.Order, error) {
	const op = "order.by_customer"
	var rows []orderDTO
	if err := a.c.Get(ctx, op, "/orders/customer/{id}", map[string]string{"id": customerID}, &rows); err != nil {
		return nil, err
	}
	out := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		o, err := row.toDomain(op)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, nil
}

func (a *OrderAPI) UpdateStatus(ctx context.Context, id string, status domain.Status) (domain.Order, error) {
	return a.one(ctx, "order.update_status", api.Request{
		Method:     http.MethodPut,
		Path:       "/orders/{id}/status",
		PathParams: map[string]string{"id": id},
		Query:      map[string]string{"status": string(status)},
	})
}

func (a *OrderAPI) Cancel(ctx context.Context, id string) (domain.Order, error) {
	return a.one(ctx, "order.cancel", api.Request{
		Method:     http.MethodPost,
		Path:       "/orders/{id}/cancel",
		PathParams: map[string]string{"id": id},
		Query:      map[string]string{"cancellationType": string(domain.StatusCancelledByCustomer)},
	})
}

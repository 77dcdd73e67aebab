package mockapi

import (
	"net/http"
	"sort"
	"strings"

	orderdomain "github.com/dwikikusuma/storefront/internal/order/domain"
	paymentdomain "github.com/dwikikusuma/storefront/internal/payment/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PlaceOrder struct {
	CustomerID      string          `json:"customerId"`
	DeliveryAddress string          `json:"deliveryAddress"`
	DeliveryFee     decimal.Decimal `json:"deliveryFee"`
	Items           []OrderLine     `json:"items"`
}

func (s *Store) CreateOrder(in PlaceOrder) (Order, error) {
	if strings.TrimSpace(in.DeliveryAddress) == "" {
		return Order{}, fail(http.StatusBadRequest, "Delivery address is required")
	}
	if len(in.Items) == 0 {
		return Order{}, fail(http.StatusBadRequest, "Order must contain at least one item")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.customers[in.CustomerID]; !ok {
		return Order{}, fail(http.StatusNotFound, "Customer not found with id: %s", in.CustomerID)
	}
	total := in.DeliveryFee
	lines := make([]OrderLine, 0, len(in.Items))
	for _, l := range in.Items {
		it, ok := s.items[l.ItemID]
		if !ok {
			return Order{}, fail(http.StatusNotFound, "Item not found with id: %s", l.ItemID)
		}
		if l.Quantity <= 0 {
			return Order{}, fail(http.StatusBadRequest, "Quantity must be greater than zero")
		}
		if l.Name == "" {
			l.Name = it.Name
		}
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
		lines = append(lines, l)
	}

	o := &Order{
		ID:              uuid.NewString(),
		CustomerID:      in.CustomerID,
		DeliveryAddress: strings.TrimSpace(in.DeliveryAddress),
		Status:          string(orderdomain.StatusPending),
		Items:           lines,
		DeliveryFee:     in.DeliveryFee,
		Total:           total,
		OrderDate:       s.now().UTC(),
	}
	s.orders[o.ID] = o
	return *o, nil
}

func (s *Store) Order(id string) (Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, fail(http.StatusNotFound, "Order not found with id: %s", id)
	}
	return *o, nil
}

// CustomerOrders returns the customer's orders, newest first.
func (s *Store) CustomerOrders(customerID string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, 0)
	for _, o := range s.orders {
		if o.CustomerID == customerID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	return out
}

func (s *Store) SetOrderStatus(id, status string) (Order, error) {
	st, ok := orderdomain.ParseStatus(status)
	if !ok {
		return Order{}, fail(http.StatusBadRequest, "Unknown order status: %s", status)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, fail(http.StatusNotFound, "Order not found with id: %s", id)
	}
	o.Status = string(st)
	return *o, nil
}

func (s *Store) CancelOrder(id, cancellationType string) (Order, error) {
	if cancellationType == "" {
		cancellationType = string(orderdomain.StatusCancelledByCustomer)
	}
	st, ok := orderdomain.ParseStatus(cancellationType)
	if !ok {
		return Order{}, fail(http.StatusBadRequest, "Unknown cancellation type: %s", cancellationType)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return Order{}, fail(http.StatusNotFound, "Order not found with id: %s", id)
	}
	if !orderdomain.Status(o.Status).Cancellable() {
		return Order{}, fail(http.StatusConflict, "Order %s cannot be cancelled in status %s", id, o.Status)
	}
	o.Status = string(st)
	return *o, nil
}

// Payments

func (s *Store) CreatePayment(orderID, method string) (Payment, error) {
	m, ok := paymentdomain.ParseMethod(method)
	if !ok {
		return Payment{}, fail(http.StatusBadRequest, "Unsupported payment method: %s", method)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[orderID]
	if !ok {
		return Payment{}, fail(http.StatusNotFound, "Order not found with id: %s", orderID)
	}
	p := &Payment{
		ID:            uuid.NewString(),
		OrderID:       orderID,
		PaymentMethod: string(m),
		Status:        string(paymentdomain.StatusPending),
		Amount:        o.Total,
		PaymentDate:   s.now().UTC(),
	}
	s.payments[p.ID] = p
	return *p, nil
}

func (s *Store) payment(id string) (*Payment, error) {
	p, ok := s.payments[id]
	if !ok {
		return nil, fail(http.StatusNotFound, "Payment not found with id: %s", id)
	}
	return p, nil
}

func (s *Store) Payment(id string) (Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, err := s.payment(id)
	if err != nil {
		return Payment{}, err
	}
	return *p, nil
}

// ProcessPayment settles a pending payment with the configured outcome.
func (s *Store) ProcessPayment(id string) (Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.payment(id)
	if err != nil {
		return Payment{}, err
	}
	if p.Status != string(paymentdomain.StatusPending) {
		return Payment{}, fail(http.StatusConflict, "Payment %s is already %s", id, p.Status)
	}
	p.Status = s.paymentOutcome
	p.PaymentDate = s.now().UTC()
	return *p, nil
}

func (s *Store) RefundPayment(id string) (Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.payment(id)
	if err != nil {
		return Payment{}, err
	}
	if p.Status != string(paymentdomain.StatusCompleted) {
		return Payment{}, fail(http.StatusConflict, "Only completed payments can be refunded")
	}
	p.Status = string(paymentdomain.StatusRefunded)
	if o, ok := s.orders[p.OrderID]; ok {
		o.Status = string(orderdomain.StatusRefunded)
	}
	return *p, nil
}

func (s *Store) CancelPayment(id string) (Payment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := s.payment(id)
	if err != nil {
		return Payment{}, err
	}
	if p.Status != string(paymentdomain.StatusPending) && p.Status != string(paymentdomain.StatusProcessing) {
		return Payment{}, fail(http.StatusConflict, "Payment %s cannot be cancelled in status %s", id, p.Status)
	}
	p.Status = string(paymentdomain.StatusCancelled)
	return *p, nil
}

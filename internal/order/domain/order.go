package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending             Status = "PENDING"
	StatusConfirmed           Status = "CONFIRMED"
	StatusPreparing           Status = "PREPARING"
	StatusPaymentPending      Status = "PAYMENT_PENDING"
	StatusPaymentProcessing   Status = "PAYMENT_PROCESSING"
	StatusPaymentCompleted    Status = "PAYMENT_COMPLETED"
	StatusPaid                Status = "PAID"
	StatusPaymentFailed       Status = "PAYMENT_FAILED"
	StatusReadyForPickup      Status = "READY_FOR_PICKUP"
	StatusDriverAssigned      Status = "DRIVER_ASSIGNED"
	StatusDriverPickedUp      Status = "DRIVER_PICKED_UP"
	StatusOutForDelivery      Status = "OUT_FOR_DELIVERY"
	StatusDelivered           Status = "DELIVERED"
	StatusCompleted           Status = "COMPLETED"
	StatusCancelled           Status = "CANCELLED"
	StatusCancelledByCustomer Status = "CANCELLED_BY_CUSTOMER"
	StatusCancelledByVendor   Status = "CANCELLED_BY_RESTAURANT"
	StatusCancelledBySystem   Status = "CANCELLED_BY_SYSTEM"
	StatusRefunded            Status = "REFUNDED"
)

var statuses = []Status{
	StatusPending, StatusConfirmed, StatusPreparing,
	StatusPaymentPending, StatusPaymentProcessing, StatusPaymentCompleted, StatusPaid, StatusPaymentFailed,
	StatusReadyForPickup, StatusDriverAssigned, StatusDriverPickedUp, StatusOutForDelivery,
	StatusDelivered, StatusCompleted,
	StatusCancelled, StatusCancelledByCustomer, StatusCancelledByVendor, StatusCancelledBySystem,
	StatusRefunded,
}

// ParseStatus accepts the wire name in any case; the second result is false
// for names this client does not know.
func ParseStatus(s string) (Status, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for _, st := range statuses {
		if string(st) == s {
			return st, true
		}
	}
	return "", false
}

// Cancellable reports whether a customer may still cancel an order in this status.
func (s Status) Cancellable() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing, StatusPaymentPending, StatusPaymentFailed:
		return true
	}
	return false
}

type Order struct {
	ID              string
	CustomerID      string
	DeliveryAddress string
	Status          Status
	Items           []OrderItem
	Subtotal        decimal.Decimal
	DeliveryFee     decimal.Decimal
	Total           decimal.Decimal
	CreatedAt       time.Time
}

type OrderItem struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	LineTotal decimal.Decimal
}

type PlaceOrderRequest struct {
	CustomerID      string
	DeliveryAddress string
	DeliveryFee     decimal.Decimal
	Items           []OrderItemRequest
}

type OrderItemRequest struct {
	ItemID    string
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

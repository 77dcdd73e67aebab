package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Method string

const (
	MethodCash        Method = "CASH"
	MethodMobileMoney Method = "MOBILE_MONEY"
	MethodCard        Method = "CARD"
)

// ParseMethod accepts the wire names, the backend's display names ("Mobile
// Money", "Credit Card") and the short names shown to customers.
func ParseMethod(s string) (Method, bool) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	switch key {
	case "cash":
		return MethodCash, true
	case "mobile", "mobile_money", "momo":
		return MethodMobileMoney, true
	case "card", "credit_card", "debit_card":
		return MethodCard, true
	}
	return "", false
}

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusProcessing Status = "PROCESSING"
	StatusCompleted  Status = "COMPLETED"
	StatusFailed     Status = "FAILED"
	StatusCancelled  Status = "CANCELLED"
	StatusRefunded   Status = "REFUNDED"
)

func ParseStatus(s string) (Status, bool) {
	switch st := Status(strings.ToUpper(strings.TrimSpace(s))); st {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusCancelled, StatusRefunded:
		return st, true
	}
	return "", false
}

type Payment struct {
	ID        string
	OrderID   string
	Method    Method
	Status    Status
	Amount    decimal.Decimal
	CreatedAt time.Time
}

package domain

import "github.com/shopspring/decimal"

type QuoteLine struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

type Quote struct {
	Lines       []QuoteLine
	Subtotal    decimal.Decimal
	DeliveryFee decimal.Decimal
	Total       decimal.Decimal
}

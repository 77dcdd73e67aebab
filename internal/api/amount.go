package api

import "github.com/shopspring/decimal"

// Amount is a decimal that goes over the wire as a JSON number. Decoding
// accepts numbers and quoted strings.
type Amount struct {
	decimal.Decimal
}

func AmountOf(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Money is a non-negative amount in the storefront currency.
type Money = decimal.Decimal

type VendorStatus string

const (
	VendorOpen   VendorStatus = "OPEN"
	VendorClosed VendorStatus = "CLOSED"
	VendorBusy   VendorStatus = "BUSY"
)

func ParseVendorStatus(s string) (VendorStatus, bool) {
	switch v := VendorStatus(strings.ToUpper(strings.TrimSpace(s))); v {
	case VendorOpen, VendorClosed, VendorBusy:
		return v, true
	default:
		return "", false
	}
}

type Category struct {
	ID   string
	Name string
}

type Item struct {
	ID                 string
	Name               string
	Description        string
	Price              Money
	ImageURL           string
	Available          bool
	DiscountPercentage decimal.Decimal
	Categories         []Category
	VendorID           string
	AverageRating      float64
	TotalRatings       int
}

// EffectivePrice is the price after the item's discount, rounded to 2 places.
func (i Item) EffectivePrice() Money {
	if i.DiscountPercentage.IsZero() {
		return i.Price
	}
	off := i.Price.Mul(i.DiscountPercentage).Div(hundred)
	return i.Price.Sub(off).Round(2)
}

func (i Item) InCategory(name string) bool {
	for _, c := range i.Categories {
		if strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

type Vendor struct {
	ID            string
	Name          string
	Location      string
	Phone         string
	Email         string
	Description   string
	ImageURL      string
	VendorType    string
	Status        VendorStatus
	AverageRating float64
	TotalRatings  int
}

// VendorDetail is a vendor page: the vendor and its menu.
type VendorDetail struct {
	Vendor Vendor
	Items  []Item
}

// ItemInput is what a vendor submits when creating or editing an item.
type ItemInput struct {
	VendorID           string
	Name               string
	Description        string
	Price              Money
	ImageURL           string
	Available          bool
	DiscountPercentage decimal.Decimal
	Categories         []string
}

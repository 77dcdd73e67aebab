package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TopSellingItem struct {
	Name      string
	UnitsSold int
}

type DashboardStats struct {
	TotalRevenue    decimal.Decimal
	TotalOrders     int
	ActiveCustomers int
	ActiveVendors   int
	TopSellingItems []TopSellingItem
}

type RecentOrder struct {
	ID           string
	CustomerName string
	Total        decimal.Decimal
	Status       string
	OrderDate    time.Time
}

type RevenuePoint struct {
	Label  string
	Amount decimal.Decimal
}

type RevenueStats struct {
	Period string
	Total  decimal.Decimal
	Points []RevenuePoint
}

type VendorPerformance struct {
	ID          string
	Name        string
	TotalSales  decimal.Decimal
	TotalOrders int
	Rating      float64
}

// Dashboard is everything the admin overview shows at once.
type Dashboard struct {
	Stats        DashboardStats
	RecentOrders []RecentOrder
	Revenue      RevenueStats
	Vendors      []VendorPerformance
}

var Periods = []string{"day", "week", "month", "year"}

func ValidPeriod(p string) bool {
	for _, v := range Periods {
		if v == p {
			return true
		}
	}
	return false
}

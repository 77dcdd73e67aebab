package mockapi

import (
	"net/http"
	"sort"
	"time"

	admindomain "github.com/dwikikusuma/storefront/internal/admin/domain"
	"github.com/shopspring/decimal"
)

type TopSellingItem struct {
	Name      string `json:"name"`
	UnitsSold int    `json:"unitsSold"`
}

type DashboardStats struct {
	TotalRevenue    decimal.Decimal  `json:"totalRevenue"`
	TotalOrders     int              `json:"totalOrders"`
	ActiveCustomers int              `json:"activeCustomers"`
	ActiveVendors   int              `json:"activeVendors"`
	TopSellingItems []TopSellingItem `json:"topSellingItems"`
}

type RecentOrder struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customerName"`
	Total        decimal.Decimal `json:"total"`
	Status       string          `json:"status"`
	OrderDate    time.Time       `json:"orderDate"`
}

type RevenuePoint struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

type Revenue struct {
	Period string          `json:"period"`
	Total  decimal.Decimal `json:"total"`
	Points []RevenuePoint  `json:"points"`
}

type VendorPerformance struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	TotalSales  decimal.Decimal `json:"totalSales"`
	TotalOrders int             `json:"totalOrders"`
	Rating      float64         `json:"rating"`
}

// settled orders count towards revenue.
func settled(status string) bool {
	switch status {
	case "PAID", "OUT_FOR_DELIVERY", "DELIVERED", "COMPLETED":
		return true
	}
	return false
}

const topSellingLimit = 5

func (s *Store) Stats() DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := DashboardStats{TotalRevenue: decimal.Zero, TotalOrders: len(s.orders), TopSellingItems: []TopSellingItem{}}
	buyers := make(map[string]struct{})
	units := make(map[string]int)
	for _, o := range s.orders {
		buyers[o.CustomerID] = struct{}{}
		if !settled(o.Status) {
			continue
		}
		out.TotalRevenue = out.TotalRevenue.Add(o.Total)
		for _, l := range o.Items {
			units[l.Name] += l.Quantity
		}
	}
	out.ActiveCustomers = len(buyers)
	for _, v := range s.vendors {
		if v.Status == "OPEN" {
			out.ActiveVendors++
		}
	}
	for name, n := range units {
		out.TopSellingItems = append(out.TopSellingItems, TopSellingItem{Name: name, UnitsSold: n})
	}
	sort.Slice(out.TopSellingItems, func(i, j int) bool {
		a, b := out.TopSellingItems[i], out.TopSellingItems[j]
		if a.UnitsSold != b.UnitsSold {
			return a.UnitsSold > b.UnitsSold
		}
		return a.Name < b.Name
	})
	if len(out.TopSellingItems) > topSellingLimit {
		out.TopSellingItems = out.TopSellingItems[:topSellingLimit]
	}
	return out
}

func (s *Store) RecentOrders(limit int) []RecentOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]RecentOrder, 0, len(s.orders))
	for _, o := range s.orders {
		name := o.CustomerID
		if c, ok := s.customers[o.CustomerID]; ok {
			name = c.Name
		}
		out = append(out, RecentOrder{ID: o.ID, CustomerName: name, Total: o.Total, Status: o.Status, OrderDate: o.OrderDate})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OrderDate.After(out[j].OrderDate) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func periodStart(now time.Time, period string) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch period {
	case "day":
		return day
	case "week":
		return day.AddDate(0, 0, -6)
	case "year":
		return day.AddDate(-1, 0, 1)
	default:
		return day.AddDate(0, -1, 1)
	}
}

// Revenue buckets settled orders by day over the period.
func (s *Store) Revenue(period string) (Revenue, error) {
	if period == "" {
		period = "month"
	}
	if !admindomain.ValidPeriod(period) {
		return Revenue{}, fail(http.StatusBadRequest, "Unknown period: %s", period)
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := s.now().UTC()
	from := periodStart(now, period)
	byDay := make(map[string]decimal.Decimal)
	out := Revenue{Period: period, Total: decimal.Zero, Points: []RevenuePoint{}}
	for _, o := range s.orders {
		if !settled(o.Status) || o.OrderDate.Before(from) {
			continue
		}
		label := o.OrderDate.Format(time.DateOnly)
		byDay[label] = byDay[label].Add(o.Total)
		out.Total = out.Total.Add(o.Total)
	}
	for label, amt := range byDay {
		out.Points = append(out.Points, RevenuePoint{Label: label, Amount: amt})
	}
	sort.Slice(out.Points, func(i, j int) bool { return out.Points[i].Label < out.Points[j].Label })
	return out, nil
}

func (s *Store) VendorPerformance() []VendorPerformance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perf := make(map[string]*VendorPerformance, len(s.vendors))
	for _, v := range s.vendors {
		perf[v.ID] = &VendorPerformance{ID: v.ID, Name: v.Name, TotalSales: decimal.Zero, Rating: v.AverageRating}
	}
	for _, o := range s.orders {
		if !settled(o.Status) {
			continue
		}
		touched := make(map[string]bool)
		for _, l := range o.Items {
			it, ok := s.items[l.ItemID]
			if !ok {
				continue
			}
			p, ok := perf[it.VendorID]
			if !ok {
				continue
			}
			p.TotalSales = p.TotalSales.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
			touched[it.VendorID] = true
		}
		for id := range touched {
			perf[id].TotalOrders++
		}
	}
	out := make([]VendorPerformance, 0, len(perf))
	for _, p := range perf {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].TotalSales.Equal(out[j].TotalSales) {
			return out[i].TotalSales.GreaterThan(out[j].TotalSales)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

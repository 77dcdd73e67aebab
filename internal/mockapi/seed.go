package mockapi

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Seed accounts.
const (
	CustomerAline = "cust-aline"
	CustomerEric  = "cust-eric"
	CustomerPass  = "password123"
	VendorLogin   = "kigali@eats.rw"
	VendorPass    = "vendor123"
	AdminUser     = "admin"
	AdminPass     = "2002"
)

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

// Seed fills the store with a small Kigali catalog and a few accounts.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range []Category{
		{ID: "cat-local", Name: "Local"},
		{ID: "cat-grill", Name: "Grill"},
		{ID: "cat-drinks", Name: "Drinks"},
		{ID: "cat-snacks", Name: "Snacks"},
	} {
		s.categories[strings.ToLower(c.Name)] = c
	}
	cat := func(name string) []Category { return []Category{s.categories[strings.ToLower(name)]} }

	for _, v := range []*Vendor{
		{ID: "v-kigali-eats", Name: "Kigali Eats", Location: "Kimihurura", Email: VendorLogin, VendorType: "RESTAURANT", Status: "OPEN", AverageRating: 4.5, TotalRatings: 12, password: VendorPass},
		{ID: "v-nyama-choma", Name: "Nyama Choma House", Location: "Remera", Email: "hello@nyama.rw", VendorType: "RESTAURANT", Status: "BUSY", AverageRating: 4.1, TotalRatings: 7},
		{ID: "v-inzora", Name: "Inzora Rooftop", Location: "Kiyovu", Email: "cafe@inzora.rw", VendorType: "CAFE", Status: "CLOSED", AverageRating: 4.8, TotalRatings: 20},
	} {
		s.vendors[v.ID] = v
	}

	for _, it := range []*Item{
		{ID: "item-isombe", Name: "Isombe", Description: "Cassava leaves with peanut sauce", Price: dec(2500), Available: true, VendorID: "v-kigali-eats", Categories: cat("Local")},
		{ID: "item-brochette", Name: "Goat Brochette", Description: "Grilled goat skewer", Price: dec(1500), Available: true, VendorID: "v-nyama-choma", Categories: cat("Grill")},
		{ID: "item-fanta", Name: "Fanta Citron", Price: dec(800), Available: true, VendorID: "v-kigali-eats", Categories: cat("Drinks")},
		{ID: "item-sambusa", Name: "Sambusa", Description: "Beef samosa", Price: dec(500), Available: true, DiscountPercentage: dec(10), VendorID: "v-inzora", Categories: cat("Snacks")},
		{ID: "item-ugali", Name: "Ugali", Price: dec(1200), Available: false, VendorID: "v-nyama-choma", Categories: cat("Local")},
	} {
		s.items[it.ID] = it
	}

	s.customers[CustomerAline] = &Customer{ID: CustomerAline, Name: "Aline Uwase", Email: "aline@example.rw", Address: "KG 7 Ave, Kigali", password: CustomerPass}
	s.customers[CustomerEric] = &Customer{ID: CustomerEric, Name: "Eric Mugisha", Email: "eric@example.rw", TFAEnabled: true, tfaSecret: "ERICSECRET", password: CustomerPass}

	s.admins[AdminUser] = AdminPass
}

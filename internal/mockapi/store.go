package mockapi

import (
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error carries the status and message a handler should answer with.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%d: %s", e.Status, e.Message) }

func fail(status int, format string, args ...any) error {
	return &Error{Status: status, Message: fmt.Sprintf(format, args...)}
}

// Store holds the in-memory backend state.
type Store struct {
	mu sync.RWMutex

	categories map[string]Category
	vendors    map[string]*Vendor
	items      map[string]*Item
	customers  map[string]*Customer
	carts      map[string]*Cart // by customer id
	orders     map[string]*Order
	payments   map[string]*Payment
	admins     map[string]string
	resets     map[string]string // token -> customer id

	paymentOutcome string
	now            func() time.Time
}

func NewStore() *Store {
	return &Store{
		categories:     make(map[string]Category),
		vendors:        make(map[string]*Vendor),
		items:          make(map[string]*Item),
		customers:      make(map[string]*Customer),
		carts:          make(map[string]*Cart),
		orders:         make(map[string]*Order),
		payments:       make(map[string]*Payment),
		admins:         make(map[string]string),
		resets:         make(map[string]string),
		paymentOutcome: "COMPLETED",
		now:            time.Now,
	}
}

// SetPaymentOutcome sets the status every processed payment ends in.
func (s *Store) SetPaymentOutcome(status string) {
	s.mu.Lock()
	s.paymentOutcome = status
	s.mu.Unlock()
}

func sortedValues[T any](m map[string]*T, key func(*T) string, keep func(*T) bool) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		if keep == nil || keep(v) {
			out = append(out, *v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return key(&out[i]) < key(&out[j]) })
	return out
}

// Catalog

func (s *Store) Categories() []Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *Store) Items(keep func(*Item) bool) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.items, func(i *Item) string { return i.ID }, keep)
}

func (s *Store) Item(id string) (Item, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	it, ok := s.items[id]
	if !ok {
		return Item{}, fail(http.StatusNotFound, "Item not found with id: %s", id)
	}
	return *it, nil
}

type ItemInput struct {
	VendorID           string          `json:"vendorId"`
	Name               string          `json:"name"`
	Description        string          `json:"description"`
	Price              decimal.Decimal `json:"price"`
	ImageURL           string          `json:"imageUrl"`
	Available          bool            `json:"available"`
	DiscountPercentage decimal.Decimal `json:"discountPercentage"`
	Categories         []string        `json:"categories"`
}

func (s *Store) applyItem(it *Item, in ItemInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return fail(http.StatusBadRequest, "Item name is required")
	}
	if in.Price.IsNegative() {
		return fail(http.StatusBadRequest, "Price cannot be negative")
	}
	if _, ok := s.vendors[in.VendorID]; !ok {
		return fail(http.StatusNotFound, "Vendor not found with id: %s", in.VendorID)
	}
	cats := make([]Category, 0, len(in.Categories))
	for _, name := range in.Categories {
		c, ok := s.categories[strings.ToLower(name)]
		if !ok {
			c = Category{ID: uuid.NewString(), Name: name}
			s.categories[strings.ToLower(name)] = c
		}
		cats = append(cats, c)
	}
	it.VendorID = in.VendorID
	it.Name = strings.TrimSpace(in.Name)
	it.Description = in.Description
	it.Price = in.Price
	it.ImageURL = in.ImageURL
	it.Available = in.Available
	it.DiscountPercentage = in.DiscountPercentage
	it.Categories = cats
	return nil
}

func (s *Store) CreateItem(in ItemInput) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	it := &Item{ID: uuid.NewString()}
	if err := s.applyItem(it, in); err != nil {
		return Item{}, err
	}
	s.items[it.ID] = it
	return *it, nil
}

func (s *Store) UpdateItem(id string, in ItemInput) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.items[id]
	if !ok {
		return Item{}, fail(http.StatusNotFound, "Item not found with id: %s", id)
	}
	next := *cur
	if err := s.applyItem(&next, in); err != nil {
		return Item{}, err
	}
	s.items[id] = &next
	return next, nil
}

func (s *Store) DeleteItem(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return fail(http.StatusNotFound, "Item not found with id: %s", id)
	}
	delete(s.items, id)
	return nil
}

func (s *Store) Vendors(keep func(*Vendor) bool) []Vendor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.vendors, func(v *Vendor) string { return v.ID }, keep)
}

func (s *Store) Vendor(id string) (Vendor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.vendors[id]
	if !ok {
		return Vendor{}, fail(http.StatusNotFound, "Vendor not found with id: %s", id)
	}
	return *v, nil
}

func (s *Store) RateVendor(id string, rating int) (Vendor, error) {
	if rating < 1 || rating > 5 {
		return Vendor{}, fail(http.StatusBadRequest, "Rating must be between 1 and 5")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vendors[id]
	if !ok {
		return Vendor{}, fail(http.StatusNotFound, "Vendor not found with id: %s", id)
	}
	sum := v.AverageRating*float64(v.TotalRatings) + float64(rating)
	v.TotalRatings++
	v.AverageRating = sum / float64(v.TotalRatings)
	return *v, nil
}

// Carts

func (s *Store) renderCart(c *Cart) Cart {
	out := Cart{ID: c.ID, Customer: c.Customer, CartItems: make([]CartLine, 0, len(c.CartItems))}
	for _, l := range c.CartItems {
		l.TotalPrice = l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
		out.CartItems = append(out.CartItems, l)
	}
	return out
}

func (s *Store) Cart(customerID string) (Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.carts[customerID]
	if !ok {
		return Cart{}, fail(http.StatusNotFound, "Cart not found for customer: %s", customerID)
	}
	return s.renderCart(c), nil
}

func (s *Store) cartFor(customerID string) (*Cart, error) {
	if _, ok := s.customers[customerID]; !ok {
		return nil, fail(http.StatusNotFound, "Customer not found with id: %s", customerID)
	}
	c, ok := s.carts[customerID]
	if !ok {
		c = &Cart{ID: uuid.NewString(), Customer: CartRef{ID: customerID}}
		s.carts[customerID] = c
	}
	return c, nil
}

func (s *Store) CreateCart(customerID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, err := s.cartFor(customerID)
	if err != nil {
		return Cart{}, err
	}
	return s.renderCart(c), nil
}

func (s *Store) AddToCart(customerID, itemID string, qty int) (Cart, error) {
	if qty <= 0 {
		return Cart{}, fail(http.StatusBadRequest, "Quantity must be greater than zero")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	it, ok := s.items[itemID]
	if !ok {
		return Cart{}, fail(http.StatusNotFound, "Item not found with id: %s", itemID)
	}
	if !it.Available {
		return Cart{}, fail(http.StatusBadRequest, "%s is currently unavailable", it.Name)
	}
	c, err := s.cartFor(customerID)
	if err != nil {
		return Cart{}, err
	}

	for i := range c.CartItems {
		if c.CartItems[i].Item.ID == itemID {
			c.CartItems[i].Quantity += qty
			return s.renderCart(c), nil
		}
	}
	var line CartLine
	line.Item.ID, line.Item.Name, line.Item.Price = it.ID, it.Name, it.Price
	line.Quantity = qty
	c.CartItems = append(c.CartItems, line)
	return s.renderCart(c), nil
}

func (s *Store) RemoveFromCart(customerID, itemID string, qty int) (Cart, error) {
	if qty <= 0 {
		return Cart{}, fail(http.StatusBadRequest, "Quantity must be greater than zero")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[customerID]
	if !ok {
		return Cart{}, fail(http.StatusNotFound, "Cart not found for customer: %s", customerID)
	}
	for i := range c.CartItems {
		if c.CartItems[i].Item.ID != itemID {
			continue
		}
		c.CartItems[i].Quantity -= qty
		if c.CartItems[i].Quantity <= 0 {
			c.CartItems = append(c.CartItems[:i], c.CartItems[i+1:]...)
		}
		return s.renderCart(c), nil
	}
	return Cart{}, fail(http.StatusNotFound, "Item %s is not in the cart", itemID)
}

func (s *Store) DeleteCartLine(customerID, itemID string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[customerID]
	if !ok {
		return Cart{}, fail(http.StatusNotFound, "Cart not found for customer: %s", customerID)
	}
	kept := c.CartItems[:0]
	for _, l := range c.CartItems {
		if l.Item.ID != itemID {
			kept = append(kept, l)
		}
	}
	c.CartItems = kept
	return s.renderCart(c), nil
}

func (s *Store) CheckoutCart(customerID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[customerID]
	if !ok {
		return fail(http.StatusNotFound, "Cart not found for customer: %s", customerID)
	}
	c.CartItems = nil
	return nil
}

func (s *Store) DeleteCart(cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for cid, c := range s.carts {
		if c.ID == cartID {
			delete(s.carts, cid)
			return nil
		}
	}
	return fail(http.StatusNotFound, "Cart not found with id: %s", cartID)
}

package app

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/shopspring/decimal"
)

// fakeRepo behaves like the backend: it owns the truth and answers with it.
type fakeRepo struct {
	mu      sync.Mutex
	carts   map[string]domain.Cart
	catalog map[string]domain.ItemRef
	calls   int

	failAdd    error
	failRemove error
	failDelete error
	failGet    error
	gate       chan struct{} // when set, mutations wait on it
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		carts: make(map[string]domain.Cart),
		catalog: map[string]domain.ItemRef{
			"item-a": {ID: "item-a", Name: "Isombe", Price: decimal.NewFromInt(2500)},
			"item-b": {ID: "item-b", Name: "Brochette", Price: decimal.NewFromInt(1500)},
			"item-c": {ID: "item-c", Name: "Fanta", Price: decimal.NewFromInt(800)},
		},
	}
}

func (f *fakeRepo) wait(ctx context.Context) {
	if f.gate == nil {
		return
	}
	select {
	case <-f.gate:
	case <-ctx.Done():
	}
}

func (f *fakeRepo) Get(ctx context.Context, customerID string) (domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failGet != nil {
		return domain.Cart{}, f.failGet
	}
	c, ok := f.carts[customerID]
	if !ok {
		return domain.Cart{}, &api.Error{Kind: api.KindNotFound, Status: 404, Op: "cart.get"}
	}
	return c.Clone(), nil
}

func (f *fakeRepo) Create(ctx context.Context, customerID string) (domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	c := domain.Cart{ID: "cart-" + customerID, CustomerID: customerID}
	f.carts[customerID] = c
	return c, nil
}

func (f *fakeRepo) AddItem(ctx context.Context, customerID, itemID string, quantity int) (domain.Cart, error) {
	f.wait(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failAdd != nil {
		return domain.Cart{}, f.failAdd
	}
	item, ok := f.catalog[itemID]
	if !ok {
		return domain.Cart{}, &api.Error{Kind: api.KindNotFound, Status: 404, Op: "cart.add_item"}
	}
	c := f.carts[customerID].ApplyAdd(item, quantity)
	c.CustomerID = customerID
	f.carts[customerID] = c
	return c.Clone(), nil
}

func (f *fakeRepo) RemoveItem(ctx context.Context, customerID, itemID string, quantity int) (domain.Cart, error) {
	f.wait(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failRemove != nil {
		return domain.Cart{}, f.failRemove
	}
	c := f.carts[customerID].ApplyRemove(itemID, quantity)
	f.carts[customerID] = c
	return c.Clone(), nil
}

func (f *fakeRepo) DeleteItem(ctx context.Context, customerID, itemID string) (domain.Cart, error) {
	f.wait(ctx)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failDelete != nil {
		return domain.Cart{}, f.failDelete
	}
	c := f.carts[customerID].ApplyDelete(itemID)
	f.carts[customerID] = c
	return c.Clone(), nil
}

func (f *fakeRepo) Checkout(ctx context.Context, customerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	c := f.carts[customerID]
	c.Items = nil
	f.carts[customerID] = c
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, cartID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	for k, c := range f.carts {
		if c.ID == cartID {
			delete(f.carts, k)
		}
	}
	return nil
}

func (f *fakeRepo) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

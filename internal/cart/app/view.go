package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/storefront/internal/api"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

var ErrBusy = errors.New("an update for this item is already in progress")

// View is a customer's local, possibly stale projection of the server cart.
//
// Mutations are applied locally first and then sent to the backend. A
// successful response replaces the projection with the server cart; a failed
// one discards the local change and resyncs from the server. At most one
// mutation per item is in flight at a time.
type View struct {
	svc        *Service
	customerID string
	log        *slog.Logger

	mu        sync.Mutex
	cart      domain.Cart
	confirmed domain.Cart
	inflight  map[string]struct{}
}

func NewView(svc *Service, customerID string, log *slog.Logger) *View {
	if log == nil {
		log = slog.Default()
	}
	return &View{
		svc:        svc,
		customerID: customerID,
		log:        log.With(slog.String("customer_id", customerID)),
		cart:       domain.Cart{CustomerID: customerID},
		confirmed:  domain.Cart{CustomerID: customerID},
		inflight:   make(map[string]struct{}),
	}
}

// Load fetches the server cart, creating it for a customer who has none.
func (v *View) Load(ctx context.Context) error {
	cart, err := v.svc.GetOrCreate(ctx, v.customerID)
	if err != nil {
		return err
	}
	v.replace(cart)
	return nil
}

// Resync replaces local state with the server's cart.
func (v *View) Resync(ctx context.Context) error {
	cart, err := v.svc.GetCart(ctx, v.customerID)
	if errors.Is(err, api.ErrNotFound) {
		cart, err = domain.Cart{CustomerID: v.customerID}, nil
	}
	if err != nil {
		return err
	}
	v.replace(cart)
	return nil
}

func (v *View) replace(cart domain.Cart) {
	v.mu.Lock()
	v.cart = cart
	v.confirmed = cart
	v.mu.Unlock()
}

func (v *View) Snapshot() domain.Cart {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cart.Clone()
}

func (v *View) Add(ctx context.Context, item domain.ItemRef, quantity int) error {
	if quantity <= 0 {
		return api.Invalid("cart.add_item", "quantity must be a positive integer")
	}
	return v.mutate(ctx, item.ID,
		func(c domain.Cart) (domain.Cart, error) { return c.ApplyAdd(item, quantity), nil },
		func(ctx context.Context) (domain.Cart, error) {
			return v.svc.AddItem(ctx, v.customerID, item.ID, quantity)
		})
}

func (v *View) Remove(ctx context.Context, itemID string, quantity int) error {
	if quantity <= 0 {
		return api.Invalid("cart.remove_item", "quantity must be a positive integer")
	}
	return v.mutate(ctx, itemID,
		func(c domain.Cart) (domain.Cart, error) { return c.ApplyRemove(itemID, quantity), nil },
		func(ctx context.Context) (domain.Cart, error) {
			return v.svc.RemoveItem(ctx, v.customerID, itemID, quantity)
		})
}

func (v *View) Delete(ctx context.Context, itemID string) error {
	return v.mutate(ctx, itemID,
		func(c domain.Cart) (domain.Cart, error) { return c.ApplyDelete(itemID), nil },
		func(ctx context.Context) (domain.Cart, error) {
			return v.svc.DeleteItem(ctx, v.customerID, itemID)
		})
}

// SetQuantity moves a line to quantity by adding or removing the difference.
func (v *View) SetQuantity(ctx context.Context, itemID string, quantity int) error {
	if quantity < 1 {
		return api.Invalid("cart.set_quantity", "quantity must be at least 1; delete the item instead")
	}

	var diff int
	return v.mutate(ctx, itemID,
		func(c domain.Cart) (domain.Cart, error) {
			line, ok := c.Line(itemID)
			if !ok {
				return c, api.Invalid("cart.set_quantity", "item is not in the cart")
			}
			diff = quantity - line.Quantity
			return c.ApplySet(itemID, quantity), nil
		},
		func(ctx context.Context) (domain.Cart, error) {
			switch {
			case diff > 0:
				return v.svc.AddItem(ctx, v.customerID, itemID, diff)
			case diff < 0:
				return v.svc.RemoveItem(ctx, v.customerID, itemID, -diff)
			default:
				v.mu.Lock()
				defer v.mu.Unlock()
				return v.confirmed.Clone(), nil
			}
		})
}

func (v *View) mutate(
	ctx context.Context,
	itemID string,
	local func(domain.Cart) (domain.Cart, error),
	remote func(context.Context) (domain.Cart, error),
) error {
	v.mu.Lock()
	if _, busy := v.inflight[itemID]; busy {
		v.mu.Unlock()
		return ErrBusy
	}
	next, err := local(v.cart)
	if err != nil {
		v.mu.Unlock()
		return err
	}
	v.inflight[itemID] = struct{}{}
	v.cart = next
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		delete(v.inflight, itemID)
		v.mu.Unlock()
	}()

	confirmed, err := remote(ctx)
	if err != nil {
		v.log.Warn("cart update rejected, resyncing",
			slog.String("item_id", itemID),
			slog.Any("err", err),
		)
		if rerr := v.Resync(ctx); rerr != nil {
			v.log.Error("cart resync failed", slog.Any("err", rerr))
			v.mu.Lock()
			v.cart = v.confirmed.Clone()
			v.mu.Unlock()
		}
		return err
	}

	v.mu.Lock()
	v.confirmed = confirmed
	v.cart = overlay(confirmed, v.cart, v.inflight, itemID)
	v.mu.Unlock()
	return nil
}

// overlay keeps the optimistic lines of other in-flight items on top of the
// server cart so a confirmation for one item does not undo pending edits of another.
func overlay(server, local domain.Cart, inflight map[string]struct{}, done string) domain.Cart {
	out := server.Clone()
	for id := range inflight {
		if id == done {
			continue
		}
		out = out.ApplyDelete(id)
		if line, ok := local.Line(id); ok {
			out = out.ApplyAdd(line.Item, line.Quantity)
		}
	}
	return out.Sorted()
}
